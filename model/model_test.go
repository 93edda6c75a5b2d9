package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestEntityYAMLRoundTrip(t *testing.T) {
	in := Entity{ID: "e1", Attributes: map[string]string{"name": "Alice"}}
	data, err := yaml.Marshal(in)
	assert.NoError(t, err)

	var out Entity
	assert.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestBitVectorEntityYAMLRoundTrip(t *testing.T) {
	in := BitVectorEntity{ID: "e1", Value: "AAA="}
	data, err := yaml.Marshal(in)
	assert.NoError(t, err)

	var out BitVectorEntity
	assert.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
