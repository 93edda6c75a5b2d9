package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/datatrails/go-pprl/bitvec"
	"github.com/datatrails/go-pprl/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLogger() (*zap.Logger, error) {
	return zap.NewDevelopment()
}

func TestWriteYAMLToFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "result.yaml")

	require.NoError(t, writeYAML(out, model.Entity{ID: "e1", Attributes: map[string]string{"a": "b"}}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id: e1")
}

func TestEnsureIDsFillsBlankOnly(t *testing.T) {
	entities := []model.Entity{
		{ID: "keep-me"},
		{ID: ""},
	}
	ensureIDs(entities)

	assert.Equal(t, "keep-me", entities[0].ID)
	assert.NotEmpty(t, entities[1].ID)
	assert.NotEqual(t, "keep-me", entities[1].ID)
}

func TestDecodeEntitiesRejectsBadBase64(t *testing.T) {
	_, err := decodeEntities([]model.BitVectorEntity{{ID: "bad", Value: "not-valid-base64!!"}})
	assert.Error(t, err)
}

func TestDecodeEntitiesDecodesValid(t *testing.T) {
	v, err := bitvec.New(8)
	require.NoError(t, err)
	v.Set(0)
	encoded, err := bitvec.ToBase64(v)
	require.NoError(t, err)

	out, err := decodeEntities([]model.BitVectorEntity{{ID: "e1", Value: encoded}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "e1", out[0].ID)
}

func TestLoadEnvConfigDefaults(t *testing.T) {
	os.Unsetenv("PPRL_LOG_LEVEL")
	os.Unsetenv("PPRL_LOG_FORMAT")

	cfg, err := loadEnvConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestWriteSnapshotProducesReadableCBOR(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "snapshot.cbor")

	snap := maskSnapshot{
		Job:     maskJobFile{Strategy: "double_hash"},
		Results: []model.BitVectorEntity{{ID: "e1", Value: "AAA="}},
	}
	require.NoError(t, writeSnapshot(out, snap))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRunEstimateNotImplemented(t *testing.T) {
	logger, err := newTestLogger()
	require.NoError(t, err)

	err = runEstimate(logger, nil)
	assert.ErrorIs(t, err, ErrEstimateNotImplemented)
}
