package transform

import (
	"testing"

	"github.com/datatrails/go-pprl/transform/phonetic"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tf := Normalize()
	out, err := tf("  Jürgen   Müller  ")
	require.NoError(t, err)
	require.Equal(t, "jurgen muller", out)
}

func TestCharacterFilterEmptyIsNoOp(t *testing.T) {
	tf := CharacterFilter("")
	out, err := tf("foo-bar, baz!")
	require.NoError(t, err)
	require.Equal(t, "foo-bar, baz!", out)
}

func TestCharacterFilterRemovesConfiguredChars(t *testing.T) {
	tf := CharacterFilter("-,!")
	out, err := tf("foo-bar, baz!")
	require.NoError(t, err)
	require.Equal(t, "foobar baz", out)
}

func TestNumberRounding(t *testing.T) {
	tf := Number(2)
	out, err := tf("3.14159")
	require.NoError(t, err)
	require.Equal(t, "3.14", out)
}

func TestDateTime(t *testing.T) {
	tf := DateTime("%Y-%m-%d", "%d/%m/%Y")
	out, err := tf("2024-01-31")
	require.NoError(t, err)
	require.Equal(t, "31/01/2024", out)
}

func TestMappingDefault(t *testing.T) {
	def := "?"
	tf := Mapping(map[string]string{"M": "male", "F": "female"}, &def, false, nil)

	out, err := tf("M")
	require.NoError(t, err)
	require.Equal(t, "male", out)

	out, err = tf("X")
	require.NoError(t, err)
	require.Equal(t, "?", out)
}

func TestMappingDefaultNoMatchNoDefault(t *testing.T) {
	tf := Mapping(map[string]string{"M": "male"}, nil, false, nil)
	_, err := tf("X")
	require.ErrorIs(t, err, ErrNoMapping)
}

func TestMappingInlineWorkedExample(t *testing.T) {
	tf := Mapping(map[string]string{"o": "b", "b": "a"}, nil, true, []string{"o", "b"})
	out, err := tf("foobar")
	require.NoError(t, err)
	require.Equal(t, "fbbaar", out)
}

func TestMappingInlineOverlapErrors(t *testing.T) {
	tf := Mapping(map[string]string{"foo": "x", "oob": "y"}, nil, true, []string{"foo", "oob"})
	_, err := tf("foobar")
	require.ErrorIs(t, err, ErrMappingOverlap)
}

func TestPhoneticCodeCologne(t *testing.T) {
	tf := PhoneticCode(phonetic.Cologne)
	out, err := tf("Müller-Ludenscheidt")
	require.NoError(t, err)
	require.Equal(t, "65752682", out)
}

func TestAttributePipelineOrderAndEmptyHandling(t *testing.T) {
	upper := StringTransformFn(func(s string) (string, error) { return s + "!", nil })
	pipeline := AttributePipeline{
		Before: []StringTransformFn{upper},
		Own:    []StringTransformFn{upper},
		After:  []StringTransformFn{upper},
	}

	out, err := pipeline.Apply(EmptyValueProcess, "a")
	require.NoError(t, err)
	require.Equal(t, "a!!!", out)

	_, err = pipeline.Apply(EmptyValueError, "")
	require.ErrorIs(t, err, ErrEmptyValue)

	out, err = pipeline.Apply(EmptyValueSkip, "")
	require.NoError(t, err)
	require.Equal(t, "", out)
}
