package transform

import (
	"errors"

	"github.com/datatrails/go-pprl/transform/phonetic"
)

// Kind names a transformer type.
type Kind string

const (
	KindCharacterFilter Kind = "character_filter"
	KindNormalization   Kind = "normalization"
	KindNumber          Kind = "number"
	KindDateTime        Kind = "date_time"
	KindMapping         Kind = "mapping"
	KindPhoneticCode    Kind = "phonetic_code"
)

// EmptyValueHandling controls what happens when a transformer in the
// pipeline receives an empty string.
type EmptyValueHandling string

const (
	// EmptyValueError fails the whole transform on an empty value.
	EmptyValueError EmptyValueHandling = "error"
	// EmptyValueSkip passes an empty value through each remaining
	// transformer unchanged instead of calling it.
	EmptyValueSkip EmptyValueHandling = "skip"
	// EmptyValueProcess calls every transformer as normal, even on an
	// empty value.
	EmptyValueProcess EmptyValueHandling = "process"
)

// Config is a tagged union describing one configured transformer. Only
// the fields relevant to Kind are meaningful.
type Config struct {
	Kind Kind

	// character_filter
	Characters string

	// number
	DecimalPlaces int

	// date_time
	InputFormat  string
	OutputFormat string

	// mapping
	Mapping      map[string]string
	MappingOrder []string // declared key order for inline search; New uses sorted keys when nil
	DefaultValue *string
	Inline       bool

	// phonetic_code
	PhoneticAlgorithm phonetic.Algorithm
}

var (
	ErrUnknownKind       = errors.New("transform: unknown transformer kind")
	ErrNoMapping         = errors.New("transform: value has no mapping and no default value")
	ErrMappingOverlap    = errors.New("transform: inline mapping replacement overlaps a prior replacement")
	ErrEmptyValue        = errors.New("transform: empty value")
)
