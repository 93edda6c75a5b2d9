package hashscheme

import "errors"

// Scheme names a supported hash scheme.
type Scheme string

const (
	DoubleHash         Scheme = "double_hash"
	EnhancedDoubleHash  Scheme = "enhanced_double_hash"
	TripleHash          Scheme = "triple_hash"
	RandomHash          Scheme = "random_hash"
)

var (
	ErrUnknownScheme  = errors.New("hashscheme: unknown scheme")
	ErrShortDigest    = errors.New("hashscheme: digest shorter than 16 bytes")
	ErrBadFilterSize  = errors.New("hashscheme: filter size must be positive")
	ErrBadK           = errors.New("hashscheme: k must be positive")
)
