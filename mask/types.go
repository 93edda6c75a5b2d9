package mask

import (
	"errors"

	"github.com/datatrails/go-pprl/hashscheme"
)

// DigestAlgorithm names a supported cryptographic digest algorithm for
// hashing tokens before position derivation.
type DigestAlgorithm string

const (
	DigestMD5    DigestAlgorithm = "md5"
	DigestSHA1   DigestAlgorithm = "sha1"
	DigestSHA256 DigestAlgorithm = "sha256"
	DigestSHA512 DigestAlgorithm = "sha512"
)

// HashFunction describes how a token string becomes a digest: an
// ordered chain of digest algorithms (each stage's output feeds the
// next), optionally HMAC-keyed with the same key at every stage.
type HashFunction struct {
	Algorithms []DigestAlgorithm
	Key        []byte // nil means unkeyed plain digests
}

// FilterKind names a masking strategy.
type FilterKind string

const (
	FilterCLK    FilterKind = "clk"
	FilterRBF    FilterKind = "rbf"
	FilterCLKRBF FilterKind = "clk_rbf"
)

// FilterSpec is a tagged union over the three filter kinds. Only the
// fields relevant to Kind are meaningful.
type FilterSpec struct {
	Kind FilterKind

	// clk, rbf, clk_rbf
	HashValues int // k

	// clk
	FilterSize int

	// rbf
	Seed int64
}

// HardenerKind names a hardener in the chain.
type HardenerKind string

const (
	HardenerBalance           HardenerKind = "balance"
	HardenerXorFold           HardenerKind = "xor_fold"
	HardenerPermute           HardenerKind = "permute"
	HardenerRandomizedResponse HardenerKind = "randomized_response"
	HardenerRule90            HardenerKind = "rule_90"
	HardenerRehash            HardenerKind = "rehash"
)

// HardenerConfig is a tagged union over the six hardener kinds.
type HardenerConfig struct {
	Kind HardenerKind

	Seed int64 // permute, randomized_response

	Probability float64 // randomized_response

	WindowSize int // rehash
	WindowStep int // rehash
	K          int // rehash
}

// AttributeSalt resolves to a literal salt value — either a fixed
// string, or the name of another attribute whose (already transformed)
// value should be used as the salt for this one. Exactly one of Value
// or Attribute should be set; both empty means no salt.
type AttributeSalt struct {
	Value     string
	Attribute string
}

// StaticAttributeConfig configures how one attribute's tokens are
// folded into a CLK filter.
type StaticAttributeConfig struct {
	AttributeName         string
	Salt                  AttributeSalt
	PrependAttributeName  bool
}

// WeightedAttributeConfig configures how one attribute's tokens are
// folded into an RBF sub-filter or given an effective k under CLK-RBF.
type WeightedAttributeConfig struct {
	AttributeName        string
	Weight               float64
	AverageTokenCount    float64
	Salt                 AttributeSalt
	PrependAttributeName bool
}

// Config is the full configuration for one masking run.
type Config struct {
	Hash      HashFunction
	Strategy  hashscheme.Scheme
	Filter    FilterSpec
	Hardeners []HardenerConfig

	// CLK attributes
	StaticAttributes []StaticAttributeConfig

	// RBF / CLK-RBF attributes
	WeightedAttributes []WeightedAttributeConfig

	TokenSize    int
	TokenPadding rune
}

// Entity is one record's attribute values, already run through the
// transform pipeline.
type Entity struct {
	ID         string
	Attributes map[string]string
}

var (
	ErrNoAttributes        = errors.New("mask: config declares no attributes")
	ErrMissingAttribute    = errors.New("mask: entity is missing a configured attribute")
	ErrUnknownFilterKind   = errors.New("mask: unknown filter kind")
	ErrUnknownHardenerKind = errors.New("mask: unknown hardener kind")
	ErrUnknownDigestAlgo   = errors.New("mask: unknown digest algorithm")
	ErrBadSaltConfig       = errors.New("mask: attribute salt must set exactly one of value or attribute")
	ErrNoWeightedAttrs     = errors.New("mask: rbf/clk_rbf filter requires at least one weighted attribute")
)
