package similarity

import (
	"errors"
	"fmt"

	"github.com/datatrails/go-pprl/bitvec"
)

var (
	ErrUnknownMeasure       = errors.New("similarity: unknown measure")
	ErrUnknownMethod        = errors.New("similarity: unknown method")
	ErrPairwiseLengthMismatch = errors.New("similarity: pairwise matching requires domain and range of equal length")
)

// Fn computes a similarity score between two equal-length bit vectors.
type Fn func(a, b *bitvec.BitVector) (float64, error)

func fnFor(m Measure) (Fn, error) {
	switch m {
	case MeasureDice:
		return Dice, nil
	case MeasureCosine:
		return Cosine, nil
	case MeasureJaccard:
		return Jaccard, nil
	default:
		return nil, ErrUnknownMeasure
	}
}

// Entity is a named bit vector participating in a match.
type Entity struct {
	ID    string
	Value *bitvec.BitVector
}

// Match is one domain/range pair whose similarity met the configured
// threshold.
type Match struct {
	Domain     Entity
	Range      Entity
	Similarity float64
}

// Config configures a matching run.
type Config struct {
	Measure   Measure
	Threshold float64
	Method    Method
}

// Run computes matches between domain and range under cfg. Under
// MethodCrosswise every domain entity is compared against every range
// entity (an O(len(domain)*len(range)) cross join). Under
// MethodPairwise, domain[i] is compared only against range[i], and
// domain and range must have equal length.
func Run(cfg Config, domain, rng []Entity) ([]Match, error) {
	simFn, err := fnFor(cfg.Measure)
	if err != nil {
		return nil, err
	}

	switch cfg.Method {
	case "", MethodCrosswise:
		return runCrosswise(simFn, cfg.Threshold, domain, rng)
	case MethodPairwise:
		return runPairwise(simFn, cfg.Threshold, domain, rng)
	default:
		return nil, ErrUnknownMethod
	}
}

func runCrosswise(simFn Fn, threshold float64, domain, rng []Entity) ([]Match, error) {
	var matches []Match
	for _, d := range domain {
		for _, r := range rng {
			sim, err := simFn(d.Value, r.Value)
			if err != nil {
				return nil, fmt.Errorf("similarity: comparing %q and %q: %w", d.ID, r.ID, err)
			}
			if sim >= threshold {
				matches = append(matches, Match{Domain: d, Range: r, Similarity: sim})
			}
		}
	}
	return matches, nil
}

func runPairwise(simFn Fn, threshold float64, domain, rng []Entity) ([]Match, error) {
	if len(domain) != len(rng) {
		return nil, ErrPairwiseLengthMismatch
	}
	var matches []Match
	for i := range domain {
		sim, err := simFn(domain[i].Value, rng[i].Value)
		if err != nil {
			return nil, fmt.Errorf("similarity: comparing %q and %q: %w", domain[i].ID, rng[i].ID, err)
		}
		if sim >= threshold {
			matches = append(matches, Match{Domain: domain[i], Range: rng[i], Similarity: sim})
		}
	}
	return matches, nil
}
