package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/datatrails/go-pprl/bitvec"
	"github.com/datatrails/go-pprl/hashscheme"
	"github.com/datatrails/go-pprl/internal/codec"
	"github.com/datatrails/go-pprl/mask"
	"github.com/datatrails/go-pprl/model"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// maskSnapshot is the canonical CBOR artifact written alongside a mask
// job's YAML output when -snapshot is given: the job's inputs and
// outputs, frozen together for later audit or replay.
type maskSnapshot struct {
	Job     maskJobFile              `cbor:"1,keyasint"`
	Results []model.BitVectorEntity  `cbor:"2,keyasint"`
}

// maskJobFile is the YAML job-config format the mask subcommand reads.
type maskJobFile struct {
	Hash struct {
		Algorithms []string `yaml:"algorithms"`
		Key        string   `yaml:"key"`
	} `yaml:"hash"`
	Strategy string `yaml:"strategy"`
	Filter   struct {
		Kind       string `yaml:"kind"`
		FilterSize int    `yaml:"filter_size"`
		HashValues int    `yaml:"hash_values"`
		Seed       int64  `yaml:"seed"`
	} `yaml:"filter"`
	Hardeners []struct {
		Kind        string  `yaml:"kind"`
		Seed        int64   `yaml:"seed"`
		Probability float64 `yaml:"probability"`
		WindowSize  int     `yaml:"window_size"`
		WindowStep  int     `yaml:"window_step"`
		K           int     `yaml:"k"`
	} `yaml:"hardeners"`
	StaticAttributes []struct {
		AttributeName        string `yaml:"attribute_name"`
		Salt                 string `yaml:"salt"`
		PrependAttributeName bool   `yaml:"prepend_attribute_name"`
	} `yaml:"static_attributes"`
	WeightedAttributes []struct {
		AttributeName         string  `yaml:"attribute_name"`
		Weight                float64 `yaml:"weight"`
		AverageTokenCount     float64 `yaml:"average_token_count"`
		Salt                  string  `yaml:"salt"`
		PrependAttributeName  bool    `yaml:"prepend_attribute_name"`
	} `yaml:"weighted_attributes"`
	TokenSize    int            `yaml:"token_size"`
	TokenPadding string         `yaml:"token_padding"`
	Entities     []model.Entity `yaml:"entities"`
}

func maskConfigFrom(job maskJobFile) mask.Config {
	cfg := mask.Config{
		Strategy:     hashscheme.Scheme(job.Strategy),
		TokenSize:    job.TokenSize,
		TokenPadding: '_',
	}
	if job.TokenPadding != "" {
		cfg.TokenPadding = []rune(job.TokenPadding)[0]
	}
	if cfg.TokenSize == 0 {
		cfg.TokenSize = 2
	}

	for _, a := range job.Hash.Algorithms {
		cfg.Hash.Algorithms = append(cfg.Hash.Algorithms, mask.DigestAlgorithm(a))
	}
	if job.Hash.Key != "" {
		cfg.Hash.Key = []byte(job.Hash.Key)
	}

	cfg.Filter = mask.FilterSpec{
		Kind:       mask.FilterKind(job.Filter.Kind),
		FilterSize: job.Filter.FilterSize,
		HashValues: job.Filter.HashValues,
		Seed:       job.Filter.Seed,
	}

	for _, h := range job.Hardeners {
		cfg.Hardeners = append(cfg.Hardeners, mask.HardenerConfig{
			Kind:        mask.HardenerKind(h.Kind),
			Seed:        h.Seed,
			Probability: h.Probability,
			WindowSize:  h.WindowSize,
			WindowStep:  h.WindowStep,
			K:           h.K,
		})
	}

	for _, a := range job.StaticAttributes {
		cfg.StaticAttributes = append(cfg.StaticAttributes, mask.StaticAttributeConfig{
			AttributeName:        a.AttributeName,
			Salt:                 mask.AttributeSalt{Value: a.Salt},
			PrependAttributeName: a.PrependAttributeName,
		})
	}

	for _, a := range job.WeightedAttributes {
		cfg.WeightedAttributes = append(cfg.WeightedAttributes, mask.WeightedAttributeConfig{
			AttributeName:        a.AttributeName,
			Weight:               a.Weight,
			AverageTokenCount:    a.AverageTokenCount,
			Salt:                 mask.AttributeSalt{Value: a.Salt},
			PrependAttributeName: a.PrependAttributeName,
		})
	}

	return cfg
}

func runMask(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("mask", flag.ExitOnError)
	jobPath := fs.String("job", "", "path to mask job YAML file")
	outPath := fs.String("out", "", "output path (default stdout)")
	snapshotPath := fs.String("snapshot", "", "optional path to write a canonical CBOR snapshot of the job and its results")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobPath == "" {
		return fmt.Errorf("mask: -job is required")
	}

	raw, err := os.ReadFile(*jobPath)
	if err != nil {
		return fmt.Errorf("mask: reading job file: %w", err)
	}

	var job maskJobFile
	if err := yaml.Unmarshal(raw, &job); err != nil {
		return fmt.Errorf("mask: parsing job file: %w", err)
	}

	ensureIDs(job.Entities)

	cfg := maskConfigFrom(job)
	logger.Info("running mask job",
		zap.String("filter_kind", string(cfg.Filter.Kind)),
		zap.Int("entity_count", len(job.Entities)),
	)

	results := make([]model.BitVectorEntity, 0, len(job.Entities))
	for _, e := range job.Entities {
		v, err := mask.Mask(cfg, mask.Entity{ID: e.ID, Attributes: e.Attributes})
		if err != nil {
			return fmt.Errorf("mask: entity %q: %w", e.ID, err)
		}
		encoded, err := bitvec.ToBase64(v)
		if err != nil {
			return fmt.Errorf("mask: entity %q: %w", e.ID, err)
		}
		results = append(results, model.BitVectorEntity{ID: e.ID, Value: encoded})
	}

	if *snapshotPath != "" {
		if err := writeSnapshot(*snapshotPath, maskSnapshot{Job: job, Results: results}); err != nil {
			return fmt.Errorf("mask: writing snapshot: %w", err)
		}
	}

	return writeYAML(*outPath, results)
}

// writeSnapshot marshals v to canonical CBOR and writes it to path.
func writeSnapshot(path string, v any) error {
	c, err := codec.New()
	if err != nil {
		return err
	}
	data, err := c.Enc.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
