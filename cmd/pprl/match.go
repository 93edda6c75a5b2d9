package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/datatrails/go-pprl/bitvec"
	"github.com/datatrails/go-pprl/model"
	"github.com/datatrails/go-pprl/similarity"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type matchJobFile struct {
	Measure   string                   `yaml:"measure"`
	Threshold float64                  `yaml:"threshold"`
	Method    string                   `yaml:"method"`
	Domain    []model.BitVectorEntity  `yaml:"domain"`
	Range     []model.BitVectorEntity  `yaml:"range"`
}

type matchResultFile struct {
	Domain     model.BitVectorEntity `yaml:"domain"`
	Range      model.BitVectorEntity `yaml:"range"`
	Similarity float64               `yaml:"similarity"`
}

func decodeEntities(entities []model.BitVectorEntity) ([]similarity.Entity, error) {
	out := make([]similarity.Entity, 0, len(entities))
	var failedIDs []string

	for _, e := range entities {
		v, err := bitvec.FromBase64(e.Value)
		if err != nil {
			failedIDs = append(failedIDs, e.ID)
			continue
		}
		out = append(out, similarity.Entity{ID: e.ID, Value: v})
	}

	if len(failedIDs) != 0 {
		return nil, fmt.Errorf("match: invalid base64 bit vectors on entities: %v", failedIDs)
	}
	return out, nil
}

func runMatch(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	jobPath := fs.String("job", "", "path to match job YAML file")
	outPath := fs.String("out", "", "output path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobPath == "" {
		return fmt.Errorf("match: -job is required")
	}

	raw, err := os.ReadFile(*jobPath)
	if err != nil {
		return fmt.Errorf("match: reading job file: %w", err)
	}

	var job matchJobFile
	if err := yaml.Unmarshal(raw, &job); err != nil {
		return fmt.Errorf("match: parsing job file: %w", err)
	}

	domain, err := decodeEntities(job.Domain)
	if err != nil {
		return err
	}
	rng, err := decodeEntities(job.Range)
	if err != nil {
		return err
	}

	method := similarity.Method(job.Method)
	if method == "" {
		method = similarity.MethodCrosswise
	}

	cfg := similarity.Config{
		Measure:   similarity.Measure(job.Measure),
		Threshold: job.Threshold,
		Method:    method,
	}

	logger.Info("running match job",
		zap.String("measure", job.Measure),
		zap.Int("domain_count", len(domain)),
		zap.Int("range_count", len(rng)),
	)

	matches, err := similarity.Run(cfg, domain, rng)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	out := make([]matchResultFile, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchResultFile{
			Domain:     model.BitVectorEntity{ID: m.Domain.ID},
			Range:      model.BitVectorEntity{ID: m.Range.ID},
			Similarity: m.Similarity,
		})
	}

	return writeYAML(*outPath, out)
}
