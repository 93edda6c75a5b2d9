package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/datatrails/go-pprl/model"
	"github.com/datatrails/go-pprl/transform"
	"github.com/datatrails/go-pprl/transform/phonetic"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type transformConfigFile struct {
	Name              string            `yaml:"name"`
	Characters        string            `yaml:"characters"`
	DecimalPlaces     int               `yaml:"decimal_places"`
	InputFormat       string            `yaml:"input_format"`
	OutputFormat      string            `yaml:"output_format"`
	Mapping           map[string]string `yaml:"mapping"`
	MappingOrder      []string          `yaml:"mapping_order"`
	DefaultValue      *string           `yaml:"default_value"`
	Inline            bool              `yaml:"inline"`
	PhoneticAlgorithm string            `yaml:"phonetic_algorithm"`
}

func (c transformConfigFile) toConfig() (transform.Config, error) {
	cfg := transform.Config{
		Kind:              transform.Kind(c.Name),
		Characters:        c.Characters,
		DecimalPlaces:     c.DecimalPlaces,
		InputFormat:       c.InputFormat,
		OutputFormat:      c.OutputFormat,
		Mapping:           c.Mapping,
		MappingOrder:      c.MappingOrder,
		DefaultValue:      c.DefaultValue,
		Inline:            c.Inline,
		PhoneticAlgorithm: phonetic.Algorithm(c.PhoneticAlgorithm),
	}
	return cfg, nil
}

type transformJobFile struct {
	EmptyValue          string                 `yaml:"empty_value"`
	GlobalBefore        []transformConfigFile  `yaml:"global_before"`
	GlobalAfter         []transformConfigFile  `yaml:"global_after"`
	AttributeTransforms map[string][]transformConfigFile `yaml:"attribute_transformers"`
	Entities            []model.Entity         `yaml:"entities"`
}

func buildChain(cfgs []transformConfigFile) ([]transform.StringTransformFn, error) {
	out := make([]transform.StringTransformFn, 0, len(cfgs))
	for _, c := range cfgs {
		conf, err := c.toConfig()
		if err != nil {
			return nil, err
		}
		fn, err := transform.New(conf)
		if err != nil {
			return nil, err
		}
		out = append(out, fn)
	}
	return out, nil
}

func runTransform(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("transform", flag.ExitOnError)
	jobPath := fs.String("job", "", "path to transform job YAML file")
	outPath := fs.String("out", "", "output path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobPath == "" {
		return fmt.Errorf("transform: -job is required")
	}

	raw, err := os.ReadFile(*jobPath)
	if err != nil {
		return fmt.Errorf("transform: reading job file: %w", err)
	}

	var job transformJobFile
	if err := yaml.Unmarshal(raw, &job); err != nil {
		return fmt.Errorf("transform: parsing job file: %w", err)
	}

	ensureIDs(job.Entities)

	emptyValue := transform.EmptyValueHandling(job.EmptyValue)
	if emptyValue == "" {
		emptyValue = transform.EmptyValueProcess
	}

	before, err := buildChain(job.GlobalBefore)
	if err != nil {
		return fmt.Errorf("transform: global_before: %w", err)
	}
	after, err := buildChain(job.GlobalAfter)
	if err != nil {
		return fmt.Errorf("transform: global_after: %w", err)
	}

	attrChains := make(map[string][]transform.StringTransformFn, len(job.AttributeTransforms))
	for attr, cfgs := range job.AttributeTransforms {
		chain, err := buildChain(cfgs)
		if err != nil {
			return fmt.Errorf("transform: attribute_transformers[%s]: %w", attr, err)
		}
		attrChains[attr] = chain
	}

	logger.Info("running transform job", zap.Int("entity_count", len(job.Entities)))

	out := make([]model.Entity, 0, len(job.Entities))
	for _, e := range job.Entities {
		transformed := make(map[string]string, len(e.Attributes))
		for attr, value := range e.Attributes {
			pipeline := transform.AttributePipeline{
				Before: before,
				Own:    attrChains[attr],
				After:  after,
			}
			result, err := pipeline.Apply(emptyValue, value)
			if err != nil {
				return fmt.Errorf("transform: entity %q attribute %q: %w", e.ID, attr, err)
			}
			transformed[attr] = result
		}
		out = append(out, model.Entity{ID: e.ID, Attributes: transformed})
	}

	return writeYAML(*outPath, out)
}
