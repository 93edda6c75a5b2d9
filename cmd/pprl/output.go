package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func writeYAML(outPath string, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}
