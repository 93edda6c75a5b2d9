package main

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds the process-wide settings read from the environment
// (optionally via a .env file), mirroring the envconfig/godotenv
// pattern this module's CLI shares with its sibling tools.
type EnvConfig struct {
	LogLevel  string `envconfig:"PPRL_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"PPRL_LOG_FORMAT" default:"console"`
}

func loadEnvConfig() (EnvConfig, error) {
	// Ignore a missing .env file; environment variables alone are a
	// valid configuration source.
	_ = godotenv.Load()

	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}
