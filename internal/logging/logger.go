package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration options.
type Config struct {
	// Format is "json" or "console".
	Format string
	// Level is "debug", "info", "warn", or "error".
	Level string
	// Output is where logs are written; defaults to os.Stdout.
	Output zapcore.WriteSyncer
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{Format: "json", Level: "info", Output: os.Stdout}
}

// New builds a zap.Logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "console":
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "timestamp"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, output, level)
	return zap.New(core), nil
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, err
	}
	return l, nil
}
