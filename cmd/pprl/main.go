package main

import (
	"fmt"
	"os"

	"github.com/datatrails/go-pprl/internal/logging"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	envCfg, err := loadEnvConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pprl: loading environment config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Config{Format: envCfg.LogFormat, Level: envCfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pprl: building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cmd, args := os.Args[1], os.Args[2:]

	var runErr error
	switch cmd {
	case "transform":
		runErr = runTransform(logger, args)
	case "mask":
		runErr = runMask(logger, args)
	case "match":
		runErr = runMatch(logger, args)
	case "estimate":
		runErr = runEstimate(logger, args)
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "pprl: unknown subcommand %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		logger.Error("subcommand failed", zap.String("subcommand", cmd), zap.Error(runErr))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pprl <transform|mask|match|estimate> [flags]")
}
