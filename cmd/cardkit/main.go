package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fadedpez/cardkit/internal/cli"
	"github.com/fadedpez/cardkit/internal/config"
	"github.com/fadedpez/cardkit/internal/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(cfg.Level())
	if cfg.Path != "" {
		logger.Debug("Loaded configuration from %s", cfg.Path)
	}

	if err := cli.NewRootCmd(cfg, logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
