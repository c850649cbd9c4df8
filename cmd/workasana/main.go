// Package main is the entry point for the workasana CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env can set WORKASANA_API_URL for development; a missing
	// file is fine.
	_ = godotenv.Load()

	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	if err := rootCmd.Execute(); err != nil {
		container.Logger.Error("command failed", "error", err)
		return err
	}
	return nil
}
