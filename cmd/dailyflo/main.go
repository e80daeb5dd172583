// Package main is the entry point for the dailyflo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/harveym4n4lili/dailyflo/internal/app"
	"github.com/harveym4n4lili/dailyflo/internal/cli"
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
	container, err := app.New(dataDir())
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// dataDir returns the data directory override, or "" for the default
// XDG location.
func dataDir() string {
	return os.Getenv("DAILYFLO_DATA_DIR")
}
