// Package main is the entry point for the klondiff CLI.
package main

import (
	"errors"
	"os"

	"github.com/klondiff/klondiff/internal/cli"
	"github.com/klondiff/klondiff/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrDifferencesFound is just an exit code signal, and binary
		// mismatches already printed their one-line report.
		if !errors.Is(err, cli.ErrDifferencesFound) && !errors.Is(err, cli.ErrBinaryFilesDiffer) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeForError(err)
	}

	return cli.ExitSuccess
}
