// Package cli provides the Cobra command structure for klondiff.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klondiff/klondiff/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root klondiff command with all subcommands.
// The root command itself performs the comparison.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	flags := &diffFlags{}

	rootCmd := &cobra.Command{
		Use:   "klondiff [flags] fileA fileB",
		Short: "A human-optimized diff for text files",
		Long: `klondiff compares two text files and prints a colored, interleaved
diff optimized for human reading.

Lines are matched with a weighted patience algorithm that anchors on
distinctive lines and ignores coincidental matches on blanks, braces,
and separator banners. Edited lines are paired up and shown with the
changed characters highlighted, so a one-word edit in a long line reads
as a one-word edit.

klondiff also works as a git external diff driver:

  GIT_EXTERNAL_DIFF=klondiff git diff`,
		Example: `  klondiff old.txt new.txt
  klondiff --algorithm patience -u 5 old.go new.go
  klondiff --stat before.json after.json
  GIT_EXTERNAL_DIFF=klondiff git diff HEAD~1`,
		Args: diffArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addDiffFlags(rootCmd, flags)

	// Add subcommands.
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	NewHelpFormatter(color, os.Stdout).Apply(rootCmd)

	return rootCmd
}

// diffArgs accepts the plain two-file form and the argument lists git
// passes to an external diff driver (seven for an edit, nine for a
// rename).
func diffArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 2, 7, 9:
		return nil
	default:
		return fmt.Errorf("expected 2 files or a git external-diff argument list, got %d arguments", len(args))
	}
}
