package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klondiff/klondiff/internal/cli"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Name() != "klondiff" {
		t.Errorf("expected command name 'klondiff', got %q", cmd.Name())
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedSubcommands := []string{"init", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestDiffFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedFlags := []string{
		"algorithm",
		"unified",
		"format",
		"check-style",
		"extra-effort",
		"stat",
		"min-significant-length",
		"repeated-char-weight",
		"coalesce-threshold",
		"anchor-threshold",
		"no-whitespace-fold",
	}

	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on root command", flagName)
		}
	}

	if flag := cmd.Flags().ShorthandLookup("u"); flag == nil || flag.Name != "unified" {
		t.Error("expected -u to be shorthand for --unified")
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedFlags := []string{"debug", "config", "color"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestRootCommandArgCounts(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	// Two files, plus the seven and nine argument lists git passes to
	// an external diff driver.
	for _, count := range []int{2, 7, 9} {
		args := make([]string, count)
		if err := cmd.Args(cmd, args); err != nil {
			t.Errorf("expected %d arguments to be accepted, got error: %v", count, err)
		}
	}

	for _, count := range []int{0, 1, 3, 8} {
		args := make([]string, count)
		if err := cmd.Args(cmd, args); err == nil {
			t.Errorf("expected %d arguments to be rejected", count)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	// Version command uses charmbracelet/log which writes to stdout directly,
	// so we just verify it doesn't error.
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil means identical", err: nil, want: cli.ExitSuccess},
		{name: "differences found", err: cli.ErrDifferencesFound, want: cli.ExitDifferences},
		{name: "binary files differ", err: cli.ErrBinaryFilesDiffer, want: cli.ExitTrouble},
		{name: "any other error", err: errors.New("no such file"), want: cli.ExitTrouble},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
