// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// File-level output
	Meta       lipgloss.Style
	HunkHeader lipgloss.Style

	// Line bodies. Removed and Added mark the edited portions of a
	// line; ChangedSame renders the unedited portions of a line that
	// has edits elsewhere, so the eye can skip them.
	Removed     lipgloss.Style
	Added       lipgloss.Style
	ChangedSame lipgloss.Style
	Context     lipgloss.Style

	// Whitespace highlights
	IndentChanged lipgloss.Style
	TrailingSpace lipgloss.Style

	// Messages
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Meta:       lipgloss.NewStyle().Bold(true),
		HunkHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		Removed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Added:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		ChangedSame: lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // dark yellow
		Context:     lipgloss.NewStyle(),

		IndentChanged: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Underline(true),
		TrailingSpace: lipgloss.NewStyle().Background(lipgloss.Color("9")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Meta:          plain,
		HunkHeader:    plain,
		Removed:       plain,
		Added:         plain,
		ChangedSame:   plain,
		Context:       plain,
		IndentChanged: plain,
		TrailingSpace: plain,
		Success:       plain,
		Failure:       plain,
		Dim:           plain,
		Bold:          plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
