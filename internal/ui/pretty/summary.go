package pretty

import (
	"fmt"
	"strings"
)

const (
	wordInsertion = "insertion"
	wordDeletion  = "deletion"
)

// FormatStatLine formats comparison statistics as a single line.
// Example: "5 insertions(+), 3 deletions(-)".
func (s *Styles) FormatStatLine(additions, deletions int) string {
	if additions == 0 && deletions == 0 {
		return s.Success.Render("files are identical") + "\n"
	}

	var parts []string

	if additions > 0 {
		word := wordInsertion
		if additions > 1 {
			word += "s"
		}
		parts = append(parts, s.Added.Render(fmt.Sprintf("%d %s(+)", additions, word)))
	}

	if deletions > 0 {
		word := wordDeletion
		if deletions > 1 {
			word += "s"
		}
		parts = append(parts, s.Removed.Render(fmt.Sprintf("%d %s(-)", deletions, word)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatStyleSummary formats the result of a style check as a single line.
func (s *Styles) FormatStyleSummary(issues int) string {
	if issues == 0 {
		return s.Success.Render("No style issues found") + "\n"
	}

	word := "issue"
	if issues > 1 {
		word = "issues"
	}
	return s.Failure.Render(fmt.Sprintf("%d style %s", issues, word)) + "\n"
}
