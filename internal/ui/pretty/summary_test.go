package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klondiff/klondiff/internal/ui/pretty"
)

func TestFormatStatLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name      string
		additions int
		deletions int
		expected  string
	}{
		{"identical", 0, 0, "files are identical\n"},
		{"additions only", 3, 0, "3 insertions(+)\n"},
		{"single addition", 1, 0, "1 insertion(+)\n"},
		{"deletions only", 0, 2, "2 deletions(-)\n"},
		{"single deletion", 0, 1, "1 deletion(-)\n"},
		{"both", 5, 3, "5 insertions(+), 3 deletions(-)\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := styles.FormatStatLine(testCase.additions, testCase.deletions)
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestFormatStyleSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "No style issues found\n", styles.FormatStyleSummary(0))
	assert.Equal(t, "1 style issue\n", styles.FormatStyleSummary(1))
	assert.Equal(t, "4 style issues\n", styles.FormatStyleSummary(4))
}
