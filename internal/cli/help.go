package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/klondiff/klondiff/internal/ui/pretty"
)

// helpStyles holds the Lipgloss styles used in --help output. The
// palette echoes the diff renderer: hunk-header cyan for the command
// line, added-line green for subcommands.
type helpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Dim         lipgloss.Style
}

func newHelpStyles(colorEnabled bool) *helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &helpStyles{
			Command:     plain,
			Heading:     plain,
			Subcommand:  plain,
			Flag:        plain,
			Description: plain,
			Example:     plain,
			Dim:         plain,
		}
	}
	return &helpStyles{
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Description: lipgloss.NewStyle(),
		Example:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled usage and help text for the klondiff
// command tree. The tree is flat (a runnable root plus init and
// version), so the templates cover exactly that shape: no aliases, no
// nested command groups, no help topics.
type HelpFormatter struct {
	styles *helpStyles
}

// NewHelpFormatter creates a help formatter. Color is resolved from the
// mode and the writer the same way diff output resolves it, so help and
// diff agree on when to style.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"styleCommand":     h.styles.Command.Render,
		"styleHeading":     h.styles.Heading.Render,
		"styleSubcommand":  h.styles.Subcommand.Render,
		"styleDescription": h.styles.Description.Render,
		"styleExample":     h.styles.Example.Render,
		"styleFlagsUsage":  h.styleFlagsUsage,
		"rpad":             rpad,
		"trimTrailing":     trimTrailing,
	}
}

func (h *HelpFormatter) usageTemplate() string {
	return `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ styleDescription .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlagsUsage .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlagsUsage .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`
}

func (h *HelpFormatter) helpTemplate() string {
	return `{{if or .Runnable .HasSubCommands}}{{ styleCommand .CommandPath }}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailing }}

{{end}}` + h.usageTemplate()
}

// styleFlagsUsage restyles pflag's rendered flag block. Each line comes
// out as "  -u, --unified int   description"; the flag column keeps its
// color, type tokens are dimmed, and the description is left alone.
func (h *HelpFormatter) styleFlagsUsage(flags interface{}) string {
	usages, ok := flags.(interface{ FlagUsages() string })
	if !ok {
		return ""
	}

	raw := usages.FlagUsages()
	if raw == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) styleFlagLine(line string) string {
	if strings.TrimSpace(line) == "" {
		return line
	}

	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	flagCol, desc, ok := splitFlagColumns(trimmed)
	if !ok {
		return line
	}

	var out strings.Builder
	out.WriteString(indent)
	for i, token := range strings.Fields(flagCol) {
		if i > 0 {
			out.WriteString(" ")
		}
		switch {
		case strings.HasPrefix(token, "-"):
			// "-u," keeps its comma outside the styled region.
			name := strings.TrimSuffix(token, ",")
			out.WriteString(h.styles.Flag.Render(name))
			out.WriteString(token[len(name):])
		default:
			out.WriteString(h.styles.Dim.Render(token))
		}
	}
	out.WriteString("   ")
	out.WriteString(h.styles.Description.Render(desc))
	return out.String()
}

// splitFlagColumns splits one pflag usage line at the first run of two
// or more spaces, which is the gap pflag leaves between the flag column
// and the description column.
func splitFlagColumns(line string) (flagCol, desc string, ok bool) {
	gapStart := -1
	inGap := false
	for i, r := range line {
		switch {
		case r == ' ' && !inGap:
			inGap = true
			gapStart = i
		case r != ' ' && inGap:
			if i-gapStart >= 2 {
				return strings.TrimRight(line[:gapStart], " "), line[i:], true
			}
			inGap = false
		}
	}
	return "", "", false
}

// Apply installs the styled templates on the command and, through
// cobra's inheritance, on its subcommands.
func (h *HelpFormatter) Apply(cmd *cobra.Command) {
	funcs := h.templateFuncs()

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(funcs).Parse(h.usageTemplate())
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(funcs).Parse(h.helpTemplate())
		if err != nil {
			command.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// rpad pads a string to the given width for column alignment.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

// trimTrailing strips trailing whitespace from every line.
func trimTrailing(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
