// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/wmotools/billiejean/pkg/config"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Critical   lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Info       lipgloss.Style
	Suggestion lipgloss.Style

	// Issue components
	Category lipgloss.Style
	RuleID   lipgloss.Style
	Message  lipgloss.Style
	Hint     lipgloss.Style
	Context  lipgloss.Style
	Flagged  lipgloss.Style

	// Report sections
	Banner       lipgloss.Style
	SectionTitle lipgloss.Style
	Covered      lipgloss.Style
	Missing      lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

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
		// Severity colors
		Critical:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),

		// Issue components
		Category: lipgloss.NewStyle().Bold(true),
		RuleID:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:  lipgloss.NewStyle(),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
		Context:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Flagged:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		// Report sections
		Banner:       lipgloss.NewStyle().Bold(true),
		SectionTitle: lipgloss.NewStyle().Bold(true),
		Covered:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Missing:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		// Misc
		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Critical:     plain,
		Error:        plain,
		Warning:      plain,
		Info:         plain,
		Suggestion:   plain,
		Category:     plain,
		RuleID:       plain,
		Message:      plain,
		Hint:         plain,
		Context:      plain,
		Flagged:      plain,
		Banner:       plain,
		SectionTitle: plain,
		Covered:      plain,
		Missing:      plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityCritical:
		return s.Critical.Render("critical")
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	case config.SeveritySuggestion:
		return s.Suggestion.Render("suggestion")
	default:
		return string(sev)
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
