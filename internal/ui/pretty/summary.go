package pretty

import (
	"fmt"
	"strings"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

// FormatAlignment formats the strategic alignment section.
func (s *Styles) FormatAlignment(a review.Alignment) string {
	var builder strings.Builder

	builder.WriteString(s.SectionTitle.Render("Strategic alignment") + " " +
		s.SummaryValue.Render(fmt.Sprintf("%.0f%% coverage", a.Coverage())) + "\n")

	for _, area := range a.CoveredAreas() {
		builder.WriteString("  " + s.Covered.Render("+ "+area) + "\n")
	}
	for _, area := range a.MissingAreas() {
		builder.WriteString("  " + s.Missing.Render("- "+area) + "\n")
	}

	return builder.String()
}

// FormatSummaryOneLine formats issue counts as a single line.
// Example: "7 issues (1 critical, 2 errors, 3 warnings, 1 suggestion)".
func (s *Styles) FormatSummaryOneLine(issues []review.Issue) string {
	if len(issues) == 0 {
		return s.Success.Render("No issues found") + "\n"
	}

	counts := review.CountBySeverity(issues)

	issueWord := "issues"
	if len(issues) == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	for _, entry := range []struct {
		severity config.Severity
		style    func(...string) string
		singular string
		plural   string
	}{
		{config.SeverityCritical, s.Critical.Render, "critical", "critical"},
		{config.SeverityError, s.Error.Render, "error", "errors"},
		{config.SeverityWarning, s.Warning.Render, "warning", "warnings"},
		{config.SeverityInfo, s.Info.Render, "info", "info"},
		{config.SeveritySuggestion, s.Suggestion.Render, "suggestion", "suggestions"},
	} {
		n := counts[entry.severity]
		if n == 0 {
			continue
		}
		word := entry.plural
		if n == 1 {
			word = entry.singular
		}
		severityParts = append(severityParts, entry.style(fmt.Sprintf("%d %s", n, word)))
	}

	return fmt.Sprintf("%d %s (%s)\n", len(issues), issueWord, strings.Join(severityParts, ", "))
}
