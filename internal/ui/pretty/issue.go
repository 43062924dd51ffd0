package pretty

import (
	"fmt"
	"strings"

	"github.com/wmotools/billiejean/pkg/review"
)

// FormatIssue formats a single numbered issue for terminal output.
func (s *Styles) FormatIssue(num int, issue review.Issue, showContext bool) string {
	var builder strings.Builder

	// Location: line N, or document-level
	location := "document"
	if issue.Line > 0 {
		location = fmt.Sprintf("line %d", issue.Line)
	}

	severity := s.FormatSeverity(issue.Severity)
	ruleDisplay := s.RuleID.Render("(" + issue.RuleID + ")")

	// Main line: number. location  severity  message  (rule-id)
	builder.WriteString(fmt.Sprintf("  %d. %s  %s  %s  %s\n",
		num,
		s.Dim.Render(location),
		severity,
		s.Message.Render(issue.Message),
		ruleDisplay,
	))

	const indent = "     "

	if issue.FlaggedText != "" {
		builder.WriteString(indent + s.Dim.Render("Flagged:") + " " +
			s.Flagged.Render(issue.FlaggedText) + "\n")
	}

	if issue.Suggestion != "" {
		builder.WriteString(indent + s.Dim.Render("Suggestion:") + " " +
			s.Hint.Render(issue.Suggestion) + "\n")
	}

	if showContext && issue.Context != "" {
		builder.WriteString(indent + s.Dim.Render("Context:") + " " +
			s.Context.Render(issue.Context) + "\n")
	}

	return builder.String()
}

// FormatCategoryHeader formats a category header for grouped output.
func (s *Styles) FormatCategoryHeader(category string, issueCount int) string {
	header := s.Category.Render(category)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
