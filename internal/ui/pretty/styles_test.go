package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

func TestFormatSeverity(t *testing.T) {
	styles := NewStyles(false)

	tests := []struct {
		severity config.Severity
		want     string
	}{
		{config.SeverityCritical, "critical"},
		{config.SeverityError, "error"},
		{config.SeverityWarning, "warning"},
		{config.SeverityInfo, "info"},
		{config.SeveritySuggestion, "suggestion"},
		{config.Severity("custom"), "custom"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSeverity(tt.severity))
		})
	}
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	// A plain buffer is not a TTY.
	assert.False(t, IsColorEnabled("auto", &buf))
}

func TestFormatIssue(t *testing.T) {
	styles := NewStyles(false)
	issue := review.Issue{
		RuleID:      "WR001",
		Category:    "Style",
		Severity:    config.SeverityError,
		Message:     "Incorrect capitalization",
		Suggestion:  "Fix the casing",
		Line:        4,
		Context:     "some context",
		FlaggedText: "flagged text",
	}

	t.Run("with context", func(t *testing.T) {
		out := styles.FormatIssue(1, issue, true)

		assert.Contains(t, out, "1. line 4")
		assert.Contains(t, out, "error")
		assert.Contains(t, out, "Incorrect capitalization")
		assert.Contains(t, out, "(WR001)")
		assert.Contains(t, out, "Flagged: flagged text")
		assert.Contains(t, out, "Suggestion: Fix the casing")
		assert.Contains(t, out, "Context: some context")
	})

	t.Run("context hidden", func(t *testing.T) {
		out := styles.FormatIssue(1, issue, false)
		assert.NotContains(t, out, "Context:")
	})

	t.Run("document level issue", func(t *testing.T) {
		docIssue := issue
		docIssue.Line = 0
		out := styles.FormatIssue(2, docIssue, false)
		assert.Contains(t, out, "2. document")
	})
}

func TestFormatCategoryHeader(t *testing.T) {
	styles := NewStyles(false)

	assert.Equal(t, "Style (3 issues)", styles.FormatCategoryHeader("Style", 3))
	assert.Equal(t, "Style", styles.FormatCategoryHeader("Style", 0))
}

func TestFormatAlignment(t *testing.T) {
	styles := NewStyles(false)
	alignment := review.Alignment{EarlyWarnings: true, ClimateAction: true}

	out := styles.FormatAlignment(alignment)

	assert.Contains(t, out, "Strategic alignment 40% coverage")
	assert.Contains(t, out, "+ Early warnings")
	assert.Contains(t, out, "+ Climate action")
	assert.Contains(t, out, "- Earth system monitoring")
	assert.Contains(t, out, "- Capacity development")
	assert.Contains(t, out, "- Hydrometeorological services")
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := NewStyles(false)

	t.Run("no issues", func(t *testing.T) {
		assert.Equal(t, "No issues found\n", styles.FormatSummaryOneLine(nil))
	})

	t.Run("mixed severities", func(t *testing.T) {
		issues := []review.Issue{
			{Severity: config.SeverityCritical},
			{Severity: config.SeverityError},
			{Severity: config.SeverityError},
			{Severity: config.SeveritySuggestion},
		}

		out := styles.FormatSummaryOneLine(issues)
		assert.Equal(t, "4 issues (1 critical, 2 errors, 1 suggestion)\n", out)
	})

	t.Run("single issue", func(t *testing.T) {
		issues := []review.Issue{{Severity: config.SeverityWarning}}
		assert.Equal(t, "1 issue (1 warning)\n", styles.FormatSummaryOneLine(issues))
	})
}
