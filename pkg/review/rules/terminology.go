package rules

import (
	"regexp"

	"github.com/wmotools/billiejean/pkg/config"
)

const categoryTerminology = "Terminology"

// NewPreferredTerminologyRule creates the preferred terminology rule.
// Each entry maps a discouraged term to the house-style replacement.
func NewPreferredTerminologyRule() *patternRule {
	preferred := []struct {
		term        string
		replacement string
	}{
		{"global warming", "climate change"},
		{"weather prediction", "weather forecast"},
		{"rainfall", "precipitation"},
	}

	patterns := make([]linePattern, 0, len(preferred))
	for _, entry := range preferred {
		patterns = append(patterns, linePattern{
			re:         regexp.MustCompile(`(?i)\b` + entry.term + `\b`),
			severity:   config.SeveritySuggestion,
			message:    "Non-preferred term '%s'",
			suggestion: "Use '" + entry.replacement + "' instead",
			flagMatch:  true,
		})
	}

	return newPatternRule(
		"WR020",
		"preferred-terminology",
		"House style prefers specific meteorological terminology",
		categoryTerminology,
		[]string{"terminology"},
		patterns,
	)
}
