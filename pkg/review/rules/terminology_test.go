package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmotools/billiejean/pkg/config"
)

func TestPreferredTerminologyRule(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantIssues     int
		wantSuggestion string
	}{
		{
			name:           "global warming flagged",
			input:          "Global warming is accelerating.",
			wantIssues:     1,
			wantSuggestion: "Use 'climate change' instead",
		},
		{
			name:           "rainfall flagged",
			input:          "Rainfall totals exceeded the average.",
			wantIssues:     1,
			wantSuggestion: "Use 'precipitation' instead",
		},
		{
			name:           "weather prediction flagged",
			input:          "Our weather prediction improved.",
			wantIssues:     1,
			wantSuggestion: "Use 'weather forecast' instead",
		},
		{
			name:       "preferred terms pass",
			input:      "Climate change affects precipitation patterns.",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := applyRule(t, NewPreferredTerminologyRule(), tt.input)
			require.Len(t, issues, tt.wantIssues)

			if tt.wantIssues > 0 {
				assert.Equal(t, config.SeveritySuggestion, issues[0].Severity)
				assert.Equal(t, tt.wantSuggestion, issues[0].Suggestion)
			}
		})
	}
}
