package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmotools/billiejean/pkg/config"
)

func TestScoreAlignment(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantCoverage float64
		wantCovered  []string
	}{
		{
			name:         "empty content covers nothing",
			content:      "",
			wantCoverage: 0,
			wantCovered:  nil,
		},
		{
			name:         "single pillar",
			content:      "The flood affected the region.",
			wantCoverage: 20,
			wantCovered:  []string{"Hydrometeorological services"},
		},
		{
			name:         "keywords are case-insensitive",
			content:      "SATELLITE imagery improves forecasts.",
			wantCoverage: 40,
			wantCovered:  []string{"Earth system monitoring", "Early warnings"},
		},
		{
			name: "all five pillars",
			content: "Satellite observation feeds early warning systems. " +
				"Climate change adaptation requires training and capacity. " +
				"Flood and drought monitoring protects water resources.",
			wantCoverage: 100,
			wantCovered: []string{
				"Earth system monitoring",
				"Early warnings",
				"Climate action",
				"Capacity development",
				"Hydrometeorological services",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alignment := ScoreAlignment(tt.content)
			assert.InDelta(t, tt.wantCoverage, alignment.Coverage(), 0.01)
			assert.Equal(t, tt.wantCovered, alignment.CoveredAreas())
		})
	}
}

func TestAlignmentMissingAreas(t *testing.T) {
	alignment := ScoreAlignment("The flood affected the region.")

	assert.Equal(t, []string{
		"Earth system monitoring",
		"Early warnings",
		"Climate action",
		"Capacity development",
	}, alignment.MissingAreas())
}

func TestAlignmentIssues(t *testing.T) {
	t.Run("zero coverage is flagged critical", func(t *testing.T) {
		issues := alignmentIssues(Alignment{})

		require.Len(t, issues, 1)
		assert.Equal(t, AlignmentRuleID, issues[0].RuleID)
		assert.Equal(t, config.SeverityCritical, issues[0].Severity)
		assert.Equal(t, 0, issues[0].Line)
		assert.Contains(t, issues[0].Message, "minimal alignment")
	})

	t.Run("one covered pillar passes the threshold", func(t *testing.T) {
		issues := alignmentIssues(Alignment{ClimateAction: true})
		assert.Empty(t, issues)
	})
}
