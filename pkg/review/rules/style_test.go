package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmotools/billiejean/pkg/config"
)

func TestOrgCapitalizationRule(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIssues int
	}{
		{
			name:       "canonical casing passes",
			input:      "The World Meteorological Organization announced new standards.",
			wantIssues: 0,
		},
		{
			name:       "lowercase flagged",
			input:      "The world meteorological organization announced new standards.",
			wantIssues: 1,
		},
		{
			name:       "all caps flagged",
			input:      "WORLD METEOROLOGICAL ORGANIZATION",
			wantIssues: 1,
		},
		{
			name:       "no mention",
			input:      "The weather service announced new standards.",
			wantIssues: 0,
		},
		{
			name:       "canonical casing on the same line passes",
			input:      "The World Meteorological Organization, often typed world meteorological organization, met today.",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := applyRule(t, NewOrgCapitalizationRule(), tt.input)
			assert.Len(t, issues, tt.wantIssues)

			if tt.wantIssues > 0 {
				assert.Equal(t, config.SeverityError, issues[0].Severity)
				assert.Equal(t, "WR001", issues[0].RuleID)
			}
		})
	}
}

func TestSentenceLengthRule(t *testing.T) {
	longSentence := strings.TrimSpace(strings.Repeat("word ", 31)) + "."

	t.Run("long sentence flagged", func(t *testing.T) {
		issues := applyRule(t, NewSentenceLengthRule(), longSentence)
		require.Len(t, issues, 1)
		assert.Equal(t, "Sentence has 31 words (maximum 30)", issues[0].Message)
		assert.Equal(t, config.SeverityWarning, issues[0].Severity)
		assert.Equal(t, 1, issues[0].Line)
	})

	t.Run("sentence at the limit passes", func(t *testing.T) {
		input := strings.TrimSpace(strings.Repeat("word ", 30)) + "."
		issues := applyRule(t, NewSentenceLengthRule(), input)
		assert.Empty(t, issues)
	})

	t.Run("max_words option lowers the limit", func(t *testing.T) {
		input := "One two three four five six seven."
		cfg := &config.RuleConfig{Options: map[string]any{"max_words": 5}}
		issues := applyRuleWithConfig(t, NewSentenceLengthRule(), input, cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, "Sentence has 7 words (maximum 5)", issues[0].Message)
	})
}

func TestPassiveVoiceRule(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIssues int
	}{
		{
			name:       "passive marker flagged",
			input:      "The report has been published.",
			wantIssues: 1,
		},
		{
			name:       "one suggestion per line",
			input:      "The data is being processed and has been archived.",
			wantIssues: 1,
		},
		{
			name:       "active voice passes",
			input:      "We publish reports every year.",
			wantIssues: 0,
		},
		{
			name:       "will be not flagged by default",
			input:      "The ceremony will be held tomorrow.",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := applyRule(t, NewPassiveVoiceRule(), tt.input)
			assert.Len(t, issues, tt.wantIssues)

			if tt.wantIssues > 0 {
				assert.Equal(t, config.SeveritySuggestion, issues[0].Severity)
				assert.Equal(t, "Possible passive voice", issues[0].Message)
			}
		})
	}

	t.Run("will_be option enables the extra marker", func(t *testing.T) {
		cfg := &config.RuleConfig{Options: map[string]any{"will_be": true}}
		issues := applyRuleWithConfig(t, NewPassiveVoiceRule(),
			"The ceremony will be held tomorrow.", cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, "will be", issues[0].FlaggedText)
	})
}

func TestInformalAbbreviationsRule(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIssues int
	}{
		{
			name:       "temp flagged",
			input:      "Check the temp today.",
			wantIssues: 1,
		},
		{
			name:       "full words pass",
			input:      "The maximum temperature and minimum information.",
			wantIssues: 0,
		},
		{
			name:       "multiple informal terms",
			input:      "max temp info",
			wantIssues: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := applyRule(t, NewInformalAbbreviationsRule(), tt.input)
			assert.Len(t, issues, tt.wantIssues)

			if tt.wantIssues > 0 {
				assert.Equal(t, config.SeverityError, issues[0].Severity)
			}
		})
	}
}

func TestItalicsEmphasisRule(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIssues int
	}{
		{
			name:       "asterisk emphasis flagged",
			input:      "This is *important* news.",
			wantIssues: 1,
		},
		{
			name:       "em tag flagged once per line",
			input:      "An <em>urgent</em> and <em>critical</em> update.",
			wantIssues: 1,
		},
		{
			name:       "plain text passes",
			input:      "This is important news.",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := applyRule(t, NewItalicsEmphasisRule(), tt.input)
			assert.Len(t, issues, tt.wantIssues)
		})
	}
}
