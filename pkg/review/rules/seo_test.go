package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmotools/billiejean/pkg/config"
)

func metaDescription(length int) string {
	return `<meta name="description" content="` + strings.Repeat("a", length) + `">`
}

func TestMetaDescriptionRule(t *testing.T) {
	t.Run("no meta tags means no check", func(t *testing.T) {
		issues := applyRule(t, NewMetaDescriptionRule(), "# Title\n\nPlain markdown.")
		assert.Empty(t, issues)
	})

	t.Run("meta tags without description flagged", func(t *testing.T) {
		issues := applyRule(t, NewMetaDescriptionRule(), `<meta charset="utf-8">`)
		require.Len(t, issues, 1)
		assert.Equal(t, config.SeverityWarning, issues[0].Severity)
		assert.Equal(t, "Missing meta description", issues[0].Message)
		assert.Equal(t, 0, issues[0].Line)
	})

	t.Run("well sized description passes", func(t *testing.T) {
		issues := applyRule(t, NewMetaDescriptionRule(), metaDescription(130))
		assert.Empty(t, issues)
	})

	t.Run("short description suggested longer", func(t *testing.T) {
		issues := applyRule(t, NewMetaDescriptionRule(), metaDescription(50))
		require.Len(t, issues, 1)
		assert.Equal(t, config.SeveritySuggestion, issues[0].Severity)
		assert.Equal(t, "Meta description is 50 characters (recommended minimum 120)", issues[0].Message)
	})

	t.Run("long description warned", func(t *testing.T) {
		issues := applyRule(t, NewMetaDescriptionRule(), metaDescription(200))
		require.Len(t, issues, 1)
		assert.Equal(t, config.SeverityWarning, issues[0].Severity)
		assert.Equal(t, "Meta description is 200 characters (recommended maximum 160)", issues[0].Message)
	})
}

func TestTitlePresenceRule(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIssues int
	}{
		{
			name:       "markdown h1 counts as title",
			input:      "# Annual report\n\nBody text.",
			wantIssues: 0,
		},
		{
			name:       "html title element counts",
			input:      "<title>Annual report</title><p>Body</p>",
			wantIssues: 0,
		},
		{
			name:       "plain text has no title",
			input:      "Just some text without any heading.",
			wantIssues: 1,
		},
		{
			name:       "secondary heading is not a title",
			input:      "## Section\n\nBody text.",
			wantIssues: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := applyRule(t, NewTitlePresenceRule(), tt.input)
			require.Len(t, issues, tt.wantIssues)

			if tt.wantIssues > 0 {
				assert.Equal(t, "No page title found", issues[0].Message)
				assert.Equal(t, 0, issues[0].Line)
			}
		})
	}
}
