package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

func issueWithSeverity(severity config.Severity) review.Issue {
	return review.NewIssue("WR001", "Style", 1, "message").
		WithSeverity(severity).
		Build()
}

func TestExitCodeFromResult(t *testing.T) {
	tests := []struct {
		name   string
		result *review.Result
		want   int
	}{
		{
			name:   "nil result",
			result: nil,
			want:   ExitSuccess,
		},
		{
			name:   "no issues",
			result: &review.Result{},
			want:   ExitSuccess,
		},
		{
			name: "critical blocks",
			result: &review.Result{Issues: []review.Issue{
				issueWithSeverity(config.SeverityCritical),
			}},
			want: ExitReviewIssues,
		},
		{
			name: "error blocks",
			result: &review.Result{Issues: []review.Issue{
				issueWithSeverity(config.SeverityError),
			}},
			want: ExitReviewIssues,
		},
		{
			name: "warnings pass",
			result: &review.Result{Issues: []review.Issue{
				issueWithSeverity(config.SeverityWarning),
				issueWithSeverity(config.SeveritySuggestion),
			}},
			want: ExitSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromResult(tt.result))
		})
	}
}

func TestExitCodeValues(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitReviewIssues)
	assert.Equal(t, 64, ExitInvalidUsage)
	assert.Equal(t, 65, ExitConfigError)
	assert.Equal(t, 70, ExitInternalError)
	assert.Equal(t, 74, ExitIOError)
}
