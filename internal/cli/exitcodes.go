package cli

import (
	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

// Exit codes for billiejean.
const (
	// ExitSuccess indicates successful execution with no blocking issues.
	ExitSuccess = 0

	// ExitReviewIssues indicates the review found critical or error issues.
	ExitReviewIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code from the reported result.
// Only critical and error findings block; warnings and below pass.
func ExitCodeFromResult(result *review.Result) int {
	if result == nil {
		return ExitSuccess
	}

	counts := review.CountBySeverity(result.Issues)
	if counts[config.SeverityCritical] > 0 || counts[config.SeverityError] > 0 {
		return ExitReviewIssues
	}

	return ExitSuccess
}
