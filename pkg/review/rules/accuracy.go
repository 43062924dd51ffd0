package rules

import (
	"fmt"
	"regexp"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

const categoryAccuracy = "Accuracy"

// TemperatureUnitsRule checks that temperature mentions carry a unit.
type TemperatureUnitsRule struct {
	review.BaseRule
}

// NewTemperatureUnitsRule creates the temperature units rule.
func NewTemperatureUnitsRule() *TemperatureUnitsRule {
	return &TemperatureUnitsRule{
		BaseRule: review.NewBaseRule(
			"WR030",
			"temperature-units",
			"Temperature values must state their unit",
			[]string{"accuracy", "units"},
		),
	}
}

var (
	degreesRe = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*degrees?\b`)
	unitRe    = regexp.MustCompile(`°\s*[CF]|(?i:\bcelsius\b|\bfahrenheit\b|\bkelvin\b)|\bK\b`)
)

// Apply flags at most one missing unit per line.
func (r *TemperatureUnitsRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	var issues []review.Issue

	for i, line := range ctx.Doc.Lines() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		match := degreesRe.FindString(line)
		if match == "" || unitRe.MatchString(line) {
			continue
		}

		issues = append(issues, review.NewIssue(r.ID(), categoryAccuracy, i+1,
			"Temperature without a unit").
			WithSeverity(config.SeverityError).
			WithSuggestion("Specify the scale, e.g. '°C'").
			WithContext(line).
			WithFlagged(match).
			Build())
	}

	return issues, nil
}

// NewDateFormatRule creates the ambiguous date format rule.
func NewDateFormatRule() *patternRule {
	return newPatternRule(
		"WR031",
		"date-format",
		"Slash or dash separated dates are ambiguous across regions",
		categoryAccuracy,
		[]string{"accuracy", "dates"},
		[]linePattern{
			{
				re:          regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
				severity:    config.SeveritySuggestion,
				message:     "Ambiguous date format '%s'",
				suggestion:  "Use ISO 8601 (YYYY-MM-DD) for international audiences",
				oncePerLine: true,
				flagMatch:   true,
			},
		},
	)
}
