package rules

import (
	"regexp"

	"github.com/wmotools/billiejean/pkg/config"
)

const categoryFormatting = "Formatting"

// NewDoubleSpacesRule creates the double spaces rule.
func NewDoubleSpacesRule() *patternRule {
	return newPatternRule(
		"WR040",
		"double-spaces",
		"Consecutive spaces render inconsistently on the web",
		categoryFormatting,
		[]string{"formatting", "whitespace"},
		[]linePattern{
			{
				re:          regexp.MustCompile(`  `),
				severity:    config.SeverityError,
				message:     "Multiple consecutive spaces",
				suggestion:  "Use a single space",
				oncePerLine: true,
			},
		},
	)
}

// NewPunctuationSpacingRule creates the punctuation spacing rule.
func NewPunctuationSpacingRule() *patternRule {
	return newPatternRule(
		"WR041",
		"punctuation-spacing",
		"Punctuation must be followed by a space",
		categoryFormatting,
		[]string{"formatting", "punctuation"},
		[]linePattern{
			{
				re:          regexp.MustCompile(`\w[.!?,;:][A-Z]`),
				severity:    config.SeverityError,
				message:     "Missing space after punctuation",
				suggestion:  "Add a space after the punctuation mark",
				oncePerLine: true,
				flagMatch:   true,
			},
		},
	)
}
