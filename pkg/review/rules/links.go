package rules

import (
	"regexp"
	"strings"

	"github.com/wmotools/billiejean/pkg/config"
)

const categoryLinks = "Links"

// NewEmptyLinksRule creates the empty links rule, covering HTML
// anchors and Markdown links.
func NewEmptyLinksRule() *patternRule {
	return newPatternRule(
		"WR050",
		"empty-links",
		"Links must point at a real destination",
		categoryLinks,
		[]string{"links"},
		[]linePattern{
			{
				re:         regexp.MustCompile(`(?i)<a[^>]*href\s*=\s*["']#?["']`),
				severity:   config.SeverityError,
				message:    "Link has no destination",
				suggestion: "Provide a valid URL or remove the link",
				flagMatch:  true,
			},
			{
				re:         regexp.MustCompile(`\[[^\]]*\]\(\s*#?\s*\)`),
				severity:   config.SeverityError,
				message:    "Link has no destination",
				suggestion: "Provide a valid URL or remove the link",
				flagMatch:  true,
			},
		},
	)
}

// NewInsecureLinksRule creates the insecure links rule. Local
// development URLs are exempt.
func NewInsecureLinksRule() *patternRule {
	return newPatternRule(
		"WR051",
		"insecure-links",
		"External links should use HTTPS",
		categoryLinks,
		[]string{"links", "security"},
		[]linePattern{
			{
				re:         regexp.MustCompile(`http://[^\s"'<>)\]]+`),
				severity:   config.SeverityWarning,
				message:    "Insecure HTTP link",
				suggestion: "Use HTTPS",
				flagMatch:  true,
				skip: func(match string) bool {
					return strings.Contains(match, "localhost")
				},
			},
		},
	)
}
