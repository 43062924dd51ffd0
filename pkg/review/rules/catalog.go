// Package rules contains the built-in content review rules.
//
// Simple per-line checks are expressed as declarative pattern tables
// consumed by patternRule; trackers and conditional checks are
// individual Rule implementations.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

// linePattern describes one per-line regex check.
// Message and suggestion may contain a single %s that expands to the
// matched text.
type linePattern struct {
	re          *regexp.Regexp
	severity    config.Severity
	message     string
	suggestion  string
	oncePerLine bool
	flagMatch   bool
	skip        func(match string) bool
	skipLine    func(line string) bool
}

// patternRule runs a table of line patterns against every line of the
// document.
type patternRule struct {
	review.BaseRule
	category string
	patterns []linePattern
}

func newPatternRule(id, name, desc, category string, tags []string, patterns []linePattern) *patternRule {
	return &patternRule{
		BaseRule: review.NewBaseRule(id, name, desc, tags),
		category: category,
		patterns: patterns,
	}
}

// Apply checks every line against every pattern in the table.
func (r *patternRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	var issues []review.Issue

	for i, line := range ctx.Doc.Lines() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		lineNum := i + 1
		for _, p := range r.patterns {
			if p.skipLine != nil && p.skipLine(line) {
				continue
			}
			for _, match := range p.re.FindAllString(line, -1) {
				if p.skip != nil && p.skip(match) {
					continue
				}

				builder := review.NewIssue(r.ID(), r.category, lineNum, expand(p.message, match)).
					WithSeverity(p.severity).
					WithContext(line)
				if p.suggestion != "" {
					builder = builder.WithSuggestion(expand(p.suggestion, match))
				}
				if p.flagMatch {
					builder = builder.WithFlagged(match)
				}
				issues = append(issues, builder.Build())

				if p.oncePerLine {
					break
				}
			}
		}
	}

	return issues, nil
}

// expand substitutes the matched text into a message template.
func expand(format, match string) string {
	if strings.Contains(format, "%s") {
		return fmt.Sprintf(format, match)
	}
	return format
}
