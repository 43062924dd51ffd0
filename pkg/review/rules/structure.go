package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/document"
	"github.com/wmotools/billiejean/pkg/review"
)

const categoryStructure = "Document Structure"

// heading is one Markdown or HTML heading in document order.
type heading struct {
	depth int
	text  string
	line  int
}

var (
	mdHeadingLineRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	htmlHeadingRe   = regexp.MustCompile(`(?i)<h([1-6])[^>]*>`)
	innerTagRe      = regexp.MustCompile(`<[^>]+>`)
)

// collectHeadings gathers headings in (line, in-line position) order.
// A Markdown heading owns its whole line; HTML headings may appear
// several to a line.
func collectHeadings(doc *document.Snapshot) []heading {
	var headings []heading

	for i, line := range doc.Lines() {
		lineNum := i + 1

		if groups := mdHeadingLineRe.FindStringSubmatch(line); groups != nil {
			headings = append(headings, heading{
				depth: len(groups[1]),
				text:  strings.TrimSpace(groups[2]),
				line:  lineNum,
			})
			continue
		}

		for _, loc := range htmlHeadingRe.FindAllStringSubmatchIndex(line, -1) {
			depth := int(line[loc[2]] - '0')
			rest := line[loc[1]:]

			// Go's regexp has no backreferences, so find the matching
			// close tag by hand. A heading left open on the line keeps
			// the remainder as its text.
			text := rest
			closeTag := fmt.Sprintf("</h%d>", depth)
			if end := strings.Index(strings.ToLower(rest), closeTag); end >= 0 {
				text = rest[:end]
			}

			headings = append(headings, heading{
				depth: depth,
				text:  strings.TrimSpace(innerTagRe.ReplaceAllString(text, "")),
				line:  lineNum,
			})
		}
	}

	return headings
}

// HeadingHierarchyRule checks that headings start at H1 and never skip
// a level.
type HeadingHierarchyRule struct {
	review.BaseRule
}

// NewHeadingHierarchyRule creates the heading hierarchy rule.
func NewHeadingHierarchyRule() *HeadingHierarchyRule {
	return &HeadingHierarchyRule{
		BaseRule: review.NewBaseRule(
			"WR081",
			"heading-hierarchy",
			"Headings must start at level 1 and increment one level at a time",
			[]string{"structure", "headings"},
		),
	}
}

// Apply flags a non-H1 first heading and every skipped level.
func (r *HeadingHierarchyRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	headings := collectHeadings(ctx.Doc)
	if len(headings) == 0 {
		return nil, nil
	}

	var issues []review.Issue

	if first := headings[0]; first.depth != 1 {
		issues = append(issues, review.NewIssue(r.ID(), categoryStructure, first.line,
			fmt.Sprintf("First heading is H%d", first.depth)).
			WithSeverity(config.SeverityError).
			WithSuggestion("Start the document with a single H1").
			WithFlagged(first.text).
			Build())
	}

	for i := 1; i < len(headings); i++ {
		prev, cur := headings[i-1], headings[i]
		if cur.depth > prev.depth+1 {
			issues = append(issues, review.NewIssue(r.ID(), categoryStructure, cur.line,
				fmt.Sprintf("Heading level jumps from H%d to H%d", prev.depth, cur.depth)).
				WithSeverity(config.SeverityError).
				WithSuggestion("Increment heading levels one at a time").
				WithFlagged(cur.text).
				Build())
		}
	}

	return issues, nil
}

// HeadingLengthRule flags headings that run too long.
type HeadingLengthRule struct {
	review.BaseRule
}

// NewHeadingLengthRule creates the heading length rule.
func NewHeadingLengthRule() *HeadingLengthRule {
	return &HeadingLengthRule{
		BaseRule: review.NewBaseRule(
			"WR082",
			"heading-length",
			"Headings should stay short enough to scan",
			[]string{"structure", "headings"},
		),
	}
}

const defaultMaxHeadingLength = 70

// Apply flags every heading over the configured length.
func (r *HeadingLengthRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	maxLength := ctx.OptionInt("max_length", defaultMaxHeadingLength)

	var issues []review.Issue
	for _, h := range collectHeadings(ctx.Doc) {
		if len(h.text) <= maxLength {
			continue
		}
		issues = append(issues, review.NewIssue(r.ID(), categoryStructure, h.line,
			fmt.Sprintf("Heading is %d characters (recommended maximum %d)", len(h.text), maxLength)).
			WithSeverity(config.SeveritySuggestion).
			WithSuggestion("Shorten the heading").
			WithFlagged(h.text).
			Build())
	}

	return issues, nil
}
