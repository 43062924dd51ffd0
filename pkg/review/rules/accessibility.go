package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

const categoryAccessibility = "Accessibility"

// ImageAltTextRule checks that images carry descriptive alt text.
type ImageAltTextRule struct {
	review.BaseRule
}

// NewImageAltTextRule creates the image alt text rule.
func NewImageAltTextRule() *ImageAltTextRule {
	return &ImageAltTextRule{
		BaseRule: review.NewBaseRule(
			"WR010",
			"image-alt-text",
			"Images must have descriptive alt text",
			[]string{"accessibility", "images"},
		),
	}
}

var (
	imgTagRe      = regexp.MustCompile(`(?i)<img[^>]*>`)
	altAttrRe     = regexp.MustCompile(`(?i)\balt\s*=`)
	emptyAltRe    = regexp.MustCompile(`(?i)\balt\s*=\s*(?:""|'')`)
	mdEmptyAltRe  = regexp.MustCompile(`!\[\s*\]\([^)]*\)`)
	mdImageWithRe = regexp.MustCompile(`!\[[^\]]+\]\([^)]*\)`)
)

// Apply flags missing alt as critical and empty alt as a warning.
func (r *ImageAltTextRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	var issues []review.Issue

	for i, line := range ctx.Doc.Lines() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		lineNum := i + 1
		for _, tag := range imgTagRe.FindAllString(line, -1) {
			switch {
			case !altAttrRe.MatchString(tag):
				issues = append(issues, review.NewIssue(r.ID(), categoryAccessibility, lineNum,
					"Image missing alt text").
					WithSeverity(config.SeverityCritical).
					WithSuggestion("Add descriptive alt text so screen readers can describe the image").
					WithFlagged(tag).
					Build())
			case emptyAltRe.MatchString(tag):
				issues = append(issues, review.NewIssue(r.ID(), categoryAccessibility, lineNum,
					"Image has empty alt text").
					WithSeverity(config.SeverityWarning).
					WithSuggestion("Empty alt text is only appropriate for decorative images").
					WithFlagged(tag).
					Build())
			}
		}

		// Markdown image with an empty description. Guard against the
		// non-empty form matching the same span.
		for _, img := range mdEmptyAltRe.FindAllString(line, -1) {
			if mdImageWithRe.MatchString(img) {
				continue
			}
			issues = append(issues, review.NewIssue(r.ID(), categoryAccessibility, lineNum,
				"Image has empty alt text").
				WithSeverity(config.SeverityWarning).
				WithSuggestion("Describe the image in the square brackets").
				WithFlagged(img).
				Build())
		}
	}

	return issues, nil
}

// GenericLinkTextRule flags link text that says nothing about the
// destination.
type GenericLinkTextRule struct {
	review.BaseRule
}

// NewGenericLinkTextRule creates the generic link text rule.
func NewGenericLinkTextRule() *GenericLinkTextRule {
	return &GenericLinkTextRule{
		BaseRule: review.NewBaseRule(
			"WR011",
			"generic-link-text",
			"Link text should describe the destination",
			[]string{"accessibility", "links"},
		),
	}
}

// linkTextRe matches HTML anchors (group 1) and Markdown links
// (group 2) so both syntaxes are checked in offset order.
var linkTextRe = regexp.MustCompile(`(?i)<a[^>]*>([^<]+)</a>|\[([^\]]+)\]\([^)]+\)`)

var genericLinkPhrases = map[string]bool{
	"click here": true,
	"read more":  true,
	"here":       true,
	"this link":  true,
	"link":       true,
}

// Apply flags every link whose visible text is a generic phrase.
func (r *GenericLinkTextRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	var issues []review.Issue

	for i, line := range ctx.Doc.Lines() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		for _, groups := range linkTextRe.FindAllStringSubmatch(line, -1) {
			text := groups[1]
			if text == "" {
				text = groups[2]
			}
			text = strings.TrimSpace(text)
			if !genericLinkPhrases[strings.ToLower(text)] {
				continue
			}

			issues = append(issues, review.NewIssue(r.ID(), categoryAccessibility, i+1,
				fmt.Sprintf("Generic link text %q", text)).
				WithSeverity(config.SeverityError).
				WithSuggestion("Use link text that describes the destination").
				WithContext(line).
				WithFlagged(text).
				Build())
		}
	}

	return issues, nil
}
