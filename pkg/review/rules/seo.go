package rules

import (
	"fmt"
	"regexp"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

const categorySEO = "SEO"

// Meta description length bounds recommended for search snippets.
const (
	metaDescriptionMin = 120
	metaDescriptionMax = 160
)

// MetaDescriptionRule checks the presence and length of the meta
// description on HTML pages.
type MetaDescriptionRule struct {
	review.BaseRule
}

// NewMetaDescriptionRule creates the meta description rule.
func NewMetaDescriptionRule() *MetaDescriptionRule {
	return &MetaDescriptionRule{
		BaseRule: review.NewBaseRule(
			"WR060",
			"meta-description",
			"HTML pages should carry a meta description of 120-160 characters",
			[]string{"seo", "metadata"},
		),
	}
}

var (
	metaTagRe  = regexp.MustCompile(`(?i)<meta\b`)
	metaDescRe = regexp.MustCompile(`(?i)<meta[^>]*name\s*=\s*["']description["'][^>]*>`)
	contentRe  = regexp.MustCompile(`(?i)content\s*=\s*["']([^"']*)["']`)
)

// Apply only fires when the document has meta tags at all, so plain
// text and Markdown never get flagged for missing page metadata.
func (r *MetaDescriptionRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	content := ctx.Doc.Content

	if !metaTagRe.MatchString(content) {
		return nil, nil
	}

	loc := metaDescRe.FindStringIndex(content)
	if loc == nil {
		return []review.Issue{
			review.NewIssue(r.ID(), categorySEO, 0,
				"Missing meta description").
				WithSeverity(config.SeverityWarning).
				WithSuggestion(fmt.Sprintf("Add a meta description of %d-%d characters",
					metaDescriptionMin, metaDescriptionMax)).
				Build(),
		}, nil
	}

	tag := content[loc[0]:loc[1]]
	line := ctx.Doc.LineAt(loc[0])

	groups := contentRe.FindStringSubmatch(tag)
	if groups == nil {
		return nil, nil
	}

	length := len(groups[1])
	switch {
	case length < metaDescriptionMin:
		return []review.Issue{
			review.NewIssue(r.ID(), categorySEO, line,
				fmt.Sprintf("Meta description is %d characters (recommended minimum %d)",
					length, metaDescriptionMin)).
				WithSeverity(config.SeveritySuggestion).
				WithSuggestion("Expand the description to improve search snippets").
				WithFlagged(groups[1]).
				Build(),
		}, nil
	case length > metaDescriptionMax:
		return []review.Issue{
			review.NewIssue(r.ID(), categorySEO, line,
				fmt.Sprintf("Meta description is %d characters (recommended maximum %d)",
					length, metaDescriptionMax)).
				WithSeverity(config.SeverityWarning).
				WithSuggestion("Search engines truncate long descriptions").
				WithFlagged(groups[1]).
				Build(),
		}, nil
	}

	return nil, nil
}

// TitlePresenceRule checks that the document has a page title.
type TitlePresenceRule struct {
	review.BaseRule
}

// NewTitlePresenceRule creates the title presence rule.
func NewTitlePresenceRule() *TitlePresenceRule {
	return &TitlePresenceRule{
		BaseRule: review.NewBaseRule(
			"WR061",
			"title-presence",
			"Every page needs a title element or a top-level heading",
			[]string{"seo", "structure"},
		),
	}
}

var (
	htmlTitleRe = regexp.MustCompile(`(?i)<title[^>]*>`)
	mdTitleRe   = regexp.MustCompile(`(?m)^#\s+\S`)
)

// Apply emits one document-level warning when no title is found.
func (r *TitlePresenceRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	content := ctx.Doc.Content
	if htmlTitleRe.MatchString(content) || mdTitleRe.MatchString(content) {
		return nil, nil
	}

	return []review.Issue{
		review.NewIssue(r.ID(), categorySEO, 0,
			"No page title found").
			WithSeverity(config.SeverityWarning).
			WithSuggestion("Add a <title> element or a top-level heading").
			Build(),
	}, nil
}
