package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

const categoryArticle = "Article Style"

// articleProfiles restricts a rule to the news article profile.
var articleProfiles = []config.Profile{config.ProfileNewsArticle}

// TitleSentenceCaseRule checks that article titles use sentence case.
type TitleSentenceCaseRule struct {
	review.BaseRule
}

// NewTitleSentenceCaseRule creates the title sentence case rule.
func NewTitleSentenceCaseRule() *TitleSentenceCaseRule {
	return &TitleSentenceCaseRule{
		BaseRule: review.NewProfileRule(
			"WR090",
			"title-sentence-case",
			"Article titles use sentence case, not title case",
			[]string{"article", "style"},
			articleProfiles,
		),
	}
}

// Apply checks the first H1. More than half the words capitalized
// reads as title case.
func (r *TitleSentenceCaseRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	var title heading
	for _, h := range collectHeadings(ctx.Doc) {
		if h.depth == 1 {
			title = h
			break
		}
	}
	if title.text == "" {
		return nil, nil
	}

	words := strings.Fields(title.text)
	capitalized := 0
	for _, word := range words {
		if unicode.IsUpper([]rune(word)[0]) {
			capitalized++
		}
	}
	if float64(capitalized) <= float64(len(words))/2 {
		return nil, nil
	}

	return []review.Issue{
		review.NewIssue(r.ID(), categoryArticle, title.line,
			"Title appears to be in title case").
			WithSeverity(config.SeverityWarning).
			WithSuggestion("Use sentence case for article titles").
			WithFlagged(title.text).
			Build(),
	}, nil
}

// OpeningEngagementRule checks that the opening paragraph carries news
// context.
type OpeningEngagementRule struct {
	review.BaseRule
}

// NewOpeningEngagementRule creates the opening engagement rule.
func NewOpeningEngagementRule() *OpeningEngagementRule {
	return &OpeningEngagementRule{
		BaseRule: review.NewProfileRule(
			"WR091",
			"opening-engagement",
			"Article openings should state what happened and when",
			[]string{"article", "style"},
			articleProfiles,
		),
	}
}

const (
	openingScanLines       = 20
	openingMinWords        = 10
	defaultMaxArticleWords = 800
)

var (
	whatVerbRe   = regexp.MustCompile(`(?i)\b(?:announce|reveal|show|report|find)`)
	whenMarkerRe = regexp.MustCompile(`(?i)\b\d{4}\b|today|yesterday|this week`)
)

// Apply inspects the first substantial paragraph within the opening
// lines. Headings and markup-only lines do not count.
func (r *OpeningEngagementRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	lines := ctx.Doc.Lines()
	if len(lines) > openingScanLines {
		lines = lines[:openingScanLines]
	}

	var opening string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "<") {
			continue
		}
		if len(strings.Fields(trimmed)) > openingMinWords {
			opening = trimmed
			break
		}
	}
	if opening == "" {
		return nil, nil
	}

	if whatVerbRe.MatchString(opening) || whenMarkerRe.MatchString(opening) {
		return nil, nil
	}

	return []review.Issue{
		review.NewIssue(r.ID(), categoryArticle, 0,
			"Opening paragraph lacks news context").
			WithSeverity(config.SeveritySuggestion).
			WithSuggestion("State what happened and when in the opening paragraph").
			WithContext(opening).
			Build(),
	}, nil
}

// ArticleLengthRule flags articles over the recommended word count.
type ArticleLengthRule struct {
	review.BaseRule
}

// NewArticleLengthRule creates the article length rule.
func NewArticleLengthRule() *ArticleLengthRule {
	return &ArticleLengthRule{
		BaseRule: review.NewProfileRule(
			"WR092",
			"article-length",
			"News articles should stay concise",
			[]string{"article", "readability"},
			articleProfiles,
		),
	}
}

// Apply emits one document-level suggestion for long articles.
func (r *ArticleLengthRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	maxWords := ctx.OptionInt("max_words", defaultMaxArticleWords)

	count := len(strings.Fields(ctx.Doc.Content))
	if count <= maxWords {
		return nil, nil
	}

	return []review.Issue{
		review.NewIssue(r.ID(), categoryArticle, 0,
			fmt.Sprintf("Article is %d words (recommended maximum %d)", count, maxWords)).
			WithSeverity(config.SeveritySuggestion).
			WithSuggestion("Consider splitting long articles or trimming background detail").
			Build(),
	}, nil
}
