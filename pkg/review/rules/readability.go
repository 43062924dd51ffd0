package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

const categoryReadability = "Readability"

// AverageSentenceLengthRule computes the document-wide average
// sentence length.
type AverageSentenceLengthRule struct {
	review.BaseRule
}

// NewAverageSentenceLengthRule creates the average sentence length rule.
func NewAverageSentenceLengthRule() *AverageSentenceLengthRule {
	return &AverageSentenceLengthRule{
		BaseRule: review.NewBaseRule(
			"WR070",
			"average-sentence-length",
			"Documents averaging long sentences are hard to scan",
			[]string{"readability"},
		),
	}
}

const maxAverageSentenceWords = 25

// Apply emits one document-level warning when the average exceeds the
// threshold.
func (r *AverageSentenceLengthRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	var total, count int
	for _, sentence := range sentenceSplitRe.Split(ctx.Doc.Content, -1) {
		words := len(strings.Fields(sentence))
		if words == 0 {
			continue
		}
		total += words
		count++
	}
	if count == 0 {
		return nil, nil
	}

	avg := float64(total) / float64(count)
	if avg <= maxAverageSentenceWords {
		return nil, nil
	}

	return []review.Issue{
		review.NewIssue(r.ID(), categoryReadability, 0,
			fmt.Sprintf("Average sentence length is %.1f words", avg)).
			WithSeverity(config.SeverityWarning).
			WithSuggestion(fmt.Sprintf("Aim for an average below %d words", maxAverageSentenceWords)).
			Build(),
	}, nil
}

// JargonRule flags technical terms used without a nearby explanation.
type JargonRule struct {
	review.BaseRule
}

// NewJargonRule creates the jargon rule.
func NewJargonRule() *JargonRule {
	return &JargonRule{
		BaseRule: review.NewBaseRule(
			"WR071",
			"jargon",
			"Technical meteorological terms need an explanation for general readers",
			[]string{"readability", "terminology"},
		),
	}
}

// jargonTerm pairs a technical term with the pattern that recognizes
// an explanation of it anywhere in the document.
type jargonTerm struct {
	useRe     *regexp.Regexp
	explainRe *regexp.Regexp
	term      string
}

var jargonTerms = buildJargonTerms([]string{
	"synoptic", "baroclinic", "geopotential", "meridional", "zonal",
	"advection", "adiabatic", "convection", "parameterization",
})

func buildJargonTerms(terms []string) []jargonTerm {
	built := make([]jargonTerm, 0, len(terms))
	for _, term := range terms {
		built = append(built, jargonTerm{
			term:      term,
			useRe:     regexp.MustCompile(`(?i)\b` + term + `\b`),
			explainRe: regexp.MustCompile(`(?i)` + term + `[^.!?]*?(?:is|means|refers to|defined as)`),
		})
	}
	return built
}

// Apply flags the first occurrence of each unexplained term.
func (r *JargonRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	content := ctx.Doc.Content

	var issues []review.Issue
	for _, jt := range jargonTerms {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		loc := jt.useRe.FindStringIndex(content)
		if loc == nil || jt.explainRe.MatchString(content) {
			continue
		}

		issues = append(issues, review.NewIssue(r.ID(), categoryReadability, ctx.Doc.LineAt(loc[0]),
			fmt.Sprintf("Technical term %q used without explanation", jt.term)).
			WithSeverity(config.SeverityWarning).
			WithSuggestion("Define technical terms on first use for a general audience").
			WithFlagged(content[loc[0]:loc[1]]).
			Build())
	}

	return issues, nil
}

// TargetAudienceRule checks whether highly technical content addresses
// a general audience.
type TargetAudienceRule struct {
	review.BaseRule
}

// NewTargetAudienceRule creates the target audience rule.
func NewTargetAudienceRule() *TargetAudienceRule {
	return &TargetAudienceRule{
		BaseRule: review.NewBaseRule(
			"WR072",
			"target-audience",
			"Technical density should match the intended audience",
			[]string{"readability", "audience"},
		),
	}
}

var (
	technicalWordRe    = regexp.MustCompile(`(?i)\b(?:parameter|algorithm|methodology|analysis|data|system)\b`)
	audienceIndicators = []string{"public", "everyone", "people", "communities", "citizens"}
)

// maxTechnicalDensity is the fraction of technical words above which
// content is considered specialist.
const maxTechnicalDensity = 0.05

// Apply emits one document-level warning for dense technical content
// that never addresses a general audience.
func (r *TargetAudienceRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	content := ctx.Doc.Content

	totalWords := len(strings.Fields(content))
	if totalWords == 0 {
		return nil, nil
	}

	technical := len(technicalWordRe.FindAllString(content, -1))
	if float64(technical)/float64(totalWords) <= maxTechnicalDensity {
		return nil, nil
	}

	lower := strings.ToLower(content)
	for _, indicator := range audienceIndicators {
		if strings.Contains(lower, indicator) {
			return nil, nil
		}
	}

	return []review.Issue{
		review.NewIssue(r.ID(), categoryReadability, 0,
			"Content appears highly technical without addressing a general audience").
			WithSeverity(config.SeverityWarning).
			WithSuggestion("Clarify the target audience or simplify the terminology").
			Build(),
	}, nil
}
