package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

const categoryStyle = "Style"

// canonicalOrgName is the only accepted casing of the organization name.
const canonicalOrgName = "World Meteorological Organization"

// NewOrgCapitalizationRule creates the WMO capitalization rule.
func NewOrgCapitalizationRule() *patternRule {
	return newPatternRule(
		"WR001",
		"wmo-capitalization",
		"Organization name must use canonical capitalization",
		categoryStyle,
		[]string{"style", "terminology"},
		[]linePattern{
			{
				re:         regexp.MustCompile(`(?i)world meteorological organization`),
				severity:   config.SeverityError,
				message:    "Incorrect capitalization of the organization name",
				suggestion: "Write '" + canonicalOrgName + "'",
				flagMatch:  true,
				// A line that contains the canonical casing anywhere is
				// accepted as a whole, matching the documented check.
				skipLine: func(line string) bool {
					return strings.Contains(line, canonicalOrgName)
				},
			},
		},
	)
}

// SentenceLengthRule flags sentences exceeding a word limit.
type SentenceLengthRule struct {
	review.BaseRule
}

// NewSentenceLengthRule creates the sentence length rule.
func NewSentenceLengthRule() *SentenceLengthRule {
	return &SentenceLengthRule{
		BaseRule: review.NewBaseRule(
			"WR002",
			"sentence-length",
			"Sentences should stay under a word limit for readability",
			[]string{"style", "readability"},
		),
	}
}

const defaultMaxSentenceWords = 30

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Apply splits each line into sentences and flags the long ones.
func (r *SentenceLengthRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	maxWords := ctx.OptionInt("max_words", defaultMaxSentenceWords)

	var issues []review.Issue
	for i, line := range ctx.Doc.Lines() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		for _, sentence := range sentenceSplitRe.Split(line, -1) {
			words := len(strings.Fields(sentence))
			if words <= maxWords {
				continue
			}
			issues = append(issues, review.NewIssue(r.ID(), categoryStyle, i+1,
				fmt.Sprintf("Sentence has %d words (maximum %d)", words, maxWords)).
				WithSeverity(config.SeverityWarning).
				WithSuggestion("Break long sentences into shorter ones").
				WithContext(sentence).
				Build())
		}
	}

	return issues, nil
}

// PassiveVoiceRule suggests active voice where passive markers appear.
type PassiveVoiceRule struct {
	review.BaseRule
}

// NewPassiveVoiceRule creates the passive voice rule.
func NewPassiveVoiceRule() *PassiveVoiceRule {
	return &PassiveVoiceRule{
		BaseRule: review.NewBaseRule(
			"WR003",
			"passive-voice",
			"Passive voice constructions weaken web copy",
			[]string{"style", "voice"},
		),
	}
}

var (
	passiveMarkerRe = regexp.MustCompile(`(?i)\b(?:is being|was being|has been|have been|had been)\b`)
	willBeRe        = regexp.MustCompile(`(?i)\bwill be\b`)
)

// Apply emits at most one suggestion per line. The "will be" marker is
// noisy for forecast copy and sits behind an option, off by default.
func (r *PassiveVoiceRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	includeWillBe := ctx.OptionBool("will_be", false)

	var issues []review.Issue
	for i, line := range ctx.Doc.Lines() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		match := passiveMarkerRe.FindString(line)
		if match == "" && includeWillBe {
			match = willBeRe.FindString(line)
		}
		if match == "" {
			continue
		}

		issues = append(issues, review.NewIssue(r.ID(), categoryStyle, i+1,
			"Possible passive voice").
			WithSeverity(config.SeveritySuggestion).
			WithSuggestion("Prefer active voice for direct, engaging copy").
			WithContext(line).
			WithFlagged(match).
			Build())
	}

	return issues, nil
}

// NewInformalAbbreviationsRule creates the informal abbreviations rule.
func NewInformalAbbreviationsRule() *patternRule {
	informal := []struct {
		term string
		full string
	}{
		{"temp", "temperature"},
		{"max", "maximum"},
		{"min", "minimum"},
		{"info", "information"},
	}

	patterns := make([]linePattern, 0, len(informal))
	for _, entry := range informal {
		patterns = append(patterns, linePattern{
			re:         regexp.MustCompile(`(?i)\b` + entry.term + `\b`),
			severity:   config.SeverityError,
			message:    "Informal abbreviation '%s'",
			suggestion: "Use '" + entry.full + "' instead",
			flagMatch:  true,
		})
	}

	return newPatternRule(
		"WR004",
		"informal-abbreviations",
		"Informal abbreviations are not acceptable in published content",
		categoryStyle,
		[]string{"style", "terminology"},
		patterns,
	)
}

// NewItalicsEmphasisRule creates the italics emphasis rule.
func NewItalicsEmphasisRule() *patternRule {
	return newPatternRule(
		"WR005",
		"italics-emphasis",
		"Italics for emphasis are discouraged in web copy",
		categoryStyle,
		[]string{"style", "formatting"},
		[]linePattern{
			{
				re:          regexp.MustCompile(`\*[^*\n]+\*|_[^_\n]+_|(?i:</?em>|</?i>)`),
				severity:    config.SeverityWarning,
				message:     "Italics used for emphasis",
				suggestion:  "Use plain text or restructure the sentence for emphasis",
				oncePerLine: true,
				flagMatch:   true,
			},
		},
	)
}
