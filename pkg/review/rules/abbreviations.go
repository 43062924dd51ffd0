package rules

import (
	"fmt"
	"regexp"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

const categoryAbbreviations = "Abbreviations"

// orgAbbreviation is the organization's own abbreviation, assumed
// familiar to readers and never flagged.
const orgAbbreviation = "WMO"

// abbrevEntry pairs an abbreviation with its full form and the
// precompiled patterns that recognize an inline definition of it.
type abbrevEntry struct {
	abbr       string
	full       string
	abbrFirst  *regexp.Regexp // ABBR (... full form ...)
	fullFirst  *regexp.Regexp // full form (ABBR)
	usePattern *regexp.Regexp
}

// knownAbbreviations is the fixed table, in a deterministic order so
// repeated reviews produce identical output.
var knownAbbreviations = buildAbbreviations([]struct {
	abbr string
	full string
}{
	{"WMO", "World Meteorological Organization"},
	{"GCOS", "Global Climate Observing System"},
	{"WIGOS", "WMO Integrated Global Observing System"},
	{"WIS", "WMO Information System"},
	{"GAW", "Global Atmosphere Watch"},
	{"GDPFS", "Global Data-Processing and Forecasting System"},
	{"IPCC", "Intergovernmental Panel on Climate Change"},
	{"UNFCCC", "United Nations Framework Convention on Climate Change"},
	{"GHG", "Greenhouse Gas"},
	{"NMHS", "National Meteorological and Hydrological Services"},
	{"AMDAR", "Aircraft Meteorological Data Relay"},
	{"GTS", "Global Telecommunication System"},
})

func buildAbbreviations(entries []struct {
	abbr string
	full string
},
) []abbrevEntry {
	built := make([]abbrevEntry, 0, len(entries))
	for _, e := range entries {
		built = append(built, abbrevEntry{
			abbr:       e.abbr,
			full:       e.full,
			abbrFirst:  regexp.MustCompile(e.abbr + `\s*\((?i:[^)]*` + regexp.QuoteMeta(e.full) + `[^)]*)\)`),
			fullFirst:  regexp.MustCompile(`(?i)` + regexp.QuoteMeta(e.full) + `\s*\(\s*` + e.abbr + `\s*\)`),
			usePattern: regexp.MustCompile(`\b` + e.abbr + `\b`),
		})
	}
	return built
}

// AbbreviationFirstUseRule warns once per abbreviation used before it
// is defined.
type AbbreviationFirstUseRule struct {
	review.BaseRule
}

// NewAbbreviationFirstUseRule creates the abbreviation first use rule.
func NewAbbreviationFirstUseRule() *AbbreviationFirstUseRule {
	return &AbbreviationFirstUseRule{
		BaseRule: review.NewBaseRule(
			"WR080",
			"abbreviation-first-use",
			"Abbreviations must be defined at their first use",
			[]string{"abbreviations", "terminology"},
		),
	}
}

// Apply walks lines in document order and tracks which abbreviations
// have been handled. An undefined first use warns once and still marks
// the abbreviation as seen, so a document never collects repeat
// warnings for the same abbreviation.
func (r *AbbreviationFirstUseRule) Apply(ctx *review.RuleContext) ([]review.Issue, error) {
	seen := make(map[string]bool, len(knownAbbreviations))

	var issues []review.Issue
	for i, line := range ctx.Doc.Lines() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		for _, entry := range knownAbbreviations {
			if seen[entry.abbr] || !entry.usePattern.MatchString(line) {
				continue
			}
			seen[entry.abbr] = true

			if entry.abbr == orgAbbreviation {
				continue
			}
			if entry.abbrFirst.MatchString(line) || entry.fullFirst.MatchString(line) {
				continue
			}

			issues = append(issues, review.NewIssue(r.ID(), categoryAbbreviations, i+1,
				fmt.Sprintf("Abbreviation %q used without definition", entry.abbr)).
				WithSeverity(config.SeverityWarning).
				WithSuggestion(fmt.Sprintf("Define on first use: %q", entry.full+" ("+entry.abbr+")")).
				WithContext(line).
				WithFlagged(entry.abbr).
				Build())
		}
	}

	return issues, nil
}
