package reporter

import (
	"bufio"
	"context"
	"fmt"
	"sort"

	"github.com/wmotools/billiejean/internal/ui/pretty"
	"github.com/wmotools/billiejean/pkg/review"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *review.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		fmt.Fprintln(r.bw, r.styles.Success.Render("Nothing to review."))
		return 0, nil
	}

	r.writeBanner(result)
	fmt.Fprint(r.bw, r.styles.FormatAlignment(result.Alignment))
	fmt.Fprintln(r.bw)

	if len(result.Issues) == 0 {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(nil))
		return 0, nil
	}

	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Issues))
	fmt.Fprintln(r.bw)

	r.writeGrouped(result.Issues)
	r.writeRuleErrors(result)

	return len(result.Issues), nil
}

// writeBanner writes the report header with the reviewed source,
// profile, and detected kind.
func (r *TextReporter) writeBanner(result *review.Result) {
	banner := "Content review"
	if r.opts.Source != "" {
		banner += ": " + r.opts.Source
	}
	fmt.Fprintln(r.bw, r.styles.Banner.Render(banner))

	details := fmt.Sprintf("profile: %s, kind: %s", profileLabel(result), result.Kind)
	fmt.Fprintln(r.bw, r.styles.Dim.Render(details))
	fmt.Fprintln(r.bw)
}

// writeGrouped writes issues grouped by category, categories sorted,
// issues kept in result order inside each group.
func (r *TextReporter) writeGrouped(issues []review.Issue) {
	grouped := make(map[string][]review.Issue)
	for _, issue := range issues {
		grouped[issue.Category] = append(grouped[issue.Category], issue)
	}

	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	num := 0
	for _, category := range categories {
		group := grouped[category]
		fmt.Fprintln(r.bw, r.styles.FormatCategoryHeader(category, len(group)))

		for _, issue := range group {
			num++
			fmt.Fprint(r.bw, r.styles.FormatIssue(num, issue, r.opts.ShowContext))
		}

		fmt.Fprintln(r.bw)
	}
}

// writeRuleErrors surfaces rules that failed during the review.
func (r *TextReporter) writeRuleErrors(result *review.Result) {
	if len(result.RuleErrors) == 0 {
		return
	}

	ids := make([]string, 0, len(result.RuleErrors))
	for id := range result.RuleErrors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Fprintln(r.bw, r.styles.Failure.Render(
			fmt.Sprintf("rule %s failed: %v", id, result.RuleErrors[id])))
	}
}

// profileLabel renders the profile for display, defaulting to "page".
func profileLabel(result *review.Result) string {
	if result.Profile == "" {
		return "page"
	}
	return string(result.Profile)
}
