package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/wmotools/billiejean/pkg/review"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version   string        `json:"version"`
	Source    string        `json:"source,omitempty"`
	Profile   string        `json:"profile"`
	Kind      string        `json:"kind"`
	Alignment JSONAlignment `json:"strategic_alignment"`
	Issues    []JSONIssue   `json:"issues"`
	Summary   JSONSummary   `json:"summary"`
}

// JSONAlignment mirrors the strategic alignment scoring.
type JSONAlignment struct {
	CoveragePercentage float64  `json:"coverage_percentage"`
	CoveredAreas       []string `json:"covered_areas"`
	MissingAreas       []string `json:"missing_areas"`
}

// JSONIssue represents a single issue.
type JSONIssue struct {
	RuleID      string `json:"rule_id"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Suggestion  string `json:"suggestion,omitempty"`
	Line        int    `json:"line"`
	Context     string `json:"context,omitempty"`
	FlaggedText string `json:"flagged_text,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	TotalIssues int               `json:"total_issues"`
	BySeverity  map[string]int    `json:"by_severity"`
	RuleErrors  map[string]string `json:"rule_errors,omitempty"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *review.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *review.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Source:  r.opts.Source,
		Issues:  make([]JSONIssue, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	output.Profile = profileLabel(result)
	output.Kind = result.Kind
	output.Alignment = JSONAlignment{
		CoveragePercentage: result.Alignment.Coverage(),
		CoveredAreas:       orEmpty(result.Alignment.CoveredAreas()),
		MissingAreas:       orEmpty(result.Alignment.MissingAreas()),
	}

	if len(result.Issues) > 0 {
		output.Issues = make([]JSONIssue, 0, len(result.Issues))
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, JSONIssue{
			RuleID:      issue.RuleID,
			Category:    issue.Category,
			Severity:    string(issue.Severity),
			Message:     issue.Message,
			Suggestion:  issue.Suggestion,
			Line:        issue.Line,
			Context:     issue.Context,
			FlaggedText: issue.FlaggedText,
		})
		output.Summary.TotalIssues++
		output.Summary.BySeverity[string(issue.Severity)]++
	}

	if len(result.RuleErrors) > 0 {
		output.Summary.RuleErrors = make(map[string]string, len(result.RuleErrors))
		for id, ruleErr := range result.RuleErrors {
			output.Summary.RuleErrors[id] = ruleErr.Error()
		}
	}

	return output
}

// orEmpty keeps JSON arrays as [] rather than null.
func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
