// Package review provides the rule engine, issue model, and registry
// for billiejean content reviews.
package review

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/wmotools/billiejean/pkg/config"
)

// Excerpt length limits for issue context fields.
const (
	maxContextLen = 100
	maxFlaggedLen = 80
)

// Issue represents a single problem found in a document.
// Issues are immutable once built; the engine never updates them.
type Issue struct {
	// RuleID is the identifier of the rule that produced this issue.
	RuleID string

	// Category is the report grouping (e.g. "Style Guide - Voice").
	Category string

	// Severity indicates the importance of the issue.
	Severity config.Severity

	// Message is the human-readable description of the issue.
	Message string

	// Suggestion is an optional human-readable improvement hint.
	Suggestion string

	// Line is the 1-based line number, or 0 for document-level issues
	// that have no single line (e.g. a missing meta description).
	Line int

	// Context is a truncated excerpt of the surrounding text.
	Context string

	// FlaggedText is the exact text that triggered the issue,
	// truncated.
	FlaggedText string
}

// Builder helps construct Issue values.
type Builder struct {
	issue Issue
}

// NewIssue starts building an issue for the given rule, category, and
// 1-based line number (0 for document-level).
func NewIssue(ruleID, category string, line int, message string) *Builder {
	return &Builder{
		issue: Issue{
			RuleID:   ruleID,
			Category: category,
			Line:     line,
			Message:  message,
		},
	}
}

// WithSeverity sets the severity.
func (b *Builder) WithSeverity(s config.Severity) *Builder {
	b.issue.Severity = s
	return b
}

// WithSuggestion sets an improvement hint.
func (b *Builder) WithSuggestion(s string) *Builder {
	b.issue.Suggestion = s
	return b
}

// WithContext sets the surrounding-text excerpt, trimmed and truncated.
func (b *Builder) WithContext(text string) *Builder {
	b.issue.Context = Excerpt(text, maxContextLen)
	return b
}

// WithFlagged sets the triggering text, truncated.
func (b *Builder) WithFlagged(text string) *Builder {
	b.issue.FlaggedText = Excerpt(text, maxFlaggedLen)
	return b
}

// Build returns the constructed Issue.
func (b *Builder) Build() Issue {
	return b.issue
}

// Excerpt trims text and truncates it to at most limit bytes, never
// splitting a multi-byte rune.
func Excerpt(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// Sort orders issues by (severity rank, line number), ascending. The
// sort is stable: issues with equal rank and line keep their detection
// order, which makes review output deterministic.
func Sort(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		ri, rj := issues[i].Severity.Rank(), issues[j].Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		return issues[i].Line < issues[j].Line
	})
}

// Filter returns a new slice holding the issues whose severity is in
// the allowed set, preserving order. A nil set means no filtering.
func Filter(issues []Issue, allowed map[config.Severity]bool) []Issue {
	if allowed == nil {
		out := make([]Issue, len(issues))
		copy(out, issues)
		return out
	}
	out := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if allowed[issue.Severity] {
			out = append(out, issue)
		}
	}
	return out
}

// CountBySeverity tallies issues per severity.
func CountBySeverity(issues []Issue) map[config.Severity]int {
	counts := make(map[config.Severity]int)
	for _, issue := range issues {
		counts[issue.Severity]++
	}
	return counts
}
