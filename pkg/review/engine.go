package review

import (
	"context"
	"fmt"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/contentdetect"
	"github.com/wmotools/billiejean/pkg/document"
)

// Engine runs review rules against documents.
type Engine struct {
	registry *Registry
}

// NewEngine creates an engine backed by the given registry.
// A nil registry falls back to DefaultRegistry.
func NewEngine(registry *Registry) *Engine {
	if registry == nil {
		registry = DefaultRegistry
	}
	return &Engine{registry: registry}
}

// Registry returns the rule registry the engine runs from.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Result holds the outcome of reviewing a single document.
type Result struct {
	// Profile is the content profile the review ran under.
	Profile config.Profile

	// Kind is the detected content kind ("html", "markdown", "text").
	Kind string

	// Issues are the findings, sorted by severity rank then line.
	Issues []Issue

	// Alignment is the strategic alignment scoring for the document.
	Alignment Alignment

	// RuleErrors maps rule IDs to execution errors. A failing rule
	// never aborts the review; its findings are simply absent.
	RuleErrors map[string]error
}

// FilterSeverities returns a copy of the result keeping only issues
// whose severity is in the allowed set. A nil set keeps everything.
func (r *Result) FilterSeverities(allowed map[config.Severity]bool) *Result {
	filtered := *r
	filtered.Issues = Filter(r.Issues, allowed)
	return &filtered
}

// HasIssues reports whether the result contains any findings.
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// Review runs all resolved rules against the content and scores its
// strategic alignment. The same content and configuration always
// produce an identical result.
func (e *Engine) Review(ctx context.Context, content string, cfg *config.Config) (*Result, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	doc := document.New(content)
	resolved := ResolveRules(e.registry, cfg)

	result := &Result{
		Profile:    cfg.Profile,
		Kind:       contentdetect.Detect([]byte(content)).String(),
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("review cancelled: %w", err)
		}

		rc := NewRuleContext(ctx, doc, cfg, rr.Config)
		issues, err := rr.Rule.Apply(rc)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		if rr.Severity != nil {
			for i := range issues {
				issues[i].Severity = *rr.Severity
			}
		}
		result.Issues = append(result.Issues, issues...)
	}

	result.Alignment = ScoreAlignment(content)
	result.Issues = append(result.Issues, alignmentIssues(result.Alignment)...)

	Sort(result.Issues)
	return result, nil
}
