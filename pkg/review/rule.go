package review

import "github.com/wmotools/billiejean/pkg/config"

// Rule defines the interface that all review rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g. "WR001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// Tags returns categorization tags for this rule (e.g. ["style"]).
	Tags() []string

	// Profiles returns the content profiles the rule applies to.
	// An empty slice means the rule runs for every profile.
	Profiles() []config.Profile

	// Apply executes the rule against the given context and returns
	// the issues found.
	//
	// Rules must:
	//   - Set severity on every issue they emit (the resolver may
	//     override it when configured).
	//   - Emit zero issues, not an error, when nothing qualifies.
	//   - Keep all state local to the call so reviews stay reentrant.
	//   - Respect context cancellation.
	Apply(ctx *RuleContext) ([]Issue, error)
}

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
type BaseRule struct {
	id       string
	name     string
	desc     string
	tags     []string
	profiles []config.Profile
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string) BaseRule {
	return BaseRule{
		id:   id,
		name: name,
		desc: desc,
		tags: tags,
	}
}

// NewProfileRule creates a BaseRule restricted to specific profiles.
func NewProfileRule(id, name, desc string, tags []string, profiles []config.Profile) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		tags:     tags,
		profiles: profiles,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Profiles returns the content profiles the rule applies to.
func (r *BaseRule) Profiles() []config.Profile {
	return r.profiles
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no issues.
func (r *BaseRule) Apply(_ *RuleContext) ([]Issue, error) {
	return nil, nil
}
