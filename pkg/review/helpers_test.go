package review

import "github.com/wmotools/billiejean/pkg/config"

// stubRule is a configurable test rule.
type stubRule struct {
	BaseRule
	enabled bool
	issues  []Issue
	err     error
}

func newStubRule(id, name string, issues []Issue, err error) *stubRule {
	return &stubRule{
		BaseRule: NewBaseRule(id, name, "stub rule for testing", []string{"test"}),
		enabled:  true,
		issues:   issues,
		err:      err,
	}
}

func newProfileStubRule(id, name string, profiles []config.Profile) *stubRule {
	return &stubRule{
		BaseRule: NewProfileRule(id, name, "stub rule for testing", []string{"test"}, profiles),
		enabled:  true,
	}
}

func (r *stubRule) DefaultEnabled() bool {
	return r.enabled
}

func (r *stubRule) Apply(_ *RuleContext) ([]Issue, error) {
	return r.issues, r.err
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}
