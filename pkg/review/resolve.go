package review

import (
	"slices"

	"github.com/wmotools/billiejean/pkg/config"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity, when non-nil, overrides the severity of every issue
	// the rule emits. Nil keeps the per-issue severities rules choose
	// themselves (several rules emit more than one tier).
	Severity *config.Severity

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry,
// configuration, and content profile. Returns only enabled rules.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:    rule,
		Enabled: rule.DefaultEnabled(),
	}

	if cfg == nil {
		cfg = config.NewConfig()
	}

	// Profile-gated rules run only for their profiles. Profile checks
	// are additive: a gated rule never replaces a base rule.
	if profiles := rule.Profiles(); len(profiles) > 0 {
		if !slices.Contains(profiles, cfg.Profile) {
			rr.Enabled = false
			return rr
		}
	}

	// Check for explicit enable/disable from CLI.
	if slices.Contains(cfg.EnableRules, rule.ID()) {
		rr.Enabled = true
	}
	if slices.Contains(cfg.DisableRules, rule.ID()) {
		rr.Enabled = false
	}

	// Apply rule-specific config.
	if ruleCfg, ok := cfg.Rules[rule.ID()]; ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			if s, err := config.ParseSeverity(*ruleCfg.Severity); err == nil {
				rr.Severity = &s
			}
		}
	}

	return rr
}
