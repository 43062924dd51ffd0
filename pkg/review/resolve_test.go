package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmotools/billiejean/pkg/config"
)

func TestResolveRulesDefaults(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("WT001", "enabled-rule", nil, nil))

	disabled := newStubRule("WT002", "disabled-rule", nil, nil)
	disabled.enabled = false
	registry.Register(disabled)

	resolved := ResolveRules(registry, nil)

	require.Len(t, resolved, 1)
	assert.Equal(t, "WT001", resolved[0].Rule.ID())
	assert.Nil(t, resolved[0].Severity)
}

func TestResolveRulesProfileGating(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("WT001", "base-rule", nil, nil))
	registry.Register(newProfileStubRule("WT002", "article-rule",
		[]config.Profile{config.ProfileNewsArticle}))

	t.Run("page profile excludes article rules", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Profile = config.ProfileWebPage

		resolved := ResolveRules(registry, cfg)
		require.Len(t, resolved, 1)
		assert.Equal(t, "WT001", resolved[0].Rule.ID())
	})

	t.Run("article profile includes both", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Profile = config.ProfileNewsArticle

		resolved := ResolveRules(registry, cfg)
		assert.Len(t, resolved, 2)
	})
}

func TestResolveRulesExplicitEnableDisable(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("WT001", "on-by-default", nil, nil))

	offByDefault := newStubRule("WT002", "off-by-default", nil, nil)
	offByDefault.enabled = false
	registry.Register(offByDefault)

	t.Run("enable flag turns a rule on", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.EnableRules = []string{"WT002"}

		resolved := ResolveRules(registry, cfg)
		assert.Len(t, resolved, 2)
	})

	t.Run("disable flag turns a rule off", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.DisableRules = []string{"WT001"}

		resolved := ResolveRules(registry, cfg)
		assert.Empty(t, resolved)
	})
}

func TestResolveRulesRuleConfig(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("WT001", "configurable", nil, nil))

	t.Run("enabled false from config", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Rules["WT001"] = config.RuleConfig{Enabled: boolPtr(false)}

		resolved := ResolveRules(registry, cfg)
		assert.Empty(t, resolved)
	})

	t.Run("severity override parsed", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Rules["WT001"] = config.RuleConfig{Severity: strPtr("critical")}

		resolved := ResolveRules(registry, cfg)
		require.Len(t, resolved, 1)
		require.NotNil(t, resolved[0].Severity)
		assert.Equal(t, config.SeverityCritical, *resolved[0].Severity)
	})

	t.Run("invalid severity override ignored", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Rules["WT001"] = config.RuleConfig{Severity: strPtr("fatal")}

		resolved := ResolveRules(registry, cfg)
		require.Len(t, resolved, 1)
		assert.Nil(t, resolved[0].Severity)
	})

	t.Run("rule config attached to resolved rule", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Rules["WT001"] = config.RuleConfig{
			Options: map[string]any{"max_words": 10},
		}

		resolved := ResolveRules(registry, cfg)
		require.Len(t, resolved, 1)
		require.NotNil(t, resolved[0].Config)
		assert.Equal(t, 10, resolved[0].Config.Options["max_words"])
	})
}
