package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/document"
	"github.com/wmotools/billiejean/pkg/review"
)

// applyRule runs a rule against input with default configuration.
func applyRule(t *testing.T, rule review.Rule, input string) []review.Issue {
	t.Helper()
	return applyRuleWithConfig(t, rule, input, nil)
}

// applyRuleWithConfig runs a rule with rule-specific options.
func applyRuleWithConfig(t *testing.T, rule review.Rule, input string, ruleCfg *config.RuleConfig) []review.Issue {
	t.Helper()

	ctx := review.NewRuleContext(context.Background(), document.New(input), config.NewConfig(), ruleCfg)
	issues, err := rule.Apply(ctx)
	require.NoError(t, err)
	return issues
}
