package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
	"github.com/wmotools/billiejean/pkg/review/rules"
)

func testRegistry() *review.Registry {
	return rules.NewRegistry()
}

func TestValidateValidConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Profile = config.ProfileNewsArticle
	cfg.Format = config.FormatJSON
	cfg.Severities = []string{"critical", "warning"}
	cfg.Rules["WR001"] = config.RuleConfig{Severity: strPtr("error")}

	result := Validate(cfg, testRegistry())

	assert.True(t, result.Valid())
	assert.False(t, result.HasWarnings())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantField string
	}{
		{
			name:      "invalid profile",
			mutate:    func(c *config.Config) { c.Profile = "blog" },
			wantField: "profile",
		},
		{
			name:      "invalid format",
			mutate:    func(c *config.Config) { c.Format = "xml" },
			wantField: "format",
		},
		{
			name:      "invalid severity filter",
			mutate:    func(c *config.Config) { c.Severities = []string{"fatal"} },
			wantField: "severities[0]",
		},
		{
			name: "invalid rule severity",
			mutate: func(c *config.Config) {
				c.Rules["WR001"] = config.RuleConfig{Severity: strPtr("fatal")}
			},
			wantField: "rules.WR001.severity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			tt.mutate(cfg)

			result := Validate(cfg, testRegistry())

			require.False(t, result.Valid())
			assert.Equal(t, tt.wantField, result.Errors[0].Field)
		})
	}
}

func TestValidateUnknownRuleWarns(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Rules["WR999"] = config.RuleConfig{Enabled: boolPtr(false)}

	result := Validate(cfg, testRegistry())

	assert.True(t, result.Valid())
	require.True(t, result.HasWarnings())
	assert.Contains(t, result.Warnings[0].Message, `unknown rule "WR999"`)
}

func TestValidateNilConfig(t *testing.T) {
	result := Validate(nil, testRegistry())
	assert.True(t, result.Valid())
}

func TestValidateWithFile(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Profile = "blog"

	result := ValidateWithFile(cfg, testRegistry(), "/tmp/config.yaml")

	require.False(t, result.Valid())
	assert.Equal(t, "/tmp/config.yaml", result.Errors[0].FilePath)
	assert.Contains(t, result.Errors[0].Error(), "/tmp/config.yaml: profile:")
}

func TestValidationResultAllMessages(t *testing.T) {
	result := &ValidationResult{
		Errors:   []ValidationError{{Field: "profile", Message: "bad"}},
		Warnings: []ValidationError{{Field: "rules.X", Message: "unknown"}},
	}

	messages := result.AllMessages()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "error: ")
	assert.Contains(t, messages[1], "warning: ")
}
