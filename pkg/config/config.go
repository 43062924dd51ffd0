// Package config defines core configuration types for billiejean.
// These types are pure data structures with no dependency on the
// config loader or CLI layers.
package config

// Profile identifies the kind of web product being reviewed.
// Article content gets additional checks layered on top of the base
// catalogue; the base checks run for every profile.
type Profile string

const (
	// ProfileUnknown runs the base catalogue only.
	ProfileUnknown Profile = ""
	// ProfileWebPage is a standard web page.
	ProfileWebPage Profile = "page"
	// ProfileNewsArticle is a news-style article.
	ProfileNewsArticle Profile = "article"
)

// IsValid returns true for a known profile (including unknown/empty).
func (p Profile) IsValid() bool {
	switch p {
	case ProfileUnknown, ProfileWebPage, ProfileNewsArticle:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	Options  map[string]any `yaml:"options"`
}

// OutputFormat specifies the output format for review reports.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the root configuration structure for billiejean.
type Config struct {
	// Profile selects the content profile ("page" or "article").
	Profile Profile `yaml:"profile"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format"`

	// CLI-level options (not persisted to config files).

	// Severities limits reported issues to these severities.
	// Empty means all severities.
	Severities []string `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Profile: ProfileUnknown,
		Rules:   make(map[string]RuleConfig),
		Format:  FormatText,
	}
}
