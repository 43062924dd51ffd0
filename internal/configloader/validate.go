package configloader

import (
	"fmt"
	"strings"

	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.WR001.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText: true,
	config.FormatJSON: true,
}

// Validate checks a configuration for errors and warnings against the
// given rule registry. A nil registry falls back to the default one.
func Validate(cfg *config.Config, registry *review.Registry) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}
	if registry == nil {
		registry = review.DefaultRegistry
	}

	result := &ValidationResult{}

	// Validate profile
	if !cfg.Profile.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "profile",
			Value:   cfg.Profile,
			Message: fmt.Sprintf("invalid profile %q; must be one of: page, article", cfg.Profile),
		})
	}

	// Validate format
	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	// Validate severity filter
	for i, severity := range cfg.Severities {
		if _, err := config.ParseSeverity(severity); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("severities[%d]", i),
				Value:   severity,
				Message: err.Error(),
			})
		}
	}

	validateRules(cfg, registry, result)

	return result
}

// validateRules checks rule configurations for errors and warnings.
func validateRules(cfg *config.Config, registry *review.Registry, result *ValidationResult) {
	for ruleID, ruleCfg := range cfg.Rules {
		// Check if rule exists in registry
		if _, exists := registry.Get(ruleID); !exists {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + ruleID,
				Value:   ruleID,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", ruleID),
			})
		}

		// Validate rule severity
		if ruleCfg.Severity != nil {
			if _, err := config.ParseSeverity(*ruleCfg.Severity); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Field:   "rules." + ruleID + ".severity",
					Value:   *ruleCfg.Severity,
					Message: err.Error(),
				})
			}
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, registry *review.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
