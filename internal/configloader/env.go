package configloader

import (
	"fmt"
	"os"
	"strings"

	"github.com/wmotools/billiejean/pkg/config"
)

// envVarPrefix is the prefix for all billiejean environment variables.
const envVarPrefix = "BILLIEJEAN_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"PROFILE":    {field: "profile", typ: envTypeString},
	"FORMAT":     {field: "format", typ: envTypeString},
	"SEVERITIES": {field: "severities", typ: envTypeSlice},
	"ENABLE":     {field: "enable_rules", typ: envTypeSlice},
	"DISABLE":    {field: "disable_rules", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with BILLIEJEAN_ (e.g., BILLIEJEAN_PROFILE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "profile":
		cfg.Profile = config.Profile(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "severities":
		cfg.Severities = value
	case "enable_rules":
		cfg.EnableRules = value
	case "disable_rules":
		cfg.DisableRules = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"BILLIEJEAN_PROFILE":    "Content profile: page or article",
		"BILLIEJEAN_FORMAT":     "Output format: text or json",
		"BILLIEJEAN_SEVERITIES": "Comma-separated severity filter",
		"BILLIEJEAN_ENABLE":     "Comma-separated rule IDs to enable",
		"BILLIEJEAN_DISABLE":    "Comma-separated rule IDs to disable",
	}
}
