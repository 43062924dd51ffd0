// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldSource = "source"
	FieldBytes  = "bytes"

	// Configuration fields.
	FieldProfile    = "profile"
	FieldFormat     = "format"
	FieldConfigPath = "config_path"
	FieldSeverities = "severities"

	// Review fields.
	FieldKind        = "kind"
	FieldRule        = "rule"
	FieldRulesRun    = "rules_run"
	FieldIssuesTotal = "issues_total"
	FieldCoverage    = "coverage"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
