package config

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a review issue.
//
// The scale carries five names on four ranks:
//
//	critical(0) > error(1) > warning(2) > info(3) = suggestion(3)
//
// Info and suggestion are equivalent-weight informational tiers; both
// names are accepted so configs written against either legacy variant
// keep working. Rank is used for sorting and severity filtering only.
type Severity string

const (
	SeverityCritical   Severity = "critical"
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeverityInfo       Severity = "info"
	SeveritySuggestion Severity = "suggestion"
)

// rankUnknown sorts unknown severities after all known ones.
const rankUnknown = 4

// Rank returns the sort rank for the severity, 0 being most severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityError:
		return 1
	case SeverityWarning:
		return 2
	case SeverityInfo, SeveritySuggestion:
		return 3
	default:
		return rankUnknown
	}
}

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	return s.Rank() != rankUnknown
}

// String returns the lowercase severity name.
func (s Severity) String() string {
	return string(s)
}

// Upper returns the severity name in report form (e.g. "CRITICAL").
func (s Severity) Upper() string {
	return strings.ToUpper(string(s))
}

// ParseSeverity parses a severity name, case-insensitively.
func ParseSeverity(name string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(name)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown severity %q; valid severities: critical, error, warning, info, suggestion", name)
	}
	return s, nil
}

// ParseSeveritySet parses a comma-separated severity list into a set.
// An empty input yields a nil set, meaning "no filter".
func ParseSeveritySet(names []string) (map[Severity]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	set := make(map[Severity]bool, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := ParseSeverity(name)
		if err != nil {
			return nil, err
		}
		set[s] = true
	}
	if len(set) == 0 {
		return nil, nil
	}
	return set, nil
}
