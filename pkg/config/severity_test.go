package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityRank(t *testing.T) {
	tests := []struct {
		severity Severity
		wantRank int
	}{
		{SeverityCritical, 0},
		{SeverityError, 1},
		{SeverityWarning, 2},
		{SeverityInfo, 3},
		{SeveritySuggestion, 3},
		{Severity("bogus"), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.wantRank, tt.severity.Rank())
		})
	}
}

func TestSeverityIsValid(t *testing.T) {
	assert.True(t, SeverityCritical.IsValid())
	assert.True(t, SeveritySuggestion.IsValid())
	assert.False(t, Severity("").IsValid())
	assert.False(t, Severity("fatal").IsValid())
}

func TestSeverityUpper(t *testing.T) {
	assert.Equal(t, "CRITICAL", SeverityCritical.Upper())
	assert.Equal(t, "warning", SeverityWarning.String())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Severity
		wantErr bool
	}{
		{name: "lowercase", input: "error", want: SeverityError},
		{name: "uppercase", input: "WARNING", want: SeverityWarning},
		{name: "mixed case with spaces", input: "  Critical ", want: SeverityCritical},
		{name: "suggestion", input: "suggestion", want: SeveritySuggestion},
		{name: "info", input: "info", want: SeverityInfo},
		{name: "unknown", input: "fatal", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeveritySet(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    map[Severity]bool
		wantErr bool
	}{
		{name: "nil input means no filter", input: nil, want: nil},
		{name: "empty slice means no filter", input: []string{}, want: nil},
		{name: "blank entries ignored", input: []string{"", "  "}, want: nil},
		{
			name:  "mixed severities",
			input: []string{"critical", "ERROR"},
			want:  map[Severity]bool{SeverityCritical: true, SeverityError: true},
		},
		{name: "invalid entry fails", input: []string{"critical", "nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeveritySet(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
