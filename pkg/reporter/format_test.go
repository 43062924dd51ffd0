package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "text", input: "text", want: FormatText},
		{name: "json", input: "json", want: FormatJSON},
		{name: "empty defaults to text", input: "", want: FormatText},
		{name: "unknown", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatIsValid(t *testing.T) {
	assert.True(t, FormatText.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.False(t, Format("xml").IsValid())
	assert.Equal(t, "json", FormatJSON.String())
}

func TestNewReporter(t *testing.T) {
	t.Run("text reporter", func(t *testing.T) {
		rep, err := New(Options{Format: FormatText})
		require.NoError(t, err)
		assert.IsType(t, &TextReporter{}, rep)
	})

	t.Run("json reporter", func(t *testing.T) {
		rep, err := New(Options{Format: FormatJSON})
		require.NoError(t, err)
		assert.IsType(t, &JSONReporter{}, rep)
	})

	t.Run("empty format defaults to text", func(t *testing.T) {
		rep, err := New(Options{})
		require.NoError(t, err)
		assert.IsType(t, &TextReporter{}, rep)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New(Options{Format: Format("xml")})
		require.Error(t, err)
	})
}
