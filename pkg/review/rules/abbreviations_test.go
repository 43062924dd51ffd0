package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmotools/billiejean/pkg/config"
)

func TestAbbreviationFirstUseRule(t *testing.T) {
	t.Run("undefined abbreviation warns once", func(t *testing.T) {
		input := "GCOS monitors the climate.\nGCOS data flows daily.\nGCOS reports annually."
		issues := applyRule(t, NewAbbreviationFirstUseRule(), input)

		require.Len(t, issues, 1)
		assert.Equal(t, `Abbreviation "GCOS" used without definition`, issues[0].Message)
		assert.Equal(t, 1, issues[0].Line)
		assert.Equal(t, config.SeverityWarning, issues[0].Severity)
		assert.Equal(t, `Define on first use: "Global Climate Observing System (GCOS)"`, issues[0].Suggestion)
	})

	t.Run("full form first definition passes", func(t *testing.T) {
		input := "The Global Climate Observing System (GCOS) monitors the climate.\nGCOS data flows daily."
		issues := applyRule(t, NewAbbreviationFirstUseRule(), input)
		assert.Empty(t, issues)
	})

	t.Run("abbreviation first definition passes", func(t *testing.T) {
		input := "GCOS (Global Climate Observing System) monitors the climate."
		issues := applyRule(t, NewAbbreviationFirstUseRule(), input)
		assert.Empty(t, issues)
	})

	t.Run("organization abbreviation is exempt", func(t *testing.T) {
		issues := applyRule(t, NewAbbreviationFirstUseRule(), "WMO leads the effort.")
		assert.Empty(t, issues)
	})

	t.Run("each abbreviation tracked separately", func(t *testing.T) {
		issues := applyRule(t, NewAbbreviationFirstUseRule(), "GCOS and GTS exchange data.")

		require.Len(t, issues, 2)
		assert.Equal(t, "GCOS", issues[0].FlaggedText)
		assert.Equal(t, "GTS", issues[1].FlaggedText)
	})

	t.Run("lowercase words never match", func(t *testing.T) {
		issues := applyRule(t, NewAbbreviationFirstUseRule(), "The gas exchange was measured.")
		assert.Empty(t, issues)
	})
}
