// Package cli provides the Cobra command structure for billiejean.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/wmotools/billiejean/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root billiejean command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "billiejean",
		Short: "A content reviewer for WMO-style web content",
		Long: `billiejean reviews web content against the WMO web style guide.

It checks HTML, Markdown, or plain text for style, accessibility,
terminology, formatting, and structure issues, and scores how well the
content aligns with WMO strategic priorities. Each finding carries a
severity and, where possible, a concrete suggestion.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newReviewCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
