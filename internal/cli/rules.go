package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wmotools/billiejean/internal/logging"
	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/review"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Profiles    []string `json:"profiles,omitempty"`
	Enabled     bool     `json:"enabled"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available review rules",
		Long: `List all available review rules with their IDs, descriptions,
tags, and the content profiles they apply to.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rules := review.DefaultRegistry.Rules()

			// Handle JSON output format.
			if flags.format == formatJSON {
				return outputRulesJSON(rules)
			}

			// Default to text output.
			logger := logging.Default()

			if len(rules) == 0 {
				logger.Info("no rules registered")
				return nil
			}

			logger.Info("available rules")

			for _, rule := range rules {
				fields := []any{
					logging.FieldName, rule.Name(),
					logging.FieldDescription, rule.Description(),
				}
				if profiles := rule.Profiles(); len(profiles) > 0 {
					fields = append(fields, logging.FieldProfile, profilesLabel(profiles))
				}
				logger.Info(rule.ID(), fields...)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(rules []review.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		info := ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Tags:        rule.Tags(),
			Enabled:     rule.DefaultEnabled(),
		}
		for _, profile := range rule.Profiles() {
			info.Profiles = append(info.Profiles, string(profile))
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

func profilesLabel(profiles []config.Profile) string {
	labels := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		labels = append(labels, string(profile))
	}
	return strings.Join(labels, ",")
}
