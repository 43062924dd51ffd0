package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wmotools/billiejean/internal/configloader"
	"github.com/wmotools/billiejean/internal/logging"
	"github.com/wmotools/billiejean/pkg/config"
	"github.com/wmotools/billiejean/pkg/reporter"
	"github.com/wmotools/billiejean/pkg/review"
	_ "github.com/wmotools/billiejean/pkg/review/rules" // Register built-in rules
)

// ErrReviewIssuesFound is returned when blocking review issues are found.
var ErrReviewIssuesFound = errors.New("review issues found")

type reviewFlags struct {
	contentType string
	format      string
	severities  []string
	enable      []string
	disable     []string
	noContext   bool
	compact     bool
}

func newReviewCommand() *cobra.Command {
	flags := &reviewFlags{}

	cmd := &cobra.Command{
		Use:   "review [file|-]",
		Short: "Review web content",
		Long:  reviewLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, args, flags)
		},
	}

	addReviewFlags(cmd, flags)

	return cmd
}

const reviewLongDescription = `Review web content against the WMO web style guide.

Reads content from a file, from stdin ("-" or piped input), or
interactively when run on a terminal with no arguments.

Examples:
  billiejean review page.html              # Review an HTML page
  billiejean review --type article news.md # Review a news article
  cat draft.txt | billiejean review        # Review from a pipe
  billiejean review --format json page.html
  billiejean review --severity critical,error page.html`

func runReview(cmd *cobra.Command, args []string, flags *reviewFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Map CLI flags onto a config overlay. Only flags the user set
	// should override lower-precedence sources.
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("type") {
		cliCfg.Profile = config.Profile(flags.contentType)
	}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	cliCfg.Severities = flags.severities
	cliCfg.EnableRules = flags.enable
	cliCfg.DisableRules = flags.disable

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfigPath, loadResult.LoadedFrom)
	}

	// Acquire content.
	content, source, err := readContent(cmd, args, cfg)
	if err != nil {
		return err
	}

	// The default profile is a plain web page.
	if cfg.Profile == config.ProfileUnknown {
		cfg.Profile = config.ProfileWebPage
	}

	severityFilter, err := config.ParseSeveritySet(cfg.Severities)
	if err != nil {
		return fmt.Errorf("invalid severity filter: %w", err)
	}

	logger.Debug("starting review",
		logging.FieldSource, source,
		logging.FieldProfile, cfg.Profile,
		logging.FieldBytes, len(content),
	)

	engine := review.NewEngine(review.DefaultRegistry)
	result, err := engine.Review(ctx, content, cfg)
	if err != nil {
		return errors.Join(errors.New("review failed"), err)
	}

	for id, ruleErr := range result.RuleErrors {
		logger.Warn("rule failed", logging.FieldRule, id, logging.FieldError, ruleErr)
	}

	filtered := result.FilterSeverities(severityFilter)

	logger.Debug("review complete",
		logging.FieldKind, result.Kind,
		logging.FieldIssuesTotal, len(filtered.Issues),
		logging.FieldCoverage, result.Alignment.Coverage(),
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		Compact:     flags.compact,
		Source:      source,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, filtered); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(filtered) != ExitSuccess {
		return ErrReviewIssuesFound
	}

	return nil
}

// readContent acquires the document under review. With a file argument
// it reads the file; with "-" or piped stdin it reads stdin; on a bare
// terminal it enters interactive mode.
func readContent(cmd *cobra.Command, args []string, cfg *config.Config) (string, string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}

	if len(args) == 0 && isInteractive() {
		return readInteractive(cmd, cfg)
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), "stdin", nil
}

// readInteractive prompts for a content profile and reads pasted
// content until EOF.
func readInteractive(cmd *cobra.Command, cfg *config.Config) (string, string, error) {
	out := cmd.OutOrStdout()

	if cfg.Profile == config.ProfileUnknown {
		fmt.Fprintln(out, "Content type:")
		fmt.Fprintln(out, "  1. Web page")
		fmt.Fprintln(out, "  2. News article")
		fmt.Fprint(out, "Choice [1]: ")

		reader := bufio.NewReader(cmd.InOrStdin())
		choice, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", "", fmt.Errorf("read choice: %w", err)
		}

		if strings.TrimSpace(choice) == "2" {
			cfg.Profile = config.ProfileNewsArticle
		} else {
			cfg.Profile = config.ProfileWebPage
		}

		fmt.Fprintln(out, "Paste content, then press Ctrl-D:")

		data, err := io.ReadAll(reader)
		if err != nil {
			return "", "", fmt.Errorf("read content: %w", err)
		}
		return string(data), "interactive", nil
	}

	fmt.Fprintln(out, "Paste content, then press Ctrl-D:")

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("read content: %w", err)
	}
	return string(data), "interactive", nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func addReviewFlags(cmd *cobra.Command, flags *reviewFlags) {
	cmd.Flags().StringVar(&flags.contentType, "type", "page", "content profile: page, article")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringSliceVar(&flags.severities, "severity", nil,
		"only report these severities (comma-separated)")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide text context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
