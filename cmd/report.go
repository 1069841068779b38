package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/tsplay/internal/config"
	"github.com/zhubert/tsplay/internal/logger"
	"github.com/zhubert/tsplay/internal/playground"
	"github.com/zhubert/tsplay/internal/report"
)

// Report output formats
const (
	formatMarkdown = "markdown"
	formatParams   = "params"
	formatLink     = "link"
	formatURL      = "url"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Print a bug report payload without starting the TUI",
	Long: `Print what the options panel would copy or open for the current settings.

Formats:
  markdown  the issue body (Copy Markdown)
  params    the query string that prefills the issue form
  link      the shareable playground link (Copy link)
  url       the full issue form URL (Report as Issue)

The saved settings are used, with --link, the file and the setting flags
applied on top. Nothing is written back to the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", formatMarkdown, "Output format: markdown, params, link or url")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	defer logger.Close()

	state, err := seedState(cfg.GetPlayground(), currentSeedOptions(args))
	if err != nil {
		return err
	}

	out, err := renderReport(reportFormat, cfg, state)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// renderReport produces one payload for s. Every format except markdown,
// which already ends in a newline, gets one appended.
func renderReport(format string, cfg *config.Config, s playground.State) (string, error) {
	link := report.PlaygroundLink(cfg.GetPlaygroundURL(), s)
	versions := report.EnvVersions(s.TS)

	switch format {
	case formatMarkdown:
		return report.ToMarkdown(s, link, versions), nil
	case formatParams:
		return report.ToIssueParams(s, link, versions) + "\n", nil
	case formatLink:
		return link + "\n", nil
	case formatURL:
		return report.IssueURL(cfg.GetIssueURL(), report.ToIssueParams(s, link, versions)) + "\n", nil
	}
	return "", fmt.Errorf("unknown format %q (want markdown, params, link or url)", format)
}
