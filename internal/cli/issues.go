package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwaldren/relnotify/internal/changelog"
	"github.com/mwaldren/relnotify/internal/config"
	"github.com/mwaldren/relnotify/internal/issue"
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Render issue summaries extracted from the changelog",
	Long: `Scan the changelog for issue identifiers, fetch each issue's metadata
concurrently, and write a Markdown bullet list to standard output.

With no identifiers in the changelog, or no summary pattern configured, the
command writes nothing and exits successfully. Individual fetch failures
degrade to error bullets; they never fail the process.

Example:
  relnotify issues --summary-pattern 'https://jira.example.com/rest/api/2/issue/${id}'`,
	RunE: runIssues,
}

func init() {
	rootCmd.AddCommand(issuesCmd)

	issuesCmd.Flags().String("summary-pattern", "", "issue JSON URL template with a ${id} placeholder")
	issuesCmd.Flags().String("link-pattern", "", "issue link URL template with a ${id} placeholder")
	issuesCmd.Flags().String("changelog", "", "changelog text to scan")
	issuesCmd.Flags().String("timeout", "", "per-request timeout (e.g. 10s)")

	_ = viper.BindPFlag("issues.summary_pattern", issuesCmd.Flags().Lookup("summary-pattern"))
	_ = viper.BindPFlag("issues.link_pattern", issuesCmd.Flags().Lookup("link-pattern"))
	_ = viper.BindPFlag("issues.changelog", issuesCmd.Flags().Lookup("changelog"))
	_ = viper.BindPFlag("fetch.timeout", issuesCmd.Flags().Lookup("timeout"))
}

func runIssues(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	block := issueBlock(cmd.Context(), cfg)
	if block == "" {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), block)
	return nil
}

// issueBlock runs the extraction/fetch/render pipeline and returns the
// Markdown issues block, or "" when there is nothing to report.
func issueBlock(ctx context.Context, cfg *config.Config) string {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	if cfg.Issues.SummaryPattern == "" {
		if viper.GetBool("verbose") {
			logger.Println("no summary pattern configured, issue summaries disabled")
		}
		return ""
	}

	ids := changelog.Extract(cfg.Issues.Changelog)
	if len(ids) == 0 {
		if viper.GetBool("verbose") {
			logger.Println("no issue identifiers found in changelog")
		}
		return ""
	}

	fetcher := issue.NewFetcher(cfg.Issues.SummaryPattern, cfg.Issues.LinkPattern,
		cfg.Fetch.UserAgent, cfg.FetchTimeout())
	lines := fetcher.FetchSummaries(ctx, ids)

	return issue.RenderBlock(lines)
}
