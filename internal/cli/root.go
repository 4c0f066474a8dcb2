// Package cli implements the relnotify command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwaldren/relnotify/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "relnotify",
	Short: "relnotify - Changelog-driven deployment notifications",
	Long: `relnotify enriches deployment notifications with issue summaries.

It scans a release changelog for issue-tracker identifiers (e.g. ABC-123),
fetches each issue's metadata from a templated REST URL, and renders a
Markdown bullet list suitable for embedding in a Microsoft Teams message.

Example:
  CHANGELOG_CONTENT="$(cat CHANGELOG.md)" \
  ISSUE_SUMMARY_PATTERN='https://jira.example.com/rest/api/2/issue/${id}' \
  relnotify issues`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Set version for --version flag
	rootCmd.Version = version.Short()
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .relnotify.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error getting working directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(cwd)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".relnotify")
	}

	viper.SetEnvPrefix("RELNOTIFY")
	viper.AutomaticEnv()

	// The surrounding workflow supplies these under fixed names that predate
	// this tool; they are part of the action contract.
	_ = viper.BindEnv("issues.summary_pattern", "ISSUE_SUMMARY_PATTERN")
	_ = viper.BindEnv("issues.link_pattern", "ISSUE_LINK_PATTERN")
	_ = viper.BindEnv("issues.changelog", "CHANGELOG_CONTENT")
	_ = viper.BindEnv("notify.webhook_url", "TEAMS_WEBHOOK_URL")

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
