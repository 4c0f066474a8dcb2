package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwaldren/relnotify/internal/config"
	"github.com/mwaldren/relnotify/internal/notify"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Post the deployment notification to a Teams webhook",
	Long: `Assemble a Microsoft Teams MessageCard from the changelog and the
issue summaries, and post it to the configured incoming webhook.

The webhook URL comes from TEAMS_WEBHOOK_URL or --webhook-url. Unlike
"issues", a delivery failure fails the process.

Example:
  relnotify notify --title "myapp v1.4.0 deployed"`,
	RunE: runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)

	notifyCmd.Flags().String("webhook-url", "", "Teams incoming webhook URL")
	notifyCmd.Flags().String("title", "", "notification card title")
	notifyCmd.Flags().String("theme-color", "", "card theme color (hex, no #)")
	notifyCmd.Flags().String("card-template", "", "YAML file overriding card presentation")

	_ = viper.BindPFlag("notify.webhook_url", notifyCmd.Flags().Lookup("webhook-url"))
	_ = viper.BindPFlag("notify.title", notifyCmd.Flags().Lookup("title"))
	_ = viper.BindPFlag("notify.theme_color", notifyCmd.Flags().Lookup("theme-color"))
	_ = viper.BindPFlag("notify.card_template", notifyCmd.Flags().Lookup("card-template"))
}

func runNotify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ValidateForNotify(); err != nil {
		return err
	}

	if cfg.Notify.CardTemplate != "" {
		tpl, err := notify.LoadCardTemplate(cfg.Notify.CardTemplate)
		if err != nil {
			return err
		}
		if tpl.Title != "" {
			cfg.Notify.Title = tpl.Title
		}
		if tpl.ThemeColor != "" {
			cfg.Notify.ThemeColor = tpl.ThemeColor
		}
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	runID := uuid.New().String()
	logger.Printf("assembling notification (run=%s)", runID)

	block := issueBlock(cmd.Context(), cfg)

	card := notify.BuildCard(cfg.Notify.Title, cfg.Notify.ThemeColor,
		cfg.Issues.Changelog, block, runID)

	client := notify.NewClient(cfg.Notify.WebhookURL, cfg.FetchTimeout(), logger)
	return client.Send(cmd.Context(), card)
}
