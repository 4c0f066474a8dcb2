// Package notify delivers the rendered notification to a Microsoft Teams
// incoming webhook using the legacy MessageCard format.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/mwaldren/relnotify/internal/security"
)

// changelogExcerptLimit bounds how much raw changelog text is embedded in the
// card. Teams rejects payloads well before this size, so long changelogs are
// truncated rather than failing delivery.
const changelogExcerptLimit = 2000

// Card is the MessageCard payload accepted by Teams incoming webhooks.
type Card struct {
	Type       string    `json:"@type"`
	Context    string    `json:"@context"`
	ThemeColor string    `json:"themeColor,omitempty"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Sections   []Section `json:"sections,omitempty"`
}

// Section is one content block of a MessageCard.
type Section struct {
	ActivityTitle    string `json:"activityTitle,omitempty"`
	ActivitySubtitle string `json:"activitySubtitle,omitempty"`
	Text             string `json:"text,omitempty"`
	Markdown         bool   `json:"markdown"`
}

// BuildCard composes the deployment notification card from the changelog and
// the rendered issues block. Either may be empty; empty parts produce no
// section. runID correlates the card with the process diagnostics.
func BuildCard(title, themeColor, changelog, issuesBlock, runID string) Card {
	card := Card{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: themeColor,
		Title:      title,
		Summary:    title,
	}

	if changelog != "" {
		excerpt := changelog
		if len(excerpt) > changelogExcerptLimit {
			// Back up to a rune boundary so the cut never splits a
			// multibyte character.
			cut := changelogExcerptLimit
			for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
				cut--
			}
			excerpt = excerpt[:cut] + "…"
		}
		card.Sections = append(card.Sections, Section{
			ActivityTitle:    "Changelog",
			ActivitySubtitle: "run " + runID,
			Text:             excerpt,
			Markdown:         true,
		})
	}

	if issuesBlock != "" {
		card.Sections = append(card.Sections, Section{
			Text:     issuesBlock,
			Markdown: true,
		})
	}

	return card
}

// Client posts cards to a single Teams incoming webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a webhook client. The webhook URL may carry embedded
// basic credentials; they are split off before sending and never logged.
func NewClient(webhookURL string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts the card to the webhook. A non-2xx response is an error; the
// status and a truncated, sanitized response body are included so delivery
// failures are diagnosable without leaking the webhook address.
func (c *Client) Send(ctx context.Context, card Card) error {
	body, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("marshal card: %w", err)
	}

	postURL, auth := security.PrepareAuth(c.webhookURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, postURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %s", security.SanitizeMessage(err.Error()))
	}
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %s", security.SanitizeMessage(err.Error()))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, security.SanitizeMessage(string(respBody)))
	}

	c.logger.Printf("notification delivered (status=%d)", resp.StatusCode)

	return nil
}
