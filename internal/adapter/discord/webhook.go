package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"leetcode-sync/internal/domain/model"
	"leetcode-sync/internal/domain/ports"
)

const (
	embedColor    = 0xFFA116 // LeetCode orange
	defaultFooter = "leetcode-sync"

	maxTitle       = 256
	maxDescription = 4096
	maxFieldName   = 256
	maxFieldValue  = 1024
	maxFields      = 25
)

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp"`
	Color       int          `json:"color"`
	Footer      embedFooter  `json:"footer"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// Webhook posts sync reports to a Discord channel webhook.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
	now        func() time.Time
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// Send posts the notification as a single embed.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	body, err := json.Marshal(webhookPayload{Embeds: []embed{w.buildEmbed(notification)}})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	if w.logger != nil {
		w.logger.Info(ctx, "sync report sent to discord", "footer", notification.Footer)
	}
	return nil
}

func (w *Webhook) buildEmbed(n model.Notification) embed {
	footer := n.Footer
	if footer == "" {
		footer = defaultFooter
	}

	fields := n.Fields
	if len(fields) > maxFields {
		fields = fields[:maxFields]
	}
	converted := make([]embedField, 0, len(fields))
	for _, f := range fields {
		converted = append(converted, embedField{
			Name:   truncate(f.Name, maxFieldName),
			Value:  truncate(f.Value, maxFieldValue),
			Inline: f.Inline,
		})
	}

	return embed{
		Title:       truncate(n.Title, maxTitle),
		Description: truncate(n.Description, maxDescription),
		Fields:      converted,
		Timestamp:   w.now().UTC().Format(time.RFC3339),
		Color:       embedColor,
		Footer:      embedFooter{Text: footer},
	}
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return strings.TrimSpace(value[:limit-3]) + "..."
}
