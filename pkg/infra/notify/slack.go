// Package notify delivers completion notifications for CI runs.
package notify

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/interfaces"
	"github.com/slack-go/slack"
)

// SlackNotifier posts messages to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
}

// NewSlack creates a notifier for the given webhook URL.
func NewSlack(webhookURL string) *SlackNotifier {
	return &SlackNotifier{webhookURL: webhookURL}
}

// Notify posts a plain text message
func (n *SlackNotifier) Notify(ctx context.Context, text string) error {
	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack notification")
	}
	return nil
}

// Null is a no-op notifier used when no webhook URL is configured.
type Null struct{}

// Notify does nothing
func (Null) Notify(ctx context.Context, text string) error { return nil }

var (
	_ interfaces.Notifier = (*SlackNotifier)(nil)
	_ interfaces.Notifier = Null{}
)
