package config

import (
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/interfaces"
	"github.com/prefix-dev/pixi-testsuite/pkg/infra/notify"
	"github.com/urfave/cli/v3"
)

// Notify holds notification configuration
type Notify struct {
	SlackWebhookURL string `masq:"secret"`
}

// Flags returns CLI flags for notification configuration
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook for CI completion notifications",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("SLACK_WEBHOOK_URL"),
		},
	}
}

// Notifier returns the configured notifier, a no-op when no webhook is set.
func (c *Notify) Notifier() interfaces.Notifier {
	if c.SlackWebhookURL == "" {
		return notify.Null{}
	}
	return notify.NewSlack(c.SlackWebhookURL)
}
