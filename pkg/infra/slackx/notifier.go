package slackx

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/relwatch/pkg/domain/model"
	"github.com/slack-go/slack"
)

type notifier struct {
	webhookURL string
}

// NewNotifier creates a Notifier posting to a Slack incoming webhook. The
// plain-text body is used; Slack does not render the HTML part.
func NewNotifier(webhookURL string) interfaces.Notifier {
	return &notifier{webhookURL: webhookURL}
}

// Deliver posts the notification to the webhook. The recipient, when set,
// overrides the webhook's default channel.
func (n *notifier) Deliver(ctx context.Context, recipient string, msg *model.Notification) error {
	wm := &slack.WebhookMessage{
		Text: "*" + msg.Subject + "*\n" + msg.TextBody,
	}
	if recipient != "" {
		wm.Channel = recipient
	}

	if err := slack.PostWebhookContext(ctx, n.webhookURL, wm); err != nil {
		return goerr.Wrap(err, "failed to post Slack webhook")
	}
	return nil
}
