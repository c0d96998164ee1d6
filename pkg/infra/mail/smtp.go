package mail

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/relwatch/pkg/domain/model"
	gomail "github.com/wneessen/go-mail"
)

type notifier struct {
	client *gomail.Client
	from   string
}

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewNotifier creates an email Notifier delivering over SMTP. Credentials
// are optional; without them the connection is unauthenticated (e.g. a
// local relay).
func NewNotifier(cfg Config) (interfaces.Notifier, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create SMTP client", goerr.V("host", cfg.Host))
	}

	return &notifier{
		client: client,
		from:   cfg.From,
	}, nil
}

// Deliver sends the notification as a multipart/alternative email with a
// plain-text part and, when present, an HTML part.
func (n *notifier) Deliver(ctx context.Context, recipient string, msg *model.Notification) error {
	m := gomail.NewMsg()
	if err := m.From(n.from); err != nil {
		return goerr.Wrap(err, "invalid sender address", goerr.V("from", n.from))
	}
	if err := m.To(recipient); err != nil {
		return goerr.Wrap(err, "invalid recipient address", goerr.V("to", recipient))
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.TextBody)
	if msg.Format == model.FormatMultipartAlternative && msg.HTMLBody != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTMLBody)
	}

	if err := n.client.DialAndSendWithContext(ctx, m); err != nil {
		return goerr.Wrap(err, "failed to send email", goerr.V("to", recipient))
	}

	ctxlog.From(ctx).Debug("Email sent", "to", recipient, "subject", msg.Subject)
	return nil
}
