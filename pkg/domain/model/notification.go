package model

// NotificationFormat marks how a notification body should be rendered by
// the transport.
type NotificationFormat string

const (
	// FormatMultipartAlternative carries both a plain-text and an HTML body.
	FormatMultipartAlternative NotificationFormat = "multipart/alternative"
	// FormatTextOnly carries only the plain-text body.
	FormatTextOnly NotificationFormat = "text/plain"
)

// Notification is the structured message handed to a Notifier. It is built
// fresh per new release and discarded after the delivery attempt.
type Notification struct {
	Subject  string
	TextBody string
	HTMLBody string
	Format   NotificationFormat
}
