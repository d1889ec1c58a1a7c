package ports

import "context"

// MailMessage is a single outbound email.
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers transactional email. Send is awaited by the triggering
// request; a delivery failure surfaces as an internal error.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
