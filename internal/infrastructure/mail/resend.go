package mail

import (
	"context"

	"github.com/resend/resend-go/v2"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
)

// ResendMailer implements ports.Mailer on the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

func (m *ResendMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}
	_, err := m.client.Emails.SendWithContext(ctx, params)
	return err
}

var _ ports.Mailer = (*ResendMailer)(nil)
