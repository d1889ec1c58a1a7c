package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
)

// LogMailer logs outbound mail instead of sending it. Used in development
// when no mail API key is configured.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	m.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("text", msg.Text).
		Msg("email (log only; configure MAIL_API_KEY for real delivery)")
	return nil
}

var _ ports.Mailer = (*LogMailer)(nil)
