package auth

import (
	"fmt"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
)

// verificationMail builds the email-verification message. The raw token is
// embedded in the link and transmitted exactly once.
func verificationMail(user *domain.User, verifyURL string) ports.MailMessage {
	text := fmt.Sprintf(
		"Hi %s,\n\nWelcome! Please verify your email by opening the link below:\n\n%s\n\nThe link expires shortly. If you did not create an account, you can ignore this email.\n",
		user.Username, verifyURL,
	)
	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>Welcome! Please verify your email:</p><p><a href="%s">Verify email</a></p><p>The link expires shortly. If you did not create an account, you can ignore this email.</p>`,
		user.Username, verifyURL,
	)
	return ports.MailMessage{
		To:      user.Email,
		Subject: "Please verify your email",
		Text:    text,
		HTML:    html,
	}
}

// passwordResetMail builds the password-reset message.
func passwordResetMail(user *domain.User, resetURL string) ports.MailMessage {
	text := fmt.Sprintf(
		"Hi %s,\n\nWe received a request to reset your password. Open the link below to choose a new one:\n\n%s\n\nThe link expires shortly. If you did not request this, you can ignore this email.\n",
		user.Username, resetURL,
	)
	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>We received a request to reset your password:</p><p><a href="%s">Reset password</a></p><p>The link expires shortly. If you did not request this, you can ignore this email.</p>`,
		user.Username, resetURL,
	)
	return ports.MailMessage{
		To:      user.Email,
		Subject: "Password reset request",
		Text:    text,
		HTML:    html,
	}
}
