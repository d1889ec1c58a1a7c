package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// ForgotPassword issues a password-reset token and emails the reset link.
// Re-requesting overwrites the previous token.
type ForgotPassword struct {
	users   ports.UserRepository
	mailer  ports.Mailer
	baseURL string
	tempTTL time.Duration
}

func NewForgotPassword(users ports.UserRepository, mailer ports.Mailer, baseURL string, tempExpirySecs int64) *ForgotPassword {
	if tempExpirySecs <= 0 {
		tempExpirySecs = DefaultTempTokenExpiry
	}
	return &ForgotPassword{
		users:   users,
		mailer:  mailer,
		baseURL: baseURL,
		tempTTL: time.Duration(tempExpirySecs) * time.Second,
	}
}

func (uc *ForgotPassword) Execute(ctx context.Context, email string) error {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return apperror.Internal("could not look up user", err)
	}
	if user == nil {
		return apperror.NotFound("user does not exist")
	}

	raw, tokenHash, expiry, err := newTemporaryToken(uc.tempTTL)
	if err != nil {
		return apperror.Internal("could not generate reset token", err)
	}
	if err := uc.users.SetForgotPasswordToken(ctx, user.ID, tokenHash, expiry); err != nil {
		return apperror.Internal("could not store reset token", err)
	}

	resetURL := fmt.Sprintf("%s/api/v1/auth/reset-password/%s", uc.baseURL, raw)
	if err := uc.mailer.Send(ctx, passwordResetMail(user, resetURL)); err != nil {
		return apperror.Internal("could not send password reset email", err)
	}
	return nil
}
