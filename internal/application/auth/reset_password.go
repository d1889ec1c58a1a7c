package auth

import (
	"context"
	"time"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// ResetPassword consumes a password-reset token and installs the new
// password. The token hash match, expiry check, token clear, and password
// write happen in one atomic update; a second attempt with the same token
// fails.
type ResetPassword struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewResetPassword(users ports.UserRepository, hasher ports.PasswordHasher) *ResetPassword {
	return &ResetPassword{users: users, hasher: hasher}
}

func (uc *ResetPassword) Execute(ctx context.Context, rawToken, newPassword string) error {
	if rawToken == "" {
		return apperror.Unauthorized("password reset token is missing")
	}
	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return apperror.Internal("could not hash password", err)
	}
	user, err := uc.users.ConsumeForgotPasswordToken(ctx, sha256Hash(rawToken), time.Now(), hash)
	if err != nil {
		return apperror.Internal("could not reset password", err)
	}
	if user == nil {
		return apperror.Unauthorized("token is invalid or expired")
	}
	return nil
}
