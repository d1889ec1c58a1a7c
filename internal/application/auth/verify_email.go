package auth

import (
	"context"
	"time"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type VerifyEmailResult struct {
	IsEmailVerified bool
}

// VerifyEmail consumes an email-verification token. The raw token from the
// link is hashed and matched against the stored digest; consumption is atomic
// and single use. Unknown and expired tokens are not distinguishable.
type VerifyEmail struct {
	users ports.UserRepository
}

func NewVerifyEmail(users ports.UserRepository) *VerifyEmail {
	return &VerifyEmail{users: users}
}

func (uc *VerifyEmail) Execute(ctx context.Context, rawToken string) (*VerifyEmailResult, error) {
	if rawToken == "" {
		return nil, apperror.Unauthorized("email verification token is missing")
	}
	user, err := uc.users.ConsumeEmailVerificationToken(ctx, sha256Hash(rawToken), time.Now())
	if err != nil {
		return nil, apperror.Internal("could not verify email", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("token is invalid or expired")
	}
	return &VerifyEmailResult{IsEmailVerified: true}, nil
}
