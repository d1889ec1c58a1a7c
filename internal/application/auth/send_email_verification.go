package auth

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// SendEmailVerification re-issues the verification token for an unverified
// user. Overwrites any previous token, invalidating earlier links.
type SendEmailVerification struct {
	users   ports.UserRepository
	mailer  ports.Mailer
	baseURL string
	tempTTL time.Duration
}

func NewSendEmailVerification(users ports.UserRepository, mailer ports.Mailer, baseURL string, tempExpirySecs int64) *SendEmailVerification {
	if tempExpirySecs <= 0 {
		tempExpirySecs = DefaultTempTokenExpiry
	}
	return &SendEmailVerification{
		users:   users,
		mailer:  mailer,
		baseURL: baseURL,
		tempTTL: time.Duration(tempExpirySecs) * time.Second,
	}
}

func (uc *SendEmailVerification) Execute(ctx context.Context, userID primitive.ObjectID) error {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return apperror.Internal("could not look up user", err)
	}
	if user == nil {
		return apperror.NotFound("user does not exist")
	}
	if user.IsEmailVerified {
		return apperror.Conflict("email is already verified")
	}

	raw, tokenHash, expiry, err := newTemporaryToken(uc.tempTTL)
	if err != nil {
		return apperror.Internal("could not generate verification token", err)
	}
	if err := uc.users.SetEmailVerificationToken(ctx, user.ID, tokenHash, expiry); err != nil {
		return apperror.Internal("could not store verification token", err)
	}

	verifyURL := fmt.Sprintf("%s/api/v1/auth/verify-email/%s", uc.baseURL, raw)
	if err := uc.mailer.Send(ctx, verificationMail(user, verifyURL)); err != nil {
		return apperror.Internal("could not send verification email", err)
	}
	return nil
}
