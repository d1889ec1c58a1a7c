package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Fullname string
}

type RegisterResult struct {
	User domain.PublicUser
}

// Register creates an unverified user and sends the verification email. The
// email is awaited: a delivery failure fails the registration response (the
// user may re-request verification later).
type Register struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	mailer  ports.Mailer
	baseURL string
	tempTTL time.Duration
}

func NewRegister(users ports.UserRepository, hasher ports.PasswordHasher, mailer ports.Mailer, baseURL string, tempExpirySecs int64) *Register {
	if tempExpirySecs <= 0 {
		tempExpirySecs = DefaultTempTokenExpiry
	}
	return &Register{
		users:   users,
		hasher:  hasher,
		mailer:  mailer,
		baseURL: baseURL,
		tempTTL: time.Duration(tempExpirySecs) * time.Second,
	}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	existing, err := uc.users.GetByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, apperror.Internal("could not look up user", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("user with same email or username already exists")
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal("could not hash password", err)
	}
	user := &domain.User{
		Avatar:   domain.Avatar{URL: domain.DefaultAvatarURL},
		Username: input.Username,
		Email:    input.Email,
		Fullname: input.Fullname,
		Password: hash,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	raw, tokenHash, expiry, err := newTemporaryToken(uc.tempTTL)
	if err != nil {
		return nil, apperror.Internal("could not generate verification token", err)
	}
	if err := uc.users.SetEmailVerificationToken(ctx, user.ID, tokenHash, expiry); err != nil {
		return nil, apperror.Internal("could not store verification token", err)
	}

	verifyURL := fmt.Sprintf("%s/api/v1/auth/verify-email/%s", uc.baseURL, raw)
	msg := verificationMail(user, verifyURL)
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return nil, apperror.Internal("could not send verification email", err)
	}

	return &RegisterResult{User: user.Public()}, nil
}
