package auth

import (
	"context"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User         domain.PublicUser
	AccessToken  string
	RefreshToken string
}

// Login authenticates by email and password and mints a fresh token pair.
// The refresh token is stored on the user record so that rotation can detect
// stale or revoked tokens.
type Login struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *Login {
	return &Login{users: users, hasher: hasher, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal("could not look up user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user does not exist")
	}
	if !uc.hasher.Verify(input.Password, user.Password) {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	access, err := uc.tokens.SignAccessToken(user)
	if err != nil {
		return nil, apperror.Internal("could not sign access token", err)
	}
	refresh, err := uc.tokens.SignRefreshToken(user.ID)
	if err != nil {
		return nil, apperror.Internal("could not sign refresh token", err)
	}
	if err := uc.users.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, apperror.Internal("could not store refresh token", err)
	}

	return &LoginResult{
		User:         user.Public(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
