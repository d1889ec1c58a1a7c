package auth

import (
	"context"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type RefreshResult struct {
	AccessToken  string
	RefreshToken string
}

// Refresh rotates the token pair. The presented refresh token must verify and
// must equal the token currently stored on the user record; a token that was
// rotated away or cleared by logout is rejected even if its signature is
// still valid.
type Refresh struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
}

func NewRefresh(users ports.UserRepository, tokens ports.TokenIssuer) *Refresh {
	return &Refresh{users: users, tokens: tokens}
}

func (uc *Refresh) Execute(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized("unauthorized request")
	}
	userID, err := uc.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("invalid refresh token")
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("could not look up user", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("invalid refresh token")
	}
	if user.RefreshToken != refreshToken {
		return nil, apperror.Unauthorized("refresh token is expired or used")
	}

	access, err := uc.tokens.SignAccessToken(user)
	if err != nil {
		return nil, apperror.Internal("could not sign access token", err)
	}
	rotated, err := uc.tokens.SignRefreshToken(user.ID)
	if err != nil {
		return nil, apperror.Internal("could not sign refresh token", err)
	}
	if err := uc.users.SetRefreshToken(ctx, user.ID, rotated); err != nil {
		return nil, apperror.Internal("could not store refresh token", err)
	}

	return &RefreshResult{AccessToken: access, RefreshToken: rotated}, nil
}
