package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// Logout clears the stored refresh token. Idempotent: logging out twice, or
// with no stored token, succeeds.
type Logout struct {
	users ports.UserRepository
}

func NewLogout(users ports.UserRepository) *Logout {
	return &Logout{users: users}
}

func (uc *Logout) Execute(ctx context.Context, userID primitive.ObjectID) error {
	if err := uc.users.ClearRefreshToken(ctx, userID); err != nil {
		return apperror.Internal("could not clear refresh token", err)
	}
	return nil
}
