package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type ChangePasswordInput struct {
	UserID      primitive.ObjectID
	OldPassword string
	NewPassword string
}

// ChangePassword replaces the password of an authenticated user after
// verifying the current one.
type ChangePassword struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewChangePassword(users ports.UserRepository, hasher ports.PasswordHasher) *ChangePassword {
	return &ChangePassword{users: users, hasher: hasher}
}

func (uc *ChangePassword) Execute(ctx context.Context, input ChangePasswordInput) error {
	user, err := uc.users.GetByID(ctx, input.UserID)
	if err != nil {
		return apperror.Internal("could not look up user", err)
	}
	if user == nil {
		return apperror.NotFound("user does not exist")
	}
	if !uc.hasher.Verify(input.OldPassword, user.Password) {
		return apperror.Unauthorized("old password is incorrect")
	}

	hash, err := uc.hasher.Hash(input.NewPassword)
	if err != nil {
		return apperror.Internal("could not hash password", err)
	}
	if err := uc.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return apperror.Internal("could not update password", err)
	}
	return nil
}
