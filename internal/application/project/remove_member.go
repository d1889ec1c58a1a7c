package project

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// RemoveMember deletes a membership row.
type RemoveMember struct {
	members ports.MembershipRepository
}

func NewRemoveMember(members ports.MembershipRepository) *RemoveMember {
	return &RemoveMember{members: members}
}

func (uc *RemoveMember) Execute(ctx context.Context, projectID, userID primitive.ObjectID) error {
	removed, err := uc.members.Delete(ctx, projectID, userID)
	if err != nil {
		return apperror.Internal("could not remove project member", err)
	}
	if !removed {
		return apperror.NotFound("project member not found")
	}
	return nil
}
