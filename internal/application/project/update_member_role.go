package project

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type UpdateMemberRoleInput struct {
	ProjectID primitive.ObjectID
	UserID    primitive.ObjectID
	Role      domain.Role
}

// UpdateMemberRole changes an existing member's role. The role must come from
// the closed role set.
type UpdateMemberRole struct {
	members ports.MembershipRepository
}

func NewUpdateMemberRole(members ports.MembershipRepository) *UpdateMemberRole {
	return &UpdateMemberRole{members: members}
}

func (uc *UpdateMemberRole) Execute(ctx context.Context, input UpdateMemberRoleInput) (*domain.ProjectMember, error) {
	if !domain.ValidRole(input.Role) {
		return nil, apperror.Validation("invalid role")
	}
	updated, err := uc.members.UpdateRole(ctx, input.ProjectID, input.UserID, input.Role)
	if err != nil {
		return nil, apperror.Internal("could not update member role", err)
	}
	if !updated {
		return nil, apperror.NotFound("project member not found")
	}
	member, err := uc.members.Get(ctx, input.ProjectID, input.UserID)
	if err != nil {
		return nil, apperror.Internal("could not fetch project member", err)
	}
	if member == nil {
		return nil, apperror.NotFound("project member not found")
	}
	return member, nil
}
