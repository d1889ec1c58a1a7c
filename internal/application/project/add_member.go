package project

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type AddMemberInput struct {
	ProjectID primitive.ObjectID
	Email     string
	Role      domain.Role
}

// AddMember enrolls an existing user in a project by email. The target user
// must already have an account; adding someone twice is a conflict.
type AddMember struct {
	projects ports.ProjectRepository
	members  ports.MembershipRepository
	users    ports.UserRepository
}

func NewAddMember(projects ports.ProjectRepository, members ports.MembershipRepository, users ports.UserRepository) *AddMember {
	return &AddMember{projects: projects, members: members, users: users}
}

func (uc *AddMember) Execute(ctx context.Context, input AddMemberInput) (*domain.ProjectMember, error) {
	if !domain.ValidRole(input.Role) {
		return nil, apperror.Validation("invalid role")
	}
	project, err := uc.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, apperror.Internal("could not fetch project", err)
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal("could not look up user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user does not exist")
	}

	member := &domain.ProjectMember{
		Project: project.ID,
		User:    user.ID,
		Role:    input.Role,
	}
	if err := uc.members.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}
