package project

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type CreateInput struct {
	Name        string
	Description string
	CreatedBy   primitive.ObjectID
}

// Create creates a project and enrolls the creator as its admin. The admin
// membership is written immediately after the project so the creator is never
// locked out of a project they own.
type Create struct {
	projects ports.ProjectRepository
	members  ports.MembershipRepository
}

func NewCreate(projects ports.ProjectRepository, members ports.MembershipRepository) *Create {
	return &Create{projects: projects, members: members}
}

func (uc *Create) Execute(ctx context.Context, input CreateInput) (*domain.Project, error) {
	project := &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
	}
	if err := uc.projects.Create(ctx, project); err != nil {
		return nil, apperror.Internal("could not create project", err)
	}
	member := &domain.ProjectMember{
		Project: project.ID,
		User:    input.CreatedBy,
		Role:    domain.RoleAdmin,
	}
	if err := uc.members.Create(ctx, member); err != nil {
		return nil, apperror.Internal("could not enroll project creator", err)
	}
	return project, nil
}
