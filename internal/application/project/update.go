package project

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type UpdateInput struct {
	ProjectID   primitive.ObjectID
	Name        string
	Description string
}

// Update replaces a project's name and description.
type Update struct {
	projects ports.ProjectRepository
}

func NewUpdate(projects ports.ProjectRepository) *Update {
	return &Update{projects: projects}
}

func (uc *Update) Execute(ctx context.Context, input UpdateInput) (*domain.Project, error) {
	project, err := uc.projects.Update(ctx, input.ProjectID, input.Name, input.Description)
	if err != nil {
		return nil, apperror.Internal("could not update project", err)
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}
	return project, nil
}
