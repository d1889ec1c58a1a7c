package project

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// Get fetches a single project by id.
type Get struct {
	projects ports.ProjectRepository
}

func NewGet(projects ports.ProjectRepository) *Get {
	return &Get{projects: projects}
}

func (uc *Get) Execute(ctx context.Context, projectID primitive.ObjectID) (*domain.Project, error) {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.Internal("could not fetch project", err)
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}
	return project, nil
}
