package project

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// List returns the projects the caller is a member of, each with the caller's
// role and the project's member count.
type List struct {
	projects ports.ProjectRepository
}

func NewList(projects ports.ProjectRepository) *List {
	return &List{projects: projects}
}

func (uc *List) Execute(ctx context.Context, userID primitive.ObjectID) ([]domain.ProjectSummary, error) {
	summaries, err := uc.projects.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("could not list projects", err)
	}
	if summaries == nil {
		summaries = []domain.ProjectSummary{}
	}
	return summaries, nil
}
