package note

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// List returns every note of a project.
type List struct {
	projects ports.ProjectRepository
	notes    ports.NoteRepository
}

func NewList(projects ports.ProjectRepository, notes ports.NoteRepository) *List {
	return &List{projects: projects, notes: notes}
}

func (uc *List) Execute(ctx context.Context, projectID primitive.ObjectID) ([]domain.ProjectNote, error) {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.Internal("could not fetch project", err)
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}
	notes, err := uc.notes.ListByProject(ctx, projectID)
	if err != nil {
		return nil, apperror.Internal("could not list notes", err)
	}
	if notes == nil {
		notes = []domain.ProjectNote{}
	}
	return notes, nil
}
