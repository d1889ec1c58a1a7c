package note

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type CreateInput struct {
	ProjectID primitive.ObjectID
	Content   string
	CreatedBy primitive.ObjectID
}

// Create attaches a note to a project.
type Create struct {
	projects ports.ProjectRepository
	notes    ports.NoteRepository
}

func NewCreate(projects ports.ProjectRepository, notes ports.NoteRepository) *Create {
	return &Create{projects: projects, notes: notes}
}

func (uc *Create) Execute(ctx context.Context, input CreateInput) (*domain.ProjectNote, error) {
	project, err := uc.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, apperror.Internal("could not fetch project", err)
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}

	note := &domain.ProjectNote{
		Content:   input.Content,
		Project:   input.ProjectID,
		CreatedBy: input.CreatedBy,
	}
	if err := uc.notes.Create(ctx, note); err != nil {
		return nil, apperror.Internal("could not create note", err)
	}
	return note, nil
}
