package note

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// Delete removes a note from a project.
type Delete struct {
	notes ports.NoteRepository
}

func NewDelete(notes ports.NoteRepository) *Delete {
	return &Delete{notes: notes}
}

func (uc *Delete) Execute(ctx context.Context, projectID, noteID primitive.ObjectID) error {
	deleted, err := uc.notes.Delete(ctx, projectID, noteID)
	if err != nil {
		return apperror.Internal("could not delete note", err)
	}
	if !deleted {
		return apperror.NotFound("note not found")
	}
	return nil
}
