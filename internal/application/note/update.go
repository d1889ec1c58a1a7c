package note

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// Update replaces a note's content.
type Update struct {
	notes ports.NoteRepository
}

func NewUpdate(notes ports.NoteRepository) *Update {
	return &Update{notes: notes}
}

func (uc *Update) Execute(ctx context.Context, projectID, noteID primitive.ObjectID, content string) error {
	updated, err := uc.notes.Update(ctx, projectID, noteID, content)
	if err != nil {
		return apperror.Internal("could not update note", err)
	}
	if !updated {
		return apperror.NotFound("note not found")
	}
	return nil
}
