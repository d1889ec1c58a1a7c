package note

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// Get fetches a note joined with its project and author. The note must
// belong to the requested project.
type Get struct {
	notes ports.NoteRepository
}

func NewGet(notes ports.NoteRepository) *Get {
	return &Get{notes: notes}
}

func (uc *Get) Execute(ctx context.Context, projectID, noteID primitive.ObjectID) (*domain.NoteDetail, error) {
	detail, err := uc.notes.GetDetail(ctx, projectID, noteID)
	if err != nil {
		return nil, apperror.Internal("could not fetch note", err)
	}
	if detail == nil {
		return nil, apperror.NotFound("note not found")
	}
	return detail, nil
}
