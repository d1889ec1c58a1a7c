package task

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type UpdateInput struct {
	ProjectID   primitive.ObjectID
	TaskID      primitive.ObjectID
	Title       *string
	Description *string
	AssignedTo  *primitive.ObjectID
	Status      *domain.TaskStatus
	Attachments []domain.Attachment
}

// Update applies a partial update to a task. Nil fields stay unchanged;
// attachments are appended, never replaced. A new status must come from the
// closed status set and a new assignee must be an existing user.
type Update struct {
	users ports.UserRepository
	tasks ports.TaskRepository
}

func NewUpdate(users ports.UserRepository, tasks ports.TaskRepository) *Update {
	return &Update{users: users, tasks: tasks}
}

func (uc *Update) Execute(ctx context.Context, input UpdateInput) (*domain.Task, error) {
	if input.Status != nil && !domain.ValidTaskStatus(*input.Status) {
		return nil, apperror.Validation("invalid task status")
	}
	if input.AssignedTo != nil {
		assignee, err := uc.users.GetByID(ctx, *input.AssignedTo)
		if err != nil {
			return nil, apperror.Internal("could not look up assignee", err)
		}
		if assignee == nil {
			return nil, apperror.NotFound("assigned user does not exist")
		}
	}

	fields := ports.TaskUpdate{
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		Status:      input.Status,
		Attachments: input.Attachments,
	}
	updated, err := uc.tasks.Update(ctx, input.ProjectID, input.TaskID, fields)
	if err != nil {
		return nil, apperror.Internal("could not update task", err)
	}
	if !updated {
		return nil, apperror.NotFound("task not found")
	}
	task, err := uc.tasks.GetByID(ctx, input.ProjectID, input.TaskID)
	if err != nil {
		return nil, apperror.Internal("could not fetch task", err)
	}
	if task == nil {
		return nil, apperror.NotFound("task not found")
	}
	return task, nil
}
