package task

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// Delete removes a task from a project.
type Delete struct {
	tasks ports.TaskRepository
}

func NewDelete(tasks ports.TaskRepository) *Delete {
	return &Delete{tasks: tasks}
}

func (uc *Delete) Execute(ctx context.Context, projectID, taskID primitive.ObjectID) error {
	deleted, err := uc.tasks.Delete(ctx, projectID, taskID)
	if err != nil {
		return apperror.Internal("could not delete task", err)
	}
	if !deleted {
		return apperror.NotFound("task not found")
	}
	return nil
}
