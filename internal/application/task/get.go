package task

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// Get fetches a task joined with its assignee and subtasks. The task must
// belong to the requested project.
type Get struct {
	tasks ports.TaskRepository
}

func NewGet(tasks ports.TaskRepository) *Get {
	return &Get{tasks: tasks}
}

func (uc *Get) Execute(ctx context.Context, projectID, taskID primitive.ObjectID) (*domain.TaskDetail, error) {
	detail, err := uc.tasks.GetDetail(ctx, projectID, taskID)
	if err != nil {
		return nil, apperror.Internal("could not fetch task", err)
	}
	if detail == nil {
		return nil, apperror.NotFound("task not found")
	}
	return detail, nil
}
