package task

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// List returns every task of a project.
type List struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

func NewList(projects ports.ProjectRepository, tasks ports.TaskRepository) *List {
	return &List{projects: projects, tasks: tasks}
}

func (uc *List) Execute(ctx context.Context, projectID primitive.ObjectID) ([]domain.Task, error) {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.Internal("could not fetch project", err)
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}
	tasks, err := uc.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, apperror.Internal("could not list tasks", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}
