package task

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type CreateInput struct {
	ProjectID   primitive.ObjectID
	Title       string
	Description string
	AssignedTo  *primitive.ObjectID
	CreatedBy   primitive.ObjectID
	Attachments []domain.Attachment
}

// Create adds a task to a project. The assignee, when given, must be an
// existing user. New tasks start in the todo state.
type Create struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	tasks    ports.TaskRepository
}

func NewCreate(projects ports.ProjectRepository, users ports.UserRepository, tasks ports.TaskRepository) *Create {
	return &Create{projects: projects, users: users, tasks: tasks}
}

func (uc *Create) Execute(ctx context.Context, input CreateInput) (*domain.Task, error) {
	project, err := uc.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, apperror.Internal("could not fetch project", err)
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
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

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Project:     input.ProjectID,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   input.CreatedBy,
		Status:      domain.StatusTodo,
		Attachments: input.Attachments,
	}
	if err := uc.tasks.Create(ctx, task); err != nil {
		return nil, apperror.Internal("could not create task", err)
	}
	return task, nil
}
