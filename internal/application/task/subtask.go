package task

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

type CreateSubTaskInput struct {
	ProjectID primitive.ObjectID
	TaskID    primitive.ObjectID
	Title     string
	CreatedBy primitive.ObjectID
}

// CreateSubTask adds a checklist item under a task. The task must belong to
// the requested project.
type CreateSubTask struct {
	tasks    ports.TaskRepository
	subTasks ports.SubTaskRepository
}

func NewCreateSubTask(tasks ports.TaskRepository, subTasks ports.SubTaskRepository) *CreateSubTask {
	return &CreateSubTask{tasks: tasks, subTasks: subTasks}
}

func (uc *CreateSubTask) Execute(ctx context.Context, input CreateSubTaskInput) (*domain.SubTask, error) {
	task, err := uc.tasks.GetByID(ctx, input.ProjectID, input.TaskID)
	if err != nil {
		return nil, apperror.Internal("could not fetch task", err)
	}
	if task == nil {
		return nil, apperror.NotFound("task not found")
	}

	subTask := &domain.SubTask{
		Title:     input.Title,
		Task:      task.ID,
		CreatedBy: input.CreatedBy,
	}
	if err := uc.subTasks.Create(ctx, subTask); err != nil {
		return nil, apperror.Internal("could not create subtask", err)
	}
	return subTask, nil
}

type UpdateSubTaskInput struct {
	ProjectID   primitive.ObjectID
	SubTaskID   primitive.ObjectID
	IsCompleted bool
}

// UpdateSubTask toggles a subtask's completion flag. The subtask's parent
// task must belong to the requested project.
type UpdateSubTask struct {
	tasks    ports.TaskRepository
	subTasks ports.SubTaskRepository
}

func NewUpdateSubTask(tasks ports.TaskRepository, subTasks ports.SubTaskRepository) *UpdateSubTask {
	return &UpdateSubTask{tasks: tasks, subTasks: subTasks}
}

func (uc *UpdateSubTask) Execute(ctx context.Context, input UpdateSubTaskInput) (*domain.SubTask, error) {
	if err := requireSubTaskInProject(ctx, uc.tasks, uc.subTasks, input.ProjectID, input.SubTaskID); err != nil {
		return nil, err
	}
	subTask, err := uc.subTasks.SetCompleted(ctx, input.SubTaskID, input.IsCompleted)
	if err != nil {
		return nil, apperror.Internal("could not update subtask", err)
	}
	if subTask == nil {
		return nil, apperror.NotFound("subtask not found")
	}
	return subTask, nil
}

// DeleteSubTask removes a subtask after checking it belongs to the requested
// project through its parent task.
type DeleteSubTask struct {
	tasks    ports.TaskRepository
	subTasks ports.SubTaskRepository
}

func NewDeleteSubTask(tasks ports.TaskRepository, subTasks ports.SubTaskRepository) *DeleteSubTask {
	return &DeleteSubTask{tasks: tasks, subTasks: subTasks}
}

func (uc *DeleteSubTask) Execute(ctx context.Context, projectID, subTaskID primitive.ObjectID) error {
	if err := requireSubTaskInProject(ctx, uc.tasks, uc.subTasks, projectID, subTaskID); err != nil {
		return err
	}
	deleted, err := uc.subTasks.Delete(ctx, subTaskID)
	if err != nil {
		return apperror.Internal("could not delete subtask", err)
	}
	if !deleted {
		return apperror.NotFound("subtask not found")
	}
	return nil
}

// requireSubTaskInProject resolves the subtask's parent task scoped to the
// project and fails with not-found when either link is missing.
func requireSubTaskInProject(ctx context.Context, tasks ports.TaskRepository, subTasks ports.SubTaskRepository, projectID, subTaskID primitive.ObjectID) error {
	subTask, err := subTasks.GetByID(ctx, subTaskID)
	if err != nil {
		return apperror.Internal("could not fetch subtask", err)
	}
	if subTask == nil {
		return apperror.NotFound("subtask not found")
	}
	task, err := tasks.GetByID(ctx, projectID, subTask.Task)
	if err != nil {
		return apperror.Internal("could not fetch task", err)
	}
	if task == nil {
		return apperror.NotFound("subtask not found")
	}
	return nil
}
