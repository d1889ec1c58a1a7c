package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/task"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/http/middleware"
)

// TaskHandler serves the task and subtask routes under a project.
type TaskHandler struct {
	create        *task.Create
	list          *task.List
	get           *task.Get
	update        *task.Update
	delete        *task.Delete
	createSubTask *task.CreateSubTask
	updateSubTask *task.UpdateSubTask
	deleteSubTask *task.DeleteSubTask
	validate      *validator.Validate
	log           zerolog.Logger
}

func NewTaskHandler(
	create *task.Create,
	list *task.List,
	get *task.Get,
	update *task.Update,
	del *task.Delete,
	createSubTask *task.CreateSubTask,
	updateSubTask *task.UpdateSubTask,
	deleteSubTask *task.DeleteSubTask,
	log zerolog.Logger,
) *TaskHandler {
	return &TaskHandler{
		create:        create,
		list:          list,
		get:           get,
		update:        update,
		delete:        del,
		createSubTask: createSubTask,
		updateSubTask: updateSubTask,
		deleteSubTask: deleteSubTask,
		validate:      validator.New(),
		log:           log,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, h.log, apperror.Unauthorized("unauthorized request"))
		return
	}
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var body struct {
		Title       string              `json:"title" validate:"required,min=3,max=256"`
		Description string              `json:"description" validate:"max=2048"`
		AssignedTo  string              `json:"assignedTo"`
		Attachments []domain.Attachment `json:"attachments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	assignedTo, err := optionalObjectID(body.AssignedTo)
	if err != nil {
		writeError(w, h.log, apperror.Validation("invalid assignedTo"))
		return
	}
	created, err := h.create.Execute(r.Context(), task.CreateInput{
		ProjectID:   projectID,
		Title:       body.Title,
		Description: body.Description,
		AssignedTo:  assignedTo,
		CreatedBy:   user.ID,
		Attachments: body.Attachments,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, created, "task created successfully")
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	tasks, err := h.list.Execute(r.Context(), projectID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, tasks, "tasks fetched successfully")
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	taskID, err := objectIDParam(r, "taskId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	detail, err := h.get.Execute(r.Context(), projectID, taskID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, detail, "task fetched successfully")
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	taskID, err := objectIDParam(r, "taskId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var body struct {
		Title       *string             `json:"title" validate:"omitempty,min=3,max=256"`
		Description *string             `json:"description" validate:"omitempty,max=2048"`
		AssignedTo  *string             `json:"assignedTo"`
		Status      *string             `json:"status"`
		Attachments []domain.Attachment `json:"attachments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	input := task.UpdateInput{
		ProjectID:   projectID,
		TaskID:      taskID,
		Title:       body.Title,
		Description: body.Description,
		Attachments: body.Attachments,
	}
	if body.AssignedTo != nil {
		assignedTo, err := optionalObjectID(*body.AssignedTo)
		if err != nil || assignedTo == nil {
			writeError(w, h.log, apperror.Validation("invalid assignedTo"))
			return
		}
		input.AssignedTo = assignedTo
	}
	if body.Status != nil {
		status := domain.TaskStatus(*body.Status)
		input.Status = &status
	}
	updated, err := h.update.Execute(r.Context(), input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, updated, "task updated successfully")
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	taskID, err := objectIDParam(r, "taskId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.delete.Execute(r.Context(), projectID, taskID); err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]interface{}{}, "task deleted successfully")
}

func (h *TaskHandler) CreateSubTask(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, h.log, apperror.Unauthorized("unauthorized request"))
		return
	}
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	taskID, err := objectIDParam(r, "taskId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var body struct {
		Title string `json:"title" validate:"required,min=3,max=256"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	created, err := h.createSubTask.Execute(r.Context(), task.CreateSubTaskInput{
		ProjectID: projectID,
		TaskID:    taskID,
		Title:     body.Title,
		CreatedBy: user.ID,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, created, "subtask created successfully")
}

func (h *TaskHandler) UpdateSubTask(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	subTaskID, err := objectIDParam(r, "subTaskId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var body struct {
		IsCompleted *bool `json:"isCompleted" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	updated, err := h.updateSubTask.Execute(r.Context(), task.UpdateSubTaskInput{
		ProjectID:   projectID,
		SubTaskID:   subTaskID,
		IsCompleted: *body.IsCompleted,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, updated, "subtask updated successfully")
}

func (h *TaskHandler) DeleteSubTask(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	subTaskID, err := objectIDParam(r, "subTaskId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.deleteSubTask.Execute(r.Context(), projectID, subTaskID); err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]interface{}{}, "subtask deleted successfully")
}

// optionalObjectID parses an optional hex id; "" yields nil.
func optionalObjectID(s string) (*primitive.ObjectID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
