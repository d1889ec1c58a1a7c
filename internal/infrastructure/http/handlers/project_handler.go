package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Ravi-kumar178/Project-Management/internal/application/project"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/http/middleware"
)

// ProjectHandler serves the /projects routes.
type ProjectHandler struct {
	create       *project.Create
	list         *project.List
	get          *project.Get
	update       *project.Update
	delete       *project.Delete
	addMember    *project.AddMember
	listMembers  *project.ListMembers
	updateRole   *project.UpdateMemberRole
	removeMember *project.RemoveMember
	validate     *validator.Validate
	log          zerolog.Logger
}

func NewProjectHandler(
	create *project.Create,
	list *project.List,
	get *project.Get,
	update *project.Update,
	del *project.Delete,
	addMember *project.AddMember,
	listMembers *project.ListMembers,
	updateRole *project.UpdateMemberRole,
	removeMember *project.RemoveMember,
	log zerolog.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		create:       create,
		list:         list,
		get:          get,
		update:       update,
		delete:       del,
		addMember:    addMember,
		listMembers:  listMembers,
		updateRole:   updateRole,
		removeMember: removeMember,
		validate:     validator.New(),
		log:          log,
	}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, h.log, apperror.Unauthorized("unauthorized request"))
		return
	}
	var body struct {
		Name        string `json:"name" validate:"required,min=3,max=128"`
		Description string `json:"description" validate:"max=1024"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	created, err := h.create.Execute(r.Context(), project.CreateInput{
		Name:        body.Name,
		Description: body.Description,
		CreatedBy:   user.ID,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, created, "project created successfully")
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, h.log, apperror.Unauthorized("unauthorized request"))
		return
	}
	projects, err := h.list.Execute(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, projects, "projects fetched successfully")
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	p, err := h.get.Execute(r.Context(), projectID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, p, "project fetched successfully")
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var body struct {
		Name        string `json:"name" validate:"required,min=3,max=128"`
		Description string `json:"description" validate:"max=1024"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	updated, err := h.update.Execute(r.Context(), project.UpdateInput{
		ProjectID:   projectID,
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, updated, "project updated successfully")
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.delete.Execute(r.Context(), projectID); err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]interface{}{}, "project deleted successfully")
}

func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var body struct {
		Email string `json:"email" validate:"required,email,max=254"`
		Role  string `json:"role" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	member, err := h.addMember.Execute(r.Context(), project.AddMemberInput{
		ProjectID: projectID,
		Email:     SanitizeEmail(body.Email),
		Role:      domain.Role(body.Role),
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, member, "member added to project successfully")
}

func (h *ProjectHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	members, err := h.listMembers.Execute(r.Context(), projectID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, members, "project members fetched successfully")
}

func (h *ProjectHandler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	userID, err := objectIDParam(r, "userId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var body struct {
		Role string `json:"newRole" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	member, err := h.updateRole.Execute(r.Context(), project.UpdateMemberRoleInput{
		ProjectID: projectID,
		UserID:    userID,
		Role:      domain.Role(body.Role),
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, member, "member role updated successfully")
}

func (h *ProjectHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	userID, err := objectIDParam(r, "userId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.removeMember.Execute(r.Context(), projectID, userID); err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]interface{}{}, "member removed from project successfully")
}
