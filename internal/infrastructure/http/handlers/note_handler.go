package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Ravi-kumar178/Project-Management/internal/application/note"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/http/middleware"
)

// NoteHandler serves the note routes under a project.
type NoteHandler struct {
	create   *note.Create
	list     *note.List
	get      *note.Get
	update   *note.Update
	delete   *note.Delete
	validate *validator.Validate
	log      zerolog.Logger
}

func NewNoteHandler(
	create *note.Create,
	list *note.List,
	get *note.Get,
	update *note.Update,
	del *note.Delete,
	log zerolog.Logger,
) *NoteHandler {
	return &NoteHandler{
		create:   create,
		list:     list,
		get:      get,
		update:   update,
		delete:   del,
		validate: validator.New(),
		log:      log,
	}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
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
		Content string `json:"content" validate:"required,max=4096"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	created, err := h.create.Execute(r.Context(), note.CreateInput{
		ProjectID: projectID,
		Content:   body.Content,
		CreatedBy: user.ID,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, created, "note created successfully")
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	notes, err := h.list.Execute(r.Context(), projectID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, notes, "notes fetched successfully")
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	noteID, err := objectIDParam(r, "noteId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	detail, err := h.get.Execute(r.Context(), projectID, noteID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, detail, "note fetched successfully")
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	noteID, err := objectIDParam(r, "noteId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var body struct {
		Content string `json:"content" validate:"required,max=4096"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	if err := h.update.Execute(r.Context(), projectID, noteID, body.Content); err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]interface{}{}, "note updated successfully")
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, err := objectIDParam(r, "projectId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	noteID, err := objectIDParam(r, "noteId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.delete.Execute(r.Context(), projectID, noteID); err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]interface{}{}, "note deleted successfully")
}
