package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// writeData sends the success envelope { statusCode, data, message, success }.
func writeData(w http.ResponseWriter, code int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"statusCode": code,
		"data":       data,
		"message":    message,
		"success":    true,
	})
}

// writeError maps the error's kind to a status code and sends the error
// envelope. Internal causes are logged and replaced with a generic message so
// they never reach clients.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	e := apperror.From(err)
	code := statusOf(e.Kind)
	message := e.Message
	if e.Kind == apperror.KindInternal {
		log.Error().Err(e).Msg("request failed")
		message = "something went wrong"
	}
	fields := e.Fields
	if fields == nil {
		fields = []apperror.FieldError{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"statusCode": code,
		"message":    message,
		"errors":     fields,
		"success":    false,
	})
}

func statusOf(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
