package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

func TestWriteData_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeData(rec, http.StatusCreated, map[string]string{"name": "p1"}, "project created successfully")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		StatusCode int               `json:"statusCode"`
		Data       map[string]string `json:"data"`
		Message    string            `json:"message"`
		Success    bool              `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, http.StatusCreated, body.StatusCode)
	require.Equal(t, "p1", body.Data["name"])
	require.Equal(t, "project created successfully", body.Message)
	require.True(t, body.Success)
}

func TestWriteError_KindToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperror.Validation("bad"), http.StatusBadRequest},
		{apperror.NotFound("missing"), http.StatusNotFound},
		{apperror.Unauthorized("denied"), http.StatusUnauthorized},
		{apperror.Forbidden("nope"), http.StatusForbidden},
		{apperror.Conflict("duplicate"), http.StatusConflict},
		{apperror.Internal("boom", errors.New("cause")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, zerolog.Nop(), tc.err)
		require.Equal(t, tc.want, rec.Code)

		var body struct {
			StatusCode int                   `json:"statusCode"`
			Message    string                `json:"message"`
			Errors     []apperror.FieldError `json:"errors"`
			Success    bool                  `json:"success"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, tc.want, body.StatusCode)
		require.False(t, body.Success)
		require.NotNil(t, body.Errors)
	}
}

func TestWriteError_InternalCauseNeverLeaks(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, zerolog.Nop(), apperror.Internal("could not reach database", errors.New("dial tcp: connection refused")))

	require.NotContains(t, rec.Body.String(), "connection refused")
	require.NotContains(t, rec.Body.String(), "could not reach database")
	require.Contains(t, rec.Body.String(), "something went wrong")
}

func TestWriteError_ValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, zerolog.Nop(), apperror.Validation("invalid request body",
		apperror.FieldError{Field: "email", Message: "failed on the 'email' rule"},
	))

	var body struct {
		Errors []apperror.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	require.Equal(t, "email", body.Errors[0].Field)
}

func TestSanitizeEmail(t *testing.T) {
	require.Equal(t, "alice@example.com", SanitizeEmail("  Alice@Example.COM "))
	require.Equal(t, "", SanitizeEmail(string(make([]byte, MaxEmailLength+1))))
}
