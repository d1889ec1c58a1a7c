package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// Validation limits.
const (
	MaxEmailLength    = 254
	MaxUsernameLength = 64
	MaxPasswordLength = 128
)

// SanitizeEmail trims and lowercases email; returns empty if over max length.
func SanitizeEmail(email string) string {
	s := strings.TrimSpace(strings.ToLower(email))
	if len(s) > MaxEmailLength {
		return ""
	}
	return s
}

// SanitizeUsername trims and lowercases username; returns empty if over max
// length.
func SanitizeUsername(username string) string {
	s := strings.TrimSpace(strings.ToLower(username))
	if len(s) > MaxUsernameLength {
		return ""
	}
	return s
}

// validationError converts validator failures into the field-error list of
// the error envelope.
func validationError(err error) *apperror.Error {
	var fields []apperror.FieldError
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields = append(fields, apperror.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: "failed on the '" + fe.Tag() + "' rule",
			})
		}
	}
	return apperror.Validation("invalid request body", fields...)
}
