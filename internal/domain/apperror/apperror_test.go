package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryKind(t *testing.T) {
	require.Equal(t, KindValidation, Validation("bad input").Kind)
	require.Equal(t, KindNotFound, NotFound("missing").Kind)
	require.Equal(t, KindUnauthorized, Unauthorized("denied").Kind)
	require.Equal(t, KindForbidden, Forbidden("nope").Kind)
	require.Equal(t, KindConflict, Conflict("duplicate").Kind)
	require.Equal(t, KindInternal, Internal("boom", nil).Kind)
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("could not reach database", cause)

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "could not reach database")
	require.Contains(t, err.Error(), "connection refused")
}

func TestFrom(t *testing.T) {
	typed := NotFound("missing")
	require.Same(t, typed, From(typed))

	wrapped := fmt.Errorf("operation failed: %w", typed)
	require.Equal(t, KindNotFound, From(wrapped).Kind)

	unknown := errors.New("weird")
	got := From(unknown)
	require.Equal(t, KindInternal, got.Kind)
	require.ErrorIs(t, got, unknown)
}

func TestIsKind(t *testing.T) {
	require.True(t, IsKind(Conflict("dup"), KindConflict))
	require.False(t, IsKind(Conflict("dup"), KindNotFound))
	require.True(t, IsKind(errors.New("anything"), KindInternal))
}

func TestValidationFields(t *testing.T) {
	err := Validation("invalid request body",
		FieldError{Field: "email", Message: "failed on the 'email' rule"},
	)
	require.Len(t, err.Fields, 1)
	require.Equal(t, "email", err.Fields[0].Field)
}

func TestKindWireNames(t *testing.T) {
	require.Equal(t, "validation_error", KindValidation.String())
	require.Equal(t, "not_found", KindNotFound.String())
	require.Equal(t, "unauthorized", KindUnauthorized.String())
	require.Equal(t, "forbidden", KindForbidden.String())
	require.Equal(t, "conflict", KindConflict.String())
	require.Equal(t, "internal", KindInternal.String())
}
