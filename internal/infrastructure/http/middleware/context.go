package middleware

import (
	"context"

	"github.com/Ravi-kumar178/Project-Management/internal/domain"
)

type contextKey string

const (
	userContextKey contextKey = "user"
	roleContextKey contextKey = "projectRole"
)

// WithUser injects the authenticated user into the context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user from the context, or nil.
func UserFromContext(ctx context.Context) *domain.User {
	v := ctx.Value(userContextKey)
	if v == nil {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

// WithProjectRole injects the caller's role on the routed project.
func WithProjectRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, roleContextKey, role)
}

// ProjectRoleFromContext returns the caller's project role, or "" when the
// request did not pass through RequireProjectRole.
func ProjectRoleFromContext(ctx context.Context) domain.Role {
	v := ctx.Value(roleContextKey)
	if v == nil {
		return ""
	}
	r, _ := v.(domain.Role)
	return r
}
