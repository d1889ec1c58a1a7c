package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/domain"
)

type stubMembers struct {
	member *domain.ProjectMember
}

func (s *stubMembers) Create(ctx context.Context, member *domain.ProjectMember) error { return nil }

func (s *stubMembers) Get(ctx context.Context, projectID, userID primitive.ObjectID) (*domain.ProjectMember, error) {
	if s.member != nil && s.member.Project == projectID && s.member.User == userID {
		return s.member, nil
	}
	return nil, nil
}

func (s *stubMembers) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]domain.MemberInfo, error) {
	return nil, nil
}

func (s *stubMembers) UpdateRole(ctx context.Context, projectID, userID primitive.ObjectID, role domain.Role) (bool, error) {
	return false, nil
}

func (s *stubMembers) Delete(ctx context.Context, projectID, userID primitive.ObjectID) (bool, error) {
	return false, nil
}

func (s *stubMembers) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	return nil
}

func guardRequest(t *testing.T, guard *ProjectGuard, user *domain.User, projectID string, allowed ...domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.With(guard.RequireRole(allowed...)).Get("/projects/{projectId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/projects/"+projectID, nil)
	if user != nil {
		req = req.WithContext(WithUser(req.Context(), user))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireRole(t *testing.T) {
	projectID := primitive.NewObjectID()
	user := &domain.User{ID: primitive.NewObjectID(), Username: "alice"}

	t.Run("member with allowed role passes", func(t *testing.T) {
		guard := NewProjectGuard(&stubMembers{member: &domain.ProjectMember{
			Project: projectID, User: user.ID, Role: domain.RoleProjectAdmin,
		}})
		rec := guardRequest(t, guard, user, projectID.Hex(), domain.RoleAdmin, domain.RoleProjectAdmin)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("member with disallowed role is forbidden", func(t *testing.T) {
		guard := NewProjectGuard(&stubMembers{member: &domain.ProjectMember{
			Project: projectID, User: user.ID, Role: domain.RoleMember,
		}})
		rec := guardRequest(t, guard, user, projectID.Hex(), domain.RoleAdmin)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("non-member is forbidden", func(t *testing.T) {
		guard := NewProjectGuard(&stubMembers{})
		rec := guardRequest(t, guard, user, projectID.Hex(), domain.RoleAdmin, domain.RoleProjectAdmin, domain.RoleMember)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing user is unauthorized", func(t *testing.T) {
		guard := NewProjectGuard(&stubMembers{})
		rec := guardRequest(t, guard, nil, projectID.Hex(), domain.RoleAdmin)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed project id is a bad request", func(t *testing.T) {
		guard := NewProjectGuard(&stubMembers{})
		rec := guardRequest(t, guard, user, "not-an-id", domain.RoleAdmin)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRoleIn(t *testing.T) {
	require.True(t, domain.RoleAdmin.In(domain.RoleAdmin, domain.RoleProjectAdmin))
	require.False(t, domain.RoleMember.In(domain.RoleAdmin, domain.RoleProjectAdmin))
}
