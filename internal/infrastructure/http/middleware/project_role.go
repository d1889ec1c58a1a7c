package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
)

// ProjectGuard authorizes project-scoped routes. The caller's membership is
// loaded fresh on every request; roles are never cached across requests, so
// a role change or removal takes effect immediately.
type ProjectGuard struct {
	members ports.MembershipRepository
}

func NewProjectGuard(members ports.MembershipRepository) *ProjectGuard {
	return &ProjectGuard{members: members}
}

// RequireRole allows the request through only when the caller is a member of
// the routed project with one of the allowed roles. Non-members and members
// with a different role both get 403.
func (g *ProjectGuard) RequireRole(allowed ...domain.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil {
				writeErr(w, http.StatusUnauthorized, "unauthorized request")
				return
			}
			projectID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "projectId"))
			if err != nil {
				writeErr(w, http.StatusBadRequest, "invalid project id")
				return
			}
			member, err := g.members.Get(r.Context(), projectID, user.ID)
			if err != nil {
				writeErr(w, http.StatusInternalServerError, "something went wrong")
				return
			}
			if member == nil {
				writeErr(w, http.StatusForbidden, "you are not a member of this project")
				return
			}
			if !member.Role.In(allowed...) {
				writeErr(w, http.StatusForbidden, "you do not have permission to perform this action")
				return
			}
			ctx := WithProjectRole(r.Context(), member.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
