package middleware

import (
	"net/http"
	"strings"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
)

// AuthValidator verifies the access token and loads the caller into context
// (see UserFromContext). The token comes from the accessToken cookie or the
// Authorization header; a token whose user no longer exists is rejected.
type AuthValidator struct {
	issuer ports.TokenIssuer
	users  ports.UserRepository
}

func NewAuthValidator(issuer ports.TokenIssuer, users ports.UserRepository) *AuthValidator {
	return &AuthValidator{issuer: issuer, users: users}
}

func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := accessTokenFromRequest(r)
		if tokenString == "" {
			writeErr(w, http.StatusUnauthorized, "unauthorized request")
			return
		}
		claims, err := m.issuer.VerifyAccessToken(tokenString)
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "invalid access token")
			return
		}
		user, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		if user == nil {
			writeErr(w, http.StatusUnauthorized, "invalid access token")
			return
		}
		ctx := WithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accessTokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie("accessToken"); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
