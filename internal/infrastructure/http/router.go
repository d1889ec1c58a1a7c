package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/http/handlers"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	ProjectHandler *handlers.ProjectHandler
	TaskHandler    *handlers.TaskHandler
	NoteHandler    *handlers.NoteHandler
	HealthHandler  *handlers.HealthHandler
	RequireJWT     func(http.Handler) http.Handler
	ProjectGuard   *middleware.ProjectGuard
	Log            zerolog.Logger
	Secure         func(http.Handler) http.Handler
	CORS           func(http.Handler) http.Handler
	IPRateLimit    func(http.Handler) http.Handler
	Metrics        bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.AllowContentType("application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	guard := cfg.ProjectGuard
	anyMember := guard.RequireRole(domain.RoleAdmin, domain.RoleProjectAdmin, domain.RoleMember)
	adminOnly := guard.RequireRole(domain.RoleAdmin)
	adminOrProjectAdmin := guard.RequireRole(domain.RoleAdmin, domain.RoleProjectAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", cfg.HealthHandler.ServeHTTP)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)
			r.Get("/verify-email/{verificationToken}", cfg.AuthHandler.VerifyEmail)
			r.Post("/refresh-token", cfg.AuthHandler.RefreshToken)
			r.Post("/forgot-password", cfg.AuthHandler.ForgotPassword)
			r.Post("/reset-password/{resetToken}", cfg.AuthHandler.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(cfg.RequireJWT)
				r.Post("/logout", cfg.AuthHandler.Logout)
				r.Get("/current-user", cfg.AuthHandler.CurrentUser)
				r.Post("/resend-email-verification", cfg.AuthHandler.ResendEmailVerification)
				r.Post("/change-password", cfg.AuthHandler.ChangePassword)
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.Use(cfg.RequireJWT)
			r.Get("/", cfg.ProjectHandler.List)
			r.Post("/", cfg.ProjectHandler.Create)

			r.Route("/{projectId}", func(r chi.Router) {
				r.With(adminOnly).Get("/", cfg.ProjectHandler.Get)
				r.With(adminOnly).Put("/", cfg.ProjectHandler.Update)
				r.With(adminOnly).Delete("/", cfg.ProjectHandler.Delete)

				r.Route("/members", func(r chi.Router) {
					r.With(anyMember).Get("/", cfg.ProjectHandler.ListMembers)
					r.With(adminOnly).Post("/", cfg.ProjectHandler.AddMember)
					r.With(adminOnly).Put("/{userId}", cfg.ProjectHandler.UpdateMemberRole)
					r.With(adminOnly).Delete("/{userId}", cfg.ProjectHandler.RemoveMember)
				})

				r.Route("/tasks", func(r chi.Router) {
					r.With(anyMember).Get("/", cfg.TaskHandler.List)
					r.With(anyMember).Post("/", cfg.TaskHandler.Create)

					r.Route("/{taskId}", func(r chi.Router) {
						r.With(anyMember).Get("/", cfg.TaskHandler.Get)
						r.With(adminOrProjectAdmin).Put("/", cfg.TaskHandler.Update)
						r.With(adminOrProjectAdmin).Delete("/", cfg.TaskHandler.Delete)
						r.With(adminOrProjectAdmin).Post("/subtasks", cfg.TaskHandler.CreateSubTask)
					})
				})

				r.Route("/subtasks/{subTaskId}", func(r chi.Router) {
					r.With(adminOrProjectAdmin).Put("/", cfg.TaskHandler.UpdateSubTask)
					r.With(adminOrProjectAdmin).Delete("/", cfg.TaskHandler.DeleteSubTask)
				})

				r.Route("/notes", func(r chi.Router) {
					r.With(anyMember).Get("/", cfg.NoteHandler.List)
					r.With(adminOnly).Post("/", cfg.NoteHandler.Create)

					r.Route("/{noteId}", func(r chi.Router) {
						r.With(anyMember).Get("/", cfg.NoteHandler.Get)
						r.With(adminOrProjectAdmin).Put("/", cfg.NoteHandler.Update)
						r.With(adminOrProjectAdmin).Delete("/", cfg.NoteHandler.Delete)
					})
				})
			})
		})
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
