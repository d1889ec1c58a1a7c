package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
)

// AuditLog logs auth events (user_id, IP, request_id).
func AuditLog(log zerolog.Logger, r *http.Request, event string, userID string, success bool, errMsg string) {
	ev := log.Info()
	if !success {
		ev = log.Warn()
	}
	ev.
		Str("event", event).
		Str("user_id", userID).
		Str("ip", getClientIP(r)).
		Str("request_id", middleware.GetReqID(r.Context())).
		Bool("success", success)
	if errMsg != "" {
		ev.Str("error", errMsg)
	}
	ev.Msg("auth_audit")
}

// AuditEmit logs the event and, if enqueuer is non-nil, queues it for webhook
// delivery. Enqueue failures never surface to the request.
func AuditEmit(log zerolog.Logger, r *http.Request, enqueuer ports.TaskEnqueuer, event, userID string, success bool, errMsg string) {
	AuditLog(log, r, event, userID, success, errMsg)
	if enqueuer != nil {
		err := enqueuer.EnqueueAuditEvent(r.Context(), ports.AuditEvent{
			Event:     event,
			UserID:    userID,
			IP:        getClientIP(r),
			RequestID: middleware.GetReqID(r.Context()),
			Success:   success,
			Err:       errMsg,
		})
		if err != nil {
			log.Warn().Err(err).Str("event", event).Msg("audit enqueue failed")
		}
	}
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	return r.RemoteAddr
}
