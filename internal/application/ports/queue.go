package ports

import "context"

// AuditEvent is an auth/authorization event emitted for observability.
type AuditEvent struct {
	Event     string `json:"event"`
	UserID    string `json:"user_id,omitempty"`
	IP        string `json:"ip,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Success   bool   `json:"success"`
	Err       string `json:"error,omitempty"`
}

// TaskEnqueuer hands audit events to a background worker for webhook
// delivery. Enqueue failures are logged, never surfaced to the request.
type TaskEnqueuer interface {
	EnqueueAuditEvent(ctx context.Context, event AuditEvent) error
}

// WebhookEmitter posts an audit event to a configured endpoint.
type WebhookEmitter interface {
	Emit(ctx context.Context, event AuditEvent) error
}
