package ports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/domain"
)

// UserRepository defines persistence for users. Lookups return (nil, nil)
// when no document matches; Create returns a conflict error on a duplicate
// email or username. All updates are single-document atomic operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error)

	SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error

	SetEmailVerificationToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error
	// ConsumeEmailVerificationToken atomically clears the token pair and sets
	// isEmailVerified on the user whose stored hash matches and whose expiry
	// is after now. Returns (nil, nil) when no such user exists.
	ConsumeEmailVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error)

	SetForgotPasswordToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error
	// ConsumeForgotPasswordToken atomically clears the token pair and installs
	// the new password hash on the matching, unexpired user. (nil, nil) when
	// no such user exists.
	ConsumeForgotPasswordToken(ctx context.Context, tokenHash string, now time.Time, newPasswordHash string) (*domain.User, error)
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, name, description string) (*domain.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	// ListForUser returns the projects the user belongs to, with the user's
	// role and the project's member count.
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ProjectSummary, error)
}

// MembershipRepository defines persistence for project membership rows.
// At most one row per (project, user); Create returns a conflict error when
// the pair already exists.
type MembershipRepository interface {
	Create(ctx context.Context, member *domain.ProjectMember) error
	Get(ctx context.Context, projectID, userID primitive.ObjectID) (*domain.ProjectMember, error)
	ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]domain.MemberInfo, error)
	UpdateRole(ctx context.Context, projectID, userID primitive.ObjectID, role domain.Role) (bool, error)
	Delete(ctx context.Context, projectID, userID primitive.ObjectID) (bool, error)
	DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error
}

// TaskRepository defines persistence for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, projectID, taskID primitive.ObjectID) (*domain.Task, error)
	// GetDetail joins the task with its assignee and subtasks.
	GetDetail(ctx context.Context, projectID, taskID primitive.ObjectID) (*domain.TaskDetail, error)
	ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]domain.Task, error)
	Update(ctx context.Context, projectID, taskID primitive.ObjectID, fields TaskUpdate) (bool, error)
	Delete(ctx context.Context, projectID, taskID primitive.ObjectID) (bool, error)
}

// TaskUpdate is a partial update; nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	AssignedTo  *primitive.ObjectID
	Status      *domain.TaskStatus
	Attachments []domain.Attachment
}

// SubTaskRepository defines persistence for subtasks.
type SubTaskRepository interface {
	Create(ctx context.Context, subTask *domain.SubTask) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SubTask, error)
	SetCompleted(ctx context.Context, id primitive.ObjectID, isCompleted bool) (*domain.SubTask, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// NoteRepository defines persistence for project notes.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.ProjectNote) error
	ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]domain.ProjectNote, error)
	GetDetail(ctx context.Context, projectID, noteID primitive.ObjectID) (*domain.NoteDetail, error)
	Update(ctx context.Context, projectID, noteID primitive.ObjectID, content string) (bool, error)
	Delete(ctx context.Context, projectID, noteID primitive.ObjectID) (bool, error)
}
