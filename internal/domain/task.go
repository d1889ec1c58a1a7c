package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// AvailableTaskStatuses is the closed set of task states.
var AvailableTaskStatuses = []TaskStatus{StatusTodo, StatusInProgress, StatusDone}

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s TaskStatus) bool {
	for _, v := range AvailableTaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Attachment is a file reference stored on a task.
type Attachment struct {
	URL      string `bson:"url" json:"url"`
	MimeType string `bson:"mimetype" json:"mimetype"`
	Size     int64  `bson:"size" json:"size"`
}

// Task is a unit of work inside a project.
type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Project     primitive.ObjectID  `bson:"project" json:"project"`
	AssignedTo  *primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	CreatedBy   primitive.ObjectID  `bson:"createdBy" json:"createdBy"`
	Status      TaskStatus          `bson:"status" json:"status"`
	Attachments []Attachment        `bson:"attachments,omitempty" json:"attachments,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// SubTask is a checklist item under a task.
type SubTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Task        primitive.ObjectID `bson:"task" json:"task"`
	IsCompleted bool               `bson:"isCompleted" json:"isCompleted"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TaskDetail is a task joined with its assignee and subtasks, as produced by
// the task detail aggregation.
type TaskDetail struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      TaskStatus         `bson:"status" json:"status"`
	Attachments []Attachment       `bson:"attachments,omitempty" json:"attachments,omitempty"`
	AssignedTo  *MemberUser        `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	SubTasks    []SubTaskBrief     `bson:"subtasks" json:"subtasks"`
}

// SubTaskBrief is the subtask slice embedded in TaskDetail.
type SubTaskBrief struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	IsCompleted bool               `bson:"isCompleted" json:"isCompleted"`
	CreatedBy   *MemberUser        `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}
