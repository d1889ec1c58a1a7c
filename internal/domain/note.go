package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectNote is a free-form note attached to a project.
type ProjectNote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	Project   primitive.ObjectID `bson:"project" json:"project"`
	CreatedBy primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NoteDetail is a note joined with its project and author.
type NoteDetail struct {
	Content string `bson:"content" json:"content"`
	Project struct {
		Name        string `bson:"name" json:"name"`
		Description string `bson:"description,omitempty" json:"description,omitempty"`
	} `bson:"projectDetail" json:"projectDetail"`
	CreatedBy *MemberUser `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}
