package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a member's role on a project. The set is closed; any other value is
// rejected before persistence.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleProjectAdmin Role = "project_admin"
	RoleMember       Role = "member"
)

// AvailableRoles is the closed set of assignable roles.
var AvailableRoles = []Role{RoleAdmin, RoleProjectAdmin, RoleMember}

// ValidRole reports whether r is one of the assignable roles.
func ValidRole(r Role) bool {
	for _, v := range AvailableRoles {
		if r == v {
			return true
		}
	}
	return false
}

// In reports whether r is an element of allowed.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// Project is a container for tasks and notes.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProjectMember joins a user to a project with a role. Exactly one document
// per (project, user) pair; the project creator gets RoleAdmin on creation.
type ProjectMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Project   primitive.ObjectID `bson:"project" json:"project"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProjectSummary is a project joined with the caller's role and the member
// count, as produced by the membership aggregation.
type ProjectSummary struct {
	Project     Project `bson:"project" json:"project"`
	Role        Role    `bson:"role" json:"role"`
	MemberCount int64   `bson:"members" json:"members"`
}

// MemberInfo is a membership row joined with the member's public identity.
type MemberInfo struct {
	Project   primitive.ObjectID `bson:"project" json:"project"`
	User      MemberUser         `bson:"user" json:"user"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MemberUser is the slice of the user document exposed on member listings.
type MemberUser struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Username string             `bson:"username" json:"username"`
	Fullname string             `bson:"fullname,omitempty" json:"fullname,omitempty"`
	Avatar   Avatar             `bson:"avatar" json:"avatar"`
}
