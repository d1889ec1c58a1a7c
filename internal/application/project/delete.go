package project

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// Delete removes a project and all of its membership rows. Membership cleanup
// runs after the project delete; a partial failure leaves orphan rows that
// the unique (project, user) index keeps harmless.
type Delete struct {
	projects ports.ProjectRepository
	members  ports.MembershipRepository
}

func NewDelete(projects ports.ProjectRepository, members ports.MembershipRepository) *Delete {
	return &Delete{projects: projects, members: members}
}

func (uc *Delete) Execute(ctx context.Context, projectID primitive.ObjectID) error {
	deleted, err := uc.projects.Delete(ctx, projectID)
	if err != nil {
		return apperror.Internal("could not delete project", err)
	}
	if !deleted {
		return apperror.NotFound("project not found")
	}
	if err := uc.members.DeleteByProject(ctx, projectID); err != nil {
		return apperror.Internal("could not remove project members", err)
	}
	return nil
}
