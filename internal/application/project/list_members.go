package project

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// ListMembers returns every membership row of a project joined with the
// member's public identity.
type ListMembers struct {
	projects ports.ProjectRepository
	members  ports.MembershipRepository
}

func NewListMembers(projects ports.ProjectRepository, members ports.MembershipRepository) *ListMembers {
	return &ListMembers{projects: projects, members: members}
}

func (uc *ListMembers) Execute(ctx context.Context, projectID primitive.ObjectID) ([]domain.MemberInfo, error) {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.Internal("could not fetch project", err)
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}
	infos, err := uc.members.ListByProject(ctx, projectID)
	if err != nil {
		return nil, apperror.Internal("could not list project members", err)
	}
	if infos == nil {
		infos = []domain.MemberInfo{}
	}
	return infos, nil
}
