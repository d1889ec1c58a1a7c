package project

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// ---- fake project repository ----

type fakeProjectRepo struct {
	projects map[primitive.ObjectID]*domain.Project
	members  *fakeMembershipRepo
}

func newFakeProjectRepo(members *fakeMembershipRepo) *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[primitive.ObjectID]*domain.Project), members: members}
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, id primitive.ObjectID, name, description string) (*domain.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	return p, nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := f.projects[id]; !ok {
		return false, nil
	}
	delete(f.projects, id)
	return true, nil
}

func (f *fakeProjectRepo) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ProjectSummary, error) {
	var out []domain.ProjectSummary
	for _, m := range f.members.rows {
		if m.User != userID {
			continue
		}
		p, ok := f.projects[m.Project]
		if !ok {
			continue
		}
		var count int64
		for _, other := range f.members.rows {
			if other.Project == m.Project {
				count++
			}
		}
		out = append(out, domain.ProjectSummary{Project: *p, Role: m.Role, MemberCount: count})
	}
	return out, nil
}

var _ ports.ProjectRepository = (*fakeProjectRepo)(nil)

// ---- fake membership repository ----

type fakeMembershipRepo struct {
	rows []*domain.ProjectMember
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{}
}

func (f *fakeMembershipRepo) Create(ctx context.Context, member *domain.ProjectMember) error {
	for _, m := range f.rows {
		if m.Project == member.Project && m.User == member.User {
			return apperror.Conflict("user is already a member of this project")
		}
	}
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now
	f.rows = append(f.rows, member)
	return nil
}

func (f *fakeMembershipRepo) Get(ctx context.Context, projectID, userID primitive.ObjectID) (*domain.ProjectMember, error) {
	for _, m := range f.rows {
		if m.Project == projectID && m.User == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMembershipRepo) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]domain.MemberInfo, error) {
	var out []domain.MemberInfo
	for _, m := range f.rows {
		if m.Project == projectID {
			out = append(out, domain.MemberInfo{
				Project:   m.Project,
				User:      domain.MemberUser{ID: m.User},
				Role:      m.Role,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			})
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) UpdateRole(ctx context.Context, projectID, userID primitive.ObjectID, role domain.Role) (bool, error) {
	for _, m := range f.rows {
		if m.Project == projectID && m.User == userID {
			m.Role = role
			m.UpdatedAt = time.Now()
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMembershipRepo) Delete(ctx context.Context, projectID, userID primitive.ObjectID) (bool, error) {
	for i, m := range f.rows {
		if m.Project == projectID && m.User == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMembershipRepo) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	var kept []*domain.ProjectMember
	for _, m := range f.rows {
		if m.Project != projectID {
			kept = append(kept, m)
		}
	}
	f.rows = kept
	return nil
}

var _ ports.MembershipRepository = (*fakeMembershipRepo)(nil)

// ---- fake user repository (lookups only; writes are no-ops) ----

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (f *fakeUserRepo) add(email, username string) *domain.User {
	u := &domain.User{ID: primitive.NewObjectID(), Email: email, Username: username}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	return nil
}

func (f *fakeUserRepo) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return nil
}

func (f *fakeUserRepo) SetEmailVerificationToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error {
	return nil
}

func (f *fakeUserRepo) ConsumeEmailVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) SetForgotPasswordToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error {
	return nil
}

func (f *fakeUserRepo) ConsumeForgotPasswordToken(ctx context.Context, tokenHash string, now time.Time, newPasswordHash string) (*domain.User, error) {
	return nil, nil
}

var _ ports.UserRepository = (*fakeUserRepo)(nil)
