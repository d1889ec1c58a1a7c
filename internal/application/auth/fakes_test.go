package auth

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// ---- fake user repository ----

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return apperror.Conflict("user with same email or username already exists")
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
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
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	u.RefreshToken = token
	return nil
}

func (f *fakeUserRepo) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	if u, ok := f.users[id]; ok {
		u.RefreshToken = ""
	}
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	if u, ok := f.users[id]; ok {
		u.Password = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) SetEmailVerificationToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error {
	if u, ok := f.users[id]; ok {
		u.EmailVerificationToken = tokenHash
		u.EmailVerificationExpiry = &expiry
	}
	return nil
}

func (f *fakeUserRepo) ConsumeEmailVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	for _, u := range f.users {
		if u.EmailVerificationToken == tokenHash && u.EmailVerificationExpiry != nil && u.EmailVerificationExpiry.After(now) {
			u.EmailVerificationToken = ""
			u.EmailVerificationExpiry = nil
			u.IsEmailVerified = true
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SetForgotPasswordToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error {
	if u, ok := f.users[id]; ok {
		u.ForgotPasswordToken = tokenHash
		u.ForgotPasswordExpiry = &expiry
	}
	return nil
}

func (f *fakeUserRepo) ConsumeForgotPasswordToken(ctx context.Context, tokenHash string, now time.Time, newPasswordHash string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ForgotPasswordToken == tokenHash && u.ForgotPasswordExpiry != nil && u.ForgotPasswordExpiry.After(now) {
			u.ForgotPasswordToken = ""
			u.ForgotPasswordExpiry = nil
			u.Password = newPasswordHash
			return u, nil
		}
	}
	return nil, nil
}

var _ ports.UserRepository = (*fakeUserRepo)(nil)

// ---- fake password hasher ----

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

var _ ports.PasswordHasher = fakeHasher{}

// ---- fake token issuer ----

type fakeIssuer struct {
	counter int
	refresh map[string]primitive.ObjectID
}

func newFakeIssuer() *fakeIssuer {
	return &fakeIssuer{refresh: make(map[string]primitive.ObjectID)}
}

func (f *fakeIssuer) SignAccessToken(user *domain.User) (string, error) {
	f.counter++
	return fmt.Sprintf("access-%s-%d", user.ID.Hex(), f.counter), nil
}

func (f *fakeIssuer) SignRefreshToken(userID primitive.ObjectID) (string, error) {
	f.counter++
	token := fmt.Sprintf("refresh-%s-%d", userID.Hex(), f.counter)
	f.refresh[token] = userID
	return token, nil
}

func (f *fakeIssuer) VerifyAccessToken(token string) (*ports.AccessClaims, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeIssuer) VerifyRefreshToken(token string) (primitive.ObjectID, error) {
	id, ok := f.refresh[token]
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unknown refresh token")
	}
	return id, nil
}

var _ ports.TokenIssuer = (*fakeIssuer)(nil)

// ---- fake mailer ----

type fakeMailer struct {
	sent    []ports.MailMessage
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

var _ ports.Mailer = (*fakeMailer)(nil)
