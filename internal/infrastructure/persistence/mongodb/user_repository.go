package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// UserRepository implements ports.UserRepository. Every mutation is a
// single-document atomic update so concurrent requests for the same user
// cannot interleave a lost update.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("user with same email or username already exists")
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}})
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"refreshToken": token, "updatedAt": time.Now()},
	})
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$unset": bson.M{"refreshToken": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	})
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"password": passwordHash, "updatedAt": time.Now()},
	})
}

func (r *UserRepository) SetEmailVerificationToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"emailVerificationToken":  tokenHash,
			"emailVerificationExpiry": expiry,
			"updatedAt":               time.Now(),
		},
	})
}

func (r *UserRepository) ConsumeEmailVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	filter := bson.M{
		"emailVerificationToken":  tokenHash,
		"emailVerificationExpiry": bson.M{"$gt": now},
	}
	update := bson.M{
		"$set":   bson.M{"isEmailVerified": true, "updatedAt": now},
		"$unset": bson.M{"emailVerificationToken": "", "emailVerificationExpiry": ""},
	}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *UserRepository) SetForgotPasswordToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"forgotPasswordToken":  tokenHash,
			"forgotPasswordExpiry": expiry,
			"updatedAt":            time.Now(),
		},
	})
}

func (r *UserRepository) ConsumeForgotPasswordToken(ctx context.Context, tokenHash string, now time.Time, newPasswordHash string) (*domain.User, error) {
	filter := bson.M{
		"forgotPasswordToken":  tokenHash,
		"forgotPasswordExpiry": bson.M{"$gt": now},
	}
	update := bson.M{
		"$set":   bson.M{"password": newPasswordHash, "updatedAt": now},
		"$unset": bson.M{"forgotPasswordToken": "", "forgotPasswordExpiry": ""},
	}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	_, err := r.coll.UpdateByID(ctx, id, update)
	return err
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
