package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

// MembershipRepository implements ports.MembershipRepository. The unique
// (project, user) index enforces at most one row per pair.
type MembershipRepository struct {
	coll *mongo.Collection
}

func NewMembershipRepository(db *mongo.Database) *MembershipRepository {
	return &MembershipRepository{coll: db.Collection(membersCollection)}
}

func (r *MembershipRepository) Create(ctx context.Context, member *domain.ProjectMember) error {
	now := time.Now()
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	member.CreatedAt = now
	member.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("user is already a member of this project")
		}
		return err
	}
	return nil
}

func (r *MembershipRepository) Get(ctx context.Context, projectID, userID primitive.ObjectID) (*domain.ProjectMember, error) {
	var member domain.ProjectMember
	err := r.coll.FindOne(ctx, bson.M{"project": projectID, "user": userID}).Decode(&member)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// ListByProject joins each membership row with the member's public identity.
func (r *MembershipRepository) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]domain.MemberInfo, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"project": projectID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "user",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{
					"_id":      1,
					"username": 1,
					"fullname": 1,
					"avatar":   1,
				}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"user": bson.M{"$arrayElemAt": bson.A{"$user", 0}},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":       0,
			"project":   1,
			"user":      1,
			"role":      1,
			"createdAt": 1,
			"updatedAt": 1,
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []domain.MemberInfo
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MembershipRepository) UpdateRole(ctx context.Context, projectID, userID primitive.ObjectID, role domain.Role) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"project": projectID, "user": userID},
		bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MembershipRepository) Delete(ctx context.Context, projectID, userID primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"project": projectID, "user": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MembershipRepository) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"project": projectID})
	return err
}

var _ ports.MembershipRepository = (*MembershipRepository)(nil)
