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
)

// ProjectRepository implements ports.ProjectRepository.
type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	now := time.Now()
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	project.CreatedAt = now
	project.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, project)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error) {
	var project domain.Project
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id primitive.ObjectID, name, description string) (*domain.Project, error) {
	update := bson.M{"$set": bson.M{
		"name":        name,
		"description": description,
		"updatedAt":   time.Now(),
	}}
	var project domain.Project
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// ListForUser aggregates the caller's memberships with the joined project and
// its member count.
func (r *ProjectRepository) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ProjectSummary, error) {
	members := r.coll.Database().Collection(membersCollection)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         projectsCollection,
			"localField":   "project",
			"foreignField": "_id",
			"as":           "project",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         membersCollection,
					"localField":   "_id",
					"foreignField": "project",
					"as":           "memberships",
				}},
				bson.M{"$addFields": bson.M{"members": bson.M{"$size": "$memberships"}}},
				bson.M{"$project": bson.M{"memberships": 0}},
			},
		}}},
		{{Key: "$unwind", Value: "$project"}},
		{{Key: "$project", Value: bson.M{
			"_id":     0,
			"project": 1,
			"role":    1,
			"members": "$project.members",
		}}},
	}
	cursor, err := members.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []domain.ProjectSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)
