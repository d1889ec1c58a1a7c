package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
)

// NoteRepository implements ports.NoteRepository.
type NoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{coll: db.Collection(notesCollection)}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.ProjectNote) error {
	now := time.Now()
	if note.ID.IsZero() {
		note.ID = primitive.NewObjectID()
	}
	note.CreatedAt = now
	note.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, note)
	return err
}

func (r *NoteRepository) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]domain.ProjectNote, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"project": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []domain.ProjectNote
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetDetail joins the note with its project name/description and author.
func (r *NoteRepository) GetDetail(ctx context.Context, projectID, noteID primitive.ObjectID) (*domain.NoteDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": noteID, "project": projectID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         projectsCollection,
			"localField":   "project",
			"foreignField": "_id",
			"as":           "projectDetail",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{
					"_id":         0,
					"name":        1,
					"description": 1,
				}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"projectDetail": bson.M{"$arrayElemAt": bson.A{"$projectDetail", 0}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "createdBy",
			"foreignField": "_id",
			"as":           "createdBy",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{
					"_id":      1,
					"avatar":   1,
					"username": 1,
					"fullname": 1,
				}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"createdBy": bson.M{"$arrayElemAt": bson.A{"$createdBy", 0}},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"content":       1,
			"projectDetail": 1,
			"createdBy":     1,
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var details []domain.NoteDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

func (r *NoteRepository) Update(ctx context.Context, projectID, noteID primitive.ObjectID, content string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": noteID, "project": projectID},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *NoteRepository) Delete(ctx context.Context, projectID, noteID primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": noteID, "project": projectID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

var _ ports.NoteRepository = (*NoteRepository)(nil)
