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

// SubTaskRepository implements ports.SubTaskRepository.
type SubTaskRepository struct {
	coll *mongo.Collection
}

func NewSubTaskRepository(db *mongo.Database) *SubTaskRepository {
	return &SubTaskRepository{coll: db.Collection(subTasksCollection)}
}

func (r *SubTaskRepository) Create(ctx context.Context, subTask *domain.SubTask) error {
	now := time.Now()
	if subTask.ID.IsZero() {
		subTask.ID = primitive.NewObjectID()
	}
	subTask.CreatedAt = now
	subTask.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, subTask)
	return err
}

func (r *SubTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SubTask, error) {
	var subTask domain.SubTask
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&subTask)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &subTask, nil
}

func (r *SubTaskRepository) SetCompleted(ctx context.Context, id primitive.ObjectID, isCompleted bool) (*domain.SubTask, error) {
	var subTask domain.SubTask
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isCompleted": isCompleted, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&subTask)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &subTask, nil
}

func (r *SubTaskRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

var _ ports.SubTaskRepository = (*SubTaskRepository)(nil)
