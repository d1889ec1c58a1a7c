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

// TaskRepository implements ports.TaskRepository.
type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(tasksCollection)}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	now := time.Now()
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = now
	task.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, task)
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, projectID, taskID primitive.ObjectID) (*domain.Task, error) {
	var task domain.Task
	err := r.coll.FindOne(ctx, bson.M{"_id": taskID, "project": projectID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// GetDetail joins the task with its assignee's public identity and the
// subtasks under it, each with its author.
func (r *TaskRepository) GetDetail(ctx context.Context, projectID, taskID primitive.ObjectID) (*domain.TaskDetail, error) {
	userBrief := bson.A{
		bson.M{"$project": bson.M{
			"_id":      1,
			"username": 1,
			"fullname": 1,
			"avatar":   1,
		}},
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": taskID, "project": projectID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "assignedTo",
			"foreignField": "_id",
			"as":           "assignedTo",
			"pipeline":     userBrief,
		}}},
		{{Key: "$addFields", Value: bson.M{
			"assignedTo": bson.M{"$arrayElemAt": bson.A{"$assignedTo", 0}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         subTasksCollection,
			"localField":   "_id",
			"foreignField": "task",
			"as":           "subtasks",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         usersCollection,
					"localField":   "createdBy",
					"foreignField": "_id",
					"as":           "createdBy",
					"pipeline":     userBrief,
				}},
				bson.M{"$addFields": bson.M{
					"createdBy": bson.M{"$arrayElemAt": bson.A{"$createdBy", 0}},
				}},
				bson.M{"$project": bson.M{
					"_id":         1,
					"title":       1,
					"isCompleted": 1,
					"createdBy":   1,
				}},
			},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":         1,
			"title":       1,
			"description": 1,
			"status":      1,
			"attachments": 1,
			"assignedTo":  1,
			"subtasks":    1,
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var details []domain.TaskDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]domain.Task, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"project": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []domain.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies a partial update in one atomic operation; attachments are
// appended with $push, never replaced.
func (r *TaskRepository) Update(ctx context.Context, projectID, taskID primitive.ObjectID, fields ports.TaskUpdate) (bool, error) {
	set := bson.M{"updatedAt": time.Now()}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.AssignedTo != nil {
		set["assignedTo"] = *fields.AssignedTo
	}
	if fields.Status != nil {
		set["status"] = *fields.Status
	}
	update := bson.M{"$set": set}
	if len(fields.Attachments) > 0 {
		update["$push"] = bson.M{"attachments": bson.M{"$each": fields.Attachments}}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": taskID, "project": projectID}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *TaskRepository) Delete(ctx context.Context, projectID, taskID primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": taskID, "project": projectID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

var _ ports.TaskRepository = (*TaskRepository)(nil)
