package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

const tasksCollection = "tasks"

var errTaskNotFound = apperrors.NotFound("Task not found")

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(tasksCollection)}
}

func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "dueDate", Value: 1}}},
		{Keys: bson.D{{Key: "courseId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create task indexes: %w", err)
	}
	return nil
}

func ownedFilter(userID, id string) (bson.M, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errTaskNotFound
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errTaskNotFound
	}
	return bson.M{"_id": oid, "userId": owner}, nil
}

// ListByOwner returns the owner's tasks, earliest due first
func (r *Repository) ListByOwner(ctx context.Context, userID string) ([]Task, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []Task{}, nil
	}
	return r.find(ctx, bson.M{"userId": owner})
}

// ListByCourse returns the owner's tasks under one course
func (r *Repository) ListByCourse(ctx context.Context, userID string, courseID primitive.ObjectID) ([]Task, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []Task{}, nil
	}
	return r.find(ctx, bson.M{"userId": owner, "courseId": courseID})
}

func (r *Repository) find(ctx context.Context, filter bson.M) ([]Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *Repository) Create(ctx context.Context, task *Task) error {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		task.ID = oid
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, userID, id string) (*Task, error) {
	filter, err := ownedFilter(userID, id)
	if err != nil {
		return nil, err
	}

	var task Task
	if err := r.collection.FindOne(ctx, filter).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

func (r *Repository) Update(ctx context.Context, userID, id string, fields bson.M) (*Task, error) {
	filter, err := ownedFilter(userID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	return r.findOneAndUpdate(ctx, filter, bson.M{"$set": set})
}

// Toggle flips completed in a single server-side update so concurrent
// toggles cannot overwrite each other.
func (r *Repository) Toggle(ctx context.Context, userID, id string) (*Task, error) {
	filter, err := ownedFilter(userID, id)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "completed", Value: bson.D{{Key: "$not", Value: bson.A{"$completed"}}}},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
	}
	return r.findOneAndUpdate(ctx, filter, pipeline)
}

func (r *Repository) findOneAndUpdate(ctx context.Context, filter bson.M, update interface{}) (*Task, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var task Task
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &task, nil
}

func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	filter, err := ownedFilter(userID, id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return errTaskNotFound
	}
	return nil
}

// DeleteByCourse removes every task referencing courseID, whoever owns it
func (r *Repository) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"courseId": courseID})
	if err != nil {
		return 0, fmt.Errorf("delete tasks by course: %w", err)
	}
	return result.DeletedCount, nil
}
