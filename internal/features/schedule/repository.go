package schedule

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

const schedulesCollection = "schedules"

var (
	errEventNotFound = apperrors.NotFound("Schedule event not found")
	errEventChanged  = apperrors.Conflict("Schedule event was modified concurrently, retry the update")
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(schedulesCollection)}
}

func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "startTime", Value: 1}, {Key: "endTime", Value: 1}}},
		{
			Keys:    bson.D{{Key: "googleEventId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create schedule indexes: %w", err)
	}
	return nil
}

// List returns every event ordered by start time
func (r *Repository) List(ctx context.Context) ([]Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func (r *Repository) Create(ctx context.Context, event *Event) error {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errEventNotFound
	}

	var event Event
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

// Update writes fields only if the event still has the start and end
// times it was validated against. A mismatch reports Conflict, or NotFound
// when the event is gone.
func (r *Repository) Update(ctx context.Context, current *Event, fields bson.M) (*Event, error) {
	filter := bson.M{
		"_id":       current.ID,
		"startTime": current.StartTime,
		"endTime":   current.EndTime,
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event Event
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&event)
	if err == nil {
		return &event, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update event: %w", err)
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": current.ID})
	if err != nil {
		return nil, fmt.Errorf("count event: %w", err)
	}
	if count == 0 {
		return nil, errEventNotFound
	}
	return nil, errEventChanged
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errEventNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if result.DeletedCount == 0 {
		return errEventNotFound
	}
	return nil
}
