package courses

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

const coursesCollection = "courses"

var errCourseNotFound = apperrors.NotFound("Course not found")

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(coursesCollection)}
}

func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create course indexes: %w", err)
	}
	return nil
}

// ownedFilter scopes a lookup to one course of one owner. Malformed ids
// cannot match anything, so they report NotFound like a foreign id.
func ownedFilter(userID, id string) (bson.M, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errCourseNotFound
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errCourseNotFound
	}
	return bson.M{"_id": oid, "userId": owner}, nil
}

func (r *Repository) List(ctx context.Context, userID string) ([]Course, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []Course{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return courses, nil
}

func (r *Repository) Create(ctx context.Context, course *Course) error {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		course.ID = oid
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, userID, id string) (*Course, error) {
	filter, err := ownedFilter(userID, id)
	if err != nil {
		return nil, err
	}

	var course Course
	if err := r.collection.FindOne(ctx, filter).Decode(&course); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &course, nil
}

// FindByIDs loads courses by id regardless of owner, for joining onto tasks
func (r *Repository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Course, error) {
	if len(ids) == 0 {
		return []Course{}, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1, "color": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find courses by ids: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return courses, nil
}

func (r *Repository) Update(ctx context.Context, userID, id string, fields bson.M) (*Course, error) {
	filter, err := ownedFilter(userID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var course Course
	err = r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errCourseNotFound
		}
		return nil, fmt.Errorf("update course: %w", err)
	}
	return &course, nil
}

// Delete removes one owned course and returns it
func (r *Repository) Delete(ctx context.Context, userID, id string) (*Course, error) {
	filter, err := ownedFilter(userID, id)
	if err != nil {
		return nil, err
	}

	var course Course
	if err := r.collection.FindOneAndDelete(ctx, filter).Decode(&course); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errCourseNotFound
		}
		return nil, fmt.Errorf("delete course: %w", err)
	}
	return &course, nil
}
