package auth

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

const usersCollection = "users"

// Repository handles database interactions for the auth feature
type Repository struct {
	collection *mongo.Collection
}

// NewRepository returns a repository over the users collection.
// Indexes are created separately by EnsureIndexes.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email and sparse googleId indexes
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "googleId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

// Create inserts a new user. A duplicate email surfaces as Conflict.
func (r *Repository) Create(ctx context.Context, user *User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("User already exists")
		}
		return fmt.Errorf("insert user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByID returns the user or NotFound
func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("User not found")
	}

	var user User
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindByEmail finds a user by email address. A missing user is not an error.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByGoogleID finds a user by Google subject. A missing user is not an error.
func (r *Repository) FindByGoogleID(ctx context.Context, googleID string) (*User, error) {
	return r.findOne(ctx, bson.M{"googleId": googleID})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// UpdateProfile patches the user matching both id and email and returns
// the updated document.
func (r *Repository) UpdateProfile(ctx context.Context, id, email string, fields bson.M) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("User not found")
	}
	return r.updateOne(ctx, bson.M{"_id": oid, "email": email}, fields)
}

// LinkGoogleID attaches a Google subject to an existing account
func (r *Repository) LinkGoogleID(ctx context.Context, id primitive.ObjectID, googleID string) (*User, error) {
	return r.updateOne(ctx, bson.M{"_id": id}, bson.M{"googleId": googleID})
}

// SetProfilePicture stores the avatar URL and its storage id
func (r *Repository) SetProfilePicture(ctx context.Context, id primitive.ObjectID, url, publicID string) (*User, error) {
	return r.updateOne(ctx, bson.M{"_id": id}, bson.M{
		"profilePictureUrl":      url,
		"profilePicturePublicId": publicID,
	})
}

func (r *Repository) updateOne(ctx context.Context, filter, fields bson.M) (*User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user User
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("User not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("User already exists")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}
