package auth

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/durvibangera/sorte/internal/pkg/cloudinary"
	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

// ── Fake UserRepository ──

type fakeUserRepo struct {
	users map[primitive.ObjectID]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperrors.Conflict("User already exists")
		}
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("User not found")
	}
	u, ok := f.users[oid]
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByGoogleID(_ context.Context, googleID string) (*User, error) {
	for _, u := range f.users {
		if u.GoogleID == googleID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id, email string, fields bson.M) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("User not found")
	}
	u, ok := f.users[oid]
	if !ok || u.Email != email {
		return nil, apperrors.NotFound("User not found")
	}
	for k, v := range fields {
		s := v.(string)
		switch k {
		case "name":
			u.Name = s
		case "school":
			u.School = s
		case "yearLevel":
			u.YearLevel = s
		case "birthday":
			u.Birthday = s
		}
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) LinkGoogleID(_ context.Context, id primitive.ObjectID, googleID string) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	u.GoogleID = googleID
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) SetProfilePicture(_ context.Context, id primitive.ObjectID, url, publicID string) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	u.ProfilePictureURL = url
	u.ProfilePicturePublicID = publicID
	cp := *u
	return &cp, nil
}

// ── Fake GoogleVerifier ──

type fakeVerifier struct {
	users map[string]*GoogleUser
}

func (f *fakeVerifier) Verify(_ context.Context, idToken string) (*GoogleUser, error) {
	if gu, ok := f.users[idToken]; ok {
		return gu, nil
	}
	return nil, errors.New("token rejected")
}

// ── Fake ImageStore ──

type fakeImageStore struct {
	uploads int
	deleted []string
}

func (f *fakeImageStore) UploadImage(_ context.Context, file io.Reader, filename string) (*cloudinary.UploadResult, error) {
	if _, err := io.ReadAll(file); err != nil {
		return nil, err
	}
	f.uploads++
	id := "sorte/profiles/" + filename
	return &cloudinary.UploadResult{URL: "https://res.cloudinary.com/demo/" + id, PublicID: id}, nil
}

func (f *fakeImageStore) Delete(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}
