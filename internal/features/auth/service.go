package auth

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/durvibangera/sorte/internal/pkg/cloudinary"
	"github.com/durvibangera/sorte/internal/pkg/jwt"
	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

// UserRepository is the persistence the auth service depends on
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*User, error)
	UpdateProfile(ctx context.Context, id, email string, fields bson.M) (*User, error)
	LinkGoogleID(ctx context.Context, id primitive.ObjectID, googleID string) (*User, error)
	SetProfilePicture(ctx context.Context, id primitive.ObjectID, url, publicID string) (*User, error)
}

// ImageStore uploads and removes profile pictures
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, filename string) (*cloudinary.UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

type Service struct {
	repo     UserRepository
	jwtCfg   *jwt.Config
	google   GoogleVerifier
	images   ImageStore
	log      *zap.Logger
	hashCost int
}

// NewService wires the auth service. google and images may be nil when
// the matching integration is not configured.
func NewService(repo UserRepository, jwtCfg *jwt.Config, google GoogleVerifier, images ImageStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		jwtCfg:   jwtCfg,
		google:   google,
		images:   images,
		log:      log.Named("auth"),
		hashCost: bcrypt.DefaultCost,
	}
}

// Register creates an account and returns it with an access token
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("User already exists")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  string(digest),
		School:    strings.TrimSpace(req.School),
		YearLevel: strings.TrimSpace(req.YearLevel),
		Birthday:  strings.TrimSpace(req.Birthday),
	}
	user.applyDefaults()

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("userId", user.ID.Hex()))
	return s.issue(user)
}

// Login verifies email and password
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	// Accounts created through Google have no digest to compare against.
	if user.Password == "" {
		return nil, apperrors.InvalidCredentials("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.InvalidCredentials("Invalid credentials")
	}

	return s.issue(user)
}

// GoogleLogin signs in with a Google ID token, linking or creating the account
func (s *Service) GoogleLogin(ctx context.Context, idToken string) (*AuthResponse, error) {
	if s.google == nil {
		return nil, apperrors.Unavailable("Google sign-in is not configured")
	}

	gu, err := s.google.Verify(ctx, idToken)
	if err != nil {
		s.log.Debug("google token rejected", zap.Error(err))
		return nil, apperrors.Unauthenticated("Invalid Google token")
	}
	if gu.UID == "" || gu.Email == "" {
		return nil, apperrors.Unauthenticated("Google account has no email")
	}

	user, err := s.repo.FindByGoogleID(ctx, gu.UID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return s.issue(user)
	}

	email := normalizeEmail(gu.Email)
	user, err = s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if !gu.EmailVerified {
			return nil, apperrors.Unauthenticated("Google email is not verified")
		}
		linked, err := s.repo.LinkGoogleID(ctx, user.ID, gu.UID)
		if err != nil {
			return nil, err
		}
		s.log.Info("google account linked", zap.String("userId", linked.ID.Hex()))
		return s.issue(linked)
	}

	name := strings.TrimSpace(gu.Name)
	if name == "" {
		name = displayNameFromEmail(email)
	}
	user = &User{
		Name:              name,
		Email:             email,
		GoogleID:          gu.UID,
		ProfilePictureURL: gu.Picture,
	}
	user.applyDefaults()

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user registered via google", zap.String("userId", user.ID.Hex()))
	return s.issue(user)
}

// GetProfile returns the acting user's public fields
func (s *Service) GetProfile(ctx context.Context, userID string) (*PublicUser, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToPublicUser(), nil
}

// UpdateProfile patches the caller's profile. The target is resolved by
// email (the caller's own by default) and must belong to the caller.
func (s *Service) UpdateProfile(ctx context.Context, userID, callerEmail string, req *UpdateProfileRequest) (*PublicUser, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		email = normalizeEmail(callerEmail)
	}

	fields := bson.M{}
	if v := strings.TrimSpace(req.Name); v != "" {
		fields["name"] = v
	}
	if v := strings.TrimSpace(req.School); v != "" {
		fields["school"] = v
	}
	if v := strings.TrimSpace(req.YearLevel); v != "" {
		fields["yearLevel"] = v
	}
	if v := strings.TrimSpace(req.Birthday); v != "" {
		fields["birthday"] = v
	}

	user, err := s.repo.UpdateProfile(ctx, userID, email, fields)
	if err != nil {
		return nil, err
	}
	return user.ToPublicUser(), nil
}

// UploadAvatar replaces the caller's profile picture
func (s *Service) UploadAvatar(ctx context.Context, userID string, file io.Reader, filename string) (*PublicUser, error) {
	if s.images == nil {
		return nil, apperrors.Unavailable("Image storage is not configured")
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.images.UploadImage(ctx, file, filename)
	if err != nil {
		return nil, fmt.Errorf("upload profile picture: %w", err)
	}

	updated, err := s.repo.SetProfilePicture(ctx, user.ID, result.URL, result.PublicID)
	if err != nil {
		_ = s.images.Delete(ctx, result.PublicID)
		return nil, err
	}

	if user.ProfilePicturePublicID != "" {
		if err := s.images.Delete(ctx, user.ProfilePicturePublicID); err != nil {
			s.log.Warn("failed to delete previous profile picture",
				zap.String("userId", userID),
				zap.String("publicId", user.ProfilePicturePublicID),
				zap.Error(err))
		}
	}

	return updated.ToPublicUser(), nil
}

func (s *Service) issue(user *User) (*AuthResponse, error) {
	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, s.jwtCfg)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResponse{
		User:        user.ToPublicUser(),
		AccessToken: token,
	}, nil
}
