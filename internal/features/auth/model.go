package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile defaults applied when a field is omitted at registration
const (
	DefaultSchool    = "DJSCE"
	DefaultYearLevel = "SY"
	DefaultBirthday  = "12-09-2005"
)

// User represents a registered student.
// Password holds the bcrypt digest and is never serialized.
type User struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                   string             `bson:"name" json:"name"`
	Email                  string             `bson:"email" json:"email"`
	Password               string             `bson:"password,omitempty" json:"-"`
	GoogleID               string             `bson:"googleId,omitempty" json:"-"`
	School                 string             `bson:"school" json:"school"`
	YearLevel              string             `bson:"yearLevel" json:"yearLevel"`
	Birthday               string             `bson:"birthday" json:"birthday"`
	ProfilePictureURL      string             `bson:"profilePictureUrl,omitempty" json:"profilePictureUrl,omitempty"`
	ProfilePicturePublicID string             `bson:"profilePicturePublicId,omitempty" json:"-"`
	CreatedAt              time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the outward view of a User
// @Description User profile without credentials
type PublicUser struct {
	ID                string    `json:"id" example:"65faa097f352203c7772363d"`
	Name              string    `json:"name" example:"Durvi"`
	Email             string    `json:"email" example:"a@x.com"`
	School            string    `json:"school" example:"DJSCE"`
	YearLevel         string    `json:"yearLevel" example:"SY"`
	Birthday          string    `json:"birthday" example:"12-09-2005"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ToPublicUser returns the fields safe to send to clients
func (u *User) ToPublicUser() *PublicUser {
	return &PublicUser{
		ID:                u.ID.Hex(),
		Name:              u.Name,
		Email:             u.Email,
		School:            u.School,
		YearLevel:         u.YearLevel,
		Birthday:          u.Birthday,
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (u *User) applyDefaults() {
	if u.School == "" {
		u.School = DefaultSchool
	}
	if u.YearLevel == "" {
		u.YearLevel = DefaultYearLevel
	}
	if u.Birthday == "" {
		u.Birthday = DefaultBirthday
	}
}

// RegisterRequest represents the payload for creating an account
// @Description Registration data; school, yearLevel and birthday fall back to defaults
type RegisterRequest struct {
	Name      string `json:"name" binding:"required,max=100" example:"Durvi"`
	Email     string `json:"email" binding:"required,email" example:"a@x.com"`
	Password  string `json:"password" binding:"required,max=72" example:"p1"`
	School    string `json:"school" binding:"max=100" example:"DJSCE"`
	YearLevel string `json:"yearLevel" binding:"max=20" example:"SY"`
	Birthday  string `json:"birthday" binding:"max=20" example:"12-09-2005"`
}

// LoginRequest represents email and password credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"a@x.com"`
	Password string `json:"password" binding:"required" example:"p1"`
}

// GoogleAuthRequest represents the payload for Google sign-in
type GoogleAuthRequest struct {
	GoogleIDToken string `json:"googleIdToken" binding:"required"`
}

// UpdateProfileRequest represents a partial profile update.
// Empty fields keep their previous values.
type UpdateProfileRequest struct {
	Email     string `json:"email" binding:"omitempty,email" example:"a@x.com"`
	Name      string `json:"name" binding:"max=100" example:"Durvi B"`
	School    string `json:"school" binding:"max=100" example:"DJSCE"`
	YearLevel string `json:"yearLevel" binding:"max=20" example:"TY"`
	Birthday  string `json:"birthday" binding:"max=20" example:"12-09-2005"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User        *PublicUser `json:"user"`
	AccessToken string      `json:"accessToken"`
}
