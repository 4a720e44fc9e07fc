package courses

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultColor is applied when a course is created without a color
const DefaultColor = "yellow"

// Course represents a class the student attends
// @Description Course owned by a user; name is stored uppercase
type Course struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"65faa097f352203c7772363d"`
	Name       string             `bson:"name" json:"name" example:"ML"`
	Instructor string             `bson:"instructor" json:"instructor" example:"Prof. Shah"`
	Location   string             `bson:"location" json:"location" example:"51"`
	Color      string             `bson:"color" json:"color" example:"yellow"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId" example:"65faa097f352203c7772363e"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name       string `json:"name" binding:"required,max=100" example:"ml"`
	Instructor string `json:"instructor" binding:"required,max=100" example:"Prof. Shah"`
	Location   string `json:"location" binding:"required,max=100" example:"51"`
	Color      string `json:"color" binding:"max=30" example:"yellow"`
}

// UpdateCourseRequest represents a partial course update.
// Nil fields are left unchanged.
type UpdateCourseRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=100" example:"dl"`
	Instructor *string `json:"instructor" binding:"omitempty,max=100"`
	Location   *string `json:"location" binding:"omitempty,max=100"`
	Color      *string `json:"color" binding:"omitempty,max=30" example:"#ff8800"`
}

// DeleteResult reports what a course deletion removed
type DeleteResult struct {
	CourseID     string `json:"courseId"`
	TasksDeleted int64  `json:"tasksDeleted"`
}
