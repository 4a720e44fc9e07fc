package tasks

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultColor applies only if the parent course carries no color
const DefaultColor = "yellow"

// Task represents a piece of coursework.
// Color is copied from the course when the task is created and never re-synced.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"65faa097f352203c7772363f"`
	Title       string             `bson:"title" json:"title" example:"Assignment 3"`
	Description string             `bson:"description,omitempty" json:"description,omitempty" example:"Backprop by hand"`
	DueDate     time.Time          `bson:"dueDate" json:"dueDate" example:"2025-03-20T23:59:00Z"`
	Completed   bool               `bson:"completed" json:"completed" example:"false"`
	Color       string             `bson:"color" json:"color" example:"yellow"`
	CourseID    primitive.ObjectID `bson:"courseId" json:"courseId" example:"65faa097f352203c7772363d"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId" example:"65faa097f352203c7772363e"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CourseRef is the slice of a course shown alongside its tasks
type CourseRef struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name" example:"ML"`
	Color string             `json:"color" example:"yellow"`
}

// TaskView is a task joined with its course for display
type TaskView struct {
	Task
	Course *CourseRef `json:"course"`
}

// CreateTaskRequest represents task creation data
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=200" example:"Assignment 3"`
	Description string     `json:"description" binding:"max=2000" example:"Backprop by hand"`
	DueDate     *time.Time `json:"dueDate" binding:"required" example:"2025-03-20T23:59:00Z"`
	CourseID    string     `json:"courseId" binding:"required" example:"65faa097f352203c7772363d"`
}

// UpdateTaskRequest represents a partial task update. Color and course
// cannot be changed after creation.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   *bool      `json:"completed"`
}
