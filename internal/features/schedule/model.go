package schedule

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recurrence values accepted for an event
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
)

// DefaultColor is applied when an event is created without a color
const DefaultColor = "#3788d8"

// Event represents one entry of the shared calendar
// @Description Schedule event; endTime is always after startTime
type Event struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"65faa097f352203c77723640"`
	Title         string             `bson:"title" json:"title" example:"ML lecture"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	StartTime     time.Time          `bson:"startTime" json:"startTime" example:"2025-03-20T09:00:00Z"`
	EndTime       time.Time          `bson:"endTime" json:"endTime" example:"2025-03-20T10:00:00Z"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty" example:"Room 51"`
	IsAllDay      bool               `bson:"isAllDay" json:"isAllDay" example:"false"`
	Color         string             `bson:"color" json:"color" example:"#3788d8"`
	Recurrence    string             `bson:"recurrence" json:"recurrence" example:"weekly" enums:"none,daily,weekly,monthly,yearly"`
	GoogleEventID string             `bson:"googleEventId,omitempty" json:"googleEventId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateEventRequest represents event creation data
type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required,max=200" example:"ML lecture"`
	Description string     `json:"description" binding:"max=2000"`
	StartTime   *time.Time `json:"startTime" binding:"required" example:"2025-03-20T09:00:00Z"`
	EndTime     *time.Time `json:"endTime" binding:"required" example:"2025-03-20T10:00:00Z"`
	Location    string     `json:"location" binding:"max=200" example:"Room 51"`
	IsAllDay    bool       `json:"isAllDay" example:"false"`
	Color       string     `json:"color" binding:"max=30" example:"#3788d8"`
	Recurrence  string     `json:"recurrence" binding:"omitempty,oneof=none daily weekly monthly yearly" example:"none"`
}

// UpdateEventRequest represents a partial event update.
// Nil fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Location    *string    `json:"location" binding:"omitempty,max=200"`
	IsAllDay    *bool      `json:"isAllDay"`
	Color       *string    `json:"color" binding:"omitempty,max=30"`
	Recurrence  *string    `json:"recurrence" binding:"omitempty,oneof=none daily weekly monthly yearly"`
}
