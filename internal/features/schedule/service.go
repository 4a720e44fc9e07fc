package schedule

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

// EventRepository is the persistence the schedule service depends on
type EventRepository interface {
	List(ctx context.Context) ([]Event, error)
	Create(ctx context.Context, event *Event) error
	FindByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, current *Event, fields bson.M) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// Service manages the shared calendar. Events are not owner scoped.
type Service struct {
	repo EventRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewService(repo EventRepository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log.Named("schedule"), now: time.Now}
}

// ListAll returns every event, earliest start first
func (s *Service) ListAll(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

// Create validates the time range before anything is persisted
func (s *Service) Create(ctx context.Context, req *CreateEventRequest) (*Event, error) {
	event := &Event{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		IsAllDay:    req.IsAllDay,
		Color:       strings.TrimSpace(req.Color),
		Recurrence:  strings.TrimSpace(req.Recurrence),
	}
	if req.StartTime != nil {
		event.StartTime = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		event.EndTime = req.EndTime.UTC()
	}
	if event.Color == "" {
		event.Color = DefaultColor
	}
	if event.Recurrence == "" {
		event.Recurrence = RecurrenceNone
	}

	if err := validateEvent(event); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Event, error) {
	return s.repo.FindByID(ctx, id)
}

// Update merges the provided fields onto the stored event and re-validates
// the result. Nothing is written when validation fails.
func (s *Service) Update(ctx context.Context, id string, req *UpdateEventRequest) (*Event, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	fields := bson.M{}

	if req.Title != nil {
		merged.Title = strings.TrimSpace(*req.Title)
		fields["title"] = merged.Title
	}
	if req.Description != nil {
		merged.Description = strings.TrimSpace(*req.Description)
		fields["description"] = merged.Description
	}
	if req.StartTime != nil {
		merged.StartTime = req.StartTime.UTC()
		fields["startTime"] = merged.StartTime
	}
	if req.EndTime != nil {
		merged.EndTime = req.EndTime.UTC()
		fields["endTime"] = merged.EndTime
	}
	if req.Location != nil {
		merged.Location = strings.TrimSpace(*req.Location)
		fields["location"] = merged.Location
	}
	if req.IsAllDay != nil {
		merged.IsAllDay = *req.IsAllDay
		fields["isAllDay"] = merged.IsAllDay
	}
	if req.Color != nil {
		merged.Color = strings.TrimSpace(*req.Color)
		fields["color"] = merged.Color
	}
	if req.Recurrence != nil {
		merged.Recurrence = strings.TrimSpace(*req.Recurrence)
		fields["recurrence"] = merged.Recurrence
	}

	if len(fields) == 0 {
		return nil, apperrors.Validation("No fields to update")
	}

	if err := validateEvent(&merged); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, current, fields)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("schedule event deleted", zap.String("eventId", id))
	return nil
}

// SyncExternalCalendar is not supported yet and always reports so
func (s *Service) SyncExternalCalendar(ctx context.Context) error {
	return apperrors.Unimplemented("Google Calendar sync not implemented yet")
}

// ExportICS renders every event as an iCalendar feed
func (s *Service) ExportICS(ctx context.Context) (string, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}
	return RenderICS(events, s.now()), nil
}
