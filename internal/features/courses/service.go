package courses

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

// CourseRepository is the persistence the course service depends on
type CourseRepository interface {
	List(ctx context.Context, userID string) ([]Course, error)
	Create(ctx context.Context, course *Course) error
	FindByID(ctx context.Context, userID, id string) (*Course, error)
	Update(ctx context.Context, userID, id string, fields bson.M) (*Course, error)
	Delete(ctx context.Context, userID, id string) (*Course, error)
}

// TaskCascader removes the tasks that belong to a deleted course
type TaskCascader interface {
	DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error)
}

type Service struct {
	repo  CourseRepository
	tasks TaskCascader
	log   *zap.Logger
}

func NewService(repo CourseRepository, tasks TaskCascader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, tasks: tasks, log: log.Named("courses")}
}

func (s *Service) List(ctx context.Context, userID string) ([]Course, error) {
	return s.repo.List(ctx, userID)
}

// Create stores a course under userID with its name uppercased
func (s *Service) Create(ctx context.Context, userID string, req *CreateCourseRequest) (*Course, error) {
	if err := ValidateCreateCourse(req); err != nil {
		return nil, err
	}

	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Unauthenticated("Invalid user")
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = DefaultColor
	}

	course := &Course{
		Name:       normalizeName(req.Name),
		Instructor: strings.TrimSpace(req.Instructor),
		Location:   strings.TrimSpace(req.Location),
		Color:      color,
		UserID:     owner,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *Service) GetByID(ctx context.Context, userID, id string) (*Course, error) {
	return s.repo.FindByID(ctx, userID, id)
}

// Update applies the provided fields; a new name is uppercased
func (s *Service) Update(ctx context.Context, userID, id string, req *UpdateCourseRequest) (*Course, error) {
	if err := ValidateUpdateCourse(req); err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = normalizeName(*req.Name)
	}
	if req.Instructor != nil {
		fields["instructor"] = strings.TrimSpace(*req.Instructor)
	}
	if req.Location != nil {
		fields["location"] = strings.TrimSpace(*req.Location)
	}
	if req.Color != nil {
		fields["color"] = strings.TrimSpace(*req.Color)
	}

	if len(fields) == 0 {
		return nil, apperrors.Validation("No fields to update")
	}

	return s.repo.Update(ctx, userID, id, fields)
}

// Delete removes an owned course and every task referencing it. Tasks are
// matched by course id alone; they always share the course's owner.
// Tasks go first so a failed cascade leaves the course in place for a retry.
func (s *Service) Delete(ctx context.Context, userID, id string) (*DeleteResult, error) {
	course, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.tasks.DeleteByCourse(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("cascade delete tasks of course %s: %w", course.ID.Hex(), err)
	}

	if _, err := s.repo.Delete(ctx, userID, course.ID.Hex()); err != nil {
		return nil, err
	}

	s.log.Info("course deleted",
		zap.String("courseId", course.ID.Hex()),
		zap.String("userId", userID),
		zap.Int64("tasksDeleted", removed))

	return &DeleteResult{CourseID: course.ID.Hex(), TasksDeleted: removed}, nil
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
