package tasks

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

// TaskRepository is the persistence the task service depends on
type TaskRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]Task, error)
	ListByCourse(ctx context.Context, userID string, courseID primitive.ObjectID) ([]Task, error)
	Create(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, userID, id string) (*Task, error)
	Update(ctx context.Context, userID, id string, fields bson.M) (*Task, error)
	Toggle(ctx context.Context, userID, id string) (*Task, error)
	Delete(ctx context.Context, userID, id string) error
}

// CourseLookup resolves the courses tasks hang off.
// FindOwned reports NotFound for a course the user does not own.
type CourseLookup interface {
	FindOwned(ctx context.Context, userID, courseID string) (*CourseRef, error)
	FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]CourseRef, error)
}

type Service struct {
	repo    TaskRepository
	courses CourseLookup
	log     *zap.Logger
}

func NewService(repo TaskRepository, courses CourseLookup, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, courses: courses, log: log.Named("tasks")}
}

// ListAll returns the owner's tasks joined with their courses
func (s *Service) ListAll(ctx context.Context, userID string) ([]TaskView, error) {
	tasks, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, tasks)
}

// ListByCourse returns the owner's tasks under a course they own
func (s *Service) ListByCourse(ctx context.Context, userID, courseID string) ([]Task, error) {
	course, err := s.courses.FindOwned(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCourse(ctx, userID, course.ID)
}

// Create adds a task under an owned course. The course's current color is
// copied onto the task.
func (s *Service) Create(ctx context.Context, userID string, req *CreateTaskRequest) (*Task, error) {
	if err := ValidateCreateTask(req); err != nil {
		return nil, err
	}

	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Unauthenticated("Invalid user")
	}

	course, err := s.courses.FindOwned(ctx, userID, req.CourseID)
	if err != nil {
		return nil, err
	}

	color := course.Color
	if color == "" {
		color = DefaultColor
	}

	task := &Task{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		DueDate:     req.DueDate.UTC(),
		Completed:   false,
		Color:       color,
		CourseID:    course.ID,
		UserID:      owner,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Service) GetByID(ctx context.Context, userID, id string) (*TaskView, error) {
	task, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.joinOne(ctx, task)
}

// Update changes title, description, due date or completion
func (s *Service) Update(ctx context.Context, userID, id string, req *UpdateTaskRequest) (*TaskView, error) {
	if err := ValidateUpdateTask(req); err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = strings.TrimSpace(*req.Description)
	}
	if req.DueDate != nil {
		fields["dueDate"] = req.DueDate.UTC()
	}
	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}

	if len(fields) == 0 {
		return nil, apperrors.Validation("No fields to update")
	}

	task, err := s.repo.Update(ctx, userID, id, fields)
	if err != nil {
		return nil, err
	}
	return s.joinOne(ctx, task)
}

// ToggleCompletion flips completed; callers cannot choose the value
func (s *Service) ToggleCompletion(ctx context.Context, userID, id string) (*Task, error) {
	return s.repo.Toggle(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) joinOne(ctx context.Context, task *Task) (*TaskView, error) {
	views, err := s.join(ctx, []Task{*task})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) join(ctx context.Context, tasks []Task) ([]TaskView, error) {
	views := make([]TaskView, len(tasks))
	if len(tasks) == 0 {
		return views, nil
	}

	seen := make(map[primitive.ObjectID]struct{}, len(tasks))
	ids := make([]primitive.ObjectID, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.CourseID]; !ok {
			seen[t.CourseID] = struct{}{}
			ids = append(ids, t.CourseID)
		}
	}

	refs, err := s.courses.FindRefs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i, t := range tasks {
		views[i] = TaskView{Task: t}
		if ref, ok := refs[t.CourseID]; ok {
			ref := ref
			views[i].Course = &ref
		}
	}
	return views, nil
}
