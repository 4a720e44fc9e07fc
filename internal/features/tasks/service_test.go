package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

// ── Fake TaskRepository ──

type fakeTaskRepo struct {
	tasks map[primitive.ObjectID]*Task
	order []primitive.ObjectID
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[primitive.ObjectID]*Task)}
}

func (f *fakeTaskRepo) owned(userID, id string) (*Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("Task not found")
	}
	t, ok := f.tasks[oid]
	if !ok || t.UserID.Hex() != userID {
		return nil, apperrors.NotFound("Task not found")
	}
	return t, nil
}

func (f *fakeTaskRepo) list(match func(*Task) bool) []Task {
	out := []Task{}
	for _, id := range f.order {
		if t, ok := f.tasks[id]; ok && match(t) {
			out = append(out, *t)
		}
	}
	return out
}

func (f *fakeTaskRepo) ListByOwner(_ context.Context, userID string) ([]Task, error) {
	return f.list(func(t *Task) bool { return t.UserID.Hex() == userID }), nil
}

func (f *fakeTaskRepo) ListByCourse(_ context.Context, userID string, courseID primitive.ObjectID) ([]Task, error) {
	return f.list(func(t *Task) bool { return t.UserID.Hex() == userID && t.CourseID == courseID }), nil
}

func (f *fakeTaskRepo) Create(_ context.Context, task *Task) error {
	task.ID = primitive.NewObjectID()
	cp := *task
	f.tasks[task.ID] = &cp
	f.order = append(f.order, task.ID)
	return nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, userID, id string) (*Task, error) {
	t, err := f.owned(userID, id)
	if err != nil {
		return nil, err
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, userID, id string, fields bson.M) (*Task, error) {
	t, err := f.owned(userID, id)
	if err != nil {
		return nil, err
	}
	for k, v := range fields {
		switch k {
		case "title":
			t.Title = v.(string)
		case "description":
			t.Description = v.(string)
		case "dueDate":
			t.DueDate = v.(time.Time)
		case "completed":
			t.Completed = v.(bool)
		}
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTaskRepo) Toggle(_ context.Context, userID, id string) (*Task, error) {
	t, err := f.owned(userID, id)
	if err != nil {
		return nil, err
	}
	t.Completed = !t.Completed
	cp := *t
	return &cp, nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, userID, id string) error {
	t, err := f.owned(userID, id)
	if err != nil {
		return err
	}
	delete(f.tasks, t.ID)
	return nil
}

// ── Fake CourseLookup ──

type fakeCourse struct {
	ref   CourseRef
	owner string
}

type fakeCourses struct {
	courses map[primitive.ObjectID]*fakeCourse
}

func (f *fakeCourses) add(owner, name, color string) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.courses[id] = &fakeCourse{ref: CourseRef{ID: id, Name: name, Color: color}, owner: owner}
	return id
}

func (f *fakeCourses) FindOwned(_ context.Context, userID, courseID string) (*CourseRef, error) {
	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, apperrors.NotFound("Course not found")
	}
	c, ok := f.courses[oid]
	if !ok || c.owner != userID {
		return nil, apperrors.NotFound("Course not found")
	}
	ref := c.ref
	return &ref, nil
}

func (f *fakeCourses) FindRefs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]CourseRef, error) {
	out := make(map[primitive.ObjectID]CourseRef, len(ids))
	for _, id := range ids {
		if c, ok := f.courses[id]; ok {
			out[id] = c.ref
		}
	}
	return out, nil
}

const (
	ownerA = "65faa097f352203c7772363a"
	ownerB = "65faa097f352203c7772363b"
)

var due = time.Date(2025, 3, 20, 23, 59, 0, 0, time.UTC)

func newTestService() (*Service, *fakeTaskRepo, *fakeCourses) {
	repo := newFakeTaskRepo()
	courses := &fakeCourses{courses: map[primitive.ObjectID]*fakeCourse{}}
	return NewService(repo, courses, nil), repo, courses
}

func TestCreate_InheritsCourseColorOnce(t *testing.T) {
	svc, _, courses := newTestService()
	ctx := context.Background()
	courseID := courses.add(ownerA, "ML", "blue")

	task, err := svc.Create(ctx, ownerA, &CreateTaskRequest{Title: "HW1", DueDate: &due, CourseID: courseID.Hex()})
	require.NoError(t, err)
	require.Equal(t, "blue", task.Color)
	require.False(t, task.Completed)

	// recoloring the course later does not touch the task
	courses.courses[courseID].ref.Color = "red"

	view, err := svc.GetByID(ctx, ownerA, task.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "blue", view.Color)
	require.Equal(t, "red", view.Course.Color)
	require.Equal(t, "ML", view.Course.Name)

	second, err := svc.Create(ctx, ownerA, &CreateTaskRequest{Title: "HW2", DueDate: &due, CourseID: courseID.Hex()})
	require.NoError(t, err)
	require.Equal(t, "red", second.Color)
}

func TestCreate_ForeignCourseNotFoundAndNothingPersisted(t *testing.T) {
	svc, repo, courses := newTestService()
	courseID := courses.add(ownerB, "OS", "green")

	_, err := svc.Create(context.Background(), ownerA, &CreateTaskRequest{Title: "HW", DueDate: &due, CourseID: courseID.Hex()})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Equal(t, "Course not found", apperrors.MessageOf(err))
	require.Empty(t, repo.tasks)

	_, err = svc.Create(context.Background(), ownerA, &CreateTaskRequest{Title: "HW", DueDate: &due, CourseID: "garbage"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Empty(t, repo.tasks)
}

func TestCreate_Validation(t *testing.T) {
	svc, repo, courses := newTestService()
	courseID := courses.add(ownerA, "ML", "blue").Hex()

	_, err := svc.Create(context.Background(), ownerA, &CreateTaskRequest{Title: "HW", CourseID: courseID})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Create(context.Background(), ownerA, &CreateTaskRequest{Title: " ", DueDate: &due, CourseID: courseID})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Empty(t, repo.tasks)
}

func TestToggleIsInvolution(t *testing.T) {
	svc, _, courses := newTestService()
	ctx := context.Background()
	courseID := courses.add(ownerA, "ML", "blue")

	task, err := svc.Create(ctx, ownerA, &CreateTaskRequest{Title: "HW", DueDate: &due, CourseID: courseID.Hex()})
	require.NoError(t, err)

	once, err := svc.ToggleCompletion(ctx, ownerA, task.ID.Hex())
	require.NoError(t, err)
	require.True(t, once.Completed)

	twice, err := svc.ToggleCompletion(ctx, ownerA, task.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, task.Completed, twice.Completed)

	_, err = svc.ToggleCompletion(ctx, ownerB, task.ID.Hex())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	svc, _, courses := newTestService()
	ctx := context.Background()
	courseID := courses.add(ownerA, "ML", "blue")

	task, err := svc.Create(ctx, ownerA, &CreateTaskRequest{Title: "HW", DueDate: &due, CourseID: courseID.Hex()})
	require.NoError(t, err)

	title := "HW (final)"
	done := true
	view, err := svc.Update(ctx, ownerA, task.ID.Hex(), &UpdateTaskRequest{Title: &title, Completed: &done})
	require.NoError(t, err)
	require.Equal(t, "HW (final)", view.Title)
	require.True(t, view.Completed)
	require.Equal(t, "blue", view.Color)
	require.Equal(t, courseID, view.CourseID)
	require.NotNil(t, view.Course)

	_, err = svc.Update(ctx, ownerA, task.ID.Hex(), &UpdateTaskRequest{})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	blank := ""
	_, err = svc.Update(ctx, ownerA, task.ID.Hex(), &UpdateTaskRequest{Title: &blank})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Update(ctx, ownerB, task.ID.Hex(), &UpdateTaskRequest{Title: &title})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListing(t *testing.T) {
	svc, _, courses := newTestService()
	ctx := context.Background()
	ml := courses.add(ownerA, "ML", "blue")
	dl := courses.add(ownerA, "DL", "pink")
	os := courses.add(ownerB, "OS", "green")

	for _, c := range []primitive.ObjectID{ml, ml, dl} {
		_, err := svc.Create(ctx, ownerA, &CreateTaskRequest{Title: "HW", DueDate: &due, CourseID: c.Hex()})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, ownerB, &CreateTaskRequest{Title: "HW", DueDate: &due, CourseID: os.Hex()})
	require.NoError(t, err)

	all, err := svc.ListAll(ctx, ownerA)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, v := range all {
		require.NotNil(t, v.Course)
		require.Equal(t, v.CourseID, v.Course.ID)
	}

	byCourse, err := svc.ListByCourse(ctx, ownerA, ml.Hex())
	require.NoError(t, err)
	require.Len(t, byCourse, 2)

	_, err = svc.ListByCourse(ctx, ownerA, os.Hex())
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	none, err := svc.ListAll(ctx, "65faa097f352203c7772363c")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestDelete(t *testing.T) {
	svc, repo, courses := newTestService()
	ctx := context.Background()
	courseID := courses.add(ownerA, "ML", "blue")

	task, err := svc.Create(ctx, ownerA, &CreateTaskRequest{Title: "HW", DueDate: &due, CourseID: courseID.Hex()})
	require.NoError(t, err)

	err = svc.Delete(ctx, ownerB, task.ID.Hex())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Len(t, repo.tasks, 1)

	require.NoError(t, svc.Delete(ctx, ownerA, task.ID.Hex()))
	require.Empty(t, repo.tasks)

	err = svc.Delete(ctx, ownerA, task.ID.Hex())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
