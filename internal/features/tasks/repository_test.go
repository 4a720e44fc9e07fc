package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete by course reports count", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(3)}))

		n, err := repo.DeleteByCourse(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		require.Equal(mt, int64(3), n)
	})

	mt.Run("delete by course with no tasks succeeds", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))

		n, err := repo.DeleteByCourse(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		require.Zero(mt, n)
	})

	mt.Run("delete unmatched is not found", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))

		err := repo.Delete(context.Background(), ownerA, primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("toggle returns flipped document", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "HW"},
			{Key: "completed", Value: true},
		}}))

		task, err := repo.Toggle(context.Background(), ownerA, id.Hex())
		require.NoError(mt, err)
		require.True(mt, task.Completed)
	})

	mt.Run("toggle foreign task is not found", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.Toggle(context.Background(), ownerB, primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("list by owner", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + tasksCollection
		courseID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "A"}, {Key: "courseId", Value: courseID}, {Key: "color", Value: "blue"}},
		))

		list, err := repo.ListByOwner(context.Background(), ownerA)
		require.NoError(mt, err)
		require.Len(mt, list, 1)
		require.Equal(mt, courseID, list[0].CourseID)
		require.Equal(mt, "blue", list[0].Color)
	})
}
