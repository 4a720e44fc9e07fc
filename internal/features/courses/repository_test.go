package courses

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

	mt.Run("list decodes owned courses", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + coursesCollection
		owner, _ := primitive.ObjectIDFromHex(ownerA)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "ML"}, {Key: "userId", Value: owner}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "DL"}, {Key: "userId", Value: owner}},
		))

		list, err := repo.List(context.Background(), ownerA)
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		require.Equal(mt, "ML", list[0].Name)
	})

	mt.Run("list empty is an empty slice", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + coursesCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		list, err := repo.List(context.Background(), ownerA)
		require.NoError(mt, err)
		require.NotNil(mt, list)
		require.Empty(mt, list)
	})

	mt.Run("find missing is not found", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + coursesCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), ownerA, primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("malformed ids skip the store", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)

		_, err := repo.FindByID(context.Background(), ownerA, "123")
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
		_, err = repo.Delete(context.Background(), "nobody", primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		course := &Course{Name: "ML", Instructor: "X", Location: "51", Color: "yellow"}
		require.NoError(mt, repo.Create(context.Background(), course))
		require.False(mt, course.ID.IsZero())
	})

	mt.Run("delete returns removed course", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "ML"},
		}}))

		course, err := repo.Delete(context.Background(), ownerA, id.Hex())
		require.NoError(mt, err)
		require.Equal(mt, id, course.ID)
	})

	mt.Run("update without match is not found", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.Update(context.Background(), ownerB, primitive.NewObjectID().Hex(), bson.M{"color": "red"})
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})
}
