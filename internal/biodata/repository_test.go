// AngelaMos | 2026
// repository_test.go

package biodata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get by id", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "MomentsDB.biodatas", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "biodataID", Value: 7},
			{Key: "yourName", Value: "Rahim"},
			{Key: "isFavourite", Value: true},
		}))

		doc, err := NewRepository(mt.Coll).GetByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, id, doc["_id"])
		assert.EqualValues(mt, 7, doc["biodataID"])
		assert.Equal(mt, "Rahim", doc["yourName"])
		assert.Equal(mt, true, doc[fieldFavourite])
	})

	mt.Run("get by id absent", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "MomentsDB.biodatas", mtest.FirstBatch))

		_, err := NewRepository(mt.Coll).GetByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, core.ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "MomentsDB.biodatas", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "biodataID", Value: 1}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "biodataID", Value: 2}},
		))

		items, err := NewRepository(mt.Coll).List(context.Background())
		require.NoError(mt, err)
		assert.Len(mt, items, 2)
	})

	mt.Run("list tolerates legacy field types", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "MomentsDB.biodatas", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "biodataID", Value: "12"},
				{Key: "yourAge", Value: 25},
				{Key: "isFavourite", Value: "true"},
			},
		))

		items, err := NewRepository(mt.Coll).List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, "true", items[0][fieldFavourite])
		assert.Equal(mt, "12", items[0]["biodataID"])
		assert.EqualValues(mt, 25, items[0]["yourAge"])
	})

	mt.Run("list empty is not nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "MomentsDB.biodatas", mtest.FirstBatch))

		items, err := NewRepository(mt.Coll).List(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, items)
		assert.Empty(mt, items)
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := NewRepository(mt.Coll).Create(context.Background(), core.Document{"biodataID": 3, "yourName": "Karim"})
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		_, err = primitive.ObjectIDFromHex(res.InsertedID)
		assert.NoError(mt, err)
	})

	mt.Run("set favourite", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := NewRepository(mt.Coll).SetFavourite(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.MatchedCount)
		assert.EqualValues(mt, 0, res.ModifiedCount)
	})

	mt.Run("replace upserts", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: id}}}},
		))

		res, err := NewRepository(mt.Coll).Replace(context.Background(), id, core.Document{"yourName": "X"})
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.UpsertedCount)
		require.NotNil(mt, res.UpsertedID)
		assert.Equal(mt, id.Hex(), *res.UpsertedID)
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := NewRepository(mt.Coll).Delete(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.DeletedCount)
	})

	mt.Run("store failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		_, err := NewRepository(mt.Coll).Delete(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, core.ErrDatabase)
	})
}
