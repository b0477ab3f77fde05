package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongodbRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := EventsDbName + "." + EventsColName

	mt.Run("list decodes every document", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "")
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: first}, {Key: "title", Value: "Concert"}, {Key: "description", Value: "Live music"}, {Key: "date", Value: "2025-06-01"}, {Key: "image", Value: nil}},
			bson.D{{Key: "_id", Value: second}, {Key: "title", Value: "Expo"}, {Key: "image", Value: "https://cdn/a.png"}},
		))

		events, err := repo.ListEvents(context.Background())
		require.NoError(mt, err)
		require.Len(mt, events, 2)
		assert.Equal(mt, first.Hex(), events[0].ID)
		assert.Nil(mt, events[0].Image)
		assert.Equal(mt, "https://cdn/a.png", events[1].ImageURL())
		assert.Equal(mt, "find", mt.GetStartedEvent().CommandName)
	})

	mt.Run("list of an empty collection", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		events, err := repo.ListEvents(context.Background())
		require.NoError(mt, err)
		assert.Empty(mt, events)
	})

	mt.Run("create returns the assigned id", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "")
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		img := "https://cdn/a.png"
		created, err := repo.CreateEvent(context.Background(), &Event{Title: "Concert", Image: &img})
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(created.ID)
		assert.NoError(mt, err)
		assert.Equal(mt, "Concert", created.Title)

		started := mt.GetStartedEvent()
		require.Equal(mt, "insert", started.CommandName)
		assert.Equal(mt, EventsDbName, started.DatabaseName)
		doc := started.Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, created.ID, doc.Lookup("_id").ObjectID().Hex())
		assert.Equal(mt, img, doc.Lookup("image").StringValue())
	})

	mt.Run("create surfaces write errors", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "")
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		_, err := repo.CreateEvent(context.Background(), &Event{Title: "Concert"})
		assert.Error(mt, err)
	})

	mt.Run("delete of a missing id succeeds", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "")
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		id := primitive.NewObjectID()
		require.NoError(mt, repo.DeleteEvent(context.Background(), id.Hex()))

		started := mt.GetStartedEvent()
		require.Equal(mt, "delete", started.CommandName)
		filter := started.Command.Lookup("deletes").Array().Index(0).Value().Document().Lookup("q").Document()
		assert.Equal(mt, id, filter.Lookup("_id").ObjectID())
	})

	mt.Run("delete of a foreign id skips the collection", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "")

		require.NoError(mt, repo.DeleteEvent(context.Background(), "not-an-object-id"))
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("delete surfaces command errors", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, "")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))

		assert.Error(mt, repo.DeleteEvent(context.Background(), primitive.NewObjectID().Hex()))
	})
}
