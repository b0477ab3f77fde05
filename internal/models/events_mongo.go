package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, ErrStoreUnavailable
	}
	return mdb.mongodbClient.Database(dbName).Collection(colName), nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, mdb.dbName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var doc eventDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding event: %w", err)
		}
		events = append(events, doc.toEvent())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return events, nil
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, mdb.dbName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.InsertOne(ctx, newEventDocument(event))
	if err != nil {
		return nil, fmt.Errorf("failed to insert event into database: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	created := *event
	created.ID = oid.Hex()
	return &created, nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ctx, mdb.dbName, EventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not an ObjectID, so no document can carry it.
		return nil
	}

	if _, err := col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return nil
}
