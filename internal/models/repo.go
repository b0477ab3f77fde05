//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../mocks/mock_event_repo.go -package=mocks
package models

import (
	"context"

	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepo is the document store surface used by the event service.
type EventRepo interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	// DeleteEvent succeeds when no event has the given id.
	DeleteEvent(ctx context.Context, id string) error
}

// SupabaseRepo stores events in the postgrest table "events". The table's id
// column must be a uuid: deletes skip ids that do not parse as one, so with a
// bigint id column every delete succeeds without removing anything.
type SupabaseRepo struct {
	supabaseClient *supabase.Client
}

func SupabaseNewRepo(supabaseClient *supabase.Client) *SupabaseRepo {
	return &SupabaseRepo{
		supabaseClient: supabaseClient,
	}
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	if dbName == "" {
		dbName = EventsDbName
	}
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}
