package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// eventRow is the postgrest row shape of the events table. The id column is
// a uuid generated by the table default (gen_random_uuid()).
type eventRow struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Image       *string `json:"image"`
}

func (r eventRow) toEvent() *Event {
	return &Event{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Image:       r.Image,
	}
}

func decodeEventRows(data []byte) ([]*Event, error) {
	var rows []eventRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}

	events := make([]*Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toEvent())
	}
	return events, nil
}

func (su *SupabaseRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	if su.supabaseClient == nil {
		return nil, ErrStoreUnavailable
	}

	data, _, err := su.supabaseClient.From(EventsTable).Select("*", "", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return decodeEventRows(data)
}

func (su *SupabaseRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	if su.supabaseClient == nil {
		return nil, ErrStoreUnavailable
	}

	row := map[string]interface{}{
		"title":       event.Title,
		"description": event.Description,
		"date":        event.Date,
		"image":       event.Image,
	}

	data, _, err := su.supabaseClient.
		From(EventsTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	created, err := decodeEventRows(data)
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no event returned after insert")
	}

	return created[0], nil
}

func (su *SupabaseRepo) DeleteEvent(ctx context.Context, id string) error {
	if su.supabaseClient == nil {
		return ErrStoreUnavailable
	}

	// Not a uuid, so no row can carry it.
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}

	// An empty result set is a successful delete of a missing row.
	if _, _, err := su.supabaseClient.From(EventsTable).Delete("minimal", "").Eq("id", id).Execute(); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return nil
}
