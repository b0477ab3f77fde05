package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventsDbName  = "eventboard"
	EventsColName = "events"
	EventsTable   = "events"
)

var ErrStoreUnavailable = errors.New("event store client is not initialized")

// Event is a single listed event. ID is assigned by the document store on
// insert; Image stays nil unless an image was uploaded at creation.
type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Image       *string `json:"image"`
}

// ImageURL is the image link or "" when the event has none.
func (e *Event) ImageURL() string {
	if e.Image == nil {
		return ""
	}
	return *e.Image
}

// EventForm holds the submitted create-event fields. Missing fields bind to "".
type EventForm struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Date        string `form:"date" json:"date"`
}

// eventDocument is the bson shape stored in the events collection.
type eventDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Date        string             `bson:"date"`
	Image       *string            `bson:"image"`
}

func newEventDocument(e *Event) eventDocument {
	return eventDocument{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Image:       e.Image,
	}
}

func (d eventDocument) toEvent() *Event {
	return &Event{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		Image:       d.Image,
	}
}
