package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshua-takyi/eventboard/internal/helpers"
	"github.com/joshua-takyi/eventboard/internal/models"
)

type EventService struct {
	eventsRepo models.EventRepo
	images     helpers.ObjectStore
	logger     *slog.Logger
	now        func() time.Time
}

func NewEventService(eventsRepo models.EventRepo, images helpers.ObjectStore, logger *slog.Logger) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{
		eventsRepo: eventsRepo,
		images:     images,
		logger:     logger,
		now:        time.Now,
	}
}

func (es *EventService) Logger() *slog.Logger {
	return es.logger
}

func (es *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := es.eventsRepo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// CreateEvent uploads the optional image, then inserts the event. When the
// insert fails the uploaded image is removed again.
func (es *EventService) CreateEvent(ctx context.Context, form models.EventForm, image *helpers.ImageUpload) (*models.Event, error) {
	event := &models.Event{
		Title:       form.Title,
		Description: form.Description,
		Date:        form.Date,
	}

	var uploadedKey string
	if image != nil {
		if es.images == nil {
			return nil, fmt.Errorf("no object store configured for image uploads")
		}

		key := helpers.StorageKey(es.now(), image.Filename)
		contentType := helpers.ResolveContentType(image.ContentType, image.Content)

		url, err := es.images.Upload(ctx, key, image.Content, contentType)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		uploadedKey = key
		event.Image = &url
	}

	created, err := es.eventsRepo.CreateEvent(ctx, event)
	if err != nil {
		if uploadedKey != "" {
			// The request may already be cancelled; the cleanup should still run.
			if delErr := es.images.Delete(context.WithoutCancel(ctx), uploadedKey); delErr != nil {
				es.logger.Error("failed to remove orphaned image", "key", uploadedKey, "error", delErr)
			}
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

func (es *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := es.eventsRepo.DeleteEvent(ctx, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
