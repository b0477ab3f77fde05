package container

import (
	"log/slog"

	"github.com/joshua-takyi/eventboard/internal/config"
	"github.com/joshua-takyi/eventboard/internal/helpers"
	"github.com/joshua-takyi/eventboard/internal/models"
	"github.com/joshua-takyi/eventboard/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger       *slog.Logger
	Config       *config.Config
	EventService *services.EventService
}

// NewContainer creates a new dependency injection container. The store
// clients are built once in main and shared by every request.
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	eventsRepo models.EventRepo,
	images helpers.ObjectStore,
) *Container {
	return &Container{
		Logger:       logger,
		Config:       cfg,
		EventService: services.NewEventService(eventsRepo, images, logger),
	}
}
