package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/eventboard/internal/config"
	"github.com/joshua-takyi/eventboard/internal/connect"
	"github.com/joshua-takyi/eventboard/internal/container"
	"github.com/joshua-takyi/eventboard/internal/helpers"
	"github.com/joshua-takyi/eventboard/internal/models"
	"github.com/joshua-takyi/eventboard/internal/routes"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)
	logger.Info("Starting eventboard server",
		"environment", cfg.Environment,
		"document_store", cfg.DocumentStore,
		"object_store", cfg.ObjectStore,
	)

	var supaClient *supabase.Client
	if cfg.UsesSupabase() {
		supaClient, err = connect.InitSupabase(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			logger.Error("Failed to connect to Supabase", "error", err)
			os.Exit(1)
		}
		logger.Info("Connected to Supabase successfully")
	}

	var (
		mongoClient *mongo.Client
		eventsRepo  models.EventRepo
	)
	switch cfg.DocumentStore {
	case config.StoreSupabase:
		eventsRepo = models.SupabaseNewRepo(supaClient)
	default:
		mongoClient, err = connect.MongoDBConnect(context.Background(), cfg.MongoDBURI, cfg.MongoDBPassword)
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		logger.Info("Connected to MongoDB successfully")
		eventsRepo = models.MongodbNewRepo(mongoClient, cfg.MongoDBDatabase)
	}

	var images helpers.ObjectStore
	switch cfg.ObjectStore {
	case config.StoreCloudinary:
		cld, err := connect.CloudinaryCredentials(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Error("Failed to connect to Cloudinary", "error", err)
			os.Exit(1)
		}
		images = helpers.NewCloudinaryStorage(cld)
	default:
		images = helpers.NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseBucket)
	}

	appContainer := container.NewContainer(logger, cfg, eventsRepo, images)
	router := routes.SetupRoutes(appContainer)

	// Listen on all interfaces so the platform health check can reach us.
	server := &http.Server{
		Addr:         net.JoinHostPort("0.0.0.0", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if err := connect.MongoDBDisconnect(mongoClient); err != nil {
		logger.Error("Error disconnecting from MongoDB", "error", err)
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
