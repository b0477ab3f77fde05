package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const (
	StoreMongo      = "mongo"
	StoreSupabase   = "supabase"
	StoreCloudinary = "cloudinary"

	// HomepageError reports document store failures on "/" as 500.
	HomepageError = "error"
	// HomepageDegraded answers "/" with a 200 placeholder page instead.
	HomepageDegraded = "degraded"
)

var validate = validator.New()

type Config struct {
	Port        string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	DocumentStore string `env:"DOCUMENT_STORE" envDefault:"mongo" validate:"oneof=mongo supabase"`
	ObjectStore   string `env:"OBJECT_STORE" envDefault:"supabase" validate:"oneof=supabase cloudinary"`

	MongoDBURI      string `env:"MONGODB_URI" validate:"required_if=DocumentStore mongo"`
	MongoDBPassword string `env:"MONGODB_PASSWORD"`
	MongoDBDatabase string `env:"MONGODB_DATABASE" envDefault:"eventboard"`

	SupabaseURL     string `env:"SUPABASE_URL"`
	SupabaseAnonKey string `env:"SUPABASE_URL_ANON_KEY"`
	SupabaseBucket  string `env:"SUPABASE_BUCKET" envDefault:"events"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME" validate:"required_if=ObjectStore cloudinary"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY" validate:"required_if=ObjectStore cloudinary"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET" validate:"required_if=ObjectStore cloudinary"`

	HomepageFailureMode string   `env:"HOMEPAGE_FAILURE_MODE" envDefault:"error" validate:"oneof=error degraded"`
	MaxUploadBytes      int64    `env:"MAX_UPLOAD_BYTES" envDefault:"10485760" validate:"gt=0"`
	AllowOrigins        []string `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Supabase is needed by either store when selected.
	if cfg.UsesSupabase() {
		if cfg.SupabaseURL == "" {
			return nil, fmt.Errorf("SUPABASE_URL is required")
		}
		if cfg.SupabaseAnonKey == "" {
			return nil, fmt.Errorf("SUPABASE_URL_ANON_KEY is required")
		}
	}

	return cfg, nil
}

func (c *Config) UsesSupabase() bool {
	return c.DocumentStore == StoreSupabase || c.ObjectStore == StoreSupabase
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
