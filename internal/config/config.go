package config

import (
	"os"
	"path/filepath"

	"github.com/Yutux/immo-api/internal/utils"
)

const (
	AppName = "immo-api"

	// MaxUploadSize is the fixed ceiling for image uploads: 5 MiB.
	MaxUploadSize = 5 << 20
)

// AllowedMimeTypes is the fixed set of accepted image MIME types.
var AllowedMimeTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"image/gif",
}

type Config struct {
	AppName    string
	Env        string
	AppPort    string
	CORSOrigin string
	// BaseURL is the public origin used when advertising image URLs.
	BaseURL string

	// UploadsRoot is served statically under /uploads/; property images
	// live in the "properties" subdirectory.
	UploadsRoot       string
	PropertyUploadDir string

	// SendGrid is optional; notifications are disabled without a key.
	SendgridAPIKey    string
	SendgridFromEmail string
	NotifyEmail       string
}

// LoadConfig reads the environment, applying the documented defaults.
func LoadConfig() *Config {
	env := getEnv("ENV", "development")
	switch env {
	case "development", "production", "test":
	default:
		utils.Logger.Fatalf("ENV must be development, production or test, got %q", env)
	}

	uploadsRoot := getEnv("UPLOADS_ROOT", "uploads")

	cfg := &Config{
		AppName:           AppName,
		Env:               env,
		AppPort:           getEnv("APP_PORT", "3000"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "http://localhost:5173"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:3000"),
		UploadsRoot:       uploadsRoot,
		PropertyUploadDir: filepath.Join(uploadsRoot, "properties"),
		SendgridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendgridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "no-reply@immo-api.local"),
		NotifyEmail:       os.Getenv("NOTIFY_EMAIL"),
	}

	utils.Logger.Infof("Loaded config for %s (%s)", cfg.AppName, cfg.Env)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
