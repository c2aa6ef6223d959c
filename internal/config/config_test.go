package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("UPLOADS_ROOT", "")

	cfg := LoadConfig()
	require.Equal(t, AppName, cfg.AppName)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "3000", cfg.AppPort)
	require.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	require.Equal(t, "http://localhost:3000", cfg.BaseURL)
	require.Equal(t, "uploads", cfg.UploadsRoot)
	require.Equal(t, filepath.Join("uploads", "properties"), cfg.PropertyUploadDir)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("CORS_ORIGIN", "https://immo.example.com")
	t.Setenv("UPLOADS_ROOT", "/tmp/immo-uploads")

	cfg := LoadConfig()
	require.Equal(t, "test", cfg.Env)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "https://immo.example.com", cfg.CORSOrigin)
	require.Equal(t, filepath.Join("/tmp/immo-uploads", "properties"), cfg.PropertyUploadDir)
}
