package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "kitchen_buddy.db", cfg.Database.Path)
	assert.Equal(t, "tesseract", cfg.OCR.Engine)
	assert.Equal(t, "recipes", cfg.Storage.RecipeLogDir)
	assert.Equal(t, "images", cfg.Storage.ImageDir)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("KITCHEN_SERVER_PORT", "9001")
	t.Setenv("KITCHEN_DATABASE_PATH", "/tmp/test.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9001", cfg.Server.Port)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: "oracle"},
		OCR:      OCRConfig{Engine: "tesseract"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateGeminiRequiresKey(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: "sqlite", Path: "x.db"},
		OCR:      OCRConfig{Engine: "gemini"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini_api_key")
}

func TestPostgresDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "dbhost", Port: "5432", User: "u", Password: "p",
		Name: "kitchen", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=dbhost port=5432 user=u password=p dbname=kitchen sslmode=disable",
		db.DSN())
}
