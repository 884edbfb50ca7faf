package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/config"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/database"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/service"
)

type fixedTextEngine struct{}

func (fixedTextEngine) ExtractText(_ context.Context, _ []byte) (string, error) {
	return "Toast\nIngredients: Bread\nInstructions: Toast it.", nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	logger := zap.NewNop()
	recipeLog, err := service.NewRecipeLogService(t.TempDir())
	require.NoError(t, err)
	images, err := service.NewLocalImageStore(t.TempDir(), logger)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:           "localhost",
			Port:           "8000",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}

	return New(cfg, db, Deps{
		RecipeLog:  recipeLog,
		Extraction: service.NewExtractionService(fixedTextEngine{}, logger),
		Images:     images,
	}, logger)
}

func TestServerHealth(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServerWelcome(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kitchen Buddy")
}

func TestServerRoutesRegistered(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/recipes/", nil)
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
