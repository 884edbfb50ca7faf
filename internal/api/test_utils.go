package api

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/database"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/service"
)

// stubOCREngine returns canned OCR output for handler tests.
type stubOCREngine struct {
	text string
	err  error
}

func (s *stubOCREngine) ExtractText(_ context.Context, _ []byte) (string, error) {
	return s.text, s.err
}

// testEnv bundles everything a handler test needs to poke at.
type testEnv struct {
	Router    *gin.Engine
	DB        *gorm.DB
	RecipeLog *service.RecipeLogService
}

// setupTestEnv wires the full HTTP surface against an in-memory sqlite
// database, a temp-dir recipe log and image store, and the given OCR stub.
func setupTestEnv(t *testing.T, engine *stubOCREngine) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	logger := zap.NewNop()

	recipeLog, err := service.NewRecipeLogService(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create recipe log: %v", err)
	}
	images, err := service.NewLocalImageStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("failed to create image store: %v", err)
	}
	if engine == nil {
		engine = &stubOCREngine{}
	}
	extraction := service.NewExtractionService(engine, logger)

	router := gin.New()
	NewIngredientHandler(db, logger).RegisterRoutes(router)
	NewRecipeHandler(db, recipeLog, extraction, images, logger).RegisterRoutes(router)
	NewChatbotHandler(db, logger).RegisterRoutes(router)

	return &testEnv{Router: router, DB: db, RecipeLog: recipeLog}
}
