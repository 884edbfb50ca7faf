package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/platform/ocr"
)

// ExtractionService turns an uploaded recipe photo into a recipe draft by
// running the configured OCR engine and segmenting its output.
type ExtractionService struct {
	engine ocr.Engine
	logger *zap.Logger
}

// NewExtractionService creates an ExtractionService bound to an engine.
func NewExtractionService(engine ocr.Engine, logger *zap.Logger) *ExtractionService {
	return &ExtractionService{engine: engine, logger: logger}
}

// ExtractRecipe returns the structured draft together with the raw text
// the engine produced. Engine failures are returned as-is; the parser
// itself never fails.
func (s *ExtractionService) ExtractRecipe(ctx context.Context, imageData []byte) (RecipeDraft, string, error) {
	text, err := s.engine.ExtractText(ctx, imageData)
	if err != nil {
		return RecipeDraft{}, "", fmt.Errorf("failed to extract text from image: %w", err)
	}

	draft := ParseRecipeText(text)
	s.logger.Info("extracted recipe from image",
		zap.String("name", draft.Name),
		zap.Int("text_length", len(text)),
	)
	return draft, text, nil
}
