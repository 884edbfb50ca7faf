package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/platform/ocr"
)

// stubEngine returns canned OCR output.
type stubEngine struct {
	text string
	err  error
}

func (s *stubEngine) ExtractText(_ context.Context, _ []byte) (string, error) {
	return s.text, s.err
}

func TestExtractRecipe(t *testing.T) {
	svc := NewExtractionService(&stubEngine{
		text: "Chicken Soup\nIngredients: Chicken, Water\nInstructions: Boil.",
	}, zap.NewNop())

	draft, raw, err := svc.ExtractRecipe(context.Background(), []byte("img"))
	require.NoError(t, err)

	assert.Equal(t, "Chicken Soup", draft.Name)
	assert.Contains(t, draft.IngredientsList, "Chicken, Water")
	assert.Contains(t, draft.Instructions, "Boil.")
	assert.Contains(t, raw, "Chicken Soup")
}

func TestExtractRecipeEngineFailure(t *testing.T) {
	svc := NewExtractionService(&stubEngine{err: ocr.ErrEngineUnavailable}, zap.NewNop())

	_, _, err := svc.ExtractRecipe(context.Background(), []byte("img"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ocr.ErrEngineUnavailable)
}
