package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/model"
)

const (
	recipeLogFile   = "my_fav_recipes.txt"
	recipeLogHeader = "# Mofa's Kitchen Buddy - Recipe Collection\n\n"
)

// RecipeLogService mirrors created recipes into an append-only text file.
// The file is a non-authoritative copy of the database; appends are
// serialized through a mutex so concurrent requests never interleave
// entries.
type RecipeLogService struct {
	path string
	mu   sync.Mutex
}

// NewRecipeLogService ensures the log directory and header exist and
// returns a service appending to <dir>/my_fav_recipes.txt.
func NewRecipeLogService(dir string) (*RecipeLogService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create recipe log directory: %w", err)
	}

	path := filepath.Join(dir, recipeLogFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(recipeLogHeader), 0o644); err != nil {
			return nil, fmt.Errorf("failed to create recipe log: %w", err)
		}
	}

	return &RecipeLogService{path: path}, nil
}

// Path returns the location of the log file.
func (s *RecipeLogService) Path() string {
	return s.path
}

// Append writes one formatted recipe entry to the log.
func (s *RecipeLogService) Append(recipe model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open recipe log: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "\nRECIPE: %s\n", recipe.Name)
	fmt.Fprintf(&b, "Cuisine: %s\n", recipe.CuisineType)
	fmt.Fprintf(&b, "Prep Time: %d minutes\n", recipe.PreparationTime)
	fmt.Fprintf(&b, "Difficulty: %s\n", recipe.DifficultyLevel)
	fmt.Fprintf(&b, "Taste: %s\n", recipe.TasteProfile)
	fmt.Fprintf(&b, "Ingredients:\n%s\n", recipe.IngredientsList)
	fmt.Fprintf(&b, "Instructions:\n%s\n", recipe.Instructions)
	b.WriteString(strings.Repeat("-", 50) + "\n")

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to append to recipe log: %w", err)
	}
	return nil
}
