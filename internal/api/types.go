package api

import "time"

// CreateIngredientRequest is the payload for POST /ingredients/.
// Quantity is a pointer so an explicit zero passes validation.
type CreateIngredientRequest struct {
	Name       string     `json:"name" binding:"required"`
	Quantity   *float64   `json:"quantity" binding:"required"`
	Unit       string     `json:"unit" binding:"required"`
	Category   string     `json:"category"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

// UpdateIngredientRequest is the partial payload for PUT /ingredients/:id.
// Only non-nil fields are applied.
type UpdateIngredientRequest struct {
	Name       *string    `json:"name"`
	Quantity   *float64   `json:"quantity"`
	Unit       *string    `json:"unit"`
	Category   *string    `json:"category"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

// CreateRecipeRequest is the payload for POST /recipes/.
type CreateRecipeRequest struct {
	Name            string `json:"name" binding:"required"`
	CuisineType     string `json:"cuisine_type" binding:"required"`
	PreparationTime *int   `json:"preparation_time" binding:"required"`
	DifficultyLevel string `json:"difficulty_level"`
	TasteProfile    string `json:"taste_profile" binding:"required"`
	Instructions    string `json:"instructions" binding:"required"`
	IngredientsList string `json:"ingredients_list" binding:"required"`
}

// ChatRequest is the payload for POST /chatbot/chat/.
type ChatRequest struct {
	Message string `json:"message"`
}
