package model

import "time"

// Recipe is a stored recipe. Ingredients are kept as comma-separated free
// text rather than references into the ingredients table.
type Recipe struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:200;index;not null" json:"name"`
	CuisineType     string    `gorm:"size:50" json:"cuisine_type"`
	PreparationTime int       `json:"preparation_time"` // minutes
	DifficultyLevel string    `gorm:"size:20" json:"difficulty_level"`
	TasteProfile    string    `gorm:"size:100" json:"taste_profile"`
	Instructions    string    `gorm:"type:text" json:"instructions"`
	IngredientsList string    `gorm:"type:text" json:"ingredients_list"`
	SourceImage     string    `gorm:"size:255" json:"source_image,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
