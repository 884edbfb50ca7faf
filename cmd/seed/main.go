// Command seed fills the database with a starter pantry and a few recipes
// for local development.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/config"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/database"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/model"
)

var ingredients = []model.Ingredient{
	{Name: "Rice", Quantity: 5, Unit: "kg", Category: "Grains"},
	{Name: "Red Lentils", Quantity: 2, Unit: "kg", Category: "Grains"},
	{Name: "Chicken", Quantity: 1.5, Unit: "kg", Category: "Meat"},
	{Name: "Onion", Quantity: 10, Unit: "pcs", Category: "Vegetables"},
	{Name: "Green Chili", Quantity: 20, Unit: "pcs", Category: "Vegetables"},
	{Name: "Milk", Quantity: 2, Unit: "l", Category: "Dairy"},
	{Name: "Sugar", Quantity: 1, Unit: "kg", Category: "Baking"},
	{Name: "Eggs", Quantity: 12, Unit: "pcs", Category: "Dairy"},
}

var recipes = []model.Recipe{
	{
		Name:            "Khichuri",
		CuisineType:     "Bengali",
		PreparationTime: 40,
		DifficultyLevel: "Easy",
		TasteProfile:    "Savory",
		IngredientsList: "rice, red lentils, onion, turmeric, green chili",
		Instructions:    "Wash rice and lentils. Fry onions. Add everything and simmer until soft.",
	},
	{
		Name:            "Chicken Curry",
		CuisineType:     "Bengali",
		PreparationTime: 60,
		DifficultyLevel: "Medium",
		TasteProfile:    "Spicy",
		IngredientsList: "chicken, onion, garlic, ginger, chili, oil",
		Instructions:    "Brown the onions. Add spices and chicken. Cook covered until tender.",
	},
	{
		Name:            "Gulab Jamun",
		CuisineType:     "Indian",
		PreparationTime: 50,
		DifficultyLevel: "Hard",
		TasteProfile:    "Sweet",
		IngredientsList: "milk powder, flour, sugar, cardamom, oil",
		Instructions:    "Knead the dough. Fry the balls golden. Soak in sugar syrup.",
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = database.Close(db) }()

	now := time.Now().UTC()
	for i := range ingredients {
		ingredients[i].LastUpdated = now
	}

	if err := db.Create(&ingredients).Error; err != nil {
		fmt.Fprintf(os.Stderr, "seed: failed to insert ingredients: %v\n", err)
		os.Exit(1)
	}
	if err := db.Create(&recipes).Error; err != nil {
		fmt.Fprintf(os.Stderr, "seed: failed to insert recipes: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seeded %d ingredients and %d recipes\n", len(ingredients), len(recipes))
}
