package model

import "time"

// Ingredient is a pantry item tracked by the kitchen.
type Ingredient struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;index;not null" json:"name"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `gorm:"size:20" json:"unit"`
	Category    string     `gorm:"size:50" json:"category,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	LastUpdated time.Time  `gorm:"autoUpdateTime" json:"last_updated"`
}
