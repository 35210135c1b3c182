package models

import "time"

// Food belongs to exactly one restaurant, fixed at creation time.
type Food struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	Price        float64   `json:"price" gorm:"not null"`
	RestaurantID uint      `json:"restaurant" gorm:"not null;index"`
	ImageURL     string    `json:"imageUrl"`
	FoodTags     string    `json:"foodTags"`
	Category     string    `json:"category"`
	Code         string    `json:"code"`
	IsAvailable  bool      `json:"isAvailable" gorm:"default:true"`
	Rating       float64   `json:"rating" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
