package models

import "time"

type Restaurant struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Address     string    `json:"address" gorm:"not null"`
	ImageURL    string    `json:"imageUrl"`
	Time        string    `json:"time"` // opening hours, free text
	Pickup      bool      `json:"pickup" gorm:"default:true"`
	Delivery    bool      `json:"delivery" gorm:"default:true"`
	IsOpen      bool      `json:"isOpen" gorm:"default:true"`
	LogoURL     string    `json:"logoUrl"`
	Rating      float64   `json:"rating" gorm:"default:0"`
	RatingCount int       `json:"ratingCount" gorm:"default:0"`
	Code        string    `json:"code"`
	Foods       []Food    `json:"foods,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
