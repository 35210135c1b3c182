package models

import (
	"time"

	"gorm.io/datatypes"

	"food-ordering-api/statemachine"
)

// OrderLine is one cart entry, snapshotted verbatim at placement time. Only
// Price participates in the payment total.
type OrderLine struct {
	FoodID   uint    `json:"id,omitempty"`
	Title    string  `json:"title,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
}

type Order struct {
	ID        uint                           `json:"id" gorm:"primaryKey"`
	Foods     datatypes.JSONSlice[OrderLine] `json:"foods"`
	Payment   float64                        `json:"payment" gorm:"not null"`
	BuyerID   uint                           `json:"buyer" gorm:"not null;index"`
	Status    statemachine.OrderStatus       `json:"status" gorm:"not null;default:'PLACED'"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
}
