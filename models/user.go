package models

import "time"

// User is a customer account. Admin accounts live in their own table, so the
// two email namespaces never collide.
type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Username         string    `json:"username" gorm:"not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string    `json:"-" gorm:"not null"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone"`
	SecurityAnswer   string    `json:"-"`
	IsVerified       bool      `json:"isVerified" gorm:"default:false"`
	VerifyToken      *string   `json:"-" gorm:"index"`
	ProfileImagePath *string   `json:"profileImagePath,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
