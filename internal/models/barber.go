package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name       string  `gorm:"size:100;not null" json:"name"`
	Specialty  string  `gorm:"size:100" json:"specialty"`
	Experience string  `gorm:"size:50" json:"experience"`
	Image      string  `gorm:"size:255" json:"image"`
	Rating     float64 `gorm:"default:5" json:"rating"`
	Phone      string  `gorm:"size:20" json:"phone"`

	// Optional, only for barbers with dashboard access.
	Email        string `gorm:"size:100;index" json:"email,omitempty"`
	PasswordHash string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
