package models

import "time"

// Booking references barbers and services by plain id columns on purpose:
// deleting a barber or a service must not cascade into historical bookings.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID  uint `gorm:"index:idx_booking_barber_day" json:"barber_id"`
	ServiceID uint `json:"service_id"`

	Date string `gorm:"size:10;index:idx_booking_barber_day" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5" json:"time"`                               // HH:MM slot label

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Price captured at booking time; never rewritten when the service
	// price changes later.
	Price *float64 `json:"price,omitempty"`

	IsWalkIn bool `json:"is_walk_in"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
