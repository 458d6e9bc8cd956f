package models

import "time"

type ServiceStatus string

const (
	ServiceActive      ServiceStatus = "active"
	ServiceInactive    ServiceStatus = "inactive"
	ServiceMaintenance ServiceStatus = "maintenance"
)

func (s ServiceStatus) Valid() bool {
	switch s {
	case ServiceActive, ServiceInactive, ServiceMaintenance:
		return true
	}
	return false
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Image       string  `gorm:"size:255" json:"image"`

	// Only active services are offered to clients; all statuses are
	// visible on the dashboard.
	Status ServiceStatus `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
