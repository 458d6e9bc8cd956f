package dto

// BookingSummaryDTO is the joined read model the messaging export
// consumes: one booking with its barber and service resolved by name.
// Soft foreign keys mean either referent may be gone; the ids survive
// and the names fall back to empty.
type BookingSummaryDTO struct {
	ID            uint     `json:"id"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Status        string   `json:"status"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
	BarberID      uint     `json:"barber_id"`
	BarberName    string   `json:"barber_name"`
	ServiceID     uint     `json:"service_id"`
	ServiceName   string   `json:"service_name"`
	Price         *float64 `json:"price,omitempty"`
	IsWalkIn      bool     `json:"is_walk_in"`
}
