package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus is the state client-initiated bookings land in. Walk-ins
// skip it and are registered as completed right away.
func InitialStatus(isWalkIn bool) Status {
	if isWalkIn {
		return StatusCompleted
	}
	return StatusPending
}

// OccupiesSlot reports whether a booking in this status blocks its
// (barber, date, time) slot. Only cancelled bookings release the slot.
func (s Status) OccupiesSlot() bool {
	return s != StatusCancelled
}
