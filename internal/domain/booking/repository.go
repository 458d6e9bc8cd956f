package booking

import (
	"context"

	"github.com/barberhub/barbershop-api/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// -------- Booking (create / conflict) --------

	// CreateInFreeSlot checks the (barber, date, time) slot and inserts
	// in one transaction; the check and the write must not interleave
	// with another creation on the same slot.
	CreateInFreeSlot(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------

	// SetStatus updates only the status column.
	SetStatus(
		ctx context.Context,
		b *models.Booking,
		status Status,
	) error

	// SetStatusInFreeSlot is SetStatus guarded by a slot re-check that
	// ignores the booking itself. Used when a cancelled booking
	// re-occupies its slot.
	SetStatusInFreeSlot(
		ctx context.Context,
		b *models.Booking,
		status Status,
	) error

	// -------- Availability --------

	// ListSlotTakers returns the non-cancelled bookings of one barber on
	// one date, in slot order.
	ListSlotTakers(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Booking, error)
}
