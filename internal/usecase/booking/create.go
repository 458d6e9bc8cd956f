package booking

import (
	"context"
	"fmt"

	domain "github.com/barberhub/barbershop-api/internal/domain/booking"
	"github.com/barberhub/barbershop-api/internal/httperr"
	"github.com/barberhub/barbershop-api/internal/infra/slotlock"
	"github.com/barberhub/barbershop-api/internal/models"
	"github.com/barberhub/barbershop-api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID  uint
	ServiceID uint

	Date string
	Time string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	// Walk-ins are registered by staff for a client already in the
	// chair: they start completed and occupy their slot immediately.
	IsWalkIn bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	slots  domain.SlotTemplate
	lock   *slotlock.Locker
	notify *notify.Center
}

func NewCreateBooking(
	repo domain.Repository,
	slots domain.SlotTemplate,
	lock *slotlock.Locker,
	center *notify.Center,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		slots:  slots,
		lock:   lock,
		notify: center,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute re-checks slot occupancy at write time regardless of what
// availability the caller last rendered: the read is advisory, the
// creation-time check is authoritative.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !domain.ValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !uc.slots.Contains(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if svc.Status != models.ServiceActive {
		return nil, httperr.ErrBusiness("service_unavailable")
	}

	// Price snapshot: decoupled from later service price edits.
	price := svc.Price

	b := &models.Booking{
		BarberID:      in.BarberID,
		ServiceID:     in.ServiceID,
		Date:          in.Date,
		Time:          in.Time,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Status:        string(domain.InitialStatus(in.IsWalkIn)),
		Price:         &price,
		IsWalkIn:      in.IsWalkIn,
	}

	release, err := uc.lock.Acquire(ctx, in.BarberID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := uc.repo.CreateInFreeSlot(ctx, b); err != nil {
		return nil, err
	}

	if in.IsWalkIn {
		uc.notify.Post(fmt.Sprintf("Walk-in cut registered for %s", b.CustomerName))
	} else {
		uc.notify.Post(fmt.Sprintf("New booking for %s", b.CustomerName))
	}

	return b, nil
}
