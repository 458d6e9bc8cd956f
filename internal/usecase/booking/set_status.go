package booking

import (
	"context"
	"fmt"

	domain "github.com/barberhub/barbershop-api/internal/domain/booking"
	"github.com/barberhub/barbershop-api/internal/httperr"
	"github.com/barberhub/barbershop-api/internal/models"
	"github.com/barberhub/barbershop-api/internal/notify"
)

type SetBookingStatus struct {
	repo   domain.Repository
	notify *notify.Center
}

func NewSetBookingStatus(
	repo domain.Repository,
	center *notify.Center,
) *SetBookingStatus {
	return &SetBookingStatus{
		repo:   repo,
		notify: center,
	}
}

// Execute sets the status field only. Staff may move a booking between
// any of the three states, but leaving cancelled re-occupies the slot
// and therefore re-runs the conflict check: if another non-cancelled
// booking took the slot in the meantime the transition is rejected.
func (uc *SetBookingStatus) Execute(
	ctx context.Context,
	bookingID uint,
	status domain.Status,
) (*models.Booking, error) {

	if !status.Valid() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	reactivating := domain.Status(b.Status) == domain.StatusCancelled &&
		status.OccupiesSlot()

	if reactivating {
		err = uc.repo.SetStatusInFreeSlot(ctx, b, status)
	} else {
		err = uc.repo.SetStatus(ctx, b, status)
	}
	if err != nil {
		return nil, err
	}

	uc.notify.Post(fmt.Sprintf(
		"Booking for %s marked as %s", b.CustomerName, status,
	))

	return b, nil
}
