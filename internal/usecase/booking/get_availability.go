package booking

import (
	"context"

	domain "github.com/barberhub/barbershop-api/internal/domain/booking"
	"github.com/barberhub/barbershop-api/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	slots domain.SlotTemplate
}

func NewGetAvailability(
	repo domain.Repository,
	slots domain.SlotTemplate,
) *GetAvailability {
	return &GetAvailability{repo: repo, slots: slots}
}

// Execute marks each template slot for one (barber, date) pair. The
// result is recomputed on every call; booking mutations invalidate any
// previously rendered availability, so nothing is cached here.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	out := make([]domain.TimeSlot, len(uc.slots))
	for i, label := range uc.slots {
		out[i] = domain.TimeSlot{Time: label}
	}

	// Availability is meaningless without a chosen date.
	if in.Date == "" {
		return out, nil
	}
	if !domain.ValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	takers, err := uc.repo.ListSlotTakers(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(takers))
	for _, b := range takers {
		taken[b.Time] = true
	}

	for i := range out {
		out[i].Available = !taken[out[i].Time]
	}

	return out, nil
}
