package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberhub/barbershop-api/internal/httperr"
)

// Hold duration only needs to cover one check-then-insert round trip.
const lockTTL = 10 * time.Second

// Locker serializes booking creation on one (barber, date, time) key
// across replicas. A single process is already serialized by the store
// transaction, so a nil Locker is valid and every call becomes a no-op.
type Locker struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Locker {
	if rdb == nil {
		return nil
	}
	return &Locker{rdb: rdb}
}

func key(barberID uint, date, timeLabel string) string {
	return fmt.Sprintf("slotlock:%d:%s:%s", barberID, date, timeLabel)
}

// Acquire takes the advisory lock and returns its release func. A slot
// someone else is mid-booking on reports a slot conflict rather than
// waiting.
func (l *Locker) Acquire(
	ctx context.Context,
	barberID uint,
	date string,
	timeLabel string,
) (func(), error) {

	if l == nil {
		return func() {}, nil
	}

	k := key(barberID, date, timeLabel)

	ok, err := l.rdb.SetNX(ctx, k, "1", lockTTL).Result()
	if err != nil {
		// Redis being down must not take bookings down with it; the
		// store transaction still guarantees slot uniqueness.
		return func() {}, nil
	}
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	return func() {
		l.rdb.Del(context.Background(), k)
	}, nil
}
