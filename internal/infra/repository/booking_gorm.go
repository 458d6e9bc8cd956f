package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberhub/barbershop-api/internal/domain/booking"
	"github.com/barberhub/barbershop-api/internal/httperr"
	"github.com/barberhub/barbershop-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Slot conflict primitives
// --------------------------------------------------

// lockSlot counts non-cancelled bookings holding the slot, excluding
// excludeID when non-zero. Row locking only exists on postgres; the
// sqlite dialect used in tests rejects FOR UPDATE.
func lockSlot(
	tx *gorm.DB,
	barberID uint,
	date string,
	timeLabel string,
	excludeID uint,
) (int64, error) {

	q := tx.Model(&models.Booking{})
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	q = q.Where(
		"barber_id = ? AND date = ? AND time = ? AND status <> ?",
		barberID, date, timeLabel, string(domain.StatusCancelled),
	)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateInFreeSlot(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := lockSlot(tx, b.BarberID, b.Date, b.Time, 0)
		if err != nil {
			return err
		}
		if taken > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) SetStatus(
	ctx context.Context,
	b *models.Booking,
	status domain.Status,
) error {

	if err := r.db.WithContext(ctx).
		Model(b).
		Update("status", string(status)).Error; err != nil {
		return err
	}
	b.Status = string(status)
	return nil
}

func (r *BookingGormRepository) SetStatusInFreeSlot(
	ctx context.Context,
	b *models.Booking,
	status domain.Status,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := lockSlot(tx, b.BarberID, b.Date, b.Time, b.ID)
		if err != nil {
			return err
		}
		if taken > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		if err := tx.Model(b).
			Update("status", string(status)).Error; err != nil {
			return err
		}
		b.Status = string(status)
		return nil
	})
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListSlotTakers(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, string(domain.StatusCancelled),
		).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
