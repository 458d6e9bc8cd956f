package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/barberhub/barbershop-api/internal/db"
	domain "github.com/barberhub/barbershop-api/internal/domain/booking"
	"github.com/barberhub/barbershop-api/internal/httperr"
	"github.com/barberhub/barbershop-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))
	return gdb
}

func seedBooking(barberID uint, date, timeLabel, status string) *models.Booking {
	return &models.Booking{
		BarberID:     barberID,
		ServiceID:    1,
		Date:         date,
		Time:         timeLabel,
		CustomerName: "Carlos",
		Status:       status,
	}
}

func TestCreateInFreeSlot_RejectsTakenSlot(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	first := seedBooking(1, "2026-09-01", "10:00", "pending")
	require.NoError(t, repo.CreateInFreeSlot(ctx, first))

	second := seedBooking(1, "2026-09-01", "10:00", "pending")
	err := repo.CreateInFreeSlot(ctx, second)
	require.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))

	var count int64
	gdb.Model(&models.Booking{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestCreateInFreeSlot_CancelledBookingFreesSlot(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	cancelled := seedBooking(1, "2026-09-01", "10:00", "cancelled")
	require.NoError(t, gdb.Create(cancelled).Error)

	b := seedBooking(1, "2026-09-01", "10:00", "pending")
	require.NoError(t, repo.CreateInFreeSlot(ctx, b))
}

func TestCreateInFreeSlot_OtherBarberUnaffected(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.CreateInFreeSlot(ctx, seedBooking(1, "2026-09-01", "10:00", "pending")))
	require.NoError(t, repo.CreateInFreeSlot(ctx, seedBooking(2, "2026-09-01", "10:00", "pending")))
}

func TestSetStatusInFreeSlot_IgnoresSelf(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	b := seedBooking(1, "2026-09-01", "10:00", "cancelled")
	require.NoError(t, gdb.Create(b).Error)

	// Nothing else holds the slot, so the booking may re-occupy it.
	require.NoError(t, repo.SetStatusInFreeSlot(ctx, b, domain.StatusPending))
	require.Equal(t, "pending", b.Status)

	var stored models.Booking
	require.NoError(t, gdb.First(&stored, b.ID).Error)
	require.Equal(t, "pending", stored.Status)
}

func TestSetStatusInFreeSlot_RejectsRetakenSlot(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	old := seedBooking(1, "2026-09-01", "10:00", "cancelled")
	require.NoError(t, gdb.Create(old).Error)

	taker := seedBooking(1, "2026-09-01", "10:00", "pending")
	require.NoError(t, repo.CreateInFreeSlot(ctx, taker))

	err := repo.SetStatusInFreeSlot(ctx, old, domain.StatusPending)
	require.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))

	var stored models.Booking
	require.NoError(t, gdb.First(&stored, old.ID).Error)
	require.Equal(t, "cancelled", stored.Status)
}

func TestSetStatus_TouchesOnlyStatus(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	price := 35.0
	b := seedBooking(1, "2026-09-01", "11:00", "pending")
	b.Price = &price
	require.NoError(t, gdb.Create(b).Error)

	require.NoError(t, repo.SetStatus(ctx, b, domain.StatusCompleted))

	var stored models.Booking
	require.NoError(t, gdb.First(&stored, b.ID).Error)
	require.Equal(t, "completed", stored.Status)
	require.NotNil(t, stored.Price)
	require.Equal(t, 35.0, *stored.Price)
	require.Equal(t, "Carlos", stored.CustomerName)
}

func TestListSlotTakers_ExcludesCancelled(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	require.NoError(t, gdb.Create(seedBooking(1, "2026-09-01", "09:00", "pending")).Error)
	require.NoError(t, gdb.Create(seedBooking(1, "2026-09-01", "10:00", "cancelled")).Error)
	require.NoError(t, gdb.Create(seedBooking(1, "2026-09-01", "11:00", "completed")).Error)
	require.NoError(t, gdb.Create(seedBooking(1, "2026-09-02", "09:30", "pending")).Error)
	require.NoError(t, gdb.Create(seedBooking(2, "2026-09-01", "12:00", "pending")).Error)

	takers, err := repo.ListSlotTakers(ctx, 1, "2026-09-01")
	require.NoError(t, err)

	var times []string
	for _, b := range takers {
		times = append(times, b.Time)
	}
	require.Equal(t, []string{"09:00", "11:00"}, times)
}

func TestGetBooking_SurvivesBarberDeletion(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	barber := models.Barber{Name: "Miguel"}
	require.NoError(t, gdb.Create(&barber).Error)

	b := seedBooking(barber.ID, "2026-09-01", "10:00", "pending")
	require.NoError(t, repo.CreateInFreeSlot(ctx, b))

	require.NoError(t, gdb.Delete(&models.Barber{}, barber.ID).Error)

	stored, err := repo.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, barber.ID, stored.BarberID)
}
