package booking

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/barberhub/barbershop-api/internal/db"
	domain "github.com/barberhub/barbershop-api/internal/domain/booking"
	"github.com/barberhub/barbershop-api/internal/infra/repository"
	"github.com/barberhub/barbershop-api/internal/models"
	"github.com/barberhub/barbershop-api/internal/notify"
)

type testEnv struct {
	db     *gorm.DB
	repo   *repository.BookingGormRepository
	center *notify.Center
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	return &testEnv{
		db:     gdb,
		repo:   repository.NewBookingGormRepository(gdb),
		center: notify.New(time.Hour),
	}
}

func (e *testEnv) seedBarber(t *testing.T, name string) *models.Barber {
	t.Helper()
	barber := &models.Barber{Name: name, Specialty: "Classic cut", Rating: 4.8}
	require.NoError(t, e.db.Create(barber).Error)
	return barber
}

func (e *testEnv) seedService(t *testing.T, name string, price float64, status models.ServiceStatus) *models.Service {
	t.Helper()
	svc := &models.Service{
		Name:        name,
		Price:       price,
		DurationMin: 30,
		Status:      status,
	}
	require.NoError(t, e.db.Create(svc).Error)
	return svc
}

func (e *testEnv) createUC() *CreateBooking {
	return NewCreateBooking(e.repo, domain.DefaultTemplate(), nil, e.center)
}

func (e *testEnv) statusUC() *SetBookingStatus {
	return NewSetBookingStatus(e.repo, e.center)
}

func (e *testEnv) availabilityUC() *GetAvailability {
	return NewGetAvailability(e.repo, domain.DefaultTemplate())
}
