package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/barberhub/barbershop-api/internal/config"
	dbpkg "github.com/barberhub/barbershop-api/internal/db"
	domain "github.com/barberhub/barbershop-api/internal/domain/booking"
	"github.com/barberhub/barbershop-api/internal/models"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		SlotTemplate:    domain.DefaultTemplate(),
		NotificationTTL: time.Hour,
	}

	r := gin.New()
	RegisterRoutes(r, gdb, cfg)
	return r, gdb
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCatalog(t *testing.T, gdb *gorm.DB) (*models.Barber, *models.Service) {
	t.Helper()

	barber := &models.Barber{Name: "Marcos", Specialty: "Fades", Rating: 4.9}
	require.NoError(t, gdb.Create(barber).Error)

	svc := &models.Service{Name: "Haircut", Price: 45, DurationMin: 30, Status: models.ServiceActive}
	require.NoError(t, gdb.Create(svc).Error)

	return barber, svc
}

func TestPublicBookingFlow(t *testing.T) {
	r, gdb := newTestApp(t)
	barber, svc := seedCatalog(t, gdb)

	body := gin.H{
		"barber_id":      barber.ID,
		"service_id":     svc.ID,
		"date":           "2026-09-10",
		"time":           "10:00",
		"customer_name":  "Ana",
		"customer_phone": "+55 11 91234-5678",
	}

	w := doJSON(t, r, http.MethodPost, "/api/public/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "pending", created.Status)
	require.NotNil(t, created.Price)
	assert.Equal(t, 45.0, *created.Price)

	// Second booking on the same slot is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/public/bookings", body)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestPublicAvailability(t *testing.T) {
	r, gdb := newTestApp(t)
	barber, svc := seedCatalog(t, gdb)

	booking := &models.Booking{
		BarberID:  barber.ID,
		ServiceID: svc.ID,
		Date:      "2026-09-10",
		Time:      "14:00",
		Status:    "pending",
	}
	require.NoError(t, gdb.Create(booking).Error)

	path := fmt.Sprintf("/api/public/availability?barber_id=%d&date=2026-09-10", barber.ID)
	w := doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Date  string            `json:"date"`
		Slots []domain.TimeSlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, len(domain.DefaultTemplate()))

	for _, s := range resp.Slots {
		if s.Time == "14:00" {
			assert.False(t, s.Available)
		} else {
			assert.True(t, s.Available, "slot %s", s.Time)
		}
	}
}

func TestPublicAvailability_MissingParams(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(t, r, http.MethodGet, "/api/public/availability", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicServices_OnlyActive(t *testing.T) {
	r, gdb := newTestApp(t)
	seedCatalog(t, gdb)

	hidden := &models.Service{Name: "Perm", Price: 90, DurationMin: 60, Status: models.ServiceInactive}
	require.NoError(t, gdb.Create(hidden).Error)

	w := doJSON(t, r, http.MethodGet, "/api/public/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Service `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Haircut", resp.Data[0].Name)
}

func TestAdminRequiresAuth(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
