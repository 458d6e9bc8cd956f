package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberhub/barbershop-api/internal/httperr"
	"github.com/barberhub/barbershop-api/internal/httpresp"
	"github.com/barberhub/barbershop-api/internal/middleware"
	"github.com/barberhub/barbershop-api/internal/models"
)

// MeHandler serves the signed-in barber's own agenda.
type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var barber models.Barber
	if err := h.db.First(&barber, barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	httpresp.OK(c, barber)
}

// ListBookings returns the barber's bookings, optionally for one date,
// in slot order.
func (h *MeHandler) ListBookings(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("barber_id = ?", barberID)
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		q = q.Where("date = ?", date)
	}

	var bookings []models.Booking
	if err := q.Order("date ASC, time ASC").Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}
