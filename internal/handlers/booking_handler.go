package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberhub/barbershop-api/internal/domain/booking"
	"github.com/barberhub/barbershop-api/internal/dto"
	"github.com/barberhub/barbershop-api/internal/httperr"
	"github.com/barberhub/barbershop-api/internal/httpresp"
	"github.com/barberhub/barbershop-api/internal/models"
	"github.com/barberhub/barbershop-api/internal/notify"
	ucBooking "github.com/barberhub/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db       *gorm.DB
	notify   *notify.Center
	createUC *ucBooking.CreateBooking
	statusUC *ucBooking.SetBookingStatus
}

func NewBookingHandler(
	db *gorm.DB,
	center *notify.Center,
	createUC *ucBooking.CreateBooking,
	statusUC *ucBooking.SetBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		db:       db,
		notify:   center,
		createUC: createUC,
		statusUC: statusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	IsWalkIn bool `json:"is_walk_in"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeSlotConflict):
		httperr.Conflict(c, httperr.CodeSlotConflict, "That slot was just taken.")
	case httperr.IsBusiness(err, httperr.CodeNotFound):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, httperr.CodeInvalidStatus):
		httperr.BadRequest(c, httperr.CodeInvalidStatus, "Unknown booking status.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Time is not a bookable slot.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.BadRequest(c, "barber_not_found", "Barber not found.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Service not found.")
	case httperr.IsBusiness(err, "service_unavailable"):
		httperr.BadRequest(c, "service_unavailable", "Service is not offered right now.")
	default:
		httperr.Internal(c, "booking_failed", "Could not process booking.")
	}
}

// ======================================================
// CREATE
// ======================================================

// Create registers a booking from the dashboard, walk-ins included.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		IsWalkIn:      req.IsWalkIn,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		q = q.Where("date = ?", date)
	}
	if barberStr := strings.TrimSpace(c.Query("barber_id")); barberStr != "" {
		barberID, err := strconv.ParseUint(barberStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
			return
		}
		q = q.Where("barber_id = ?", barberID)
	}

	// Ids are generation-ordered, so this is creation order.
	var bookings []models.Booking
	if err := q.Order("id ASC").Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) SetStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.statusUC.Execute(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var b models.Booking
	if err := h.db.First(&b, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Could not load booking.")
		return
	}

	if err := h.db.Delete(&models.Booking{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Could not delete booking.")
		return
	}

	h.notify.Post(fmt.Sprintf("Booking removed for %s", b.CustomerName))

	c.Status(http.StatusNoContent)
}

// ======================================================
// SUMMARY (messaging export)
// ======================================================

// Summary joins a booking with its barber and service names for the
// outbound message link. Referents may have been deleted; ids are kept
// and names degrade to empty.
func (h *BookingHandler) Summary(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var b models.Booking
	if err := h.db.First(&b, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Could not load booking.")
		return
	}

	summary := dto.BookingSummaryDTO{
		ID:            b.ID,
		Date:          b.Date,
		Time:          b.Time,
		Status:        b.Status,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		BarberID:      b.BarberID,
		ServiceID:     b.ServiceID,
		Price:         b.Price,
		IsWalkIn:      b.IsWalkIn,
	}

	var barber models.Barber
	if err := h.db.First(&barber, b.BarberID).Error; err == nil {
		summary.BarberName = barber.Name
	}

	var svc models.Service
	if err := h.db.First(&svc, b.ServiceID).Error; err == nil {
		summary.ServiceName = svc.Name
	}

	httpresp.OK(c, summary)
}
