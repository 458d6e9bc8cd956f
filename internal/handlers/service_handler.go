package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberhub/barbershop-api/internal/httperr"
	"github.com/barberhub/barbershop-api/internal/httpresp"
	"github.com/barberhub/barbershop-api/internal/models"
	"github.com/barberhub/barbershop-api/internal/notify"
)

type ServiceHandler struct {
	db     *gorm.DB
	notify *notify.Center
}

func NewServiceHandler(db *gorm.DB, center *notify.Center) *ServiceHandler {
	return &ServiceHandler{db: db, notify: center}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	ID uint `json:"id"`

	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Image       string  `json:"image"`
	Status      string  `json:"status"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

type UpdateServiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

// List returns every service regardless of status; the dashboard filters
// client-side, the public surface gets its own active-only listing.
func (h *ServiceHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Price must not be negative.")
		return
	}

	// New services default to active.
	status := models.ServiceActive
	if req.Status != "" {
		status = models.ServiceStatus(req.Status)
		if !status.Valid() {
			httperr.BadRequest(c, httperr.CodeInvalidStatus, "Unknown service status.")
			return
		}
	}

	if req.ID != 0 {
		var count int64
		h.db.Model(&models.Service{}).Where("id = ?", req.ID).Count(&count)
		if count > 0 {
			httperr.BadRequest(c, httperr.CodeDuplicateID, "A service with this id already exists.")
			return
		}
	}

	svc := models.Service{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Image:       req.Image,
		Status:      status,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.notify.Post(fmt.Sprintf("Service added: %s", svc.Name))

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Price must not be negative.")
			return
		}
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		svc.DurationMin = *req.DurationMin
	}
	if req.Image != nil {
		svc.Image = *req.Image
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.notify.Post(fmt.Sprintf("Service updated: %s", svc.Name))

	httpresp.OK(c, svc)
}

// UpdateStatus touches only the status column; every other field keeps
// its value.
func (h *ServiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	status := models.ServiceStatus(req.Status)
	if !status.Valid() {
		httperr.BadRequest(c, httperr.CodeInvalidStatus, "Unknown service status.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	if err := h.db.Model(&svc).Update("status", string(status)).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service status.")
		return
	}
	svc.Status = status

	h.notify.Post(fmt.Sprintf("Service %s marked as %s", svc.Name, status))

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var svc models.Service
	found := h.db.First(&svc, id).Error == nil

	if err := h.db.Delete(&models.Service{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	if found {
		h.notify.Post(fmt.Sprintf("Service removed: %s", svc.Name))
	}

	c.Status(http.StatusNoContent)
}
