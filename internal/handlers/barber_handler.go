package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberhub/barbershop-api/internal/httperr"
	"github.com/barberhub/barbershop-api/internal/httpresp"
	"github.com/barberhub/barbershop-api/internal/models"
	"github.com/barberhub/barbershop-api/internal/notify"
	"github.com/barberhub/barbershop-api/internal/validators"
)

type BarberHandler struct {
	db     *gorm.DB
	notify *notify.Center
}

func NewBarberHandler(db *gorm.DB, center *notify.Center) *BarberHandler {
	return &BarberHandler{db: db, notify: center}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	// Optional: the server assigns ids, but an explicit one is honored
	// when free.
	ID uint `json:"id"`

	Name       string  `json:"name" binding:"required"`
	Specialty  string  `json:"specialty"`
	Experience string  `json:"experience"`
	Image      string  `json:"image"`
	Rating     float64 `json:"rating"`
	Phone      string  `json:"phone"`

	// Optional dashboard credentials.
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateBarberRequest struct {
	Name       *string  `json:"name,omitempty"`
	Specialty  *string  `json:"specialty,omitempty"`
	Experience *string  `json:"experience,omitempty"`
	Image      *string  `json:"image,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Rating != 0 && (req.Rating < 1 || req.Rating > 5) {
		httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
		return
	}

	if req.ID != 0 {
		var count int64
		h.db.Model(&models.Barber{}).Where("id = ?", req.ID).Count(&count)
		if count > 0 {
			httperr.BadRequest(c, httperr.CodeDuplicateID, "A barber with this id already exists.")
			return
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not resolve.")
		return
	}

	barber := models.Barber{
		ID:         req.ID,
		Name:       req.Name,
		Specialty:  req.Specialty,
		Experience: req.Experience,
		Image:      req.Image,
		Rating:     req.Rating,
		Phone:      req.Phone,
		Email:      email,
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
			return
		}
		barber.PasswordHash = string(hashed)
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber.")
		return
	}

	h.notify.Post(fmt.Sprintf("New barber added: %s", barber.Name))

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Could not load barber.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Specialty != nil {
		barber.Specialty = *req.Specialty
	}
	if req.Experience != nil {
		barber.Experience = *req.Experience
	}
	if req.Image != nil {
		barber.Image = *req.Image
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
			return
		}
		barber.Rating = *req.Rating
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not update barber.")
		return
	}

	h.notify.Post(fmt.Sprintf("Barber updated: %s", barber.Name))

	httpresp.OK(c, barber)
}

// Delete removes a barber. Existing bookings keep their barber_id (soft
// reference); deleting an unknown id succeeds silently.
func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var barber models.Barber
	found := h.db.First(&barber, id).Error == nil

	if err := h.db.Delete(&models.Barber{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete barber.")
		return
	}

	if found {
		h.notify.Post(fmt.Sprintf("Barber removed: %s", barber.Name))
	}

	c.Status(http.StatusNoContent)
}
