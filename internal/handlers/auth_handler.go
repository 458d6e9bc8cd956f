package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberhub/barbershop-api/internal/config"
	"github.com/barberhub/barbershop-api/internal/middleware"
	"github.com/barberhub/barbershop-api/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Login signs in either the config-provisioned admin account or a barber
// whose row carries credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == strings.ToLower(h.config.AdminEmail) {
		if h.config.AdminPasswordHash == "" ||
			bcrypt.CompareHashAndPassword(
				[]byte(h.config.AdminPasswordHash), []byte(req.Password),
			) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}

		token, err := h.generateToken(0, middleware.RoleAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  gin.H{"email": h.config.AdminEmail, "role": middleware.RoleAdmin},
			"token": token,
		})
		return
	}

	var barber models.Barber
	if err := h.db.
		Where("email = ? AND password_hash <> ''", email).
		First(&barber).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(barber.ID, middleware.RoleBarber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    barber.ID,
			"name":  barber.Name,
			"email": barber.Email,
			"role":  middleware.RoleBarber,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(sub uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
