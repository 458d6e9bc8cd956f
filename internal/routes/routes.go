package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/barberhub/barbershop-api/internal/config"
	"github.com/barberhub/barbershop-api/internal/handlers"
	infraRepo "github.com/barberhub/barbershop-api/internal/infra/repository"
	"github.com/barberhub/barbershop-api/internal/infra/slotlock"
	"github.com/barberhub/barbershop-api/internal/media"
	"github.com/barberhub/barbershop-api/internal/middleware"
	"github.com/barberhub/barbershop-api/internal/notify"
	ucBooking "github.com/barberhub/barbershop-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	center := notify.New(cfg.NotificationTTL)

	var locker *slotlock.Locker
	if cfg.RedisAddr != "" {
		locker = slotlock.New(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	storage := media.NewStorage(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		cfg.SlotTemplate,
		locker,
		center,
	)

	setBookingStatusUC := ucBooking.NewSetBookingStatus(
		bookingRepo,
		center,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cfg.SlotTemplate,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	barberHandler := handlers.NewBarberHandler(db, center)
	serviceHandler := handlers.NewServiceHandler(db, center)
	bookingHandler := handlers.NewBookingHandler(db, center, createBookingUC, setBookingStatusUC)
	notificationHandler := handlers.NewNotificationHandler(center)
	mediaHandler := handlers.NewMediaHandler(storage)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createBookingUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// BARBER DASHBOARD
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(middleware.RoleBarber))
		{
			me.GET("", meHandler.GetMe)
			me.GET("/bookings", meHandler.ListBookings)
		}

		// ------------------------------
		// ADMIN DASHBOARD
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.GET("/barbers", barberHandler.List)
			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.PATCH("/services/:id/status", serviceHandler.UpdateStatus)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/bookings", bookingHandler.List)
			admin.POST("/bookings", bookingHandler.Create)
			admin.PATCH("/bookings/:id/status", bookingHandler.SetStatus)
			admin.DELETE("/bookings/:id", bookingHandler.Delete)
			admin.GET("/bookings/:id/summary", bookingHandler.Summary)

			admin.GET("/notifications", notificationHandler.List)
			admin.DELETE("/notifications", notificationHandler.Clear)

			admin.POST("/uploads", mediaHandler.Upload)
		}
	}
}
