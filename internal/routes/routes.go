package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/navalhaapps/barbershop-api/internal/audit"
	"github.com/navalhaapps/barbershop-api/internal/cache"
	"github.com/navalhaapps/barbershop-api/internal/config"
	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/handlers"
	infraRepo "github.com/navalhaapps/barbershop-api/internal/infra/repository"
	"github.com/navalhaapps/barbershop-api/internal/middleware"
	"github.com/navalhaapps/barbershop-api/internal/storage"
	ucBooking "github.com/navalhaapps/barbershop-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	denylist *cache.TokenDenylist,
	st *storage.S3Storage,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		log,
	)

	listBookingsUC := ucBooking.NewListBookings(
		bookingRepo,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, denylist)
	meHandler := handlers.NewMeHandler(db, st)

	barberHandler := handlers.NewBarberHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		cancelBookingUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			if cfg.AvatarsEnabled() {
				secured.PATCH("/me/avatar", meHandler.UploadAvatar)
			}

			// ------------------------------
			// BARBERS
			// ------------------------------
			secured.GET("/barbers", barberHandler.List)
			secured.GET("/barbers/:id", barberHandler.GetByID)
			secured.GET("/barbers/:id/schedule", scheduleHandler.Get)

			manageBarbers := secured.Group("/barbers")
			manageBarbers.Use(middleware.RequireRole(domain.RoleBarbeiro, domain.RoleDono))
			{
				manageBarbers.POST("", barberHandler.Create)
				manageBarbers.PUT("/:id", barberHandler.Update)
				manageBarbers.DELETE("/:id", barberHandler.Delete)
				manageBarbers.PUT("/:id/schedule", scheduleHandler.Update)
			}

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.GetByID)

			manageServices := secured.Group("/services")
			manageServices.Use(middleware.RequireRole(domain.RoleBarbeiro, domain.RoleDono))
			{
				manageServices.POST("", serviceHandler.Create)
				manageServices.PUT("/:id", serviceHandler.Update)
				manageServices.DELETE("/:id", serviceHandler.Delete)
				manageServices.PATCH("/:id/toggle", serviceHandler.Toggle)
			}

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/appointments", bookingHandler.Create)
			secured.GET("/appointments", bookingHandler.List)
			secured.PATCH("/appointments/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// AUDIT
			// ------------------------------
			auditGroup := secured.Group("/audit-logs")
			auditGroup.Use(middleware.RequireRole(domain.RoleDono))
			{
				auditGroup.GET("", auditLogsHandler.List)
			}
		}
	}
}
