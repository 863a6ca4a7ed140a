package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bobthecat1708/barber-finder-api/internal/audit"
	"github.com/bobthecat1708/barber-finder-api/internal/config"
	"github.com/bobthecat1708/barber-finder-api/internal/handlers"
	infraRepo "github.com/bobthecat1708/barber-finder-api/internal/infra/repository"
	"github.com/bobthecat1708/barber-finder-api/internal/media"
	"github.com/bobthecat1708/barber-finder-api/internal/middleware"
	ucbooking "github.com/bobthecat1708/barber-finder-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := media.NewUploader(media.Options{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
		PublicURL: cfg.S3PublicURL,
	})

	authLimiter := middleware.NewRateLimiter(5, 10)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	getAvailabilityUC := ucbooking.NewGetAvailability(bookingRepo)
	createAppointmentUC := ucbooking.NewCreateAppointment(bookingRepo, auditDispatcher)
	cancelBookingUC := ucbooking.NewCancelBooking(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	customerAuthHandler := handlers.NewCustomerAuthHandler(db, cfg)

	shopHandler := handlers.NewShopHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC)
	bookingHandler := handlers.NewBookingHandler(db, createAppointmentUC, cancelBookingUC)
	favouriteHandler := handlers.NewFavouriteHandler(db)

	barberHandler := handlers.NewBarberHandler(db, uploader)
	serviceHandler := handlers.NewServiceHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC BROWSE
		// ------------------------------
		api.GET("/shops", shopHandler.List)
		api.GET("/shops/:id", shopHandler.Get)
		api.GET("/shops/:id/services", shopHandler.ListServices)
		api.GET("/barbers/:id/availability", availabilityHandler.Get)

		// ------------------------------
		// AUTH — BARBER SHOPS
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimitMiddleware(authLimiter))
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// CUSTOMERS
		// ------------------------------
		customers := api.Group("/customers")
		{
			customers.POST("/signup", middleware.RateLimitMiddleware(authLimiter), customerAuthHandler.Signup)
			customers.POST("/login", middleware.RateLimitMiddleware(authLimiter), customerAuthHandler.Login)

			secured := customers.Group("/")
			secured.Use(middleware.CustomerAuthMiddleware(cfg))
			{
				secured.POST("/appointments", bookingHandler.Create)
				secured.GET("/bookings", bookingHandler.ListBookings)
				secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

				secured.GET("/favourites", favouriteHandler.List)
				secured.POST("/favourites", favouriteHandler.Add)
				secured.DELETE("/favourites/:shopId", favouriteHandler.Remove)
			}
		}

		// ------------------------------
		// DASHBOARD — BARBER SHOPS
		// ------------------------------
		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.ShopAuthMiddleware(cfg))
		{
			dashboard.GET("/barbers", barberHandler.List)
			dashboard.POST("/barbers", barberHandler.Create)
			dashboard.PUT("/barbers/:id", barberHandler.Update)
			dashboard.DELETE("/barbers/:id", barberHandler.Delete)
			dashboard.POST("/barbers/:id/photo", barberHandler.UploadPhoto)

			dashboard.GET("/services", serviceHandler.List)
			dashboard.POST("/services", serviceHandler.Create)
			dashboard.PUT("/services/:id", serviceHandler.Update)
			dashboard.DELETE("/services/:id", serviceHandler.Delete)

			dashboard.GET("/schedule", scheduleHandler.Get)
			dashboard.POST("/schedule", scheduleHandler.Replace)

			dashboard.GET("/appointments", dashboardHandler.ListAppointments)
		}
	}
}
