package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/barberia-elite/booking-api/internal/audit"
	"github.com/barberia-elite/booking-api/internal/auth"
	"github.com/barberia-elite/booking-api/internal/config"
	"github.com/barberia-elite/booking-api/internal/handlers"
	infraRepo "github.com/barberia-elite/booking-api/internal/infra/repository"
	"github.com/barberia-elite/booking-api/internal/lock"
	"github.com/barberia-elite/booking-api/internal/middleware"
	"github.com/barberia-elite/booking-api/internal/storage"
	ucAppointment "github.com/barberia-elite/booking-api/internal/usecase/appointment"
	ucStats "github.com/barberia-elite/booking-api/internal/usecase/stats"
)

const loginRateLimit = 5

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	authService *auth.Service,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	statsRepo := infraRepo.NewStatsGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	bookingLocks := lock.NewKeyed()
	imageStore := storage.NewS3Store(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, bookingLocks, auditDispatcher)
	confirmUC := ucAppointment.NewConfirmAppointment(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listAllUC := ucAppointment.NewListAllAppointments(appointmentRepo)

	statsUC := ucStats.NewGetStats(statsRepo)
	dashboardUC := ucStats.NewGetDashboardStats(statsRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService)
	barberHandler := handlers.NewBarberHandler(db, imageStore, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		confirmUC,
		cancelUC,
		listByDateUC,
		listAllUC,
	)
	analyticsHandler := handlers.NewAnalyticsHandler(statsUC, dashboardUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API
	// ======================================================
	window := time.Duration(cfg.RateLimitWindowSec) * time.Second

	api := r.Group("/api")
	api.Use(middleware.RateLimit(rdb, "api", cfg.RateLimitMax, window))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST(
			"/auth/login",
			middleware.RateLimit(rdb, "login", loginRateLimit, window),
			authHandler.Login,
		)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)

		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.ListByDate)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/")
		admin.Use(middleware.AdminAuth(authService))
		{
			admin.POST("/barbers", barberHandler.Create)
			admin.PUT("/barbers/:id", barberHandler.Update)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/appointments/all", appointmentHandler.ListAll)
			admin.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.PUT("/appointments/:id/confirm", appointmentHandler.Confirm)

			admin.GET("/appointments/stats", analyticsHandler.Stats)
			admin.GET("/analytics/dashboard", analyticsHandler.Dashboard)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
