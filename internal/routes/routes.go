package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/config"
	"healthcare-portal/internal/handlers"
	"healthcare-portal/internal/middleware"
	"healthcare-portal/internal/models"
	"healthcare-portal/internal/service"
)

// Dependencies are what the route table needs to build its handlers.
type Dependencies struct {
	Services *service.Services
	Log      *logrus.Logger
	Config   *config.Config
	Gatherer prometheus.Gatherer
	Now      func() time.Time
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	cfg := deps.Config

	authHandler := handlers.NewAuthHandler(deps.Services, deps.Log, cfg.JWTSecret, cfg.SessionTTL())
	patientHandler := handlers.NewPatientHandler(deps.Services, deps.Log)
	medicalRecordHandler := handlers.NewMedicalRecordHandler(deps.Services, deps.Log, cfg.MaxUploadBytes())
	appointmentHandler := handlers.NewAppointmentHandler(deps.Services, deps.Log)
	doctorHandler := handlers.NewDoctorHandler(deps.Services, deps.Log)
	adminHandler := handlers.NewAdminHandler(deps.Services, deps.Log)
	developerHandler := handlers.NewDeveloperHandler(deps.Services, deps.Log)
	catalogHandler := handlers.NewCatalogHandler(deps.Now)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/patient/login", authHandler.Login(models.RolePatient))
			authRoutes.POST("/doctor/login", authHandler.Login(models.RoleDoctor))
			authRoutes.POST("/admin/login", authHandler.Login(models.RoleAdmin))
			authRoutes.POST("/forgot-password/otp", authHandler.RequestPasswordReset)
			authRoutes.POST("/forgot-password/reset", authHandler.ConfirmPasswordReset)
		}

		catalogRoutes := public.Group("/catalog")
		{
			catalogRoutes.GET("/options", catalogHandler.GetOptions)
			catalogRoutes.GET("/hospitals", catalogHandler.SearchHospitals)
			catalogRoutes.GET("/hospitals/:id", catalogHandler.GetHospital)
			catalogRoutes.GET("/doctors", catalogHandler.GetDoctors)
			catalogRoutes.GET("/doctors/:id/availability", catalogHandler.GetDoctorAvailability)
		}

		// Hospital provisioning has no login of its own.
		public.POST("/developer/admins", developerHandler.CreateAdmin)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		private.POST("/auth/logout", authHandler.Logout)
		private.GET("/auth/session", authHandler.Session)

		patientRoutes := private.Group("/patient")
		patientRoutes.Use(middleware.RoleAuthMiddleware(models.RolePatient))
		{
			patientRoutes.GET("/profile", patientHandler.GetProfile)
			patientRoutes.PUT("/profile", patientHandler.UpdateProfile(authHandler))
			patientRoutes.GET("/documents", medicalRecordHandler.ListDocuments)
			patientRoutes.POST("/documents", medicalRecordHandler.UploadDocument)
			patientRoutes.GET("/appointments", appointmentHandler.GetAppointmentsForPatient)
			patientRoutes.POST("/appointments", appointmentHandler.CreateAppointment)
		}

		doctorRoutes := private.Group("/doctor")
		doctorRoutes.Use(middleware.RoleAuthMiddleware(models.RoleDoctor))
		{
			doctorRoutes.GET("/dashboard", doctorHandler.GetDashboard)
			doctorRoutes.GET("/appointments", appointmentHandler.GetIncomingAppointments)
			doctorRoutes.PATCH("/appointments/:id/status", appointmentHandler.UpdateAppointmentStatus)
		}

		adminRoutes := private.Group("/admin")
		adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/dashboard", adminHandler.GetDashboard)
			adminRoutes.POST("/doctors", adminHandler.CreateDoctor)
			adminRoutes.POST("/availability", adminHandler.SetAvailability)
		}
	}

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
}
