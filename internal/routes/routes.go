package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-portal-server/internal/appointments"
	"hospital-portal-server/internal/config"
	"hospital-portal-server/internal/directory"
	"hospital-portal-server/internal/handlers"
	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/models"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Wire the appointment core: resolver -> store -> lifecycle engine.
	resolver := directory.NewGormResolver(db)
	store := appointments.NewGormStore(db)
	service := appointments.NewService(store, resolver)

	userHandler := handlers.NewUserHandler(db, cfg)
	appointmentHandler := handlers.NewAppointmentHandler(service)
	messageHandler := handlers.NewMessageHandler(db)

	api := router.Group("/api/v1")

	userRoutes := api.Group("/user")
	{
		userRoutes.POST("/patient/register", userHandler.PatientRegister)
		userRoutes.POST("/login", userHandler.Login)
		userRoutes.GET("/doctors", userHandler.GetAllDoctors)

		patientOnly := userRoutes.Group("")
		patientOnly.Use(middleware.AuthMiddleware(cfg), middleware.RoleAuthMiddleware(models.RolePatient))
		{
			patientOnly.GET("/patient/me", userHandler.GetUserDetails)
			patientOnly.GET("/patient/logout", userHandler.LogoutPatient)
		}

		adminOnly := userRoutes.Group("")
		adminOnly.Use(middleware.AuthMiddleware(cfg), middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminOnly.POST("/admin/addnew", userHandler.AddNewAdmin)
			adminOnly.POST("/doctor/addnew", userHandler.AddNewDoctor)
			adminOnly.GET("/admin/me", userHandler.GetUserDetails)
			adminOnly.GET("/admin/logout", userHandler.LogoutAdmin)
			adminOnly.PUT("/doctor/update/:id", userHandler.UpdateDoctor)
			adminOnly.DELETE("/doctor/delete/:id", userHandler.DeleteDoctor)
		}
	}

	appointmentRoutes := api.Group("/appointment")
	appointmentRoutes.Use(middleware.AuthMiddleware(cfg))
	{
		appointmentRoutes.POST("/post", middleware.RoleAuthMiddleware(models.RolePatient), appointmentHandler.PostAppointment)
		appointmentRoutes.GET("/getall", middleware.RoleAuthMiddleware(models.RoleAdmin), appointmentHandler.GetAllAppointments)

		// Triage edits come from staff, reschedules from the owning
		// patient; both go through the same update entry point.
		appointmentRoutes.PUT("/update/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RolePatient), appointmentHandler.UpdateAppointment)
		appointmentRoutes.DELETE("/delete/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RolePatient), appointmentHandler.DeleteAppointment)
		appointmentRoutes.GET("/mypatient", middleware.RoleAuthMiddleware(models.RolePatient), appointmentHandler.GetMyAppointments)
	}

	messageRoutes := api.Group("/message")
	{
		messageRoutes.POST("/send", messageHandler.SendMessage)

		adminInbox := messageRoutes.Group("")
		adminInbox.Use(middleware.AuthMiddleware(cfg), middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminInbox.GET("/getall", messageHandler.GetAllMessages)
			adminInbox.DELETE("/delete/:id", messageHandler.DeleteMessage)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
