package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"freshwash-backend/config"
	"freshwash-backend/controllers"
	"freshwash-backend/storage"
	"freshwash-backend/utils"
)

func SetupRouter(blobs storage.Store) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	appointmentController := controllers.NewAppointmentController(blobs)
	dashboardController := &controllers.DashboardController{Appointments: appointmentController}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
			customers.POST("/:id/notes", controllers.AddCustomerNote)
		}

		// Finance routes
		finance := api.Group("/finance")
		{
			finance.POST("/records", controllers.CreateFinancialRecord)
			finance.GET("/records", controllers.GetFinancialRecords)
			finance.PUT("/records/:id", controllers.UpdateFinancialRecord)
			finance.DELETE("/records/:id", controllers.DeleteFinancialRecord)
			finance.GET("/goals", controllers.GetFinancialGoals)
			finance.PUT("/goals", controllers.UpdateFinancialGoals)
			finance.GET("/overview", controllers.GetFinancialOverview)
			finance.GET("/export", controllers.ExportFinancialReport)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.GET("/slots", appointmentController.GetTimeSlots)
			appointments.GET("/resources", appointmentController.GetResourceBoard)
			appointments.GET("/options", appointmentController.GetResources)
			appointments.GET("/stats", appointmentController.GetSchedulingStats)
			appointments.GET("/calendar.ics", appointmentController.ExportCalendar)
			appointments.GET("/:id", appointmentController.GetAppointment)
			appointments.PUT("/:id", appointmentController.UpdateAppointment)
			appointments.DELETE("/:id", appointmentController.DeleteAppointment)
			appointments.POST("/:id/toggle-status", appointmentController.ToggleAppointmentStatus)
		}

		// Marketing routes
		marketing := api.Group("/marketing")
		{
			marketing.POST("/content", controllers.CreateContent)
			marketing.GET("/content", controllers.GetContents)
			marketing.GET("/content/stats", controllers.GetContentStats)
			marketing.GET("/content/:id", controllers.GetContent)
			marketing.PUT("/content/:id", controllers.UpdateContent)
			marketing.DELETE("/content/:id", controllers.DeleteContent)
			marketing.POST("/content/:id/publish", controllers.PublishContent)
		}

		// Document routes
		documents := api.Group("/documents")
		{
			documents.POST("", controllers.CreateDocument)
			documents.GET("", controllers.GetDocuments)
			documents.GET("/:id", controllers.GetDocument)
			documents.PUT("/:id", controllers.UpdateDocument)
			documents.DELETE("/:id", controllers.DeleteDocument)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
