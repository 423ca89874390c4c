package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"freshwash-backend/config"
	"freshwash-backend/models"
	"freshwash-backend/routes"
	"freshwash-backend/services"
	"freshwash-backend/storage"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Laundry{},
		&models.Customer{},
		&models.CustomerNote{},
		&models.FinancialRecord{},
		&models.FinancialGoal{},
		&models.MarketingContent{},
		&models.Document{},
		&models.Activity{},
		&models.ReminderLog{},
		&storage.BlobEntry{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	blobs := storage.NewGorm(config.DB)

	reminders := services.NewReminderService(config.DB, blobs)
	reminders.StartScheduler()

	r := routes.SetupRouter(blobs)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
