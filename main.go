package main

import (
	"fmt"
	"log"
	"os"

	"freelancedesk-backend/config"
	"freelancedesk-backend/models"
	"freelancedesk-backend/routes"
	"freelancedesk-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Project{},
		&models.Document{},
		&models.FileItem{},
		&models.Invoice{},
		&models.Payment{},
		&models.MonthlyIncome{},
		&models.ReminderLog{},
	)
}

func main() {
	services.NewFinanceService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
