package routes

import (
	"os"
	"strings"

	"freelancedesk-backend/config"
	"freelancedesk-backend/controllers"
	"freelancedesk-backend/storage"
	"freelancedesk-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Uploaded files are retrieved straight from disk
	r.Static("/uploads", storage.Default().Dir())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)

		profile := auth.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.GET("/:id/projects", controllers.GetClientProjects)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Project routes
		projects := api.Group("/projects")
		{
			projects.POST("", controllers.CreateProject)
			projects.GET("", controllers.GetProjects)
			projects.GET("/:id", controllers.GetProject)
			projects.GET("/:id/documents", controllers.GetProjectDocuments)
			projects.GET("/:id/files", controllers.GetProjectFiles)
			projects.PUT("/:id", controllers.UpdateProject)
			projects.DELETE("/:id", controllers.DeleteProject)
		}

		// Document routes
		documents := api.Group("/documents")
		{
			documents.POST("", controllers.CreateDocument)
			documents.GET("", controllers.GetDocuments)
			documents.PUT("/:id", controllers.UpdateDocument)
			documents.DELETE("/:id", controllers.DeleteDocument)
		}

		// File routes
		files := api.Group("/files")
		{
			files.POST("", controllers.CreateFile)
			files.GET("", controllers.GetFiles)
			files.PUT("/:id", controllers.UpdateFile)
			files.DELETE("/:id", controllers.DeleteFile)
		}

		api.POST("/uploads", controllers.UploadFile)

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", controllers.UpdateInvoice)
			invoices.DELETE("/:id", controllers.DeleteInvoice)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.POST("", controllers.CreatePayments)
			payments.GET("", controllers.GetPayments)
			payments.DELETE("/:id", controllers.DeletePayment)
		}

		// Analytics routes
		api.GET("/income/monthly", controllers.GetMonthlyIncome)
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
