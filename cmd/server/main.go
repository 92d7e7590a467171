package main

import (
	"log"
	"os"
	"time"

	"go-dealer-agent/internal/database"
	"go-dealer-agent/internal/handlers"
	"go-dealer-agent/internal/middleware"
	"go-dealer-agent/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: No .env file found")
	}

	database.Connect()

	if err := validation.Register(); err != nil {
		log.Fatal("Failed to register validators:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"}, // Allow React
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", handlers.Login)
	r.Static("/uploads", "./uploads")

	// --- FEATURE FLAG: Open Registration ---
	// Only opens if we explicitly allow it in .env - meant for bootstrapping
	// the first admin on a fresh install.
	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/register", handlers.Register)
		log.Println("⚠️ WARNING: Registration route is OPEN. Disable this in production!")
	} else {
		log.Println("🔒 Registration route is safely DISABLED.")
	}

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// WORKERS & ADMINS: inventory and the sell flow
		api.GET("/bikes", handlers.GetBikes)
		api.GET("/bikes/:id", handlers.GetBikeByID)
		api.POST("/bikes", handlers.AddBike)
		api.PUT("/bikes/:id", handlers.UpdateBike)
		api.DELETE("/bikes/:id", handlers.DeleteBike)

		api.POST("/sales/bike/:id/sold", handlers.SellBike)
		api.GET("/sales", handlers.GetSales)
		api.GET("/sales/:id", handlers.GetSaleByID)
		api.GET("/sales/bike/:id", handlers.GetSaleByBikeID)

		api.GET("/analytics/kpi", handlers.GetKPI)
		api.GET("/analytics/monthly-sales", handlers.GetMonthlySales)

		api.POST("/upload", handlers.UploadImage)

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/ask", handlers.AskAI)

			admin.GET("/users", handlers.GetUsers)
			admin.POST("/users", handlers.CreateUser)
			admin.PUT("/users/:id", handlers.UpdateUser)
			admin.DELETE("/users/:id", handlers.DeleteUser)

			admin.DELETE("/sales/clear-all", handlers.ClearAllSales)
		}
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	log.Println("🚀 Server starting on " + baseURL)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
