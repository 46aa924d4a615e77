package main

import (
	"log"

	v1 "github.com/assetdeploy/api/v1"
	"github.com/assetdeploy/config"
	"github.com/assetdeploy/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Set Gin mode
	if config.GetEnv("GIN_MODE", "") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database and run migrations
	database.Initialize()

	// Seed default statuses, departments and accounts when requested
	if config.GetBoolEnv("SEED_INITIAL_DATA", false) {
		if err := database.Seed(database.DB); err != nil {
			log.Fatalf("Failed to seed initial data: %v", err)
		}
	}

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 AssetDeploy starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
