package v1

import (
	"github.com/assetdeploy/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	projectController := NewProjectController()
	deploymentController := NewDeploymentController()
	statusController := NewStatusController()
	technicianController := NewTechnicianController()
	departmentController := NewDepartmentController()
	userController := NewUserController()

	// Authenticated endpoints
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())
	projectController.RegisterRoutes(authRouter)
	deploymentController.RegisterRoutes(authRouter)
	statusController.RegisterRoutes(authRouter)
	technicianController.RegisterRoutes(authRouter)
	departmentController.RegisterRoutes(authRouter)

	// Admin endpoints - schema and reference data management
	adminRouter := router.Group("")
	adminRouter.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	projectController.RegisterAdminRoutes(adminRouter)
	statusController.RegisterAdminRoutes(adminRouter)
	technicianController.RegisterAdminRoutes(adminRouter)
	departmentController.RegisterAdminRoutes(adminRouter)
	userController.RegisterRoutes(adminRouter)
}
