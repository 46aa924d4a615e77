package v1

import (
	"net/http"

	"github.com/assetdeploy/models"
	"github.com/assetdeploy/repositories"
	"github.com/gin-gonic/gin"
)

// StatusController handles deployment status endpoints. The status set is
// admin-curated but open: the defaults are seeded and more may be added.
type StatusController struct {
	statusRepo *repositories.StatusRepository
}

// NewStatusController creates a new status controller
func NewStatusController() *StatusController {
	return &StatusController{
		statusRepo: repositories.NewStatusRepository(),
	}
}

// RegisterRoutes registers the read side of the status endpoints
func (c *StatusController) RegisterRoutes(router *gin.RouterGroup) {
	statuses := router.Group("/statuses")
	{
		statuses.GET("", c.ListStatuses)
		statuses.GET("/:id", c.GetStatus)
	}
}

// RegisterAdminRoutes registers the admin-only status mutations
func (c *StatusController) RegisterAdminRoutes(router *gin.RouterGroup) {
	statuses := router.Group("/statuses")
	{
		statuses.POST("", c.CreateStatus)
		statuses.PUT("/:id", c.UpdateStatus)
		statuses.DELETE("/:id", c.DeleteStatus)
	}
}

type statusRequest struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
}

// ListStatuses retrieves all statuses in canonical order
func (c *StatusController) ListStatuses(ctx *gin.Context) {
	statuses, err := c.statusRepo.FindAll()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   statuses,
	})
}

// GetStatus retrieves a single status
func (c *StatusController) GetStatus(ctx *gin.Context) {
	status, err := c.statusRepo.FindByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   status,
	})
}

// CreateStatus adds a new status to the vocabulary
func (c *StatusController) CreateStatus(ctx *gin.Context) {
	var req statusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	created, err := c.statusRepo.Create(models.DeploymentStatus{Name: req.Name, Order: req.Order})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   created,
	})
}

// UpdateStatus modifies an existing status
func (c *StatusController) UpdateStatus(ctx *gin.Context) {
	var req statusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	status, err := c.statusRepo.FindByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	status.Name = req.Name
	status.Order = req.Order
	if err := c.statusRepo.Update(status); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   status,
	})
}

// DeleteStatus removes a status; blocked while deployments reference it
func (c *StatusController) DeleteStatus(ctx *gin.Context) {
	if _, err := c.statusRepo.FindByID(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.statusRepo.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Status deleted successfully",
	})
}
