package v1

import (
	"net/http"

	"github.com/assetdeploy/models"
	"github.com/assetdeploy/repositories"
	"github.com/gin-gonic/gin"
)

// TechnicianController handles technician reference data endpoints
type TechnicianController struct {
	technicianRepo *repositories.TechnicianRepository
}

// NewTechnicianController creates a new technician controller
func NewTechnicianController() *TechnicianController {
	return &TechnicianController{
		technicianRepo: repositories.NewTechnicianRepository(),
	}
}

// RegisterRoutes registers the read side of the technician endpoints
func (c *TechnicianController) RegisterRoutes(router *gin.RouterGroup) {
	technicians := router.Group("/technicians")
	{
		technicians.GET("", c.ListTechnicians)
		technicians.GET("/:id", c.GetTechnician)
	}
}

// RegisterAdminRoutes registers the admin-only technician mutations
func (c *TechnicianController) RegisterAdminRoutes(router *gin.RouterGroup) {
	technicians := router.Group("/technicians")
	{
		technicians.POST("", c.CreateTechnician)
		technicians.PUT("/:id", c.UpdateTechnician)
		technicians.DELETE("/:id", c.DeleteTechnician)
	}
}

type technicianRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
}

// ListTechnicians retrieves all technicians
func (c *TechnicianController) ListTechnicians(ctx *gin.Context) {
	technicians, err := c.technicianRepo.FindAll()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   technicians,
	})
}

// GetTechnician retrieves a single technician
func (c *TechnicianController) GetTechnician(ctx *gin.Context) {
	technician, err := c.technicianRepo.FindByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   technician,
	})
}

// CreateTechnician adds a technician
func (c *TechnicianController) CreateTechnician(ctx *gin.Context) {
	var req technicianRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	created, err := c.technicianRepo.Create(models.Technician{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   created,
	})
}

// UpdateTechnician modifies an existing technician
func (c *TechnicianController) UpdateTechnician(ctx *gin.Context) {
	var req technicianRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	technician, err := c.technicianRepo.FindByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	technician.Username = req.Username
	technician.Name = req.Name
	technician.Email = req.Email
	if err := c.technicianRepo.Update(technician); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   technician,
	})
}

// DeleteTechnician removes a technician. Deployments that referenced
// the technician keep their record with the assignment cleared.
func (c *TechnicianController) DeleteTechnician(ctx *gin.Context) {
	if _, err := c.technicianRepo.FindByID(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.technicianRepo.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Technician deleted successfully",
	})
}
