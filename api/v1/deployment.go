package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/assetdeploy/dto"
	"github.com/assetdeploy/services"
	"github.com/gin-gonic/gin"
)

// DeploymentController handles deployment record endpoints
type DeploymentController struct {
	deploymentService *services.DeploymentService
	workbookService   *services.WorkbookService
}

// NewDeploymentController creates a new deployment controller
func NewDeploymentController() *DeploymentController {
	return &DeploymentController{
		deploymentService: services.NewDeploymentService(),
		workbookService:   services.NewWorkbookService(),
	}
}

// RegisterRoutes registers deployment routes
func (c *DeploymentController) RegisterRoutes(router *gin.RouterGroup) {
	deployments := router.Group("/deployments")
	{
		deployments.GET("", c.ListDeployments)
		deployments.POST("", c.CreateDeployment)
		deployments.POST("/import", c.ImportWorkbook)
		deployments.GET("/export", c.ExportWorkbook)
		deployments.GET("/:id", c.GetDeployment)
		deployments.PUT("/:id", c.UpdateDeployment)
		deployments.DELETE("/:id", c.DeleteDeployment)
		deployments.POST("/:id/update-status", c.UpdateStatus)
		deployments.POST("/:id/assign-technician", c.AssignTechnician)
	}
}

// ListDeployments retrieves deployments filtered by project, status,
// technician and department (logical AND across provided filters)
func (c *DeploymentController) ListDeployments(ctx *gin.Context) {
	filter := dto.DeploymentFilter{
		ProjectID:    ctx.Query("project"),
		StatusID:     ctx.Query("status"),
		TechnicianID: ctx.Query("technician"),
		DepartmentID: ctx.Query("department"),
	}

	deployments, err := c.deploymentService.ListDeployments(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   deployments,
	})
}

// GetDeployment retrieves a single deployment with its custom field values
func (c *DeploymentController) GetDeployment(ctx *gin.Context) {
	deployment, err := c.deploymentService.GetDeployment(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   deployment,
	})
}

// CreateDeployment records a new deployment
func (c *DeploymentController) CreateDeployment(ctx *gin.Context) {
	var req dto.CreateDeploymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	deployment, err := c.deploymentService.CreateDeployment(req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   deployment,
	})
}

// UpdateDeployment applies a partial update to a deployment
func (c *DeploymentController) UpdateDeployment(ctx *gin.Context) {
	var req dto.UpdateDeploymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	deployment, err := c.deploymentService.UpdateDeployment(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   deployment,
	})
}

// DeleteDeployment removes a deployment record
func (c *DeploymentController) DeleteDeployment(ctx *gin.Context) {
	if err := c.deploymentService.DeleteDeployment(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Deployment deleted successfully",
	})
}

// UpdateStatus overwrites the deployment's status
func (c *DeploymentController) UpdateStatus(ctx *gin.Context) {
	var req dto.SetStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Status ID is required")
		return
	}

	deployment, err := c.deploymentService.SetStatus(ctx.Param("id"), req.StatusID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   deployment,
	})
}

// AssignTechnician sets or clears the deployment's technician
func (c *DeploymentController) AssignTechnician(ctx *gin.Context) {
	var req dto.AssignTechnicianRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	deployment, err := c.deploymentService.AssignTechnician(ctx.Param("id"), req.TechnicianID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   deployment,
	})
}

// ImportWorkbook imports deployments from an uploaded workbook. The project
// id is required, the column map (field id → header) is optional JSON.
func (c *DeploymentController) ImportWorkbook(ctx *gin.Context) {
	projectID := ctx.PostForm("project")
	if projectID == "" {
		respondBadRequest(ctx, "Project ID is required")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		respondBadRequest(ctx, "Workbook file is required")
		return
	}

	columnMap := map[string]string{}
	if raw := ctx.PostForm("column_map"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &columnMap); err != nil {
			// A malformed map degrades to name matching only
			columnMap = map[string]string{}
		}
	}

	sheet, err := readUploadedSheet(fileHeader)
	if err != nil {
		respondBadRequest(ctx, "Workbook processing error: "+err.Error())
		return
	}

	result, err := c.workbookService.ImportDeployments(projectID, columnMap, sheet)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   result,
	})
}

// ExportWorkbook streams the project's deployments as a workbook
func (c *DeploymentController) ExportWorkbook(ctx *gin.Context) {
	projectID := ctx.Query("project")
	if projectID == "" {
		respondBadRequest(ctx, "Project ID is required")
		return
	}

	filename, buf, err := c.workbookService.ExportDeployments(projectID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
