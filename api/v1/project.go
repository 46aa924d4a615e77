package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/assetdeploy/dto"
	"github.com/assetdeploy/models"
	"github.com/assetdeploy/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ProjectController handles project and schema endpoints
type ProjectController struct {
	projectService  *services.ProjectService
	workbookService *services.WorkbookService
}

// NewProjectController creates a new project controller
func NewProjectController() *ProjectController {
	return &ProjectController{
		projectService:  services.NewProjectService(),
		workbookService: services.NewWorkbookService(),
	}
}

// RegisterRoutes registers project routes. Reads need authentication only;
// the admin-gated mutations are registered separately by the router.
func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", c.ListProjects)
		projects.GET("/:id", c.GetProject)
		projects.GET("/:id/export-template", c.ExportTemplate)
	}
}

// RegisterAdminRoutes registers the admin-only project mutations
func (c *ProjectController) RegisterAdminRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.POST("", c.CreateProject)
		projects.PUT("/:id", c.UpdateProject)
		projects.DELETE("/:id", c.DeleteProject)
		projects.POST("/create-with-workbook", c.CreateWithWorkbook)
		projects.POST("/analyze-workbook", c.AnalyzeWorkbook)
		projects.POST("/:id/fields", c.AddField)
		projects.DELETE("/:id/fields/:fieldId", c.RemoveField)
	}
}

// ListProjects retrieves projects with pagination and search
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	filter := dto.ProjectFilter{
		Search:    ctx.Query("search"),
		SortBy:    ctx.DefaultQuery("sortBy", "created_at"),
		SortOrder: ctx.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		PageSize:  pageSize,
	}

	response, err := c.projectService.ListProjects(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetProject retrieves a project with its field definitions
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, err := c.projectService.GetProjectDetail(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject creates a new project owned by the caller
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	userID, exists := ctx.Get("userId")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	project := models.Project{
		Name:          req.Name,
		Description:   req.Description,
		ExpectedCount: req.ExpectedCount,
		CreatedByID:   userID.(string),
	}

	created, err := c.projectService.CreateProject(project)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   created,
	})
}

// UpdateProject updates a project's descriptive attributes
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	project := models.Project{
		ID:            ctx.Param("id"),
		Name:          req.Name,
		Description:   req.Description,
		ExpectedCount: req.ExpectedCount,
	}

	updated, err := c.projectService.UpdateProject(project)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   updated,
	})
}

// DeleteProject deletes a project and everything it owns
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	if err := c.projectService.DeleteProject(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// AddField appends a custom field to the project's schema
func (c *ProjectController) AddField(ctx *gin.Context) {
	var req dto.AddFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	field, err := c.projectService.AddField(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   field,
	})
}

// RemoveField deletes a field definition and its values
func (c *ProjectController) RemoveField(ctx *gin.Context) {
	if err := c.projectService.RemoveField(ctx.Param("id"), ctx.Param("fieldId")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Field removed successfully",
	})
}

// CreateWithWorkbook creates a project and seeds its schema from an
// uploaded workbook's header row
func (c *ProjectController) CreateWithWorkbook(ctx *gin.Context) {
	userID, exists := ctx.Get("userId")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	name := ctx.PostForm("name")
	if name == "" {
		respondBadRequest(ctx, "Project name is required")
		return
	}

	expectedCount, _ := strconv.Atoi(ctx.DefaultPostForm("expectedCount", "0"))
	project := models.Project{
		Name:          name,
		Description:   ctx.PostForm("description"),
		ExpectedCount: expectedCount,
		CreatedByID:   userID.(string),
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		// No workbook attached: create a plain project with an empty schema
		created, err := c.projectService.CreateProject(project)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{
			"status": "success",
			"data":   created,
		})
		return
	}

	sheet, err := readUploadedSheet(fileHeader)
	if err != nil {
		respondBadRequest(ctx, "Workbook processing error: "+err.Error())
		return
	}

	response, err := c.projectService.CreateWithWorkbook(project, sheet)
	if err != nil {
		respondBadRequest(ctx, "Workbook processing error: "+err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   response,
	})
}

// AnalyzeWorkbook returns the advisory column analysis of an uploaded
// workbook without touching schema or data
func (c *ProjectController) AnalyzeWorkbook(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		respondBadRequest(ctx, "No file provided")
		return
	}

	sheet, err := readUploadedSheet(fileHeader)
	if err != nil {
		respondBadRequest(ctx, "Workbook processing error: "+err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   c.workbookService.Analyze(sheet),
	})
}

// ExportTemplate streams an import template workbook for the project
func (c *ProjectController) ExportTemplate(ctx *gin.Context) {
	filename, buf, err := c.workbookService.ExportTemplate(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
