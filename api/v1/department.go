package v1

import (
	"net/http"

	"github.com/assetdeploy/models"
	"github.com/assetdeploy/repositories"
	"github.com/gin-gonic/gin"
)

// DepartmentController handles department reference data endpoints
type DepartmentController struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentController creates a new department controller
func NewDepartmentController() *DepartmentController {
	return &DepartmentController{
		departmentRepo: repositories.NewDepartmentRepository(),
	}
}

// RegisterRoutes registers the read side of the department endpoints
func (c *DepartmentController) RegisterRoutes(router *gin.RouterGroup) {
	departments := router.Group("/departments")
	{
		departments.GET("", c.ListDepartments)
		departments.GET("/:id", c.GetDepartment)
	}
}

// RegisterAdminRoutes registers the admin-only department mutations
func (c *DepartmentController) RegisterAdminRoutes(router *gin.RouterGroup) {
	departments := router.Group("/departments")
	{
		departments.POST("", c.CreateDepartment)
		departments.PUT("/:id", c.UpdateDepartment)
		departments.DELETE("/:id", c.DeleteDepartment)
	}
}

type departmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Division string `json:"division"`
}

// ListDepartments retrieves all departments
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentRepo.FindAll()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   departments,
	})
}

// GetDepartment retrieves a single department
func (c *DepartmentController) GetDepartment(ctx *gin.Context) {
	department, err := c.departmentRepo.FindByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   department,
	})
}

// CreateDepartment adds a department
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req departmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	created, err := c.departmentRepo.Create(models.Department{Name: req.Name, Division: req.Division})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   created,
	})
}

// UpdateDepartment renames a department
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	var req departmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request data: "+err.Error())
		return
	}

	department, err := c.departmentRepo.FindByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	department.Name = req.Name
	department.Division = req.Division
	if err := c.departmentRepo.Update(department); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   department,
	})
}

// DeleteDepartment removes a department; blocked while deployments reference it
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	if _, err := c.departmentRepo.FindByID(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.departmentRepo.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Department deleted successfully",
	})
}
