package repositories

import (
	"errors"

	"github.com/assetdeploy/database"
	"github.com/assetdeploy/models"
)

// ErrDepartmentInUse is returned when deleting a department that records still reference
var ErrDepartmentInUse = errors.New("department is referenced by existing deployments")

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct{}

// NewDepartmentRepository creates a new department repository instance
func NewDepartmentRepository() *DepartmentRepository {
	return &DepartmentRepository{}
}

// FindAll retrieves all departments
func (r *DepartmentRepository) FindAll() ([]models.Department, error) {
	var departments []models.Department
	result := database.DB.Order("name asc").Find(&departments)
	return departments, result.Error
}

// FindByID retrieves a department by its ID
func (r *DepartmentRepository) FindByID(id string) (models.Department, error) {
	var department models.Department
	result := database.DB.First(&department, "id = ?", id)
	return department, result.Error
}

// Create inserts a new department into the database
func (r *DepartmentRepository) Create(department models.Department) (models.Department, error) {
	result := database.DB.Create(&department)
	return department, result.Error
}

// Update modifies an existing department
func (r *DepartmentRepository) Update(department models.Department) error {
	result := database.DB.Save(&department)
	return result.Error
}

// Delete removes a department. The delete is blocked while any deployment
// references it.
func (r *DepartmentRepository) Delete(id string) error {
	var count int64
	if err := database.DB.Model(&models.Deployment{}).Where("department_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDepartmentInUse
	}
	result := database.DB.Delete(&models.Department{}, "id = ?", id)
	return result.Error
}
