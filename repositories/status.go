package repositories

import (
	"errors"

	"github.com/assetdeploy/database"
	"github.com/assetdeploy/models"
)

// ErrStatusInUse is returned when deleting a status that records still reference
var ErrStatusInUse = errors.New("status is referenced by existing deployments")

// StatusRepository handles database operations for deployment statuses
type StatusRepository struct{}

// NewStatusRepository creates a new status repository instance
func NewStatusRepository() *StatusRepository {
	return &StatusRepository{}
}

// FindAll retrieves all statuses in canonical order
func (r *StatusRepository) FindAll() ([]models.DeploymentStatus, error) {
	var statuses []models.DeploymentStatus
	result := database.DB.Order(`"order" asc`).Find(&statuses)
	return statuses, result.Error
}

// FindByID retrieves a status by its ID
func (r *StatusRepository) FindByID(id string) (models.DeploymentStatus, error) {
	var status models.DeploymentStatus
	result := database.DB.First(&status, "id = ?", id)
	return status, result.Error
}

// FindDefault retrieves the status with the lowest order. Returns
// gorm.ErrRecordNotFound when no status is configured at all.
func (r *StatusRepository) FindDefault() (models.DeploymentStatus, error) {
	var status models.DeploymentStatus
	result := database.DB.Order(`"order" asc`).First(&status)
	return status, result.Error
}

// Create inserts a new status into the database
func (r *StatusRepository) Create(status models.DeploymentStatus) (models.DeploymentStatus, error) {
	result := database.DB.Create(&status)
	return status, result.Error
}

// Update modifies an existing status
func (r *StatusRepository) Update(status models.DeploymentStatus) error {
	result := database.DB.Save(&status)
	return result.Error
}

// Delete removes a status. The delete is blocked while any deployment
// references it.
func (r *StatusRepository) Delete(id string) error {
	var count int64
	if err := database.DB.Model(&models.Deployment{}).Where("status_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrStatusInUse
	}
	result := database.DB.Delete(&models.DeploymentStatus{}, "id = ?", id)
	return result.Error
}
