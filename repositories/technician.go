package repositories

import (
	"github.com/assetdeploy/database"
	"github.com/assetdeploy/models"
	"gorm.io/gorm"
)

// TechnicianRepository handles database operations for technicians
type TechnicianRepository struct{}

// NewTechnicianRepository creates a new technician repository instance
func NewTechnicianRepository() *TechnicianRepository {
	return &TechnicianRepository{}
}

// FindAll retrieves all technicians
func (r *TechnicianRepository) FindAll() ([]models.Technician, error) {
	var technicians []models.Technician
	result := database.DB.Order("name asc").Find(&technicians)
	return technicians, result.Error
}

// FindByID retrieves a technician by its ID
func (r *TechnicianRepository) FindByID(id string) (models.Technician, error) {
	var technician models.Technician
	result := database.DB.First(&technician, "id = ?", id)
	return technician, result.Error
}

// Create inserts a new technician into the database
func (r *TechnicianRepository) Create(technician models.Technician) (models.Technician, error) {
	result := database.DB.Create(&technician)
	return technician, result.Error
}

// Update modifies an existing technician
func (r *TechnicianRepository) Update(technician models.Technician) error {
	result := database.DB.Save(&technician)
	return result.Error
}

// Delete removes a technician and clears the assignment on any deployment
// that referenced it
func (r *TechnicianRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Deployment{}).
			Where("technician_id = ?", id).
			Update("technician_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Technician{}, "id = ?", id)
		return result.Error
	})
}
