package repositories

import (
	"github.com/assetdeploy/database"
	"github.com/assetdeploy/models"
	"gorm.io/gorm"
)

// FieldRepository handles database operations for field definitions
type FieldRepository struct{}

// NewFieldRepository creates a new field repository instance
func NewFieldRepository() *FieldRepository {
	return &FieldRepository{}
}

// FindByProjectID retrieves a project's field definitions in display order
func (r *FieldRepository) FindByProjectID(projectID string) ([]models.FieldDefinition, error) {
	var fields []models.FieldDefinition
	result := database.DB.Where("project_id = ?", projectID).Order(`"order" asc`).Find(&fields)
	return fields, result.Error
}

// FindInProject retrieves a field definition only when it belongs to the project
func (r *FieldRepository) FindInProject(projectID, fieldID string) (models.FieldDefinition, error) {
	var field models.FieldDefinition
	result := database.DB.First(&field, "id = ? AND project_id = ?", fieldID, projectID)
	return field, result.Error
}

// MaxOrder returns the highest display order in the project, or -1 when the
// project has no fields yet
func (r *FieldRepository) MaxOrder(projectID string) (int, error) {
	var max *int
	err := database.DB.Model(&models.FieldDefinition{}).
		Where("project_id = ?", projectID).
		Select(`MAX("order")`).Scan(&max).Error
	if err != nil {
		return -1, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// Create inserts a new field definition into the database
func (r *FieldRepository) Create(field models.FieldDefinition) (models.FieldDefinition, error) {
	result := database.DB.Create(&field)
	return field, result.Error
}

// DeleteWithValues removes a field definition and every value referencing it
func (r *FieldRepository) DeleteWithValues(fieldID string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_id = ?", fieldID).Delete(&models.FieldValue{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.FieldDefinition{}, "id = ?", fieldID)
		return result.Error
	})
}
