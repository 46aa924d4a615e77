package repositories

import (
	"github.com/assetdeploy/database"
	"github.com/assetdeploy/dto"
	"github.com/assetdeploy/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeploymentRepository handles database operations for deployment records
type DeploymentRepository struct{}

// NewDeploymentRepository creates a new deployment repository instance
func NewDeploymentRepository() *DeploymentRepository {
	return &DeploymentRepository{}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Status").
		Preload("Department").
		Preload("Technician").
		Preload("Fields").
		Preload("Fields.Field")
}

// FindWithFilters retrieves deployments matching every provided filter.
// Empty filter fields are unconstrained.
func (r *DeploymentRepository) FindWithFilters(filter dto.DeploymentFilter) ([]models.Deployment, error) {
	db := database.DB.Model(&models.Deployment{})

	if filter.ProjectID != "" {
		db = db.Where("project_id = ?", filter.ProjectID)
	}
	if filter.StatusID != "" {
		db = db.Where("status_id = ?", filter.StatusID)
	}
	if filter.TechnicianID != "" {
		db = db.Where("technician_id = ?", filter.TechnicianID)
	}
	if filter.DepartmentID != "" {
		db = db.Where("department_id = ?", filter.DepartmentID)
	}

	var deployments []models.Deployment
	result := withRelations(db).Order("created_at desc").Find(&deployments)
	return deployments, result.Error
}

// FindByID retrieves a deployment with its relations
func (r *DeploymentRepository) FindByID(id string) (models.Deployment, error) {
	var deployment models.Deployment
	result := withRelations(database.DB).First(&deployment, "id = ?", id)
	return deployment, result.Error
}

// FindByProjectID retrieves all deployments for a project with relations loaded
func (r *DeploymentRepository) FindByProjectID(projectID string) ([]models.Deployment, error) {
	var deployments []models.Deployment
	result := withRelations(database.DB.Where("project_id = ?", projectID)).
		Order("created_at asc").Find(&deployments)
	return deployments, result.Error
}

// Create inserts a new deployment into the database
func (r *DeploymentRepository) Create(deployment models.Deployment) (models.Deployment, error) {
	result := database.DB.Create(&deployment)
	return deployment, result.Error
}

// Updates applies a partial set of column changes to a deployment
func (r *DeploymentRepository) Updates(id string, updates map[string]interface{}) error {
	result := database.DB.Model(&models.Deployment{}).
		Where("id = ?", id).
		Updates(updates)
	return result.Error
}

// Delete removes a deployment and its field values
func (r *DeploymentRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deployment_id = ?", id).Delete(&models.FieldValue{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Deployment{}, "id = ?", id)
		return result.Error
	})
}

// UpsertFieldValue writes one custom field value. Exactly one row exists per
// (deployment, field) pair: a second write overwrites the stored value.
func (r *DeploymentRepository) UpsertFieldValue(deploymentID, fieldID, value string) error {
	fieldValue := models.FieldValue{
		DeploymentID: deploymentID,
		FieldID:      fieldID,
		Value:        value,
	}
	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "deployment_id"}, {Name: "field_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&fieldValue)
	return result.Error
}

// FieldValues retrieves the custom field values of a deployment
func (r *DeploymentRepository) FieldValues(deploymentID string) ([]models.FieldValue, error) {
	var values []models.FieldValue
	result := database.DB.Preload("Field").
		Where("deployment_id = ?", deploymentID).Find(&values)
	return values, result.Error
}

// DB returns the database instance
func (r *DeploymentRepository) DB() *gorm.DB {
	return database.DB
}
