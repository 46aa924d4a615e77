package repositories

import (
	"github.com/assetdeploy/database"
	"github.com/assetdeploy/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// WithFields loads a project with its field definitions in display order
func (r *ProjectRepository) WithFields(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("Fields", func(db *gorm.DB) *gorm.DB {
		return db.Order(`"order" asc`)
	}).First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// Delete removes a project together with its field definitions, deployments
// and all dependent field values
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deployment_id IN (?)",
			tx.Model(&models.Deployment{}).Select("id").Where("project_id = ?", id),
		).Delete(&models.FieldValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Deployment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.FieldDefinition{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		return result.Error
	})
}

// FindWithPagination retrieves projects with pagination, search and sorting
func (r *ProjectRepository) FindWithPagination(page, pageSize int, sortBy, sortOrder, search string) ([]models.Project, int64, error) {
	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name LIKE ? OR description LIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" asc`)
		}).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}

// DB returns the database instance
func (r *ProjectRepository) DB() *gorm.DB {
	return database.DB
}
