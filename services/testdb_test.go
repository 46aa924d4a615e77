package services_test

import (
	"testing"

	"github.com/assetdeploy/database"
	"github.com/assetdeploy/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the shared connection at a fresh in-memory database
// with the full schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps the in-memory database alive for the whole test
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db
	return db
}

func createUser(t *testing.T) models.User {
	t.Helper()
	user := models.User{Email: "owner@example.com", Password: "hashed", Role: models.RoleAdmin}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createProject(t *testing.T, name string) models.Project {
	t.Helper()
	user := models.User{Email: name + "@example.com", Password: "hashed"}
	require.NoError(t, database.DB.Create(&user).Error)
	project := models.Project{Name: name, CreatedByID: user.ID}
	require.NoError(t, database.DB.Create(&project).Error)
	return project
}

func createStatus(t *testing.T, name string, order int) models.DeploymentStatus {
	t.Helper()
	status := models.DeploymentStatus{Name: name, Order: order}
	require.NoError(t, database.DB.Create(&status).Error)
	return status
}

func createTechnician(t *testing.T, name string) models.Technician {
	t.Helper()
	technician := models.Technician{Username: name, Name: name}
	require.NoError(t, database.DB.Create(&technician).Error)
	return technician
}

func createDepartment(t *testing.T, name string) models.Department {
	t.Helper()
	department := models.Department{Name: name}
	require.NoError(t, database.DB.Create(&department).Error)
	return department
}

func createField(t *testing.T, projectID, name string, fieldType models.FieldType, order int) models.FieldDefinition {
	t.Helper()
	field := models.FieldDefinition{ProjectID: projectID, Name: name, FieldType: fieldType, Order: order}
	require.NoError(t, database.DB.Create(&field).Error)
	return field
}
