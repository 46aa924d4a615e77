package database_test

import (
	"testing"

	"github.com/assetdeploy/database"
	"github.com/assetdeploy/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeed(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Seed(db))

	t.Run("creates default accounts", func(t *testing.T) {
		var admin models.User
		require.NoError(t, db.First(&admin, "email = ?", "admin@example.com").Error)
		assert.Equal(t, models.RoleAdmin, admin.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

		var tech models.User
		require.NoError(t, db.First(&tech, "email = ?", "tech@example.com").Error)
		assert.Equal(t, models.RoleUser, tech.Role)
	})

	t.Run("creates default statuses in order", func(t *testing.T) {
		var statuses []models.DeploymentStatus
		require.NoError(t, db.Order(`"order" asc`).Find(&statuses).Error)
		require.Len(t, statuses, 5)
		assert.Equal(t, "Pending", statuses[0].Name)
		assert.Equal(t, "Cancelled", statuses[4].Name)
	})

	t.Run("creates default departments", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&models.Department{}).Count(&count).Error)
		assert.EqualValues(t, 5, count)
	})

	t.Run("running twice changes nothing", func(t *testing.T) {
		require.NoError(t, database.Seed(db))

		var users, statuses, departments int64
		require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
		require.NoError(t, db.Model(&models.DeploymentStatus{}).Count(&statuses).Error)
		require.NoError(t, db.Model(&models.Department{}).Count(&departments).Error)
		assert.EqualValues(t, 2, users)
		assert.EqualValues(t, 5, statuses)
		assert.EqualValues(t, 5, departments)
	})
}
