package database

import (
	"log"

	"github.com/assetdeploy/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the initial reference data: a default admin and technician
// account, the default deployment statuses and a handful of departments.
// Safe to run more than once.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedStatuses(db); err != nil {
		return err
	}
	return seedDepartments(db)
}

func seedUsers(db *gorm.DB) error {
	defaults := []struct {
		email    string
		username string
		name     string
		password string
		role     models.Role
	}{
		{"admin@example.com", "admin", "Administrator", "admin123", models.RoleAdmin},
		{"tech@example.com", "tech", "Default Technician", "tech123", models.RoleUser},
	}

	for _, d := range defaults {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", d.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		username := d.username
		name := d.name
		user := models.User{
			Email:    d.email,
			Password: string(hashed),
			Username: &username,
			Name:     &name,
			Role:     d.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Created default user: %s", d.username)
	}
	return nil
}

func seedStatuses(db *gorm.DB) error {
	defaults := []models.DeploymentStatus{
		{Name: "Pending", Order: 1},
		{Name: "In Progress", Order: 2},
		{Name: "On Hold", Order: 3},
		{Name: "Completed", Order: 4},
		{Name: "Cancelled", Order: 5},
	}

	for _, s := range defaults {
		var count int64
		if err := db.Model(&models.DeploymentStatus{}).Where("name = ?", s.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		status := s
		if err := db.Create(&status).Error; err != nil {
			return err
		}
		log.Printf("Created deployment status: %s", s.Name)
	}
	return nil
}

func seedDepartments(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Department{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Department{
		{Name: "IT", Division: "Technology"},
		{Name: "Finance", Division: "Corporate"},
		{Name: "HR", Division: "Corporate"},
		{Name: "Marketing", Division: "Sales"},
		{Name: "Operations", Division: "Production"},
	}

	for _, d := range defaults {
		dept := d
		if err := db.Create(&dept).Error; err != nil {
			return err
		}
		log.Printf("Created department: %s", d.Name)
	}
	return nil
}
