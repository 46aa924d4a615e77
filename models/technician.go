package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Technician represents a technician who can be assigned to deployments.
// Deleting a technician clears the assignment on dependent records.
type Technician struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid"`
	Username string `json:"username" gorm:"not null"`
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"default:null"`
}

func (t *Technician) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
