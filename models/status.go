package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeploymentStatus is an admin-curated status entry. The set is open: the
// defaults are seeded but more may be added. Records reference a status and
// block its deletion.
type DeploymentStatus struct {
	ID    string `json:"id" gorm:"primaryKey;type:uuid"`
	Name  string `json:"name" gorm:"not null"`
	Order int    `json:"order" gorm:"default:0"`
}

func (s *DeploymentStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// TableName sets the table name for DeploymentStatus model
func (DeploymentStatus) TableName() string {
	return "deployment_statuses"
}
