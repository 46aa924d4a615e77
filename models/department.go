package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department is shared reference data attached to deployments. Deletion is
// blocked while any record references it.
type Department struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid"`
	Name     string `json:"name" gorm:"not null"`
	Division string `json:"division" gorm:"default:null"`
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
