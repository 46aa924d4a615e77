package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents an asset deployment project (e.g. a hardware refresh)
type Project struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description" gorm:"default:null"`
	ExpectedCount int       `json:"expectedCount" gorm:"default:0"`
	CreatedByID   string    `json:"createdById" gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Relations
	CreatedBy   User              `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
	Fields      []FieldDefinition `json:"fields,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Deployments []Deployment      `json:"deployments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
