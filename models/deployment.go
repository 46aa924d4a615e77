package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deployment represents one per-unit device swap recorded against a project
type Deployment struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID    string `json:"projectId" gorm:"type:uuid;not null;index"`
	DeploymentID string `json:"deploymentId" gorm:"not null"` // human-facing label, uniqueness not enforced
	StatusID     string `json:"statusId" gorm:"type:uuid;not null;index"`

	// Common fields
	AssignedTo   string  `json:"assignedTo" gorm:"default:null"`
	Position     string  `json:"position" gorm:"default:null"`
	DepartmentID *string `json:"departmentId" gorm:"type:uuid;default:null;index"`
	Location     string  `json:"location" gorm:"default:null"`

	// Device information
	CurrentModel string `json:"currentModel" gorm:"default:null"`
	CurrentSN    string `json:"currentSn" gorm:"default:null"`
	NewModel     string `json:"newModel" gorm:"default:null"`
	NewSN        string `json:"newSn" gorm:"default:null"`

	// Assignment
	TechnicianID    *string `json:"technicianId" gorm:"type:uuid;default:null;index"`
	TechnicianNotes string  `json:"technicianNotes" gorm:"default:null"`

	// Tracking
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DeploymentDate *time.Time `json:"deploymentDate" gorm:"type:date;default:null"`

	// Relations
	Project    Project          `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Status     DeploymentStatus `json:"status,omitempty" gorm:"foreignKey:StatusID;constraint:OnDelete:RESTRICT"`
	Department *Department      `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
	Technician *Technician      `json:"technician,omitempty" gorm:"foreignKey:TechnicianID;constraint:OnDelete:SET NULL"`
	Fields     []FieldValue     `json:"fields,omitempty" gorm:"foreignKey:DeploymentID;constraint:OnDelete:CASCADE"`
}

func (d *Deployment) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// FieldValue holds one custom field value on a deployment. At most one row
// exists per (deployment, field) pair; writes are upserts.
type FieldValue struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid"`
	DeploymentID string `json:"deploymentId" gorm:"type:uuid;not null;uniqueIndex:uq_field_values_deployment_field,priority:1"`
	FieldID      string `json:"fieldId" gorm:"type:uuid;not null;uniqueIndex:uq_field_values_deployment_field,priority:2"`
	Value        string `json:"value" gorm:"default:''"`

	// Relations
	Deployment Deployment      `json:"-" gorm:"foreignKey:DeploymentID;constraint:OnDelete:CASCADE"`
	Field      FieldDefinition `json:"field,omitempty" gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
}

func (v *FieldValue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
