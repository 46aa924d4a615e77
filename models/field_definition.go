package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldType represents the declared type of a custom field
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeDropdown FieldType = "dropdown"
	FieldTypeCheckbox FieldType = "checkbox"
)

// IsValid reports whether the field type is one of the known types
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeDropdown, FieldTypeCheckbox:
		return true
	}
	return false
}

// StringList custom type for JSON storage of ordered option lists
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, l)
}

// FieldDefinition represents a custom field declared on a project.
// Names are not enforced unique within a project; the import path resolves
// duplicates by taking the first definition in display order.
type FieldDefinition struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string     `json:"projectId" gorm:"type:uuid;not null;index"`
	Name      string     `json:"name" gorm:"not null"`
	FieldType FieldType  `json:"fieldType" gorm:"type:varchar(20);not null"`
	Required  bool       `json:"isRequired" gorm:"default:false"`
	Order     int        `json:"order" gorm:"default:0"`
	Options   StringList `json:"options" gorm:"type:jsonb;default:null"` // For dropdown options

	// Relations
	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (f *FieldDefinition) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
