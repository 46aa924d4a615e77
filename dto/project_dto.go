package dto

import (
	"encoding/json"
	"strings"

	"github.com/assetdeploy/models"
)

// ProjectFilter represents listing criteria for projects
type ProjectFilter struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	ExpectedCount int    `json:"expectedCount"`
}

// UpdateProjectRequest represents the request payload for updating an existing project
type UpdateProjectRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	ExpectedCount int    `json:"expectedCount"`
}

// OptionList accepts dropdown options either as a JSON array or as one
// comma-separated string; entries are trimmed either way.
type OptionList []string

func (o *OptionList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*o = trimAll(list)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*o = nil
		return nil
	}
	*o = trimAll(strings.Split(s, ","))
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

// AddFieldRequest represents the request payload for adding a custom field
type AddFieldRequest struct {
	Name      string     `json:"name" binding:"required"`
	FieldType string     `json:"fieldType"`
	Required  bool       `json:"isRequired"`
	Options   OptionList `json:"options"`
}

// CreateWithWorkbookResponse is returned when a project is seeded from a
// workbook's header row
type CreateWithWorkbookResponse struct {
	Message   string   `json:"message"`
	ProjectID string   `json:"projectId"`
	Columns   []string `json:"columns"`
}
