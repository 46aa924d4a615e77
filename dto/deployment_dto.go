package dto

// DeploymentFilter represents listing criteria for deployments. Filters
// combine with logical AND; an empty field means no constraint.
type DeploymentFilter struct {
	ProjectID    string
	StatusID     string
	TechnicianID string
	DepartmentID string
}

// CreateDeploymentRequest represents the request payload for creating a deployment
type CreateDeploymentRequest struct {
	ProjectID    string `json:"projectId" binding:"required"`
	DeploymentID string `json:"deploymentId"`
	StatusID     string `json:"statusId" binding:"required"`

	AssignedTo   string  `json:"assignedTo"`
	Position     string  `json:"position"`
	DepartmentID *string `json:"departmentId"`
	Location     string  `json:"location"`

	CurrentModel string `json:"currentModel"`
	CurrentSN    string `json:"currentSn"`
	NewModel     string `json:"newModel"`
	NewSN        string `json:"newSn"`

	TechnicianID    *string `json:"technicianId"`
	TechnicianNotes string  `json:"technicianNotes"`
	DeploymentDate  string  `json:"deploymentDate"`

	CustomFields map[string]string `json:"customFields"`
}

// UpdateDeploymentRequest represents a partial deployment update. Nil fields
// are left untouched; custom fields are merged (upsert), not replaced.
type UpdateDeploymentRequest struct {
	StatusID *string `json:"statusId"`

	AssignedTo   *string `json:"assignedTo"`
	Position     *string `json:"position"`
	DepartmentID *string `json:"departmentId"`
	Location     *string `json:"location"`

	CurrentModel *string `json:"currentModel"`
	CurrentSN    *string `json:"currentSn"`
	NewModel     *string `json:"newModel"`
	NewSN        *string `json:"newSn"`

	TechnicianID    *string `json:"technicianId"`
	TechnicianNotes *string `json:"technicianNotes"`
	DeploymentDate  *string `json:"deploymentDate"`

	CustomFields map[string]string `json:"customFields"`
}

// SetStatusRequest represents the explicit status transition payload
type SetStatusRequest struct {
	StatusID string `json:"status" binding:"required"`
}

// AssignTechnicianRequest represents the technician assignment payload.
// A null technician clears the assignment.
type AssignTechnicianRequest struct {
	TechnicianID *string `json:"technician"`
}

// ImportResult reports the outcome of a workbook import batch
type ImportResult struct {
	Message string   `json:"message"`
	Total   int      `json:"total"`
	Errors  []string `json:"errors,omitempty"`
}
