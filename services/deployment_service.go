package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/assetdeploy/dto"
	"github.com/assetdeploy/models"
	"github.com/assetdeploy/repositories"
	"github.com/google/uuid"
)

// DeploymentService handles business logic for deployment records
type DeploymentService struct {
	deploymentRepo *repositories.DeploymentRepository
	projectRepo    *repositories.ProjectRepository
	statusRepo     *repositories.StatusRepository
	technicianRepo *repositories.TechnicianRepository
	fieldRepo      *repositories.FieldRepository
}

// NewDeploymentService creates a new deployment service instance
func NewDeploymentService() *DeploymentService {
	return &DeploymentService{
		deploymentRepo: repositories.NewDeploymentRepository(),
		projectRepo:    repositories.NewProjectRepository(),
		statusRepo:     repositories.NewStatusRepository(),
		technicianRepo: repositories.NewTechnicianRepository(),
		fieldRepo:      repositories.NewFieldRepository(),
	}
}

// GenerateDeploymentID produces a human-facing deployment label.
// 24 bits of randomness; collisions are accepted, the label is not a key.
func GenerateDeploymentID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "DEP-" + strings.ToUpper(hex[:6])
}

// ListDeployments retrieves deployments matching the given filters
func (s *DeploymentService) ListDeployments(filter dto.DeploymentFilter) ([]models.Deployment, error) {
	return s.deploymentRepo.FindWithFilters(filter)
}

// GetDeployment retrieves a deployment with its relations
func (s *DeploymentService) GetDeployment(id string) (models.Deployment, error) {
	return s.deploymentRepo.FindByID(id)
}

// CreateDeployment constructs a record from built-in attributes plus custom
// field values. A deployment label is generated when the caller supplies none.
func (s *DeploymentService) CreateDeployment(req dto.CreateDeploymentRequest) (models.Deployment, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		return models.Deployment{}, fmt.Errorf("project not found: %w", err)
	}
	if _, err := s.statusRepo.FindByID(req.StatusID); err != nil {
		return models.Deployment{}, fmt.Errorf("status not found: %w", err)
	}

	deploymentID := req.DeploymentID
	if deploymentID == "" {
		deploymentID = GenerateDeploymentID()
	}

	deployment := models.Deployment{
		ProjectID:       req.ProjectID,
		DeploymentID:    deploymentID,
		StatusID:        req.StatusID,
		AssignedTo:      req.AssignedTo,
		Position:        req.Position,
		DepartmentID:    req.DepartmentID,
		Location:        req.Location,
		CurrentModel:    req.CurrentModel,
		CurrentSN:       req.CurrentSN,
		NewModel:        req.NewModel,
		NewSN:           req.NewSN,
		TechnicianID:    req.TechnicianID,
		TechnicianNotes: req.TechnicianNotes,
	}

	if req.DeploymentDate != "" {
		if t, ok := models.ParseDate(req.DeploymentDate); ok {
			deployment.DeploymentDate = &t
		} else {
			return models.Deployment{}, fmt.Errorf("invalid deployment date: %s", req.DeploymentDate)
		}
	}

	created, err := s.deploymentRepo.Create(deployment)
	if err != nil {
		return models.Deployment{}, err
	}

	if err := s.writeCustomFields(created.ID, created.ProjectID, req.CustomFields); err != nil {
		return models.Deployment{}, err
	}

	return s.deploymentRepo.FindByID(created.ID)
}

// UpdateDeployment applies a partial built-in update, then upserts each
// supplied custom field value. Omitted fields keep their prior values.
func (s *DeploymentService) UpdateDeployment(id string, req dto.UpdateDeploymentRequest) (models.Deployment, error) {
	deployment, err := s.deploymentRepo.FindByID(id)
	if err != nil {
		return models.Deployment{}, err
	}

	updates := map[string]interface{}{}
	if req.StatusID != nil {
		if _, err := s.statusRepo.FindByID(*req.StatusID); err != nil {
			return models.Deployment{}, fmt.Errorf("status not found: %w", err)
		}
		updates["status_id"] = *req.StatusID
	}
	if req.AssignedTo != nil {
		updates["assigned_to"] = *req.AssignedTo
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.DepartmentID != nil {
		updates["department_id"] = *req.DepartmentID
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.CurrentModel != nil {
		updates["current_model"] = *req.CurrentModel
	}
	if req.CurrentSN != nil {
		updates["current_sn"] = *req.CurrentSN
	}
	if req.NewModel != nil {
		updates["new_model"] = *req.NewModel
	}
	if req.NewSN != nil {
		updates["new_sn"] = *req.NewSN
	}
	if req.TechnicianID != nil {
		updates["technician_id"] = *req.TechnicianID
	}
	if req.TechnicianNotes != nil {
		updates["technician_notes"] = *req.TechnicianNotes
	}
	if req.DeploymentDate != nil {
		if *req.DeploymentDate == "" {
			updates["deployment_date"] = nil
		} else if t, ok := models.ParseDate(*req.DeploymentDate); ok {
			updates["deployment_date"] = t
		} else {
			return models.Deployment{}, fmt.Errorf("invalid deployment date: %s", *req.DeploymentDate)
		}
	}

	if len(updates) > 0 {
		if err := s.deploymentRepo.Updates(id, updates); err != nil {
			return models.Deployment{}, err
		}
	}

	if err := s.writeCustomFields(id, deployment.ProjectID, req.CustomFields); err != nil {
		return models.Deployment{}, err
	}

	return s.deploymentRepo.FindByID(id)
}

// writeCustomFields upserts each (field, value) pair after coercing the raw
// value through the typed variant for the field's declared type
func (s *DeploymentService) writeCustomFields(deploymentID, projectID string, customFields map[string]string) error {
	if len(customFields) == 0 {
		return nil
	}

	for fieldID, raw := range customFields {
		field, err := s.fieldRepo.FindInProject(projectID, fieldID)
		if err != nil {
			return fmt.Errorf("field %s not found in project: %w", fieldID, err)
		}
		value := models.ParseTypedValue(field.FieldType, raw).StorageText()
		if err := s.deploymentRepo.UpsertFieldValue(deploymentID, field.ID, value); err != nil {
			return err
		}
	}
	return nil
}

// DeleteDeployment removes a deployment record
func (s *DeploymentService) DeleteDeployment(id string) error {
	if _, err := s.deploymentRepo.FindByID(id); err != nil {
		return err
	}
	return s.deploymentRepo.Delete(id)
}

// SetStatus overwrites the record's status unconditionally. Any status may
// follow any status; the operation is idempotent and keeps no history.
func (s *DeploymentService) SetStatus(id, statusID string) (models.Deployment, error) {
	if _, err := s.deploymentRepo.FindByID(id); err != nil {
		return models.Deployment{}, err
	}
	if _, err := s.statusRepo.FindByID(statusID); err != nil {
		return models.Deployment{}, fmt.Errorf("status not found: %w", err)
	}

	if err := s.deploymentRepo.Updates(id, map[string]interface{}{
		"status_id":  statusID,
		"updated_at": time.Now(),
	}); err != nil {
		return models.Deployment{}, err
	}
	return s.deploymentRepo.FindByID(id)
}

// AssignTechnician sets or clears the technician reference. A nil technician
// clears the assignment; a non-nil one must resolve.
func (s *DeploymentService) AssignTechnician(id string, technicianID *string) (models.Deployment, error) {
	if _, err := s.deploymentRepo.FindByID(id); err != nil {
		return models.Deployment{}, err
	}

	if technicianID != nil {
		if _, err := s.technicianRepo.FindByID(*technicianID); err != nil {
			return models.Deployment{}, fmt.Errorf("technician not found: %w", err)
		}
	}

	if err := s.deploymentRepo.Updates(id, map[string]interface{}{
		"technician_id": technicianID,
		"updated_at":    time.Now(),
	}); err != nil {
		return models.Deployment{}, err
	}
	return s.deploymentRepo.FindByID(id)
}
