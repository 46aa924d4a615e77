package services

import (
	"errors"
	"fmt"

	"github.com/assetdeploy/dto"
	"github.com/assetdeploy/lib/spreadsheet"
	"github.com/assetdeploy/models"
	"github.com/assetdeploy/repositories"
)

// ProjectService handles business logic for projects and their field schema
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	fieldRepo   *repositories.FieldRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		fieldRepo:   repositories.NewFieldRepository(),
	}
}

// ListProjects retrieves projects with pagination, search and sorting
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Whitelist sortable columns
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
	}
	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.Search,
	)
	if err != nil {
		return response, err
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}
	return response, nil
}

// GetProjectDetail retrieves a project with its field definitions
func (s *ProjectService) GetProjectDetail(projectID string) (models.Project, error) {
	return s.projectRepo.WithFields(projectID)
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(project models.Project) (models.Project, error) {
	return s.projectRepo.Create(project)
}

// UpdateProject updates an existing project's descriptive attributes
func (s *ProjectService) UpdateProject(project models.Project) (models.Project, error) {
	existing, err := s.projectRepo.FindByID(project.ID)
	if err != nil {
		return models.Project{}, err
	}

	existing.Name = project.Name
	existing.Description = project.Description
	existing.ExpectedCount = project.ExpectedCount

	if err := s.projectRepo.Update(existing); err != nil {
		return models.Project{}, err
	}
	return existing, nil
}

// DeleteProject deletes a project; fields, deployments and their values go with it
func (s *ProjectService) DeleteProject(projectID string) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return err
	}
	return s.projectRepo.Delete(projectID)
}

// AddField appends a custom field to the project's schema. The new field
// takes display order max+1 (0 for an empty schema). Duplicate names are
// allowed; they are a known data-quality gap, not rejected here.
func (s *ProjectService) AddField(projectID string, req dto.AddFieldRequest) (models.FieldDefinition, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return models.FieldDefinition{}, err
	}

	fieldType := models.FieldType(req.FieldType)
	if req.FieldType == "" {
		fieldType = models.FieldTypeText
	}
	if !fieldType.IsValid() {
		return models.FieldDefinition{}, fmt.Errorf("unknown field type: %s", req.FieldType)
	}

	maxOrder, err := s.fieldRepo.MaxOrder(projectID)
	if err != nil {
		return models.FieldDefinition{}, err
	}

	var options models.StringList
	if fieldType == models.FieldTypeDropdown && len(req.Options) > 0 {
		options = models.StringList(req.Options)
	}

	field := models.FieldDefinition{
		ProjectID: projectID,
		Name:      req.Name,
		FieldType: fieldType,
		Required:  req.Required,
		Order:     maxOrder + 1,
		Options:   options,
	}
	return s.fieldRepo.Create(field)
}

// RemoveField deletes a field definition and all its values. The field must
// belong to the given project; otherwise the call fails with not found and
// values in every other project stay untouched.
func (s *ProjectService) RemoveField(projectID, fieldID string) error {
	if _, err := s.fieldRepo.FindInProject(projectID, fieldID); err != nil {
		return err
	}
	return s.fieldRepo.DeleteWithValues(fieldID)
}

// CreateWithWorkbook creates a project and seeds its schema from the header
// row of a workbook. Field types are inferred per column (no data → text,
// all numeric → number, all dates → date, else text); fields are created in
// header order with order = positional index and none marked required.
// A failure while processing the workbook rolls the new project back.
func (s *ProjectService) CreateWithWorkbook(project models.Project, sheet *spreadsheet.Sheet) (dto.CreateWithWorkbookResponse, error) {
	created, err := s.projectRepo.Create(project)
	if err != nil {
		return dto.CreateWithWorkbookResponse{}, err
	}

	for idx, header := range sheet.Headers {
		fieldType := spreadsheet.InferColumnType(sheet.ColumnValues(header))
		field := models.FieldDefinition{
			ProjectID: created.ID,
			Name:      header,
			FieldType: fieldType,
			Required:  false,
			Order:     idx,
		}
		if _, err := s.fieldRepo.Create(field); err != nil {
			// Roll the project back rather than leave a half-seeded schema
			if delErr := s.projectRepo.Delete(created.ID); delErr != nil {
				return dto.CreateWithWorkbookResponse{}, errors.Join(err, delErr)
			}
			return dto.CreateWithWorkbookResponse{}, fmt.Errorf("workbook processing error: %w", err)
		}
	}

	return dto.CreateWithWorkbookResponse{
		Message:   "Project created successfully with workbook columns",
		ProjectID: created.ID,
		Columns:   sheet.Headers,
	}, nil
}
