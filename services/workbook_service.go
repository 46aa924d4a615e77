package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/assetdeploy/dto"
	"github.com/assetdeploy/lib/spreadsheet"
	"github.com/assetdeploy/models"
	"github.com/assetdeploy/repositories"
)

// exportHeaders are the fixed built-in columns of a deployment export, in
// output order. Custom field columns follow, driven by the exported data.
var exportHeaders = []string{
	"ID", "Status", "Assigned To", "Position", "Department", "Location",
	"Current Model", "Current SN", "New Model", "New SN",
	"Technician", "Technician Notes", "Deployment Date",
	"Created Date", "Updated Date",
}

// templateHeaders are the built-in columns of a generated import template
var templateHeaders = []string{"Status", "Assigned To", "Position", "Department", "Location"}

// WorkbookService handles workbook import, export and analysis for deployments
type WorkbookService struct {
	deploymentRepo *repositories.DeploymentRepository
	projectRepo    *repositories.ProjectRepository
	fieldRepo      *repositories.FieldRepository
	statusRepo     *repositories.StatusRepository
}

// NewWorkbookService creates a new workbook service instance
func NewWorkbookService() *WorkbookService {
	return &WorkbookService{
		deploymentRepo: repositories.NewDeploymentRepository(),
		projectRepo:    repositories.NewProjectRepository(),
		fieldRepo:      repositories.NewFieldRepository(),
		statusRepo:     repositories.NewStatusRepository(),
	}
}

// fieldBinding ties one project field to the sheet column that feeds it
type fieldBinding struct {
	field  models.FieldDefinition
	header string
}

// resolveBindings matches project fields to sheet columns. Explicitly mapped
// fields (field id → header) win; fields without an explicit entry fall back
// to a case-insensitive exact match on the field name. When duplicate field
// names compete for one column, the first definition in display order takes
// it and the rest stay unbound.
func resolveBindings(fields []models.FieldDefinition, columnMap map[string]string, sheet *spreadsheet.Sheet) []fieldBinding {
	var bindings []fieldBinding
	usedHeaders := make(map[string]bool)

	for _, f := range fields {
		header, ok := columnMap[f.ID]
		if !ok {
			continue
		}
		if sheet.HasHeader(header) {
			bindings = append(bindings, fieldBinding{field: f, header: header})
			usedHeaders[header] = true
		}
	}

	for _, f := range fields {
		if _, explicit := columnMap[f.ID]; explicit {
			continue
		}
		header := sheet.HeaderFold(f.Name)
		if header == "" || usedHeaders[header] {
			continue
		}
		bindings = append(bindings, fieldBinding{field: f, header: header})
		usedHeaders[header] = true
	}

	return bindings
}

// ImportDeployments creates one deployment per data row. Preconditions
// (project resolves, at least one status configured) fail the whole batch
// before any row; after that each row is isolated — a failing row is
// recorded as "Row {n}: {message}" and processing continues. Partial
// success persists and is reported, never rolled back.
func (s *WorkbookService) ImportDeployments(projectID string, columnMap map[string]string, sheet *spreadsheet.Sheet) (dto.ImportResult, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return dto.ImportResult{}, fmt.Errorf("project not found: %w", err)
	}

	defaultStatus, err := s.statusRepo.FindDefault()
	if err != nil {
		return dto.ImportResult{}, fmt.Errorf("no deployment status defined, create at least one status first")
	}

	fields, err := s.fieldRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.ImportResult{}, err
	}

	bindings := resolveBindings(fields, columnMap, sheet)

	imported := 0
	var rowErrors []string

	for i, row := range sheet.Rows {
		if err := s.importRow(projectID, defaultStatus.ID, bindings, sheet, row); err != nil {
			// 1-based data row plus the header row
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", i+2, err))
			continue
		}
		imported++
	}

	result := dto.ImportResult{
		Message: fmt.Sprintf("Successfully imported %d deployments", imported),
		Total:   imported,
		Errors:  rowErrors,
	}
	return result, nil
}

func (s *WorkbookService) importRow(projectID, statusID string, bindings []fieldBinding, sheet *spreadsheet.Sheet, row map[string]string) error {
	builtins := spreadsheet.MatchBuiltins(sheet, row)

	deployment := models.Deployment{
		ProjectID:    projectID,
		DeploymentID: GenerateDeploymentID(),
		StatusID:     statusID,
		AssignedTo:   builtins["assigned_to"],
		Position:     builtins["position"],
		Location:     builtins["location"],
		CurrentModel: builtins["current_model"],
		CurrentSN:    builtins["current_sn"],
		NewModel:     builtins["new_model"],
		NewSN:        builtins["new_sn"],
	}

	created, err := s.deploymentRepo.Create(deployment)
	if err != nil {
		return err
	}

	for _, b := range bindings {
		raw := strings.TrimSpace(row[b.header])
		if raw == "" {
			// Empty cells are skipped, never written as empty string
			continue
		}
		value := spreadsheet.CoerceCell(b.field.FieldType, raw)
		if err := s.deploymentRepo.UpsertFieldValue(created.ID, b.field.ID, value); err != nil {
			return err
		}
	}

	return nil
}

// ExportDeployments flattens a project's records into a workbook: the fixed
// built-in columns first, then one column per distinct custom field name in
// first-appearance order. Fields with no populated value across the exported
// records produce no column. Returns the download filename and the workbook.
func (s *WorkbookService) ExportDeployments(projectID string) (string, *bytes.Buffer, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return "", nil, fmt.Errorf("project not found: %w", err)
	}

	deployments, err := s.deploymentRepo.FindByProjectID(projectID)
	if err != nil {
		return "", nil, err
	}

	var customHeaders []string
	seen := make(map[string]bool)
	rowMaps := make([]map[string]string, 0, len(deployments))

	for _, d := range deployments {
		row := map[string]string{
			"ID":               d.DeploymentID,
			"Status":           d.Status.Name,
			"Assigned To":      d.AssignedTo,
			"Position":         d.Position,
			"Location":         d.Location,
			"Current Model":    d.CurrentModel,
			"Current SN":       d.CurrentSN,
			"New Model":        d.NewModel,
			"New SN":           d.NewSN,
			"Technician Notes": d.TechnicianNotes,
			"Created Date":     d.CreatedAt.Format("2006-01-02 15:04:05"),
			"Updated Date":     d.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		if d.Department != nil {
			row["Department"] = d.Department.Name
		}
		if d.Technician != nil {
			row["Technician"] = d.Technician.Name
		}
		if d.DeploymentDate != nil {
			row["Deployment Date"] = d.DeploymentDate.Format("2006-01-02")
		}

		for _, fv := range d.Fields {
			name := fv.Field.Name
			if !seen[name] {
				seen[name] = true
				customHeaders = append(customHeaders, name)
			}
			row[name] = fv.Value
		}

		rowMaps = append(rowMaps, row)
	}

	headers := append(append([]string{}, exportHeaders...), customHeaders...)
	rows := make([][]string, 0, len(rowMaps))
	for _, rm := range rowMaps {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i] = rm[h]
		}
		rows = append(rows, cells)
	}

	buf, err := spreadsheet.WriteWorkbook(headers, rows)
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("%s_deployments.xlsx", project.Name)
	return filename, buf, nil
}

// ExportTemplate generates an import template for a project: the built-in
// headers plus the project's field names in display order, zero data rows
func (s *WorkbookService) ExportTemplate(projectID string) (string, *bytes.Buffer, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return "", nil, fmt.Errorf("project not found: %w", err)
	}

	fields, err := s.fieldRepo.FindByProjectID(projectID)
	if err != nil {
		return "", nil, err
	}

	headers := append([]string{}, templateHeaders...)
	for _, f := range fields {
		headers = append(headers, f.Name)
	}

	buf, err := spreadsheet.WriteWorkbook(headers, nil)
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("%s_template.xlsx", project.Name)
	return filename, buf, nil
}

// Analyze runs the advisory column analysis over an uploaded workbook.
// It never mutates schema or data.
func (s *WorkbookService) Analyze(sheet *spreadsheet.Sheet) dto.AnalyzeResponse {
	return dto.AnalyzeResponse{
		Columns:  spreadsheet.AnalyzeColumns(sheet),
		RowCount: len(sheet.Rows),
	}
}
