package services_test

import (
	"bytes"
	"testing"

	"github.com/assetdeploy/database"
	"github.com/assetdeploy/dto"
	"github.com/assetdeploy/lib/spreadsheet"
	"github.com/assetdeploy/models"
	"github.com/assetdeploy/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportDeployments(t *testing.T) {
	t.Run("fails the batch when the project is unknown", func(t *testing.T) {
		setupTestDB(t)
		createStatus(t, "Pending", 1)
		svc := services.NewWorkbookService()

		_, err := svc.ImportDeployments("missing", nil, &spreadsheet.Sheet{})
		assert.ErrorContains(t, err, "project not found")
	})

	t.Run("fails the batch when no status exists", func(t *testing.T) {
		setupTestDB(t)
		project := createProject(t, "Refresh 2024")
		svc := services.NewWorkbookService()

		_, err := svc.ImportDeployments(project.ID, nil, &spreadsheet.Sheet{
			Headers: []string{"Assigned To"},
			Rows:    []map[string]string{{"Assigned To": "Jane Smith"}},
		})
		assert.ErrorContains(t, err, "no deployment status")
	})

	t.Run("imports rows with builtins and coerced custom fields", func(t *testing.T) {
		setupTestDB(t)
		project := createProject(t, "Refresh 2024")
		createStatus(t, "Pending", 1)
		createField(t, project.ID, "Asset Tag", models.FieldTypeText, 0)
		createField(t, project.ID, "Cost", models.FieldTypeNumber, 1)
		svc := services.NewWorkbookService()

		sheet := &spreadsheet.Sheet{
			Headers: []string{"Asset Tag", "Cost", "Assigned To"},
			Rows: []map[string]string{
				{"Asset Tag": "A-001", "Cost": "1200.50", "Assigned To": "Jane Smith"},
				{"Asset Tag": "A-002", "Cost": "", "Assigned To": ""},
			},
		}

		result, err := svc.ImportDeployments(project.ID, nil, sheet)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, "Successfully imported 2 deployments", result.Message)
		assert.Empty(t, result.Errors)

		deployments, err := services.NewDeploymentService().ListDeployments(dto.DeploymentFilter{ProjectID: project.ID})
		require.NoError(t, err)
		require.Len(t, deployments, 2)

		byAssignee := map[string]models.Deployment{}
		for _, d := range deployments {
			byAssignee[d.AssignedTo] = d
			assert.Equal(t, "Pending", d.Status.Name)
			assert.NotEmpty(t, d.DeploymentID)
		}

		first := byAssignee["Jane Smith"]
		values := map[string]string{}
		for _, fv := range first.Fields {
			values[fv.Field.Name] = fv.Value
		}
		assert.Equal(t, "A-001", values["Asset Tag"])
		assert.Equal(t, "1200.5", values["Cost"])

		// The blank cells on the second row produced no values at all
		second := byAssignee[""]
		valueNames := []string{}
		for _, fv := range second.Fields {
			valueNames = append(valueNames, fv.Field.Name)
		}
		assert.Equal(t, []string{"Asset Tag"}, valueNames)
	})

	t.Run("explicit column map overrides name matching", func(t *testing.T) {
		setupTestDB(t)
		project := createProject(t, "Refresh 2024")
		createStatus(t, "Pending", 1)
		cost := createField(t, project.ID, "Cost", models.FieldTypeNumber, 0)
		svc := services.NewWorkbookService()

		sheet := &spreadsheet.Sheet{
			Headers: []string{"Price", "Cost"},
			Rows:    []map[string]string{{"Price": "500", "Cost": "999"}},
		}

		result, err := svc.ImportDeployments(project.ID, map[string]string{cost.ID: "Price"}, sheet)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)

		deployments, err := services.NewDeploymentService().ListDeployments(dto.DeploymentFilter{ProjectID: project.ID})
		require.NoError(t, err)
		require.Len(t, deployments, 1)
		require.Len(t, deployments[0].Fields, 1)
		assert.Equal(t, "500", deployments[0].Fields[0].Value)
	})

	t.Run("unmapped fields match headers case-insensitively", func(t *testing.T) {
		setupTestDB(t)
		project := createProject(t, "Refresh 2024")
		createStatus(t, "Pending", 1)
		createField(t, project.ID, "Asset Tag", models.FieldTypeText, 0)
		svc := services.NewWorkbookService()

		sheet := &spreadsheet.Sheet{
			Headers: []string{"ASSET TAG"},
			Rows:    []map[string]string{{"ASSET TAG": "A-001"}},
		}

		result, err := svc.ImportDeployments(project.ID, nil, sheet)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)

		deployments, err := services.NewDeploymentService().ListDeployments(dto.DeploymentFilter{ProjectID: project.ID})
		require.NoError(t, err)
		require.Len(t, deployments[0].Fields, 1)
		assert.Equal(t, "A-001", deployments[0].Fields[0].Value)
	})

	t.Run("duplicate field names bind the first definition in display order", func(t *testing.T) {
		setupTestDB(t)
		project := createProject(t, "Refresh 2024")
		createStatus(t, "Pending", 1)
		first := createField(t, project.ID, "Tag", models.FieldTypeText, 0)
		createField(t, project.ID, "Tag", models.FieldTypeText, 1)
		svc := services.NewWorkbookService()

		sheet := &spreadsheet.Sheet{
			Headers: []string{"Tag"},
			Rows:    []map[string]string{{"Tag": "A-001"}},
		}

		_, err := svc.ImportDeployments(project.ID, nil, sheet)
		require.NoError(t, err)

		deployments, err := services.NewDeploymentService().ListDeployments(dto.DeploymentFilter{ProjectID: project.ID})
		require.NoError(t, err)
		require.Len(t, deployments[0].Fields, 1)
		assert.Equal(t, first.ID, deployments[0].Fields[0].FieldID)
	})

	t.Run("a failing row does not stop the batch", func(t *testing.T) {
		setupTestDB(t)
		project := createProject(t, "Refresh 2024")
		createStatus(t, "Pending", 1)
		svc := services.NewWorkbookService()

		// Reject one specific assignee at the storage layer so the middle
		// row fails while its neighbours go through
		require.NoError(t, database.DB.Exec(`
			CREATE TRIGGER reject_flagged_assignee BEFORE INSERT ON deployments
			WHEN NEW.assigned_to = 'Flagged Assignee'
			BEGIN SELECT RAISE(ABORT, 'assignee rejected'); END`).Error)

		sheet := &spreadsheet.Sheet{
			Headers: []string{"Assigned To"},
			Rows: []map[string]string{
				{"Assigned To": "Jane Smith"},
				{"Assigned To": "Flagged Assignee"},
				{"Assigned To": "John Doe"},
			},
		}

		result, err := svc.ImportDeployments(project.ID, nil, sheet)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, "Successfully imported 2 deployments", result.Message)

		// The failed data row is the second one, sheet row 3 behind the header
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "Row 3:")
		assert.Contains(t, result.Errors[0], "assignee rejected")

		deployments, err := services.NewDeploymentService().ListDeployments(dto.DeploymentFilter{ProjectID: project.ID})
		require.NoError(t, err)
		require.Len(t, deployments, 2)
		for _, d := range deployments {
			assert.NotEqual(t, "Flagged Assignee", d.AssignedTo)
		}
	})

	t.Run("counts every row once", func(t *testing.T) {
		setupTestDB(t)
		project := createProject(t, "Refresh 2024")
		createStatus(t, "Pending", 1)
		svc := services.NewWorkbookService()

		sheet := &spreadsheet.Sheet{
			Headers: []string{"Assigned To"},
			Rows: []map[string]string{
				{"Assigned To": "Jane Smith"},
				{"Assigned To": "John Doe"},
				{"Assigned To": "Ann Lee"},
			},
		}

		result, err := svc.ImportDeployments(project.ID, nil, sheet)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
		assert.Empty(t, result.Errors)

		var count int64
		require.NoError(t, database.DB.Model(&models.Deployment{}).Count(&count).Error)
		assert.EqualValues(t, 3, count)
	})
}

func TestExportDeployments(t *testing.T) {
	setupTestDB(t)
	project := createProject(t, "Refresh 2024")
	status := createStatus(t, "Pending", 1)
	department := createDepartment(t, "Finance")
	technician := createTechnician(t, "tech.jones")
	tag := createField(t, project.ID, "Asset Tag", models.FieldTypeText, 0)
	cost := createField(t, project.ID, "Cost", models.FieldTypeNumber, 1)
	deploymentSvc := services.NewDeploymentService()
	svc := services.NewWorkbookService()

	date := "2024-02-01"
	_, err := deploymentSvc.CreateDeployment(dto.CreateDeploymentRequest{
		ProjectID:      project.ID,
		StatusID:       status.ID,
		AssignedTo:     "Jane Smith",
		DepartmentID:   &department.ID,
		TechnicianID:   &technician.ID,
		DeploymentDate: date,
		CustomFields:   map[string]string{tag.ID: "A-001"},
	})
	require.NoError(t, err)
	_, err = deploymentSvc.CreateDeployment(dto.CreateDeploymentRequest{
		ProjectID:    project.ID,
		StatusID:     status.ID,
		AssignedTo:   "John Doe",
		CustomFields: map[string]string{cost.ID: "985"},
	})
	require.NoError(t, err)

	filename, buf, err := svc.ExportDeployments(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Refresh 2024_deployments.xlsx", filename)

	sheet, err := spreadsheet.ReadWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	// Built-in columns first, then custom columns in first-appearance order:
	// "Asset Tag" appears on the first record, "Cost" only on the second
	assert.Equal(t, "ID", sheet.Headers[0])
	assert.Equal(t, "Status", sheet.Headers[1])
	require.Len(t, sheet.Headers, 17)
	assert.Equal(t, "Asset Tag", sheet.Headers[15])
	assert.Equal(t, "Cost", sheet.Headers[16])

	require.Len(t, sheet.Rows, 2)
	first := sheet.Rows[0]
	assert.Equal(t, "Pending", first["Status"])
	assert.Equal(t, "Jane Smith", first["Assigned To"])
	assert.Equal(t, "Finance", first["Department"])
	assert.Equal(t, "tech.jones", first["Technician"])
	assert.Equal(t, "2024-02-01", first["Deployment Date"])
	assert.Equal(t, "A-001", first["Asset Tag"])
	assert.Equal(t, "", first["Cost"])

	second := sheet.Rows[1]
	assert.Equal(t, "John Doe", second["Assigned To"])
	assert.Equal(t, "", second["Asset Tag"])
	assert.Equal(t, "985", second["Cost"])
}

func TestExportTemplate(t *testing.T) {
	setupTestDB(t)
	project := createProject(t, "Refresh 2024")
	createField(t, project.ID, "Asset Tag", models.FieldTypeText, 0)
	createField(t, project.ID, "Cost", models.FieldTypeNumber, 1)
	svc := services.NewWorkbookService()

	filename, buf, err := svc.ExportTemplate(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Refresh 2024_template.xlsx", filename)

	sheet, err := spreadsheet.ReadWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Status", "Assigned To", "Position", "Department", "Location",
		"Asset Tag", "Cost",
	}, sheet.Headers)
	assert.Empty(t, sheet.Rows)
}

func TestExportReimportRoundTrip(t *testing.T) {
	setupTestDB(t)
	project := createProject(t, "Refresh 2024")
	status := createStatus(t, "Pending", 1)
	tag := createField(t, project.ID, "Asset Tag", models.FieldTypeText, 0)
	deploymentSvc := services.NewDeploymentService()
	svc := services.NewWorkbookService()

	_, err := deploymentSvc.CreateDeployment(dto.CreateDeploymentRequest{
		ProjectID:    project.ID,
		StatusID:     status.ID,
		AssignedTo:   "Jane Smith",
		Location:     "HQ",
		CustomFields: map[string]string{tag.ID: "A-001"},
	})
	require.NoError(t, err)

	_, buf, err := svc.ExportDeployments(project.ID)
	require.NoError(t, err)

	sheet, err := spreadsheet.ReadWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	result, err := svc.ImportDeployments(project.ID, nil, sheet)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)

	deployments, err := deploymentSvc.ListDeployments(dto.DeploymentFilter{ProjectID: project.ID})
	require.NoError(t, err)
	require.Len(t, deployments, 2)

	var reimported *models.Deployment
	for i := range deployments {
		if len(deployments[i].Fields) > 0 && deployments[i].Fields[0].Value == "A-001" &&
			deployments[i].AssignedTo == "Jane Smith" {
			reimported = &deployments[i]
		}
	}
	require.NotNil(t, reimported)
	assert.Equal(t, "HQ", reimported.Location)

	var count int64
	require.NoError(t, database.DB.Model(&models.Deployment{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAnalyze(t *testing.T) {
	setupTestDB(t)
	svc := services.NewWorkbookService()

	sheet := &spreadsheet.Sheet{
		Headers: []string{"Cost", "Notes"},
		Rows: []map[string]string{
			{"Cost": "10", "Notes": "a"},
			{"Cost": "20", "Notes": "b"},
		},
	}

	response := svc.Analyze(sheet)
	assert.Equal(t, 2, response.RowCount)
	require.Len(t, response.Columns, 2)
	assert.Equal(t, models.FieldTypeNumber, response.Columns[0].FieldType)
	assert.Equal(t, models.FieldTypeText, response.Columns[1].FieldType)
}
