package dto

import "github.com/assetdeploy/lib/spreadsheet"

// AnalyzeResponse is the advisory column analysis of an uploaded workbook
type AnalyzeResponse struct {
	Columns  []spreadsheet.ColumnInfo `json:"columns"`
	RowCount int                      `json:"rowCount"`
}
