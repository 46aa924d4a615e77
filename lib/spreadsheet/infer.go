package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/assetdeploy/models"
)

const (
	// Dropdown reclassification thresholds: a text column becomes a dropdown
	// candidate when a small value set repeats heavily.
	maxDropdownDistinct   = 10
	dropdownDistinctRatio = 0.2

	sampleLimit = 5
)

// ColumnInfo is the advisory analysis result for one column
type ColumnInfo struct {
	Name         string           `json:"name"`
	FieldType    models.FieldType `json:"fieldType"`
	SampleValues []string         `json:"sampleValues"`
}

// IsNumeric reports whether the cell parses as a floating-point number
func IsNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// InferColumnType infers a field type from a column's non-empty values.
// Priority: no data → text, all numeric → number, all date → date, else text.
// The dropdown heuristic is deliberately not applied here; it only runs in
// the advisory analysis.
func InferColumnType(values []string) models.FieldType {
	if len(values) == 0 {
		return models.FieldTypeText
	}

	numeric := true
	for _, v := range values {
		if !IsNumeric(v) {
			numeric = false
			break
		}
	}
	if numeric {
		return models.FieldTypeNumber
	}

	dates := true
	for _, v := range values {
		if _, ok := models.ParseDate(v); !ok {
			dates = false
			break
		}
	}
	if dates {
		return models.FieldTypeDate
	}

	return models.FieldTypeText
}

// AnalyzeColumns inspects every column of the sheet and returns an advisory
// type per column plus up to five sample values. Text columns are
// reclassified as dropdown when the distinct value count is at most
// maxDropdownDistinct and the distinct/non-empty ratio is below
// dropdownDistinctRatio.
func AnalyzeColumns(sheet *Sheet) []ColumnInfo {
	infos := make([]ColumnInfo, 0, len(sheet.Headers))

	for _, header := range sheet.Headers {
		values := sheet.ColumnValues(header)
		fieldType := InferColumnType(values)

		if fieldType == models.FieldTypeText && len(values) > 0 {
			distinct := distinctCount(values)
			ratio := float64(distinct) / float64(len(values))
			if distinct <= maxDropdownDistinct && ratio < dropdownDistinctRatio {
				fieldType = models.FieldTypeDropdown
			}
		}

		samples := values
		if len(samples) > sampleLimit {
			samples = samples[:sampleLimit]
		}
		if samples == nil {
			samples = []string{}
		}

		infos = append(infos, ColumnInfo{
			Name:         header,
			FieldType:    fieldType,
			SampleValues: samples,
		})
	}

	return infos
}

func distinctCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// CoerceCell converts a raw cell to the canonical storage text for the
// target field type. Unparseable input degrades to the raw string.
func CoerceCell(fieldType models.FieldType, raw string) string {
	return models.ParseTypedValue(fieldType, raw).StorageText()
}
