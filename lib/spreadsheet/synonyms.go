package spreadsheet

import "strings"

// builtinColumn maps one built-in deployment attribute to its accepted
// spreadsheet headers, in match priority order.
type builtinColumn struct {
	Attribute string
	Headers   []string
}

// builtinSynonyms is the fixed synonym table for built-in attributes.
// Matching is case-sensitive: the first synonym present among the sheet's
// columns wins and the rest are ignored for that attribute, even when the
// winning column's cell is empty for a given row.
var builtinSynonyms = []builtinColumn{
	{"assigned_to", []string{"Assigned To", "assigned_to", "Assignee", "assignee", "User", "user", "Employee", "employee"}},
	{"position", []string{"Position", "position", "Job Title", "job_title", "Title", "title", "Role", "role"}},
	{"location", []string{"Location", "location", "Site", "site", "Building", "building", "Office", "office"}},
	{"current_model", []string{"Current Model", "current_model", "Old Model", "old_model", "Existing Model", "existing_model"}},
	{"current_sn", []string{"Current SN", "current_sn", "Old SN", "old_sn", "Existing SN", "existing_sn", "Current Serial", "current_serial"}},
	{"new_model", []string{"New Model", "new_model", "Target Model", "target_model", "Model", "model"}},
	{"new_sn", []string{"New SN", "new_sn", "Target SN", "target_sn", "Serial Number", "serial_number", "Serial", "serial"}},
}

// MatchBuiltins extracts built-in attribute values from one data row using
// the synonym table. The result maps attribute name to the non-empty cell
// value of the first matching column.
func MatchBuiltins(sheet *Sheet, row map[string]string) map[string]string {
	matched := make(map[string]string)

	for _, col := range builtinSynonyms {
		for _, header := range col.Headers {
			if !sheet.HasHeader(header) {
				continue
			}
			if v := strings.TrimSpace(row[header]); v != "" {
				matched[col.Attribute] = v
			}
			break
		}
	}

	return matched
}
