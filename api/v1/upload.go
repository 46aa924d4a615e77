package v1

import (
	"mime/multipart"

	"github.com/assetdeploy/lib/spreadsheet"
)

// readUploadedSheet parses an uploaded workbook into its first worksheet
func readUploadedSheet(fileHeader *multipart.FileHeader) (*spreadsheet.Sheet, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return spreadsheet.ReadWorkbook(file)
}
