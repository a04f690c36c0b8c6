package http

import (
	"encoding/base64"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"parceltrack/internal/core/application/usecases/commands"
)

var (
	errEmptyCSV      = errors.New("csv content is empty")
	errMissingHeader = errors.New("csv header must contain ID and Status columns")
)

// decodeCSVRows parses an uploaded CSV document into import rows.
// Content arrives base64 encoded; raw CSV is accepted as a fallback for
// integrations that skip the encoding. The header must name ID and Status
// columns, Comments is optional. Short rows are padded with empty fields and
// left for the import handler to reject individually.
func decodeCSVRows(content string) ([]commands.ImportRow, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errEmptyCSV
	}

	raw := content
	if decoded, err := base64.StdEncoding.DecodeString(content); err == nil {
		raw = string(decoded)
	}

	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errEmptyCSV
	}

	idCol, statusCol, commentsCol := -1, -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id", "parcel id":
			idCol = i
		case "status":
			statusCol = i
		case "comments":
			commentsCol = i
		}
	}
	if idCol < 0 || statusCol < 0 {
		return nil, errMissingHeader
	}

	rows := make([]commands.ImportRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := commands.ImportRow{
			ParcelID: fieldAt(record, idCol),
			Status:   fieldAt(record, statusCol),
		}

		if commentsCol >= 0 {
			if comments := fieldAt(record, commentsCol); comments != "" {
				row.Comments = &comments
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func fieldAt(record []string, index int) string {
	if index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}
