// Package loader reads survey exports into rows and filters them to
// completed responses.
package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/models"
)

// Metadata columns every export carries alongside the question columns.
const (
	// ColumnResponseID is the unique response identifier column.
	ColumnResponseID = "ResponseId"
	// ColumnStartDate is the response start timestamp column.
	ColumnStartDate = "StartDate"
	// ColumnFinished is the completion flag column (literal "True"/"False").
	ColumnFinished = "Finished"
)

// headerSentinel is the repeated-header artifact some exports carry as
// a data row in the start date column.
const headerSentinel = "Start Date"

// finishedTrue is the literal marking a completed response.
const finishedTrue = "True"

// utf8BOM is the byte order mark optionally prefixing text exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads a delimited text export. The first record is the
// header; short records are padded so every row exposes all columns.
func ReadCSV(path string, delim rune) ([]models.Row, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	b = bytes.TrimPrefix(b, utf8BOM)

	r := csv.NewReader(bytes.NewReader(b))
	r.Comma = delim
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return tableRows(records[0], records[1:]), nil
}

// tableRows zips a header with data records into rows.
func tableRows(header []string, records [][]string) []models.Row {
	rows := make([]models.Row, 0, len(records))
	for _, record := range records {
		row := make(models.Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Completed filters rows to valid completed responses: a non-empty
// identifier, a start date that is not the repeated-header sentinel,
// and the completion flag equal to the literal "True".
func Completed(rows []models.Row) []models.Row {
	var clean []models.Row
	for _, r := range rows {
		if r.Get(ColumnResponseID) == "" {
			continue
		}
		if r.Get(ColumnStartDate) == headerSentinel {
			continue
		}
		if r.Get(ColumnFinished) != finishedTrue {
			continue
		}
		clean = append(clean, r)
	}
	return clean
}
