package loader

import (
	"fmt"

	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first sheet of a workbook export into rows, using
// the same header and padding semantics as ReadCSV.
func ReadXLSX(path string) ([]models.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return tableRows(records[0], records[1:]), nil
}
