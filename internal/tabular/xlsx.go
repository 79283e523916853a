package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads all rows of the first sheet of an Excel workbook.
// Cell values come back as display strings, matching how the header
// detector and column mapper expect to see them.
func LoadXLSX(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("workbook has no sheets: %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return Table{Rows: rows}, nil
}
