package tabular

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Table holds raw spreadsheet rows before any header detection or column
// mapping. Rows may be ragged: trailing empty cells are frequently absent.
type Table struct {
	Rows [][]string
}

// Row returns row i, or nil when out of range.
func (t Table) Row(i int) []string {
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i]
}

// Load reads the spreadsheet at path, dispatching on the file extension.
// Supported: .xlsx/.xlsm (first sheet) and .csv.
func Load(path string) (Table, error) {
	if _, err := os.Stat(path); err != nil {
		return Table{}, fmt.Errorf("cannot access spreadsheet %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return Table{}, fmt.Errorf("unsupported spreadsheet format: %s", filepath.Ext(path))
	}
}
