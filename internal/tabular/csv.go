package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// LoadCSV reads all rows of a CSV file. A UTF-8 BOM is stripped if present.
// Rows are allowed to have varying field counts, matching the raggedness of
// exported spreadsheets.
func LoadCSV(path string) (Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read csv: %w", err)
	}
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("failed to parse csv: %w", err)
		}
		rows = append(rows, record)
	}

	return Table{Rows: rows}, nil
}
