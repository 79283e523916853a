// Package header locates the column-name row inside raw spreadsheet data.
//
// Archival spreadsheets often open with free-text template or instruction
// rows before the actual header. The detector scans a bounded number of
// leading rows and picks the one that looks most like a header.
package header

import (
	"strings"

	"github.com/aferrand/safpack/internal/columns"
	"github.com/aferrand/safpack/pkg/safpack"
)

// Detector finds the header row offset in raw tabular data.
type Detector struct {
	prefix  string // schema prefix including trailing dot, e.g. "dc."
	maxScan int
	log     safpack.Logger
}

// NewDetector creates a Detector for the given schema identifier. maxScan
// bounds how many leading rows are inspected.
func NewDetector(schema string, maxScan int, log safpack.Logger) *Detector {
	return &Detector{
		prefix:  strings.ToLower(strings.TrimSpace(schema)) + ".",
		maxScan: maxScan,
		log:     log,
	}
}

// Detect returns the index of the header row.
//
// The first row containing both a filename-like cell and at least two
// schema-prefixed cells wins immediately. Failing that, the first row
// achieving the strictly greatest schema-prefix count (> 0) wins. Failing
// that, row 0.
func (d *Detector) Detect(rows [][]string) int {
	limit := len(rows)
	if limit > d.maxScan {
		limit = d.maxScan
	}

	bestIdx := 0
	bestCount := -1

	for i := 0; i < limit; i++ {
		hasFilename, prefixCount := d.scanRow(rows[i])
		d.log.Verbose("Row %d: has_filename=%t, prefix_count=%d", i, hasFilename, prefixCount)

		if hasFilename && prefixCount >= 2 {
			d.log.Info("Header row detected at index %d (filename column + %d %s* cells)", i, prefixCount, d.prefix)
			return i
		}
		if prefixCount > bestCount {
			bestCount = prefixCount
			bestIdx = i
		}
	}

	if bestCount > 0 {
		d.log.Info("Header row guessed at index %d (max %s* cells = %d)", bestIdx, d.prefix, bestCount)
		return bestIdx
	}

	d.log.Info("Header row fallback to index 0")
	return 0
}

func (d *Detector) scanRow(row []string) (hasFilename bool, prefixCount int) {
	for _, cell := range row {
		if safpack.IsBlank(cell) {
			continue
		}
		if strings.Contains(columns.NormalizeKey(cell), "filename") {
			hasFilename = true
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(cell)), d.prefix) {
			prefixCount++
		}
	}
	return hasFilename, prefixCount
}
