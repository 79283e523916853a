package safpack

import "strings"

// Record is one spreadsheet data row after column mapping: canonical column
// names paired with their cell values, in source order. Records are
// immutable once built; package numbering follows their order.
type Record struct {
	Columns []string
	Values  []string
}

// Get returns the cell value for the given canonical column name, or ""
// when the record has no such column. Lookup uses the original column name
// (repeat suffix included) so repeated qualifiers resolve per instance.
func (r Record) Get(column string) string {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i]
		}
	}
	return ""
}

// Len returns the number of mapped columns.
func (r Record) Len() int { return len(r.Columns) }

// RecordResult is the explicit per-record outcome of the pipeline. The
// orchestrator aggregates these instead of relying on catch-and-continue.
type RecordResult struct {
	// Seq is the 1-based package number assigned in record order.
	Seq int

	// MissingFields lists required specifiers absent or blank in the
	// record. Warning-only.
	MissingFields []string

	// Copied lists bitstream filenames copied into the package, as
	// written to the manifest.
	Copied []string

	// MissingFiles lists requested tokens that resolved to nothing.
	MissingFiles []string

	// CopyErrors counts files that resolved but failed to copy.
	CopyErrors int

	// Err is set when package construction itself failed (directory,
	// metadata document, or manifest could not be written). A partial
	// package directory may remain; no rollback is performed.
	Err error
}

// RunSummary accumulates run-level counters across all records.
type RunSummary struct {
	RunID        string
	Records      int
	Succeeded    int
	Errored      int
	FilesCopied  int
	FilesMissing int
}

// IsBlank reports whether a cell value carries no data: empty after
// trimming, or a "nan"/"none" placeholder left behind by tabular tooling.
func IsBlank(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "nan", "none":
		return true
	}
	return false
}
