package columns

import (
	"regexp"
	"strings"

	"github.com/aferrand/safpack/pkg/safpack"
)

var (
	// repeatSuffix matches the ".<n>" suffix spreadsheets append to
	// repeated column names (dc.subject.2).
	repeatSuffix = regexp.MustCompile(`\.\d+$`)

	// keySeparators is stripped when normalizing a header for fuzzy
	// matching ("File Name", "file_name", "dc.filename" all normalize to
	// contain "filename").
	keySeparators = regexp.MustCompile(`[\s_\-.]+`)
)

// NormalizeKey lowercases a header and strips whitespace, underscores,
// hyphens, and dots. Used for filename-column detection.
func NormalizeKey(h string) string {
	return keySeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(h)), "")
}

// Mapper canonicalizes spreadsheet column names and classifies them
// against a qualified metadata schema prefix (e.g. "dc").
type Mapper struct {
	prefix string // schema prefix including trailing dot, e.g. "dc."
}

// NewMapper creates a Mapper for the given schema identifier ("dc").
func NewMapper(schema string) *Mapper {
	return &Mapper{prefix: strings.ToLower(strings.TrimSpace(schema)) + "."}
}

// Prefix returns the schema prefix including the trailing separator.
func (m *Mapper) Prefix() string { return m.prefix }

// Canonical trims a raw header name. It returns ok=false for placeholder
// auto-generated names ("Unnamed: 3"), which carry no data after header
// detection misalignment and must be dropped.
func (m *Mapper) Canonical(name string) (string, bool) {
	c := strings.TrimSpace(name)
	if c == "" || strings.Contains(strings.ToLower(c), "unnamed") {
		return "", false
	}
	return c, true
}

// BaseForm strips a trailing ".<digits>" repeat suffix so dc.subject.2
// maps like dc.subject. The original name still keys the cell lookup.
func (m *Mapper) BaseForm(name string) string {
	return repeatSuffix.ReplaceAllString(name, "")
}

// IsMetadata reports whether the column's base form begins with the schema
// prefix, case-insensitively.
func (m *Mapper) IsMetadata(name string) bool {
	base := strings.ToLower(strings.TrimSpace(m.BaseForm(name)))
	return strings.HasPrefix(base, m.prefix)
}

// Decompose splits a metadata-bearing column into (element, qualifier).
// The qualifier is "" when absent. Three or more segments keep the
// remainder joined, so dc.description.abstract yields
// ("description", "abstract") and dc.relation.ispartof.series yields
// ("relation", "ispartof.series"). ok is false for non-metadata columns.
func (m *Mapper) Decompose(name string) (element, qualifier string, ok bool) {
	base := strings.ToLower(strings.TrimSpace(m.BaseForm(name)))
	if !strings.HasPrefix(base, m.prefix) {
		return "", "", false
	}
	parts := strings.Split(base, ".")
	if len(parts) < 2 || parts[1] == "" {
		return "", "", false
	}
	if len(parts) == 2 {
		return parts[1], "", true
	}
	return parts[1], strings.Join(parts[2:], "."), true
}

// IsFilenameColumn reports whether the column names bitstream files.
// Accepts Filename, file name, file_name, dc.filename, Bitstream, and
// similar variants.
func (m *Mapper) IsFilenameColumn(name string) bool {
	key := NormalizeKey(name)
	return strings.Contains(key, "filename") ||
		strings.Contains(key, "file") ||
		strings.Contains(key, "bitstream")
}

// MapHeader canonicalizes a header row, dropping placeholder columns, and
// returns the kept column names alongside their source cell indices.
func (m *Mapper) MapHeader(header []string) (cols []string, indices []int) {
	for i, raw := range header {
		c, ok := m.Canonical(raw)
		if !ok {
			continue
		}
		cols = append(cols, c)
		indices = append(indices, i)
	}
	return cols, indices
}

// BuildRecords converts the data rows following the header row into
// Records, in source order. Rows shorter than the header are padded with
// empty cells; rows that are entirely blank are kept, matching their
// package numbers to their spreadsheet position.
func (m *Mapper) BuildRecords(rows [][]string, headerIdx int) ([]safpack.Record, []string) {
	if headerIdx < 0 || headerIdx >= len(rows) {
		return nil, nil
	}
	header := rows[headerIdx]
	cols, indices := m.MapHeader(header)

	var records []safpack.Record
	for _, row := range rows[headerIdx+1:] {
		values := make([]string, len(cols))
		for j, idx := range indices {
			if idx < len(row) {
				values[j] = row[idx]
			}
		}
		records = append(records, safpack.Record{Columns: cols, Values: values})
	}
	return records, cols
}

// FilenameColumns returns the subset of cols that are filename-bearing.
func (m *Mapper) FilenameColumns(cols []string) []string {
	var out []string
	for _, c := range cols {
		if m.IsFilenameColumn(c) {
			out = append(out, c)
		}
	}
	return out
}
