package bitstream

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/aferrand/safpack/pkg/safpack"
)

// tokenSeparators splits a filename cell holding several names:
// semicolons, commas, pipes, and newlines all occur in the wild.
var tokenSeparators = regexp.MustCompile(`[;\n|,]+`)

// ExtractTokens collects the union of file tokens from all
// filename-bearing columns of a record. Tokens are reduced to their
// basename, blank and placeholder entries are dropped, and the result is
// deduplicated and sorted.
func ExtractTokens(rec safpack.Record, filenameCols []string) []string {
	seen := make(map[string]struct{})
	for _, col := range filenameCols {
		raw := rec.Get(col)
		if safpack.IsBlank(raw) {
			continue
		}
		for _, part := range tokenSeparators.Split(raw, -1) {
			name := filepath.Base(strings.TrimSpace(part))
			if safpack.IsBlank(name) || name == "." || name == string(filepath.Separator) {
				continue
			}
			seen[name] = struct{}{}
		}
	}

	tokens := make([]string, 0, len(seen))
	for t := range seen {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}
