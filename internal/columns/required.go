package columns

import (
	"strings"

	"github.com/aferrand/safpack/pkg/safpack"
)

// RequiredChecker reports which mandatory metadata specifiers a record
// lacks. A specifier is a bare element ("title") or element.qualifier
// ("date.issued"). The check is advisory: absence is logged by the
// pipeline, never fatal.
type RequiredChecker struct {
	mapper   *Mapper
	required []string
}

// NewRequiredChecker creates a checker for the given specifiers.
func NewRequiredChecker(mapper *Mapper, required []string) *RequiredChecker {
	return &RequiredChecker{mapper: mapper, required: required}
}

// Missing returns the specifiers not satisfied by the record, in the
// order they were configured. A specifier is satisfied when some
// metadata-bearing column decomposes to the matching element (and
// qualifier, when the specifier carries one) with a non-blank cell. A bare
// element specifier is satisfied by any qualifier of that element.
func (c *RequiredChecker) Missing(rec safpack.Record) []string {
	var missing []string
	for _, spec := range c.required {
		if !c.satisfied(rec, spec) {
			missing = append(missing, spec)
		}
	}
	return missing
}

func (c *RequiredChecker) satisfied(rec safpack.Record, spec string) bool {
	wantElement, wantQualifier, _ := strings.Cut(spec, ".")
	for i, col := range rec.Columns {
		if safpack.IsBlank(rec.Values[i]) {
			continue
		}
		element, qualifier, ok := c.mapper.Decompose(col)
		if !ok || element != wantElement {
			continue
		}
		if wantQualifier == "" || qualifier == wantQualifier {
			return true
		}
	}
	return false
}
