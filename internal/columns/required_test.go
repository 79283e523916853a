package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aferrand/safpack/pkg/safpack"
)

func newChecker() *RequiredChecker {
	m := NewMapper("dc")
	return NewRequiredChecker(m, []string{"title", "creator", "date.issued"})
}

func TestMissing_AllPresent(t *testing.T) {
	rec := safpack.Record{
		Columns: []string{"dc.title", "dc.creator", "dc.date.issued"},
		Values:  []string{"A Title", "Someone", "1999"},
	}
	assert.Empty(t, newChecker().Missing(rec))
}

func TestMissing_DateIssuedAbsent(t *testing.T) {
	rec := safpack.Record{
		Columns: []string{"dc.title", "dc.creator", "Filename"},
		Values:  []string{"A Title", "Someone", "a.pdf"},
	}
	assert.Equal(t, []string{"date.issued"}, newChecker().Missing(rec))
}

func TestMissing_BlankCellDoesNotSatisfy(t *testing.T) {
	rec := safpack.Record{
		Columns: []string{"dc.title", "dc.creator", "dc.date.issued"},
		Values:  []string{"A Title", "nan", "   "},
	}
	assert.Equal(t, []string{"creator", "date.issued"}, newChecker().Missing(rec))
}

func TestMissing_QualifierMustMatch(t *testing.T) {
	rec := safpack.Record{
		Columns: []string{"dc.title", "dc.creator", "dc.date.accessioned"},
		Values:  []string{"A Title", "Someone", "2001"},
	}
	// date.accessioned is not date.issued.
	assert.Equal(t, []string{"date.issued"}, newChecker().Missing(rec))
}

func TestMissing_BareElementAcceptsAnyQualifier(t *testing.T) {
	rec := safpack.Record{
		Columns: []string{"dc.title.alternative", "dc.creator", "dc.date.issued"},
		Values:  []string{"Alt Title", "Someone", "1999"},
	}
	assert.Empty(t, newChecker().Missing(rec))
}

func TestMissing_RepeatSuffixColumnSatisfies(t *testing.T) {
	rec := safpack.Record{
		Columns: []string{"dc.title.2", "dc.creator", "dc.date.issued"},
		Values:  []string{"A Title", "Someone", "1999"},
	}
	assert.Empty(t, newChecker().Missing(rec))
}
