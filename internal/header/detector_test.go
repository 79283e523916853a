package header

import (
	"testing"

	"github.com/aferrand/safpack/internal/logging"
)

func detect(rows [][]string) int {
	d := NewDetector("dc", 25, logging.NewNullLogger())
	return d.Detect(rows)
}

func TestDetect_FilenameAndPrefixWinsImmediately(t *testing.T) {
	rows := [][]string{
		{"Template: fill in the columns below", ""},
		{"dc.title", "dc.creator", "Filename"},
		{"dc.title", "dc.creator", "dc.date.issued", "dc.subject", "Filename"},
	}
	// Row 1 already satisfies the rule; the richer row 2 never gets a say.
	if got := detect(rows); got != 1 {
		t.Errorf("Detect() = %d, want 1", got)
	}
}

func TestDetect_MaxPrefixCountFallback(t *testing.T) {
	rows := [][]string{
		{"some", "free", "text"},
		{"dc.title", "notes"},
		{"dc.title", "dc.creator", "dc.subject"},
		{"dc.title", "dc.creator"},
	}
	// Prefix counts are [0,1,3,2]; no row has a filename cell, so the
	// first index achieving the maximum wins.
	if got := detect(rows); got != 2 {
		t.Errorf("Detect() = %d, want 2", got)
	}
}

func TestDetect_TieKeepsFirstRow(t *testing.T) {
	rows := [][]string{
		{"dc.title", "dc.creator"},
		{"dc.title", "dc.creator"},
	}
	if got := detect(rows); got != 0 {
		t.Errorf("Detect() = %d, want 0", got)
	}
}

func TestDetect_NoStructuredRowsFallsBackToZero(t *testing.T) {
	rows := [][]string{
		{"instructions for cataloguers"},
		{"more text", "here"},
	}
	if got := detect(rows); got != 0 {
		t.Errorf("Detect() = %d, want 0", got)
	}
}

func TestDetect_FilenameAloneIsNotEnough(t *testing.T) {
	rows := [][]string{
		{"Filename", "dc.title"},
		{"dc.title", "dc.creator", "dc.subject"},
	}
	// Row 0 has a filename cell but only one dc.* cell; row 1 carries
	// the higher prefix count.
	if got := detect(rows); got != 1 {
		t.Errorf("Detect() = %d, want 1", got)
	}
}

func TestDetect_FilenameVariantsNormalize(t *testing.T) {
	rows := [][]string{
		{"File_Name", "dc.title", "dc.creator"},
	}
	if got := detect(rows); got != 0 {
		t.Errorf("Detect() = %d, want 0", got)
	}
}

func TestDetect_ScanLimitRespected(t *testing.T) {
	var rows [][]string
	for i := 0; i < 30; i++ {
		rows = append(rows, []string{"filler text"})
	}
	rows = append(rows, []string{"dc.title", "dc.creator", "Filename"})

	d := NewDetector("dc", 25, logging.NewNullLogger())
	// The header row sits past the scan limit, so detection falls back.
	if got := d.Detect(rows); got != 0 {
		t.Errorf("Detect() = %d, want 0", got)
	}
}

func TestDetect_BlankCellsIgnored(t *testing.T) {
	rows := [][]string{
		{"", "nan", "none"},
		{"dc.title", "", "dc.creator", "Filename"},
	}
	if got := detect(rows); got != 1 {
		t.Errorf("Detect() = %d, want 1", got)
	}
}
