package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV_Ragged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	content := "free text instructions\ndc.title,dc.creator,Filename\nA Title,Someone,a.pdf\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"free text instructions"}, table.Rows[0])
	assert.Equal(t, []string{"dc.title", "dc.creator", "Filename"}, table.Rows[1])
	assert.Equal(t, "a.pdf", table.Rows[2][2])
}

func TestLoadCSV_BOMStripped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.csv")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbfdc.title\nX\n"), 0644))

	table, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "dc.title", table.Rows[0][0])
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.ods")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported spreadsheet format")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}

func TestTable_RowOutOfRange(t *testing.T) {
	table := Table{Rows: [][]string{{"a"}}}
	assert.Nil(t, table.Row(5))
	assert.Nil(t, table.Row(-1))
	assert.Equal(t, []string{"a"}, table.Row(0))
}
