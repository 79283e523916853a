package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferrand/safpack/internal/bitstream"
	"github.com/aferrand/safpack/internal/columns"
	"github.com/aferrand/safpack/internal/dcxml"
	"github.com/aferrand/safpack/internal/filesystem"
	"github.com/aferrand/safpack/internal/header"
	"github.com/aferrand/safpack/internal/logging"
	"github.com/aferrand/safpack/pkg/safpack"
)

func newTestPipeline(mfs *filesystem.MemoryFileSystem, mapRaw bool) *Pipeline {
	mapper := columns.NewMapper("dc")
	return New(Params{
		FS:               mfs,
		Checker:          columns.NewRequiredChecker(mapper, safpack.DefaultRequiredFields()),
		Writer:           dcxml.NewWriter(mapper, "dc", "en"),
		Associator:       bitstream.NewAssociator(mfs, "/data/bitstreams", safpack.DefaultAllowedExtensions()),
		Logger:           logging.NewNullLogger(),
		FilesDir:         "/data/bitstreams",
		OutputDir:        "/data/saf",
		MapRawExtensions: mapRaw,
	})
}

func record(cols []string, values []string) safpack.Record {
	return safpack.Record{Columns: cols, Values: values}
}

func TestRun_PackagesNumberedInRecordOrder(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("bitstreams/a.pdf", "A")
	mfs.AddFile("bitstreams/b.pdf", "B")

	cols := []string{"dc.title", "dc.creator", "dc.date.issued", "Filename"}
	records := []safpack.Record{
		record(cols, []string{"First", "Author A", "1999", "a.pdf"}),
		record(cols, []string{"Second", "Author B", "2001", "b.pdf"}),
	}

	p := newTestPipeline(mfs, false)
	summary, results := p.Run(records, []string{"Filename"})

	assert.Equal(t, 2, summary.Records)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Errored)
	assert.Equal(t, 2, summary.FilesCopied)
	assert.Equal(t, 0, summary.FilesMissing)
	assert.NotEmpty(t, summary.RunID)

	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Seq)
	assert.Equal(t, 2, results[1].Seq)

	for _, pkg := range []string{"1", "2"} {
		_, err := mfs.Stat("/data/saf/" + pkg + "/" + safpack.MetadataFileName)
		assert.NoError(t, err, "package %s metadata document", pkg)
		_, err = mfs.Stat("/data/saf/" + pkg + "/" + safpack.ManifestFileName)
		assert.NoError(t, err, "package %s manifest", pkg)
	}

	content, err := mfs.ReadFile("/data/saf/1/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "A", string(content))
}

func TestRun_ManifestSortedAndComplete(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("bitstreams/zebra.jpg", "z")
	mfs.AddFile("bitstreams/alpha.pdf", "a")

	cols := []string{"dc.title", "Filename"}
	records := []safpack.Record{
		record(cols, []string{"Item", "zebra.jpg; alpha.pdf; ghost.png"}),
	}

	p := newTestPipeline(mfs, false)
	summary, results := p.Run(records, []string{"Filename"})

	manifest, err := mfs.ReadFile("/data/saf/1/" + safpack.ManifestFileName)
	require.NoError(t, err)
	assert.Equal(t, "alpha.pdf\nzebra.jpg\n", string(manifest))

	assert.Equal(t, []string{"ghost.png"}, results[0].MissingFiles)
	assert.Equal(t, 1, summary.FilesMissing)
	assert.Equal(t, 2, summary.FilesCopied)
}

func TestRun_AllFilesMissingYieldsEmptyManifest(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("bitstreams/present.pdf", "x")

	cols := []string{"dc.title", "Filename"}
	records := []safpack.Record{
		record(cols, []string{"Item", "ghost.png"}),
	}

	p := newTestPipeline(mfs, false)
	summary, results := p.Run(records, []string{"Filename"})

	manifest, err := mfs.ReadFile("/data/saf/1/" + safpack.ManifestFileName)
	require.NoError(t, err)
	assert.Equal(t, "", string(manifest))

	// Missing files never fail the record.
	assert.Nil(t, results[0].Err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.FilesMissing)
}

func TestRun_MissingRequiredFieldsAreWarningsOnly(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")

	cols := []string{"dc.title", "dc.creator"}
	records := []safpack.Record{
		record(cols, []string{"Only Title And Creator", "Author"}),
	}

	p := newTestPipeline(mfs, false)
	summary, results := p.Run(records, nil)

	assert.Equal(t, []string{"date.issued"}, results[0].MissingFields)
	assert.Nil(t, results[0].Err)
	assert.Equal(t, 1, summary.Succeeded)

	// The package was still created.
	_, err := mfs.Stat("/data/saf/1/" + safpack.MetadataFileName)
	assert.NoError(t, err)
}

func TestRun_RawExtensionMapping(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("bitstreams/img_0042.jpeg", "jpeg")

	cols := []string{"dc.title", "Filename"}
	records := []safpack.Record{
		record(cols, []string{"Item", "IMG_0042.CR2"}),
	}

	p := newTestPipeline(mfs, true)
	_, results := p.Run(records, []string{"Filename"})

	require.Len(t, results[0].Copied, 1)
	assert.Equal(t, "img_0042.jpeg", results[0].Copied[0])
}

func TestRun_EndToEndFromRawRows(t *testing.T) {
	// Two-row source behind a free-text row: row 1 references an existing
	// file, row 2 a nonexistent one.
	rows := [][]string{
		{"Fill in one item per row. Columns may be reordered."},
		{"dc.title", "dc.creator", "dc.date.issued", "Filename"},
		{"First Item", "Author A", "1999", "photo.jpg"},
		{"Second Item", "Author B", "2001", "ghost.tiff"},
	}

	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("bitstreams/photo.jpg", "jpeg bytes")

	detector := header.NewDetector("dc", 25, logging.NewNullLogger())
	headerIdx := detector.Detect(rows)
	require.Equal(t, 1, headerIdx)

	mapper := columns.NewMapper("dc")
	records, cols := mapper.BuildRecords(rows, headerIdx)
	require.Len(t, records, 2)

	p := newTestPipeline(mfs, false)
	summary, results := p.Run(records, mapper.FilenameColumns(cols))

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.FilesCopied)
	assert.Equal(t, 1, summary.FilesMissing)

	// Package 1: file copied and listed.
	manifest1, err := mfs.ReadFile("/data/saf/1/" + safpack.ManifestFileName)
	require.NoError(t, err)
	assert.Equal(t, "photo.jpg\n", string(manifest1))

	// Package 2: empty manifest, missing file reported.
	manifest2, err := mfs.ReadFile("/data/saf/2/" + safpack.ManifestFileName)
	require.NoError(t, err)
	assert.Equal(t, "", string(manifest2))
	assert.Equal(t, []string{"ghost.tiff"}, results[1].MissingFiles)

	// Both metadata documents parse as well-formed.
	for _, pkg := range []string{"1", "2"} {
		data, err := mfs.ReadFile("/data/saf/" + pkg + "/" + safpack.MetadataFileName)
		require.NoError(t, err)
		doc, err := dcxml.Parse(data)
		require.NoError(t, err)
		assert.Equal(t, "dc", doc.Schema)
		assert.Len(t, doc.Values, 3)
	}
}
