package pipeline

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aferrand/safpack/internal/bitstream"
	"github.com/aferrand/safpack/internal/columns"
	"github.com/aferrand/safpack/internal/dcxml"
	"github.com/aferrand/safpack/internal/filename"
	"github.com/aferrand/safpack/internal/filesystem"
	"github.com/aferrand/safpack/pkg/safpack"
)

// Pipeline converts records into per-record archival packages: a metadata
// document, a manifest, and copied bitstreams under <output>/<n>/.
type Pipeline struct {
	fs      filesystem.Provider
	checker *columns.RequiredChecker
	writer  *dcxml.Writer
	assoc   *bitstream.Associator
	log     safpack.Logger

	filesDir  string
	outputDir string

	// mapRawExtensions rewrites .cr2/.cr3 tokens to .jpeg before
	// association, for trees where camera raws were batch-converted.
	mapRawExtensions bool
}

// Params carries the collaborators and settings for a Pipeline.
type Params struct {
	FS               filesystem.Provider
	Checker          *columns.RequiredChecker
	Writer           *dcxml.Writer
	Associator       *bitstream.Associator
	Logger           safpack.Logger
	FilesDir         string
	OutputDir        string
	MapRawExtensions bool
}

// New creates a Pipeline. All collaborators are required.
func New(p Params) *Pipeline {
	return &Pipeline{
		fs:               p.FS,
		checker:          p.Checker,
		writer:           p.Writer,
		assoc:            p.Associator,
		log:              p.Logger,
		filesDir:         p.FilesDir,
		outputDir:        p.OutputDir,
		mapRawExtensions: p.MapRawExtensions,
	}
}

// Run processes every record in order, assigning 1-based package numbers,
// and returns the run summary plus per-record outcomes. A failure inside
// one record is captured in its RecordResult; processing always continues
// with the next record, and partially built package directories are left
// in place.
func (p *Pipeline) Run(records []safpack.Record, filenameCols []string) (safpack.RunSummary, []safpack.RecordResult) {
	summary := safpack.RunSummary{RunID: uuid.New().String()}
	p.log.Info("Run %s: %d record(s), output %s", summary.RunID, len(records), p.outputDir)

	if err := p.fs.MkdirAll(p.outputDir, 0755); err != nil {
		p.log.Error("Cannot create output directory %s: %v", p.outputDir, err)
	}

	results := make([]safpack.RecordResult, 0, len(records))
	for i, rec := range records {
		seq := i + 1
		p.log.Info("Processing record %d...", seq)

		res := p.processRecord(seq, rec, filenameCols)
		results = append(results, res)

		summary.Records++
		summary.FilesCopied += len(res.Copied)
		summary.FilesMissing += len(res.MissingFiles)
		if res.Err != nil {
			summary.Errored++
			p.log.Error("Failed to process record %d: %v", seq, res.Err)
		} else {
			summary.Succeeded++
			p.log.Info("Completed record %d: %d file(s) copied", seq, len(res.Copied))
		}
	}

	p.logSummary(summary)
	return summary, results
}

func (p *Pipeline) processRecord(seq int, rec safpack.Record, filenameCols []string) safpack.RecordResult {
	res := safpack.RecordResult{Seq: seq}

	res.MissingFields = p.checker.Missing(rec)
	if len(res.MissingFields) > 0 {
		p.log.Warn("Record %d missing required fields: %s", seq, strings.Join(res.MissingFields, ", "))
	}

	pkgDir := filepath.Join(p.outputDir, strconv.Itoa(seq))
	if err := p.fs.MkdirAll(pkgDir, 0755); err != nil {
		res.Err = fmt.Errorf("create package directory: %w", err)
		return res
	}
	p.log.Verbose("Created folder %s", pkgDir)

	data, err := p.writer.WriteRecord(rec)
	if err != nil {
		res.Err = fmt.Errorf("build metadata document: %w", err)
		return res
	}
	if err := p.fs.WriteFile(filepath.Join(pkgDir, safpack.MetadataFileName), data, 0644); err != nil {
		res.Err = fmt.Errorf("write metadata document: %w", err)
		return res
	}

	tokens := bitstream.ExtractTokens(rec, filenameCols)
	if p.mapRawExtensions {
		tokens = mapRawTokens(tokens)
	}
	if len(tokens) > 0 {
		p.log.Verbose("Record %d requests files: %s", seq, strings.Join(tokens, ", "))
	}

	assoc := p.assoc.Resolve(tokens)
	res.MissingFiles = assoc.Missing
	for _, name := range assoc.Missing {
		p.log.Warn("Record %d: missing file %s", seq, name)
	}

	for _, name := range assoc.Found {
		if err := p.copyBitstream(name, pkgDir); err != nil {
			res.CopyErrors++
			p.log.Error("Record %d: copy error %s: %v", seq, name, err)
			continue
		}
		res.Copied = append(res.Copied, name)
		p.log.Verbose("Copied file: %s", name)
	}
	sort.Strings(res.Copied)

	if err := p.writeManifest(pkgDir, res.Copied); err != nil {
		res.Err = fmt.Errorf("write manifest: %w", err)
		return res
	}

	return res
}

func (p *Pipeline) copyBitstream(name, pkgDir string) error {
	data, err := p.fs.ReadFile(filepath.Join(p.filesDir, name))
	if err != nil {
		return err
	}
	return p.fs.WriteFile(filepath.Join(pkgDir, name), data, 0644)
}

// writeManifest lists the copied filenames sorted ascending, one per line.
// Records with nothing copied still get an (empty) manifest.
func (p *Pipeline) writeManifest(pkgDir string, copied []string) error {
	var sb strings.Builder
	for _, name := range copied {
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	return p.fs.WriteFile(filepath.Join(pkgDir, safpack.ManifestFileName), []byte(sb.String()), 0644)
}

func mapRawTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		mapped := filename.MapRawExtension(t)
		if _, dup := seen[mapped]; dup {
			continue
		}
		seen[mapped] = struct{}{}
		out = append(out, mapped)
	}
	sort.Strings(out)
	return out
}

func (p *Pipeline) logSummary(s safpack.RunSummary) {
	p.log.Info("==================================================")
	p.log.Info("PROCESSING SUMMARY (run %s)", s.RunID)
	p.log.Info("Records processed:  %d", s.Records)
	p.log.Info("Records succeeded:  %d", s.Succeeded)
	p.log.Info("Records with errors: %d", s.Errored)
	p.log.Info("Files copied:       %d", s.FilesCopied)
	p.log.Info("Files missing:      %d", s.FilesMissing)
	p.log.Info("==================================================")
}
