package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aferrand/safpack/internal/bitstream"
	"github.com/aferrand/safpack/internal/columns"
	"github.com/aferrand/safpack/internal/dcxml"
	"github.com/aferrand/safpack/internal/filesystem"
	"github.com/aferrand/safpack/internal/header"
	"github.com/aferrand/safpack/internal/pipeline"
	"github.com/aferrand/safpack/internal/tabular"
	"github.com/aferrand/safpack/pkg/safpack"
)

var convertCmd = &cobra.Command{
	Use:   "convert <spreadsheet>",
	Short: "Convert a spreadsheet and bitstream directory into SAF packages",
	Long: `Convert reads the spreadsheet, auto-detects its header row, and writes one
package directory per data row: dublin_core.xml, a contents manifest, and
the bitstream files named in filename-like columns.

Missing required metadata and unresolvable filenames are logged as
warnings; they never block package creation. A record that fails outright
is logged and counted, and processing continues with the next record.

Examples:
  # Convert with defaults (bitstreams/ -> saf/)
  safpack convert inventory.xlsx

  # Explicit directories and a custom process log
  safpack convert inventory.xlsx --files-dir ./scans --output-dir ./out \
    --log-file run.log

  # Spreadsheet references camera raws that were converted to JPEG
  safpack convert inventory.xlsx --map-raw-extensions`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

type convertFlagValues struct {
	filesDir         string
	outputDir        string
	language         string
	schema           string
	logFile          string
	maxHeaderScan    int
	mapRawExtensions bool
}

var convertFlags convertFlagValues

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFlags.filesDir, "files-dir", "",
		"Directory holding the bitstream files (default: bitstreams)")
	convertCmd.Flags().StringVar(&convertFlags.outputDir, "output-dir", "",
		"Directory the packages are written to (default: saf)")
	convertCmd.Flags().StringVar(&convertFlags.language, "lang", "",
		"Language attribute stamped on every metadata field (default: en)")
	convertCmd.Flags().StringVar(&convertFlags.schema, "schema", "",
		"Metadata schema identifier; columns starting with <schema>. are metadata (default: dc)")
	convertCmd.Flags().StringVar(&convertFlags.logFile, "log-file", "",
		"Process log file; empty string disables file logging (default: safpack_process.log)")
	convertCmd.Flags().IntVar(&convertFlags.maxHeaderScan, "max-header-scan", 0,
		"How many leading rows to scan for the header (default: 25)")
	convertCmd.Flags().BoolVar(&convertFlags.mapRawExtensions, "map-raw-extensions", false,
		"Rewrite .cr2/.cr3 file tokens to .jpeg before matching")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("files-dir") {
		cfg.FilesDir = convertFlags.filesDir
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = convertFlags.outputDir
	}
	if cmd.Flags().Changed("lang") {
		cfg.Language = convertFlags.language
	}
	if cmd.Flags().Changed("schema") {
		cfg.Schema = convertFlags.schema
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = convertFlags.logFile
	}
	if cmd.Flags().Changed("max-header-scan") && convertFlags.maxHeaderScan > 0 {
		cfg.MaxHeaderScan = convertFlags.maxHeaderScan
	}

	log, closeLog, err := buildLogger(getVerboseFlag(cmd), cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	spreadsheet := args[0]
	if _, err := os.Stat(spreadsheet); err != nil {
		return fmt.Errorf("%w: spreadsheet %s", safpack.ErrInputNotFound, spreadsheet)
	}
	if _, err := os.Stat(cfg.FilesDir); err != nil {
		log.Warn("Files directory not found: %s (packages will still be created)", cfg.FilesDir)
	}

	log.Info("Starting processing of %s", spreadsheet)
	table, err := tabular.Load(spreadsheet)
	if err != nil {
		return fmt.Errorf("%w: %v", safpack.ErrInputNotFound, err)
	}

	detector := header.NewDetector(cfg.Schema, cfg.MaxHeaderScan, log)
	headerIdx := detector.Detect(table.Rows)
	log.Info("Using header row index: %d", headerIdx)

	mapper := columns.NewMapper(cfg.Schema)
	records, cols := mapper.BuildRecords(table.Rows, headerIdx)
	log.Info("Mapped %d column(s), %d data row(s)", len(cols), len(records))

	filenameCols := mapper.FilenameColumns(cols)
	if len(filenameCols) > 0 {
		log.Info("Filename column(s) detected: %s", strings.Join(filenameCols, ", "))
	} else {
		log.Info("No filename column detected; packages will have empty manifests")
	}

	fs := filesystem.NewOSFileSystem()
	p := pipeline.New(pipeline.Params{
		FS:               fs,
		Checker:          columns.NewRequiredChecker(mapper, cfg.RequiredFields),
		Writer:           dcxml.NewWriter(mapper, cfg.Schema, cfg.Language),
		Associator:       bitstream.NewAssociator(fs, cfg.FilesDir, cfg.AllowedExtensions),
		Logger:           log,
		FilesDir:         cfg.FilesDir,
		OutputDir:        cfg.OutputDir,
		MapRawExtensions: convertFlags.mapRawExtensions,
	})

	summary, _ := p.Run(records, filenameCols)
	log.Info("Processing complete: %d record(s), %d file(s) copied, %d missing",
		summary.Records, summary.FilesCopied, summary.FilesMissing)
	return nil
}
