// Package cli wires the safpack commands: convert, validate, clean, and
// version.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aferrand/safpack/internal/config"
	"github.com/aferrand/safpack/internal/logging"
	"github.com/aferrand/safpack/pkg/safpack"
)

var rootCmd = &cobra.Command{
	Use:   "safpack",
	Short: "Spreadsheet to DSpace Simple Archive Format packager",
	Long: `safpack converts a loosely structured spreadsheet of Dublin Core metadata
plus a directory of bitstream files into per-record Simple Archive Format
packages, and validates the resulting package tree.

The header row is auto-detected, so spreadsheets may begin with free-text
instructions. Columns named dc.<element>[.<qualifier>] become metadata
fields; filename-like columns name the bitstreams to copy.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Input spreadsheet or directory not found
  12 - Package tree failed validation`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// loadConfig layers defaults, safpack.yaml from the working directory,
// a .env file, and SAFPACK_* environment variables.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return cfg, fmt.Errorf("%w: %v", safpack.ErrInvalidConfig, err)
	}
	if err := config.LoadEnvFile(".env"); err != nil {
		return cfg, fmt.Errorf("%w: %v", safpack.ErrInvalidConfig, err)
	}
	config.ApplyEnv(&cfg)
	return cfg, nil
}

// buildLogger creates the console logger, mirrored into the process log
// file when logFile is non-empty. The returned closer flushes the file.
func buildLogger(verbose bool, logFile string) (safpack.Logger, func(), error) {
	console := logging.NewConsoleLogger(verbose)
	if logFile == "" {
		return console, func() {}, nil
	}

	file, err := logging.NewFileLogger(logFile, true)
	if err != nil {
		return nil, nil, err
	}
	return logging.NewMultiLogger(console, file), func() { _ = file.Close() }, nil
}
