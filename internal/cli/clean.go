package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aferrand/safpack/internal/filename"
	"github.com/aferrand/safpack/internal/filesystem"
	"github.com/aferrand/safpack/pkg/safpack"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <bitstreams_dir>",
	Short: "Normalize bitstream filenames in place",
	Long: `Clean walks the bitstream directory and renames files into a portable
lowercase form: diacritics removed, spaces and parentheses replaced with
underscores, apostrophes with hyphens. Run it before convert so spreadsheet
filename cells and on-disk names agree.

Hidden files are skipped. When a cleaned name collides with an existing
file, a numeric suffix is appended before the extension.

Example:
  safpack clean ./bitstreams`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: not a directory: %s", safpack.ErrInputNotFound, dir)
	}

	log, closeLog, err := buildLogger(getVerboseFlag(cmd), "")
	if err != nil {
		return err
	}
	defer closeLog()

	renamer := filename.NewRenamer(filesystem.NewOSFileSystem(), log)
	renamed, err := renamer.CleanTree(dir)
	if err != nil {
		return err
	}

	log.Info("Cleanup done: %d file(s) renamed", renamed)
	return nil
}
