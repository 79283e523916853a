package filename

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aferrand/safpack/internal/filesystem"
	"github.com/aferrand/safpack/pkg/safpack"
)

// Renamer applies Clean to every file in a bitstream directory tree,
// renaming on disk. Hidden files are skipped; name collisions get a
// numeric suffix before the extension.
type Renamer struct {
	fs  filesystem.Provider
	log safpack.Logger
}

// NewRenamer creates a Renamer.
func NewRenamer(fs filesystem.Provider, log safpack.Logger) *Renamer {
	return &Renamer{fs: fs, log: log}
}

// CleanTree walks root recursively and renames files whose cleaned name
// differs from the original. It returns the number of files renamed.
func (r *Renamer) CleanTree(root string) (int, error) {
	entries, err := r.fs.ReadDir(root)
	if err != nil {
		return 0, fmt.Errorf("cannot read directory %s: %w", root, err)
	}

	renamed := 0
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsDir() {
			n, err := r.CleanTree(filepath.Join(root, name))
			if err != nil {
				return renamed, err
			}
			renamed += n
			continue
		}

		cleaned := Clean(name)
		if cleaned == name {
			continue
		}

		target := r.collisionFree(root, cleaned)
		oldPath := filepath.Join(root, name)
		newPath := filepath.Join(root, target)
		if err := r.fs.Rename(oldPath, newPath); err != nil {
			r.log.Error("Failed to rename %s: %v", oldPath, err)
			continue
		}
		r.log.Info("Renamed %s -> %s", oldPath, newPath)
		renamed++
	}
	return renamed, nil
}

// collisionFree appends _1, _2, ... before the extension until the name is
// unused in dir.
func (r *Renamer) collisionFree(dir, name string) string {
	if _, err := r.fs.Stat(filepath.Join(dir, name)); err != nil {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := r.fs.Stat(filepath.Join(dir, candidate)); err != nil {
			return candidate
		}
	}
}
