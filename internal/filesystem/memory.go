package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	modTime time.Time
	isDir   bool
}

// MemoryFileSystem implements Provider for in-memory testing.
// Paths are normalized to forward slashes (virtual filesystem convention).
type MemoryFileSystem struct {
	entries map[string]*memoryEntry // absolute path -> entry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = &memoryEntry{isDir: true, modTime: time.Now()}
	return mfs
}

// AddFile adds a file to the in-memory filesystem. Relative paths are
// resolved against the filesystem root. Parent directories are created
// implicitly.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	abs := mfs.abs(filePath)
	mfs.entries[abs] = &memoryEntry{
		content: []byte(content),
		modTime: time.Now(),
	}
	mfs.ensureParents(abs)
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if !strings.HasPrefix(p, "/") {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) ensureParents(filePath string) {
	dir := path.Dir(filePath)
	for dir != "/" && dir != "." {
		if e, ok := mfs.entries[dir]; ok && e.isDir {
			break
		}
		mfs.entries[dir] = &memoryEntry{isDir: true, modTime: time.Now()}
		dir = path.Dir(dir)
	}
}

func (mfs *MemoryFileSystem) info(absPath string, e *memoryEntry) FileInfo {
	mode := fs.FileMode(0644)
	if e.isDir {
		mode = 0755 | fs.ModeDir
	}
	return &memoryFileInfo{
		name:    path.Base(absPath),
		size:    int64(len(e.content)),
		mode:    mode,
		modTime: e.modTime,
		isDir:   e.isDir,
	}
}

func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	abs := mfs.abs(dirPath)
	e, ok := mfs.entries[abs]
	if !ok || !e.isDir {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}

	var result []FileInfo
	for p, entry := range mfs.entries {
		if p != abs && path.Dir(p) == abs {
			result = append(result, mfs.info(p, entry))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	abs := mfs.abs(filePath)
	e, ok := mfs.entries[abs]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if e.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return e.content, nil
}

func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	abs := mfs.abs(filePath)
	if e, ok := mfs.entries[abs]; ok && e.isDir {
		return fmt.Errorf("path is a directory: %s", filePath)
	}
	mfs.entries[abs] = &memoryEntry{content: append([]byte(nil), data...), modTime: time.Now()}
	mfs.ensureParents(abs)
	return nil
}

func (mfs *MemoryFileSystem) MkdirAll(dirPath string, perm fs.FileMode) error {
	abs := mfs.abs(dirPath)
	if e, ok := mfs.entries[abs]; ok && !e.isDir {
		return fmt.Errorf("path exists and is not a directory: %s", dirPath)
	}
	mfs.entries[abs] = &memoryEntry{isDir: true, modTime: time.Now()}
	mfs.ensureParents(abs)
	return nil
}

func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	abs := mfs.abs(statPath)
	e, ok := mfs.entries[abs]
	if !ok {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}
	return mfs.info(abs, e), nil
}

func (mfs *MemoryFileSystem) Rename(oldPath, newPath string) error {
	oldAbs := mfs.abs(oldPath)
	e, ok := mfs.entries[oldAbs]
	if !ok {
		return fmt.Errorf("path not found: %s", oldPath)
	}
	newAbs := mfs.abs(newPath)
	delete(mfs.entries, oldAbs)
	mfs.entries[newAbs] = e
	mfs.ensureParents(newAbs)
	return nil
}

// Verify MemoryFileSystem implements the interface at compile time
var _ Provider = (*MemoryFileSystem)(nil)
