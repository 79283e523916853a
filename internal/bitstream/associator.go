package bitstream

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/aferrand/safpack/internal/filesystem"
)

// Associator resolves requested file tokens against the bitstream source
// directory using a layered strategy: exact match, case-insensitive match,
// then extension probing for tokens without an extension.
type Associator struct {
	fs         filesystem.Provider
	dir        string
	extensions []string
}

// NewAssociator creates an Associator over the given bitstream directory.
// extensions is the ordered probe list for extensionless tokens.
func NewAssociator(fs filesystem.Provider, dir string, extensions []string) *Associator {
	return &Associator{fs: fs, dir: dir, extensions: extensions}
}

// Association is the outcome of resolving one set of tokens.
type Association struct {
	// Found holds resolved on-disk filenames, deduplicated and sorted.
	// A token may resolve to a name different from itself (case, or a
	// completed extension).
	Found []string

	// Missing holds the originally requested tokens that matched
	// nothing, sorted.
	Missing []string
}

// Resolve maps each token to an on-disk filename, stopping at the first
// strategy that succeeds. The directory listing is sorted before
// case-insensitive matching, so resolution is deterministic even when
// names differ only by case (the lexicographically smallest wins).
func (a *Associator) Resolve(tokens []string) Association {
	names := a.listing()

	found := make(map[string]struct{})
	var missing []string

	for _, token := range tokens {
		name, ok := a.resolveOne(token, names)
		if !ok {
			missing = append(missing, token)
			continue
		}
		found[name] = struct{}{}
	}

	assoc := Association{Missing: missing}
	for name := range found {
		assoc.Found = append(assoc.Found, name)
	}
	sort.Strings(assoc.Found)
	sort.Strings(assoc.Missing)
	return assoc
}

func (a *Associator) resolveOne(token string, names []string) (string, bool) {
	// Exact filename match
	if info, err := a.fs.Stat(filepath.Join(a.dir, token)); err == nil && !info.IsDir() {
		return token, true
	}

	// Case-insensitive full match against the sorted listing
	for _, name := range names {
		if strings.EqualFold(name, token) {
			return name, true
		}
	}

	// Extension probe for tokens without an extension
	if filepath.Ext(token) == "" {
		for _, ext := range a.extensions {
			candidate := token + ext
			if info, err := a.fs.Stat(filepath.Join(a.dir, candidate)); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
	}

	return "", false
}

// listing returns the sorted file names in the bitstream directory. A
// missing or unreadable directory yields an empty listing; every token
// then reports as missing, which the pipeline logs.
func (a *Associator) listing() []string {
	entries, err := a.fs.ReadDir(a.dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
