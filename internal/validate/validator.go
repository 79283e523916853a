// Package validate re-checks a package tree for structural completeness,
// independently of the writer that produced it.
package validate

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aferrand/safpack/internal/dcxml"
	"github.com/aferrand/safpack/internal/filesystem"
	"github.com/aferrand/safpack/pkg/safpack"
)

// PackageIssues collects the problems found in one package directory.
type PackageIssues struct {
	Package string
	Issues  []string
}

// Report is the outcome of validating a package tree, ordered by package
// directory name. Only packages with issues appear.
type Report struct {
	Packages int
	Failures []PackageIssues
}

// OK reports whether every package passed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Validator walks package subdirectories and reports structural issues:
// missing or malformed metadata documents, absent required fields, missing
// manifests, and manifest entries pointing at nonexistent files.
type Validator struct {
	fs       filesystem.Provider
	required []string
}

// NewValidator creates a Validator checking for the given required
// specifiers (bare element or element.qualifier).
func NewValidator(fs filesystem.Provider, required []string) *Validator {
	return &Validator{fs: fs, required: required}
}

// ValidateTree checks every package subdirectory under root, in lexical
// order of directory name. It returns an error only when root itself
// cannot be read; per-package problems go into the report.
func (v *Validator) ValidateTree(root string) (Report, error) {
	entries, err := v.fs.ReadDir(root)
	if err != nil {
		return Report{}, fmt.Errorf("cannot read package tree %s: %w", root, err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)

	report := Report{Packages: len(dirs)}
	for _, name := range dirs {
		issues := v.validatePackage(filepath.Join(root, name))
		if len(issues) > 0 {
			report.Failures = append(report.Failures, PackageIssues{Package: name, Issues: issues})
		}
	}
	return report, nil
}

func (v *Validator) validatePackage(dir string) []string {
	var issues []string

	metaPath := filepath.Join(dir, safpack.MetadataFileName)
	data, err := v.fs.ReadFile(metaPath)
	if err != nil {
		issues = append(issues, fmt.Sprintf("missing %s", safpack.MetadataFileName))
		return issues
	}

	doc, err := dcxml.Parse(data)
	if err != nil {
		issues = append(issues, fmt.Sprintf("invalid %s: %v", safpack.MetadataFileName, err))
		return issues
	}

	issues = append(issues, v.missingFields(doc)...)
	issues = append(issues, v.checkManifest(dir)...)
	return issues
}

// missingFields checks for at least one non-blank field per required
// specifier. A bare element specifier is satisfied by any qualifier.
func (v *Validator) missingFields(doc dcxml.Document) []string {
	var issues []string
	for _, spec := range v.required {
		wantElement, wantQualifier, _ := strings.Cut(spec, ".")
		found := false
		for _, f := range doc.Values {
			if strings.TrimSpace(f.Text) == "" {
				continue
			}
			if f.Element != wantElement {
				continue
			}
			if wantQualifier == "" || f.Qualifier == wantQualifier {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, fmt.Sprintf("missing required metadata: %s", spec))
		}
	}
	return issues
}

// checkManifest verifies the manifest exists and that every listed file is
// present in the package directory. The first whitespace-delimited token
// of each line is the filename; a trailing bundle specifier is ignored.
func (v *Validator) checkManifest(dir string) []string {
	manifestPath := filepath.Join(dir, safpack.ManifestFileName)
	data, err := v.fs.ReadFile(manifestPath)
	if err != nil {
		return []string{fmt.Sprintf("missing %s file", safpack.ManifestFileName)}
	}

	var issues []string
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if _, err := v.fs.Stat(filepath.Join(dir, name)); err != nil {
			issues = append(issues, fmt.Sprintf("listed in %s but missing: %s", safpack.ManifestFileName, name))
		}
	}
	return issues
}
