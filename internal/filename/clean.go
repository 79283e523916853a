// Package filename normalizes bitstream filenames into a portable,
// lowercase form safe for archival packages.
package filename

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters (NFD) and removes combining marks, so
// "Résumé" becomes "Resume".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

var (
	invalidChars    = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	underscoreRuns  = regexp.MustCompile(`_+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
	preExtensionSep = regexp.MustCompile(`[_-]+\.`)
)

var replacements = strings.NewReplacer(
	"’", "-", // right single quotation mark
	"'", "-",
	"(", "_",
	")", "_",
)

// Clean standardizes a filename: diacritics removed, apostrophes turned
// into hyphens, parentheses and spaces into underscores, remaining invalid
// characters replaced, lowercased, separator runs collapsed, and edge
// separators trimmed. Version numbers like v2.0 survive intact.
func Clean(name string) string {
	s, _, err := transform.String(stripMarks, name)
	if err != nil {
		s = name
	}

	s = replacements.Replace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = invalidChars.ReplaceAllString(s, "_")
	s = strings.ToLower(s)
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = preExtensionSep.ReplaceAllString(s, ".")
	s = strings.Trim(s, "_-")

	return s
}

// MapRawExtension rewrites camera raw filenames (.cr2/.cr3) to .jpeg,
// matching trees where raws were batch-converted. Already-web-friendly
// image names and everything else pass through unchanged.
func MapRawExtension(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".cr2", ".cr3":
		return strings.TrimSuffix(name, filepath.Ext(name)) + ".jpeg"
	}
	return name
}
