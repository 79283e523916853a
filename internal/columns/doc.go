// Package columns maps arbitrary spreadsheet column names onto a
// qualified metadata schema.
//
// The Mapper canonicalizes header names, drops machine-generated
// placeholders, strips repeat suffixes (dc.subject.2), decomposes
// qualified names into (element, qualifier) pairs, and classifies columns
// as metadata-bearing or filename-bearing. The RequiredChecker uses the
// same decomposition to report missing mandatory fields per record.
package columns
