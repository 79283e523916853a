// Package pipeline orchestrates per-record package construction.
//
// For each record, in spreadsheet order, the pipeline checks required
// metadata (warning-only), creates the numbered package directory, writes
// the metadata document, resolves and copies bitstreams, and writes the
// manifest. Each record yields an explicit RecordResult; one record's
// failure never stops the run.
package pipeline
