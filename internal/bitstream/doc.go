// Package bitstream associates metadata records with on-disk files.
//
// Filename cells frequently disagree with the files actually present:
// wrong case, missing extensions, several names jammed into one cell. The
// package extracts clean file tokens from records and resolves them
// against the bitstream source directory with a layered matching strategy.
package bitstream
