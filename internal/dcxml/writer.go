// Package dcxml serializes record metadata into Dublin Core XML documents
// of the DSpace Simple Archive Format.
package dcxml

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/aferrand/safpack/internal/columns"
	"github.com/aferrand/safpack/pkg/safpack"
)

// Document is the dublin_core.xml root element.
type Document struct {
	XMLName xml.Name `xml:"dublin_core"`
	Schema  string   `xml:"schema,attr"`
	Values  []Field  `xml:"dcvalue"`
}

// Field is one dcvalue node. Qualifier is the literal "none" when the
// column carried no qualifier.
type Field struct {
	Element   string `xml:"element,attr"`
	Qualifier string `xml:"qualifier,attr"`
	Language  string `xml:"language,attr"`
	Text      string `xml:",chardata"`
}

// Writer builds deduplicated metadata documents from records.
type Writer struct {
	mapper   *columns.Mapper
	schema   string
	language string
}

// NewWriter creates a Writer emitting documents for the given schema
// identifier with the given language attribute.
func NewWriter(mapper *columns.Mapper, schema, language string) *Writer {
	return &Writer{mapper: mapper, schema: schema, language: language}
}

type dedupKey struct {
	element   string
	qualifier string
	text      string
}

// Build collects the record's metadata fields in column order, skipping
// blank cells and collapsing duplicate (element, qualifier, text) triples
// to one node. A record with no metadata yields a root with no children.
func (w *Writer) Build(rec safpack.Record) Document {
	doc := Document{Schema: w.schema}
	seen := make(map[dedupKey]struct{})

	for i, col := range rec.Columns {
		if safpack.IsBlank(rec.Values[i]) {
			continue
		}
		element, qualifier, ok := w.mapper.Decompose(col)
		if !ok {
			continue
		}
		if qualifier == "" {
			qualifier = "none"
		}

		text := strings.TrimSpace(rec.Values[i])
		key := dedupKey{element: element, qualifier: qualifier, text: text}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		doc.Values = append(doc.Values, Field{
			Element:   element,
			Qualifier: qualifier,
			Language:  w.language,
			Text:      text,
		})
	}

	return doc
}

// Render serializes a document as indented UTF-8 XML with a declaration,
// no BOM, and exactly one trailing newline.
func (w *Writer) Render(doc Document) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata document: %w", err)
	}
	return []byte(xml.Header + string(body) + "\n"), nil
}

// WriteRecord is Build followed by Render.
func (w *Writer) WriteRecord(rec safpack.Record) ([]byte, error) {
	return w.Render(w.Build(rec))
}

// Parse reads a rendered document back. Used by the package validator,
// which re-checks output independently of the writer.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("malformed metadata document: %w", err)
	}
	return doc, nil
}
