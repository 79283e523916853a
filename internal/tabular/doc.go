// Package tabular loads spreadsheet files into raw row data.
//
// It deliberately knows nothing about headers, metadata columns, or
// records: it hands back every row as strings and leaves interpretation to
// the header detector and column mapper. XLSX workbooks are read with
// excelize (first sheet only); CSV files with encoding/csv.
package tabular
