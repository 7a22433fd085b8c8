// Package clipboard serializes selections as tab-separated text and moves
// that text to and from the system clipboard.
package clipboard

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
)

// ValueFunc returns the text of a cell.
type ValueFunc func(cellID string) string

// TSV renders the selected rows and columns, both in plane order, as
// tab-separated text. Cells inside that grid that are not selected are
// emitted empty. A selection without data rows yields "".
func TSV(sel sheetselect.SheetSelection, value ValueFunc) (string, error) {
	p := sel.Plane()
	var rowIDs, columnIDs []string
	for rowID := range p.RowIDs().All() {
		if sel.ContainsRow(rowID) {
			rowIDs = append(rowIDs, rowID)
		}
	}
	for columnID := range p.ColumnIDs().All() {
		if sel.ContainsColumn(columnID) {
			columnIDs = append(columnIDs, columnID)
		}
	}
	if len(rowIDs) == 0 || len(columnIDs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	record := make([]string, len(columnIDs))
	for _, rowID := range rowIDs {
		for i, columnID := range columnIDs {
			id := cellid.Make(rowID, columnID)
			record[i] = ""
			if sel.ContainsCell(id) {
				record[i] = value(id)
			}
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseTSV splits tab-separated text into rows of fields. Rows may have
// different lengths.
func ParseTSV(text string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}
