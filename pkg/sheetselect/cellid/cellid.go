// Package cellid encodes (row id, column id) pairs into single cell id strings.
package cellid

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates the row id from the column id inside a cell id.
// Row ids never contain it; column ids may.
const Delimiter = "-"

// ErrMalformed indicates a cell id without a delimiter.
var ErrMalformed = errors.New("malformed cell id")

// Cell is a decoded cell id.
type Cell struct {
	RowID    string
	ColumnID string
}

// Make encodes a row id and column id into a cell id.
func Make(rowID, columnID string) string {
	return rowID + Delimiter + columnID
}

// Parse decodes a cell id. The row id is everything before the first
// delimiter and the column id is the remainder.
func Parse(cellID string) (Cell, error) {
	rowID, columnID, ok := strings.Cut(cellID, Delimiter)
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrMalformed, cellID)
	}
	return Cell{RowID: rowID, ColumnID: columnID}, nil
}

// ID returns the encoded form of the cell.
func (c Cell) ID() string {
	return Make(c.RowID, c.ColumnID)
}

func (c Cell) String() string {
	return c.ID()
}
