// Package plane models the addressable grid a selection applies to: a row
// Series, a column Series and an optional placeholder row for adding records.
package plane

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/series"
)

// ErrPlaceholderInRows indicates the placeholder row id collides with a data row.
var ErrPlaceholderInRows = errors.New("placeholder row id is a data row")

// Plane is an immutable grid of row ids and column ids.
type Plane struct {
	rowIDs           *series.Series[string]
	columnIDs        *series.Series[string]
	placeholderRowID string
	hasPlaceholder   bool
}

// New creates a Plane without a placeholder row. Nil series are treated as empty.
func New(rowIDs, columnIDs *series.Series[string]) *Plane {
	if rowIDs == nil {
		rowIDs = series.Empty[string]()
	}
	if columnIDs == nil {
		columnIDs = series.Empty[string]()
	}
	return &Plane{rowIDs: rowIDs, columnIDs: columnIDs}
}

// NewWithPlaceholder creates a Plane whose placeholder row sits after the last
// data row.
func NewWithPlaceholder(rowIDs, columnIDs *series.Series[string], placeholderRowID string) (*Plane, error) {
	p := New(rowIDs, columnIDs)
	if p.rowIDs.Has(placeholderRowID) {
		return nil, fmt.Errorf("%w: %q", ErrPlaceholderInRows, placeholderRowID)
	}
	p.placeholderRowID = placeholderRowID
	p.hasPlaceholder = true
	return p, nil
}

// Empty returns a Plane with no rows, no columns and no placeholder.
func Empty() *Plane {
	return New(nil, nil)
}

// RowIDs returns the data rows.
func (p *Plane) RowIDs() *series.Series[string] {
	return p.rowIDs
}

// ColumnIDs returns the columns.
func (p *Plane) ColumnIDs() *series.Series[string] {
	return p.columnIDs
}

// PlaceholderRowID returns the placeholder row id, if the plane has one.
func (p *Plane) PlaceholderRowID() (string, bool) {
	return p.placeholderRowID, p.hasPlaceholder
}

// IsPlaceholderRow reports whether rowID is the placeholder row.
func (p *Plane) IsPlaceholderRow(rowID string) bool {
	return p.hasPlaceholder && rowID == p.placeholderRowID
}

// HasResultRows reports whether the plane has any data rows.
func (p *Plane) HasResultRows() bool {
	return p.rowIDs.Len() > 0
}

// HasPlaceholder reports whether the plane has a placeholder row.
func (p *Plane) HasPlaceholder() bool {
	return p.hasPlaceholder
}

// Equal reports whether both planes have the same rows, columns and placeholder.
func (p *Plane) Equal(other *Plane) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.hasPlaceholder == other.hasPlaceholder &&
		p.placeholderRowID == other.placeholderRowID &&
		slices.Equal(p.rowIDs.Values(), other.rowIDs.Values()) &&
		slices.Equal(p.columnIDs.Values(), other.columnIDs.Values())
}

// product yields every (row, column) pair in row-major order.
func product(rowIDs, columnIDs []string) iter.Seq[cellid.Cell] {
	return func(yield func(cellid.Cell) bool) {
		for _, rowID := range rowIDs {
			for _, columnID := range columnIDs {
				if !yield(cellid.Cell{RowID: rowID, ColumnID: columnID}) {
					return
				}
			}
		}
	}
}

// AllDataCells yields every data cell in row-major order.
func (p *Plane) AllDataCells() iter.Seq[cellid.Cell] {
	return product(p.rowIDs.Values(), p.columnIDs.Values())
}

// DataCellsInRowRange yields the cells of all columns for the rows between
// rowIDA and rowIDB inclusive.
func (p *Plane) DataCellsInRowRange(rowIDA, rowIDB string) (iter.Seq[cellid.Cell], error) {
	rowIDs, err := p.rowIDs.Range(rowIDA, rowIDB)
	if err != nil {
		return nil, fmt.Errorf("row range: %w", err)
	}
	return product(rowIDs, p.columnIDs.Values()), nil
}

// DataCellsInColumnRange yields the cells of all rows for the columns between
// columnIDA and columnIDB inclusive.
func (p *Plane) DataCellsInColumnRange(columnIDA, columnIDB string) (iter.Seq[cellid.Cell], error) {
	columnIDs, err := p.columnIDs.Range(columnIDA, columnIDB)
	if err != nil {
		return nil, fmt.Errorf("column range: %w", err)
	}
	return product(p.rowIDs.Values(), columnIDs), nil
}

// normalizeFlexibleRowID substitutes the last data row for the placeholder.
// It returns false when the placeholder is given and there are no data rows.
func (p *Plane) normalizeFlexibleRowID(rowID string) (string, bool) {
	if p.IsPlaceholderRow(rowID) {
		return p.rowIDs.Last()
	}
	return rowID, true
}

// flexibleRowRange resolves a row range whose endpoints may be the placeholder.
func (p *Plane) flexibleRowRange(rowIDA, rowIDB string) ([]string, error) {
	a, okA := p.normalizeFlexibleRowID(rowIDA)
	b, okB := p.normalizeFlexibleRowID(rowIDB)
	if !okA || !okB {
		return nil, nil
	}
	rowIDs, err := p.rowIDs.Range(a, b)
	if err != nil {
		return nil, fmt.Errorf("row range: %w", err)
	}
	return rowIDs, nil
}

// DataCellsInFlexibleRowRange is DataCellsInRowRange, except that either
// endpoint may be the placeholder row, which stands for the last data row.
func (p *Plane) DataCellsInFlexibleRowRange(rowIDA, rowIDB string) (iter.Seq[cellid.Cell], error) {
	rowIDs, err := p.flexibleRowRange(rowIDA, rowIDB)
	if err != nil {
		return nil, err
	}
	return product(rowIDs, p.columnIDs.Values()), nil
}

// DataCellsInFlexibleCellRange yields the rectangle spanned by two cells.
// Either cell may sit in the placeholder row.
func (p *Plane) DataCellsInFlexibleCellRange(cellIDA, cellIDB string) (iter.Seq[cellid.Cell], error) {
	a, err := cellid.Parse(cellIDA)
	if err != nil {
		return nil, err
	}
	b, err := cellid.Parse(cellIDB)
	if err != nil {
		return nil, err
	}
	rowIDs, err := p.flexibleRowRange(a.RowID, b.RowID)
	if err != nil {
		return nil, err
	}
	columnIDs, err := p.columnIDs.Range(a.ColumnID, b.ColumnID)
	if err != nil {
		return nil, fmt.Errorf("column range: %w", err)
	}
	return product(rowIDs, columnIDs), nil
}

// DataCellsInRowColumnIntersection yields the cells where the given rows and
// columns cross, in plane order. Ids that are not part of the plane are ignored.
func (p *Plane) DataCellsInRowColumnIntersection(rowIDs, columnIDs []string) iter.Seq[cellid.Cell] {
	return product(filterInOrder(p.rowIDs, rowIDs), filterInOrder(p.columnIDs, columnIDs))
}

func filterInOrder(s *series.Series[string], wanted []string) []string {
	keep := make(map[string]struct{}, len(wanted))
	for _, v := range wanted {
		keep[v] = struct{}{}
	}
	var out []string
	for v := range s.All() {
		if _, ok := keep[v]; ok {
			out = append(out, v)
		}
	}
	return out
}
