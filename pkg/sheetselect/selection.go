// Package sheetselect tracks which cells, rows or columns of a sheet are
// selected and computes the selection that follows user input or a change
// to the underlying grid.
//
// A SheetSelection is immutable. Every operation returns a new value.
package sheetselect

import (
	"fmt"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/basis"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/idset"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/plane"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/series"
)

// SheetSelection combines a Plane with the Basis selected on it.
// Use New to obtain one; the zero value is not usable.
type SheetSelection struct {
	plane                  *plane.Plane
	basis                  basis.Basis
	fullySelectedColumnIDs idset.Set
}

// New returns an empty selection on p. A nil plane is treated as empty.
func New(p *plane.Plane) SheetSelection {
	return NewWithBasis(p, basis.Empty())
}

// NewWithBasis returns a selection of b on p.
func NewWithBasis(p *plane.Plane, b basis.Basis) SheetSelection {
	if p == nil {
		p = plane.Empty()
	}
	if b == nil {
		b = basis.Empty()
	}
	return SheetSelection{
		plane:                  p,
		basis:                  b,
		fullySelectedColumnIDs: b.FullySelectedColumnIDs(p),
	}
}

func (s SheetSelection) withBasis(b basis.Basis) SheetSelection {
	return NewWithBasis(s.plane, b)
}

// Plane returns the grid the selection applies to.
func (s SheetSelection) Plane() *plane.Plane { return s.plane }

// Basis returns the selected-cells representation.
func (s SheetSelection) Basis() basis.Basis { return s.basis }

// BasisType returns the kind of the current basis.
func (s SheetSelection) BasisType() basis.Type { return s.basis.Type() }

// ActiveCellID returns the anchor cell of the selection.
func (s SheetSelection) ActiveCellID() (string, bool) { return s.basis.ActiveCellID() }

// CellIDs returns the selected cells.
func (s SheetSelection) CellIDs() idset.Set { return s.basis.CellIDs() }

// RowIDs returns the rows that have at least one selected cell.
func (s SheetSelection) RowIDs() idset.Set { return s.basis.RowIDs() }

// ColumnIDs returns the columns that have at least one selected cell.
func (s SheetSelection) ColumnIDs() idset.Set { return s.basis.ColumnIDs() }

// FullySelectedColumnIDs returns the columns in which every row is selected.
func (s SheetSelection) FullySelectedColumnIDs() idset.Set { return s.fullySelectedColumnIDs }

// PasteOperation tells what pasting into the selection would do.
func (s SheetSelection) PasteOperation() basis.PasteOperation { return s.basis.PasteOperation() }

// IsEmpty reports whether nothing is selected.
func (s SheetSelection) IsEmpty() bool { return s.basis.Type() == basis.TypeEmpty }

// ContainsCell reports whether cellID is selected.
func (s SheetSelection) ContainsCell(cellID string) bool { return s.basis.CellIDs().Has(cellID) }

// ContainsRow reports whether any cell of rowID is selected.
func (s SheetSelection) ContainsRow(rowID string) bool { return s.basis.RowIDs().Has(rowID) }

// ContainsColumn reports whether columnID is selected.
func (s SheetSelection) ContainsColumn(columnID string) bool { return s.basis.ColumnIDs().Has(columnID) }

// Equal reports whether both selections cover the same cells and columns
// with the same active cell on structurally identical planes.
func (s SheetSelection) Equal(other SheetSelection) bool {
	a, aOK := s.ActiveCellID()
	b, bOK := other.ActiveCellID()
	return s.plane.Equal(other.plane) &&
		s.BasisType() == other.BasisType() &&
		a == b && aOK == bOK &&
		s.CellIDs().Equal(other.CellIDs()) &&
		s.ColumnIDs().Equal(other.ColumnIDs())
}

// Bounds is the rectangle enclosing a selection, in plane order.
type Bounds struct {
	MinRowID    string
	MaxRowID    string
	MinColumnID string
	MaxColumnID string
}

// Bounds returns the enclosing rectangle of the selected data cells.
// It returns false when no selected row and column are part of the plane.
func (s SheetSelection) Bounds() (Bounds, bool) {
	rows, columns := s.plane.RowIDs(), s.plane.ColumnIDs()
	minRow, ok1 := rows.Min(s.RowIDs().All())
	maxRow, ok2 := rows.Max(s.RowIDs().All())
	minColumn, ok3 := columns.Min(s.ColumnIDs().All())
	maxColumn, ok4 := columns.Max(s.ColumnIDs().All())
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Bounds{}, false
	}
	return Bounds{
		MinRowID:    minRow,
		MaxRowID:    maxRow,
		MinColumnID: minColumn,
		MaxColumnID: maxColumn,
	}, true
}

// OfNoCells selects nothing.
func (s SheetSelection) OfNoCells() SheetSelection {
	return s.withBasis(basis.Empty())
}

// OfAllDataCells selects every data cell.
func (s SheetSelection) OfAllDataCells() SheetSelection {
	return s.withBasis(basis.FromDataCells(s.plane.AllDataCells(), ""))
}

// OfFirstDataCell selects the top-left data cell.
func (s SheetSelection) OfFirstDataCell() SheetSelection {
	rowID, ok := s.plane.RowIDs().First()
	if !ok {
		return s.OfNoCells()
	}
	columnID, ok := s.plane.ColumnIDs().First()
	if !ok {
		return s.OfNoCells()
	}
	return s.withBasis(basis.FromOneDataCell(cellid.Cell{RowID: rowID, ColumnID: columnID}))
}

// normalizeRowID substitutes the last data row for the placeholder row.
func (s SheetSelection) normalizeRowID(rowID string) string {
	if s.plane.IsPlaceholderRow(rowID) {
		if last, ok := s.plane.RowIDs().Last(); ok {
			return last
		}
	}
	return rowID
}

// OfRowRange selects all cells of the rows between rowIDA and rowIDB.
// Either row may be the placeholder row.
func (s SheetSelection) OfRowRange(rowIDA, rowIDB string) (SheetSelection, error) {
	return s.ofRowRange(rowIDA, rowIDB, "")
}

func (s SheetSelection) ofRowRange(rowIDA, rowIDB, activeCellID string) (SheetSelection, error) {
	cells, err := s.plane.DataCellsInFlexibleRowRange(rowIDA, rowIDB)
	if err != nil {
		return s, NewOperationError("ofRowRange", err)
	}
	if activeCellID == "" {
		if columnID, ok := s.plane.ColumnIDs().First(); ok {
			activeCellID = cellid.Make(s.normalizeRowID(rowIDA), columnID)
		}
	}
	return s.withBasis(basis.FromDataCells(cells, activeCellID)), nil
}

// OfColumnRange selects all cells of the columns between columnIDA and
// columnIDB. On a plane without rows it selects the empty columns.
func (s SheetSelection) OfColumnRange(columnIDA, columnIDB string) (SheetSelection, error) {
	return s.ofColumnRange(columnIDA, columnIDB, "")
}

func (s SheetSelection) ofColumnRange(columnIDA, columnIDB, activeCellID string) (SheetSelection, error) {
	if !s.plane.HasResultRows() {
		columnIDs, err := s.plane.ColumnIDs().Range(columnIDA, columnIDB)
		if err != nil {
			return s, NewOperationError("ofColumnRange", err)
		}
		return s.withBasis(basis.FromEmptyColumns(columnIDs, columnIDA)), nil
	}
	cells, err := s.plane.DataCellsInColumnRange(columnIDA, columnIDB)
	if err != nil {
		return s, NewOperationError("ofColumnRange", err)
	}
	if activeCellID == "" {
		rowID, _ := s.plane.RowIDs().First()
		activeCellID = cellid.Make(rowID, columnIDA)
	}
	return s.withBasis(basis.FromDataCells(cells, activeCellID)), nil
}

// OfDataCellRange selects the rectangle between two cells. Cells in the
// placeholder row stand for the last data row. cellIDA becomes active.
func (s SheetSelection) OfDataCellRange(cellIDA, cellIDB string) (SheetSelection, error) {
	return s.ofDataCellRange(cellIDA, cellIDB, "")
}

func (s SheetSelection) ofDataCellRange(cellIDA, cellIDB, activeCellID string) (SheetSelection, error) {
	cells, err := s.plane.DataCellsInFlexibleCellRange(cellIDA, cellIDB)
	if err != nil {
		return s, NewOperationError("ofDataCellRange", err)
	}
	if activeCellID == "" {
		a, _ := cellid.Parse(cellIDA)
		activeCellID = cellid.Make(s.normalizeRowID(a.RowID), a.ColumnID)
	}
	return s.withBasis(basis.FromDataCells(cells, activeCellID)), nil
}

// OfOneCell selects a single cell, which may be in the placeholder row.
func (s SheetSelection) OfOneCell(cellID string) (SheetSelection, error) {
	cell, err := cellid.Parse(cellID)
	if err != nil {
		return s, NewOperationError("ofOneCell", err)
	}
	if !s.plane.ColumnIDs().Has(cell.ColumnID) {
		return s, NewOperationError("ofOneCell", fmt.Errorf("column: %w: %s", series.ErrValueNotFound, cell.ColumnID))
	}
	if s.plane.IsPlaceholderRow(cell.RowID) {
		return s.withBasis(basis.FromPlaceholderCell(cell)), nil
	}
	if !s.plane.RowIDs().Has(cell.RowID) {
		return s, NewOperationError("ofOneCell", fmt.Errorf("row: %w: %s", series.ErrValueNotFound, cell.RowID))
	}
	return s.withBasis(basis.FromOneDataCell(cell)), nil
}

// OfDataCells selects an arbitrary set of data cells, as ctrl-click does.
// The first cell becomes active. Every cell must lie on the plane's data
// rows and columns.
func (s SheetSelection) OfDataCells(cellIDs []string) (SheetSelection, error) {
	for _, id := range cellIDs {
		cell, err := cellid.Parse(id)
		if err != nil {
			return s, NewOperationError("ofDataCells", err)
		}
		if !s.plane.RowIDs().Has(cell.RowID) {
			return s, NewOperationError("ofDataCells", fmt.Errorf("row: %w: %s", series.ErrValueNotFound, cell.RowID))
		}
		if !s.plane.ColumnIDs().Has(cell.ColumnID) {
			return s, NewOperationError("ofDataCells", fmt.Errorf("column: %w: %s", series.ErrValueNotFound, cell.ColumnID))
		}
	}
	var active string
	if len(cellIDs) > 0 {
		active = cellIDs[0]
	}
	b, err := basis.FromDataCellIDs(cellIDs, active)
	if err != nil {
		return s, NewOperationError("ofDataCells", err)
	}
	return s.withBasis(b), nil
}

// OfRowColumnIntersection selects the cells where the given rows and columns
// cross. Ids not in the plane are ignored.
func (s SheetSelection) OfRowColumnIntersection(rowIDs, columnIDs []string) SheetSelection {
	return s.withBasis(basis.FromDataCells(s.plane.DataCellsInRowColumnIntersection(rowIDs, columnIDs), ""))
}

// DrawnToDataCell spans the selection from the active cell to cellID, as a
// click-drag or shift-click does.
func (s SheetSelection) DrawnToDataCell(cellID string) (SheetSelection, error) {
	active, ok := s.ActiveCellID()
	if !ok || active == cellID {
		return s.OfOneCell(cellID)
	}
	next, err := s.ofDataCellRange(active, cellID, s.keptActive(active))
	if err != nil {
		return s, err
	}
	// Without data rows the range is empty; a placeholder target still
	// takes the selection.
	if next.IsEmpty() {
		if target, err := cellid.Parse(cellID); err == nil && s.plane.IsPlaceholderRow(target.RowID) {
			return s.OfOneCell(cellID)
		}
	}
	return next, nil
}

// DrawnToRow spans whole rows from the active cell's row to rowID.
func (s SheetSelection) DrawnToRow(rowID string) (SheetSelection, error) {
	active, ok := s.ActiveCellID()
	if !ok {
		return s.OfRowRange(rowID, rowID)
	}
	cell, err := cellid.Parse(active)
	if err != nil {
		return s, NewOperationError("drawnToRow", err)
	}
	return s.ofRowRange(cell.RowID, rowID, s.keptActive(active))
}

// DrawnToColumn spans whole columns from the active (or anchor) column to
// columnID.
func (s SheetSelection) DrawnToColumn(columnID string) (SheetSelection, error) {
	if a, ok := s.basis.(basis.ColumnAnchor); ok {
		if anchor, ok := a.AnchorColumnID(); ok {
			return s.OfColumnRange(anchor, columnID)
		}
	}
	active, ok := s.ActiveCellID()
	if !ok {
		return s.OfColumnRange(columnID, columnID)
	}
	cell, err := cellid.Parse(active)
	if err != nil {
		return s, NewOperationError("drawnToColumn", err)
	}
	return s.ofColumnRange(cell.ColumnID, columnID, s.keptActive(active))
}

// keptActive returns the active cell to carry through a drag. A placeholder
// cell cannot stay active in a data-cell range, so it is dropped.
func (s SheetSelection) keptActive(activeCellID string) string {
	if s.basis.Type() == basis.TypePlaceholderCell {
		return ""
	}
	return activeCellID
}

// ForNewPlane adapts the selection to a changed grid, keeping its size and
// approximate position.
func (s SheetSelection) ForNewPlane(newPlane *plane.Plane) SheetSelection {
	if newPlane == nil {
		newPlane = plane.Empty()
	}
	return NewWithBasis(newPlane, s.basis.AdaptToModifiedPlane(s.plane, newPlane))
}
