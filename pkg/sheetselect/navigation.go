package sheetselect

import (
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/basis"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/direction"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/plane"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/series"
)

// CollapsedAndMoved implements arrow-key movement: the selection collapses
// to one cell, one step from the active cell in direction d. At the grid
// edge it collapses onto the active cell itself.
func (s SheetSelection) CollapsedAndMoved(d direction.Direction) (SheetSelection, error) {
	if m, ok := s.basis.(basis.Mover); ok {
		return s.withBasis(m.CollapsedAndMoved(d, s.plane)), nil
	}
	active, ok := s.ActiveCellID()
	if !ok {
		return s.OfFirstDataCell(), nil
	}
	adjacent, err := s.plane.AdjacentCell(active, d)
	if err != nil {
		return s, NewOperationError("collapsedAndMoved", err)
	}
	switch adjacent.Kind {
	case plane.AdjacentDataCell:
		cell, err := cellid.Parse(adjacent.CellID)
		if err != nil {
			return s, NewOperationError("collapsedAndMoved", err)
		}
		return s.withBasis(basis.FromOneDataCell(cell)), nil
	case plane.AdjacentPlaceholderCell:
		cell, err := cellid.Parse(adjacent.CellID)
		if err != nil {
			return s, NewOperationError("collapsedAndMoved", err)
		}
		return s.withBasis(basis.FromPlaceholderCell(cell)), nil
	}
	if s.CellIDs().Len() == 1 {
		return s, nil
	}
	return s.OfOneCell(active)
}

// Resized implements shift+arrow: the rectangle grows or shrinks by one step
// along the axis of d while the active cell stays put.
//
// A single row (or column) always grows. Otherwise, moving toward the edge
// holding the active cell shrinks the selection from the far edge, never
// below one row (or column); moving away from it grows the far edge.
// Without an active data cell inside the selection this falls back to
// CollapsedAndMoved.
func (s SheetSelection) Resized(d direction.Direction) (SheetSelection, error) {
	active, ok := s.ActiveCellID()
	if !ok || s.basis.Type() != basis.TypeDataCells {
		return s.CollapsedAndMoved(d)
	}
	cell, err := cellid.Parse(active)
	if err != nil {
		return s, NewOperationError("resized", err)
	}
	bounds, ok := s.Bounds()
	rows, columns := s.plane.RowIDs(), s.plane.ColumnIDs()
	if !ok || !rows.Has(cell.RowID) || !columns.Has(cell.ColumnID) {
		return s.CollapsedAndMoved(d)
	}

	minRow, maxRow := resizeAxis(rows, cell.RowID, bounds.MinRowID, bounds.MaxRowID, d.RowOffset())
	minColumn, maxColumn := resizeAxis(columns, cell.ColumnID, bounds.MinColumnID, bounds.MaxColumnID, d.ColumnOffset())

	cells, err := s.plane.DataCellsInFlexibleCellRange(
		cellid.Make(minRow, minColumn),
		cellid.Make(maxRow, maxColumn),
	)
	if err != nil {
		return s, NewOperationError("resized", err)
	}
	return s.withBasis(basis.FromDataCells(cells, active)), nil
}

// resizeAxis moves one edge of the [lo, hi] range one step in the direction
// of offset. Steps past the ends of the series are clamped.
func resizeAxis(s *series.Series[string], activeID, lo, hi string, offset int) (string, string) {
	if offset == 0 {
		return lo, hi
	}
	step := func(edge string) string {
		if next, ok := s.Offset(edge, offset); ok {
			return next
		}
		return edge
	}
	if lo == hi {
		if offset > 0 {
			return lo, step(hi)
		}
		return step(lo), hi
	}
	if offset > 0 {
		if activeID == hi {
			return step(lo), hi
		}
		return lo, step(hi)
	}
	if activeID == lo {
		return lo, step(hi)
	}
	return step(lo), hi
}
