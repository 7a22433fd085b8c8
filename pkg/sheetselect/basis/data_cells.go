package basis

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/idset"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/plane"
)

type dataCells struct {
	selection
}

// FromDataCells builds a data-cell basis. The active cell defaults to the
// first cell when activeCellID is empty or not among the cells. Zero cells
// yield the empty basis.
func FromDataCells(cells iter.Seq[cellid.Cell], activeCellID string) Basis {
	s := newSelection(slices.Collect(cells))
	if len(s.cells) == 0 {
		return Empty()
	}
	s.hasActive = true
	if s.cellIDs.Has(activeCellID) {
		s.activeCellID = activeCellID
	} else {
		s.activeCellID = s.cells[0].ID()
	}
	return dataCells{selection: s}
}

// FromOneDataCell builds a data-cell basis holding a single cell.
func FromOneDataCell(cell cellid.Cell) Basis {
	return FromDataCells(slices.Values([]cellid.Cell{cell}), cell.ID())
}

// FromDataCellIDs parses encoded cell ids and builds a data-cell basis.
func FromDataCellIDs(cellIDs []string, activeCellID string) (Basis, error) {
	cells := make([]cellid.Cell, 0, len(cellIDs))
	for _, id := range cellIDs {
		c, err := cellid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("data cells: %w", err)
		}
		cells = append(cells, c)
	}
	return FromDataCells(slices.Values(cells), activeCellID), nil
}

func (b dataCells) Type() Type { return TypeDataCells }

func (b dataCells) PasteOperation() PasteOperation { return PasteUpdate }

func (b dataCells) FullySelectedColumnIDs(p *plane.Plane) idset.Set {
	if !p.HasResultRows() {
		return idset.Set{}
	}
	return fullySelectedColumnIDs(p, b.selection)
}

// AdaptToModifiedPlane re-projects the selected row range and column range
// onto the new plane. Without rows the selection degrades to empty columns.
func (b dataCells) AdaptToModifiedPlane(oldPlane, newPlane *plane.Plane) Basis {
	columnIDs, columnsOK := FitToTransformation(b.columnIDs, oldPlane.ColumnIDs(), newPlane.ColumnIDs())
	if !newPlane.HasResultRows() {
		if !columnsOK {
			return Empty()
		}
		anchor := ""
		if id, ok := b.ActiveCellID(); ok {
			if c, err := cellid.Parse(id); err == nil {
				anchor = c.ColumnID
			}
		}
		return FromEmptyColumns(columnIDs, anchor)
	}
	rowIDs, rowsOK := FitToTransformation(b.rowIDs, oldPlane.RowIDs(), newPlane.RowIDs())
	if !columnsOK || !rowsOK {
		return Empty()
	}
	cells := newPlane.DataCellsInRowColumnIntersection(rowIDs, columnIDs)
	active := ""
	if id, ok := b.ActiveCellID(); ok {
		if c, err := cellid.Parse(id); err == nil &&
			slices.Contains(rowIDs, c.RowID) && slices.Contains(columnIDs, c.ColumnID) {
			active = id
		}
	}
	return FromDataCells(cells, active)
}
