package plane

import (
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/direction"
)

// AdjacentKind tells where a move landed.
type AdjacentKind int

const (
	// AdjacentNone means the move ran off the grid.
	AdjacentNone AdjacentKind = iota
	// AdjacentDataCell means the move landed on a data cell.
	AdjacentDataCell
	// AdjacentPlaceholderCell means the move landed on the placeholder row.
	AdjacentPlaceholderCell
)

// Adjacent is the result of moving one step from a cell.
type Adjacent struct {
	Kind   AdjacentKind
	CellID string
}

// AdjacentCell returns the cell one step from cellID in direction d.
//
// Moving down from the last data row lands on the placeholder row when there
// is one. From the placeholder row only upward movement is possible.
func (p *Plane) AdjacentCell(cellID string, d direction.Direction) (Adjacent, error) {
	cell, err := cellid.Parse(cellID)
	if err != nil {
		return Adjacent{}, err
	}
	rowOffset, columnOffset := d.RowOffset(), d.ColumnOffset()
	none := Adjacent{Kind: AdjacentNone}

	if p.IsPlaceholderRow(cell.RowID) {
		if rowOffset >= 0 {
			return none, nil
		}
		last, ok := p.rowIDs.Last()
		if !ok {
			return none, nil
		}
		rowID, ok := p.rowIDs.Offset(last, rowOffset+1)
		if !ok || !p.columnIDs.Has(cell.ColumnID) {
			return none, nil
		}
		return Adjacent{Kind: AdjacentDataCell, CellID: cellid.Make(rowID, cell.ColumnID)}, nil
	}

	if rowOffset == 0 {
		if columnOffset == 0 {
			return none, nil
		}
		columnID, ok := p.columnIDs.Offset(cell.ColumnID, columnOffset)
		if !ok || !p.rowIDs.Has(cell.RowID) {
			return none, nil
		}
		return Adjacent{Kind: AdjacentDataCell, CellID: cellid.Make(cell.RowID, columnID)}, nil
	}

	if !p.columnIDs.Has(cell.ColumnID) {
		return none, nil
	}
	rowID, ok := p.rowIDs.Offset(cell.RowID, rowOffset)
	if ok {
		return Adjacent{Kind: AdjacentDataCell, CellID: cellid.Make(rowID, cell.ColumnID)}, nil
	}
	if rowOffset == 1 && p.hasPlaceholder {
		if last, ok := p.rowIDs.Last(); ok && last == cell.RowID {
			return Adjacent{
				Kind:   AdjacentPlaceholderCell,
				CellID: cellid.Make(p.placeholderRowID, cell.ColumnID),
			}, nil
		}
	}
	return none, nil
}
