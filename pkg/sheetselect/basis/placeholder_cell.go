package basis

import (
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/idset"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/plane"
)

// placeholderCell is one cell in the placeholder row.
type placeholderCell struct {
	selection
	cell cellid.Cell
}

// FromPlaceholderCell builds a basis for a cell of the placeholder row.
func FromPlaceholderCell(cell cellid.Cell) Basis {
	s := newSelection([]cellid.Cell{cell})
	s.activeCellID = cell.ID()
	s.hasActive = true
	return placeholderCell{selection: s, cell: cell}
}

func (b placeholderCell) Type() Type { return TypePlaceholderCell }

func (b placeholderCell) PasteOperation() PasteOperation { return PasteInsert }

func (b placeholderCell) FullySelectedColumnIDs(*plane.Plane) idset.Set {
	return idset.Set{}
}

// AdaptToModifiedPlane keeps the cell while its column exists and the
// placeholder row is unchanged.
func (b placeholderCell) AdaptToModifiedPlane(_, newPlane *plane.Plane) Basis {
	if !newPlane.IsPlaceholderRow(b.cell.RowID) || !newPlane.ColumnIDs().Has(b.cell.ColumnID) {
		return Empty()
	}
	return b
}
