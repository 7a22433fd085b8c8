package basis

import (
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/direction"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/idset"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/plane"
)

// ColumnAnchor is implemented by variants that have no active cell but do
// remember the column a column-range gesture started from.
type ColumnAnchor interface {
	AnchorColumnID() (string, bool)
}

// emptyColumns selects columns of a grid that has no rows, so that the
// user can still configure them.
type emptyColumns struct {
	selection
	anchorColumnID string
}

// FromEmptyColumns builds an empty-columns basis. The anchor defaults to the
// first column when anchorColumnID is empty or not among columnIDs. No
// columns yield the empty basis.
func FromEmptyColumns(columnIDs []string, anchorColumnID string) Basis {
	if len(columnIDs) == 0 {
		return Empty()
	}
	b := emptyColumns{selection: selection{columnIDs: idset.New(columnIDs...)}}
	b.anchorColumnID = columnIDs[0]
	if b.columnIDs.Has(anchorColumnID) {
		b.anchorColumnID = anchorColumnID
	}
	return b
}

func (b emptyColumns) Type() Type { return TypeEmptyColumns }

func (b emptyColumns) PasteOperation() PasteOperation { return PasteInsert }

func (b emptyColumns) AnchorColumnID() (string, bool) { return b.anchorColumnID, true }

func (b emptyColumns) FullySelectedColumnIDs(p *plane.Plane) idset.Set {
	return fullySelectedColumnIDs(p, b.selection)
}

func (b emptyColumns) AdaptToModifiedPlane(oldPlane, newPlane *plane.Plane) Basis {
	if newPlane.HasResultRows() {
		return Empty()
	}
	columnIDs, ok := FitToTransformation(b.columnIDs, oldPlane.ColumnIDs(), newPlane.ColumnIDs())
	if !ok {
		return Empty()
	}
	return FromEmptyColumns(columnIDs, b.anchorColumnID)
}

// CollapsedAndMoved collapses to the single column next to the selected
// block. Vertical moves and moves off the grid leave the basis unchanged.
func (b emptyColumns) CollapsedAndMoved(d direction.Direction, p *plane.Plane) Basis {
	offset := d.ColumnOffset()
	if offset == 0 {
		return b
	}
	columnID, ok := p.ColumnIDs().CollapsedOffset(b.columnIDs.All(), offset)
	if !ok {
		return b
	}
	return FromEmptyColumns([]string{columnID}, columnID)
}
