// Package basis holds the representations of "what is selected",
// independent of the grid they apply to.
//
// There are four variants: data cells, empty columns (the grid has no rows),
// a single placeholder cell, and empty. Constructors in this package are the
// only place a variant is chosen.
package basis

import (
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/direction"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/idset"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/plane"
)

// Type tags a Basis variant.
type Type string

const (
	TypeDataCells       Type = "dataCells"
	TypeEmptyColumns    Type = "emptyColumns"
	TypePlaceholderCell Type = "placeholderCell"
	TypeEmpty           Type = "empty"
)

// PasteOperation tells the clipboard collaborator what pasting would do.
type PasteOperation string

const (
	PasteNone   PasteOperation = "none"
	PasteInsert PasteOperation = "insert"
	PasteUpdate PasteOperation = "update"
)

// Basis is an immutable set of selected cells together with its row and
// column projections.
type Basis interface {
	Type() Type
	// ActiveCellID returns the anchor for range and extension operations.
	ActiveCellID() (string, bool)
	CellIDs() idset.Set
	RowIDs() idset.Set
	ColumnIDs() idset.Set
	PasteOperation() PasteOperation
	// FullySelectedColumnIDs returns the selected columns in which every row
	// of p is selected.
	FullySelectedColumnIDs(p *plane.Plane) idset.Set
	// AdaptToModifiedPlane re-derives the basis for newPlane.
	AdaptToModifiedPlane(oldPlane, newPlane *plane.Plane) Basis
}

// Mover is implemented by variants that handle arrow-key movement themselves.
type Mover interface {
	CollapsedAndMoved(d direction.Direction, p *plane.Plane) Basis
}

// selection is the payload shared by all variants. The three id sets are
// computed once at construction.
type selection struct {
	activeCellID string
	hasActive    bool
	cells        []cellid.Cell
	cellIDs      idset.Set
	rowIDs       idset.Set
	columnIDs    idset.Set
}

func newSelection(cells []cellid.Cell) selection {
	seen := make(map[string]struct{}, len(cells))
	unique := make([]cellid.Cell, 0, len(cells))
	ids := make([]string, 0, len(cells))
	rowIDs := make([]string, 0)
	columnIDs := make([]string, 0)
	for _, c := range cells {
		id := c.ID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, c)
		ids = append(ids, id)
		rowIDs = append(rowIDs, c.RowID)
		columnIDs = append(columnIDs, c.ColumnID)
	}
	return selection{
		cells:     unique,
		cellIDs:   idset.New(ids...),
		rowIDs:    idset.New(rowIDs...),
		columnIDs: idset.New(columnIDs...),
	}
}

func (s selection) ActiveCellID() (string, bool) { return s.activeCellID, s.hasActive }
func (s selection) CellIDs() idset.Set           { return s.cellIDs }
func (s selection) RowIDs() idset.Set            { return s.rowIDs }
func (s selection) ColumnIDs() idset.Set         { return s.columnIDs }

// fullySelectedColumnIDs finds the columns whose every plane row is selected.
// Rectangular selections are answered without scanning the cells.
func fullySelectedColumnIDs(p *plane.Plane, s selection) idset.Set {
	rowCount := p.RowIDs().Len()
	columnCount := s.columnIDs.Len()
	if columnCount == 0 || s.rowIDs.Len() < rowCount {
		return idset.Set{}
	}
	if s.cellIDs.Len() == rowCount*columnCount {
		return s.columnIDs
	}
	counts := make(map[string]int, columnCount)
	for _, c := range s.cells {
		if p.RowIDs().Has(c.RowID) {
			counts[c.ColumnID]++
		}
	}
	return s.columnIDs.Filter(func(columnID string) bool {
		return counts[columnID] == rowCount
	})
}
