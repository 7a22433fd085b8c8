package sheetselect

import (
	"slices"
	"testing"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/basis"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/direction"
)

func TestCollapsedAndMoved(t *testing.T) {
	sel := New(grid4(t))
	tests := []struct {
		from     string
		d        direction.Direction
		expected string
		kind     basis.Type
	}{
		{id("r2", "c2"), direction.Down, id("r3", "c2"), basis.TypeDataCells},
		{id("r2", "c2"), direction.Up, id("r1", "c2"), basis.TypeDataCells},
		{id("r2", "c2"), direction.Left, id("r2", "c1"), basis.TypeDataCells},
		{id("r2", "c2"), direction.Right, id("r2", "c3"), basis.TypeDataCells},
		{id("r1", "c1"), direction.Up, id("r1", "c1"), basis.TypeDataCells},
		{id("r4", "c3"), direction.Down, id("PH", "c3"), basis.TypePlaceholderCell},
		{id("PH", "c3"), direction.Up, id("r4", "c3"), basis.TypeDataCells},
		{id("PH", "c3"), direction.Down, id("PH", "c3"), basis.TypePlaceholderCell},
	}

	for _, tt := range tests {
		s := mustSelection(t)(sel.OfOneCell(tt.from))
		moved, err := s.CollapsedAndMoved(tt.d)
		if err != nil {
			t.Fatalf("CollapsedAndMoved(%v) from %q failed: %v", tt.d, tt.from, err)
		}
		if !slices.Equal(moved.CellIDs().Values(), []string{tt.expected}) || moved.BasisType() != tt.kind {
			t.Errorf("CollapsedAndMoved(%v) from %q = %v (%v), expected [%s] (%v)",
				tt.d, tt.from, moved.CellIDs().Values(), moved.BasisType(), tt.expected, tt.kind)
		}
	}
}

func TestCollapsedAndMovedCollapsesRange(t *testing.T) {
	s := mustSelection(t)(New(grid4(t)).OfDataCellRange(id("r1", "c1"), id("r3", "c3")))
	moved := mustSelection(t)(s.CollapsedAndMoved(direction.Right))
	if !slices.Equal(moved.CellIDs().Values(), []string{id("r1", "c2")}) {
		t.Errorf("CellIDs = %v, expected [r1-c2]", moved.CellIDs().Values())
	}
	// at the edge the selection collapses onto the active cell
	edge := mustSelection(t)(s.CollapsedAndMoved(direction.Up))
	if !slices.Equal(edge.CellIDs().Values(), []string{id("r1", "c1")}) {
		t.Errorf("CellIDs = %v, expected [r1-c1]", edge.CellIDs().Values())
	}
}

func TestCollapsedAndMovedWithoutActiveCell(t *testing.T) {
	s := mustSelection(t)(New(grid4(t)).CollapsedAndMoved(direction.Down))
	if !slices.Equal(s.CellIDs().Values(), []string{id("r1", "c1")}) {
		t.Errorf("CellIDs = %v, expected [r1-c1]", s.CellIDs().Values())
	}
}

func TestCollapsedAndMovedEmptyColumns(t *testing.T) {
	sel := New(makePlane(t, nil, []string{"c1", "c2", "c3"}, "PH"))
	s := mustSelection(t)(sel.OfColumnRange("c1", "c2"))
	moved := mustSelection(t)(s.CollapsedAndMoved(direction.Right))
	if moved.BasisType() != basis.TypeEmptyColumns || !slices.Equal(moved.ColumnIDs().Values(), []string{"c3"}) {
		t.Errorf("moved = %v %v, expected emptyColumns [c3]", moved.BasisType(), moved.ColumnIDs().Values())
	}
	resized := mustSelection(t)(moved.Resized(direction.Left))
	if !slices.Equal(resized.ColumnIDs().Values(), []string{"c2"}) {
		t.Errorf("Resized on empty columns should move, got %v", resized.ColumnIDs().Values())
	}
}

func TestResizedSingleCellGrows(t *testing.T) {
	sel := New(grid4(t))
	tests := []struct {
		d        direction.Direction
		expected []string
	}{
		{direction.Down, []string{id("r2", "c2"), id("r3", "c2")}},
		{direction.Up, []string{id("r1", "c2"), id("r2", "c2")}},
		{direction.Left, []string{id("r2", "c1"), id("r2", "c2")}},
		{direction.Right, []string{id("r2", "c2"), id("r2", "c3")}},
	}
	for _, tt := range tests {
		s := mustSelection(t)(sel.OfOneCell(id("r2", "c2")))
		resized := mustSelection(t)(s.Resized(tt.d))
		if !slices.Equal(resized.CellIDs().Values(), tt.expected) {
			t.Errorf("Resized(%v) = %v, expected %v", tt.d, resized.CellIDs().Values(), tt.expected)
		}
		if activeOf(t, resized) != id("r2", "c2") {
			t.Errorf("Resized(%v) moved the active cell to %q", tt.d, activeOf(t, resized))
		}
	}
}

func TestResizedShrinksTowardActiveEdge(t *testing.T) {
	// rows r1..r3 with the active cell on the bottom edge
	s := mustSelection(t)(New(grid4(t)).OfDataCellRange(id("r3", "c1"), id("r1", "c1")))
	s = mustSelection(t)(s.Resized(direction.Down))
	if !slices.Equal(s.RowIDs().Values(), []string{"r2", "r3"}) {
		t.Fatalf("RowIDs = %v, expected [r2 r3]", s.RowIDs().Values())
	}
	s = mustSelection(t)(s.Resized(direction.Down))
	if !slices.Equal(s.RowIDs().Values(), []string{"r3"}) {
		t.Fatalf("RowIDs = %v, expected [r3]", s.RowIDs().Values())
	}
	if activeOf(t, s) != id("r3", "c1") {
		t.Errorf("ActiveCellID = %q, expected r3-c1", activeOf(t, s))
	}
	// a single row grows again
	s = mustSelection(t)(s.Resized(direction.Down))
	if !slices.Equal(s.RowIDs().Values(), []string{"r3", "r4"}) {
		t.Errorf("RowIDs = %v, expected [r3 r4]", s.RowIDs().Values())
	}
}

func TestResizedGrowsAwayFromActiveEdge(t *testing.T) {
	s := mustSelection(t)(New(grid4(t)).OfDataCellRange(id("r1", "c1"), id("r2", "c2")))
	s = mustSelection(t)(s.Resized(direction.Right))
	if !slices.Equal(s.ColumnIDs().Values(), []string{"c1", "c2", "c3"}) {
		t.Errorf("ColumnIDs = %v, expected [c1 c2 c3]", s.ColumnIDs().Values())
	}
	s = mustSelection(t)(s.Resized(direction.Left))
	if !slices.Equal(s.ColumnIDs().Values(), []string{"c1", "c2"}) {
		t.Errorf("ColumnIDs = %v, expected [c1 c2]", s.ColumnIDs().Values())
	}
}

func TestResizedClampsAtGridEdge(t *testing.T) {
	s := mustSelection(t)(New(grid4(t)).OfDataCellRange(id("r4", "c4"), id("r4", "c4")))
	s = mustSelection(t)(s.Resized(direction.Down))
	if !slices.Equal(s.CellIDs().Values(), []string{id("r4", "c4")}) {
		t.Errorf("CellIDs = %v, expected [r4-c4]", s.CellIDs().Values())
	}
	if s.ContainsRow("PH") {
		t.Errorf("resize must never include the placeholder row")
	}
}

func TestResizedPlaceholderFallsBackToMove(t *testing.T) {
	s := mustSelection(t)(New(grid4(t)).OfOneCell(id("PH", "c2")))
	s = mustSelection(t)(s.Resized(direction.Up))
	if !slices.Equal(s.CellIDs().Values(), []string{id("r4", "c2")}) {
		t.Errorf("CellIDs = %v, expected [r4-c2]", s.CellIDs().Values())
	}
}
