package plane

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/direction"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/series"
)

func newTestPlane(t *testing.T) *Plane {
	t.Helper()
	rows, err := series.New("r1", "r2", "r3", "r4")
	if err != nil {
		t.Fatal(err)
	}
	columns, err := series.New("c1", "c2", "c3", "c4")
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewWithPlaceholder(rows, columns, "PH")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func ids(seq iter.Seq[cellid.Cell]) []string {
	var out []string
	for c := range seq {
		out = append(out, c.ID())
	}
	return out
}

func TestAllDataCells(t *testing.T) {
	p := newTestPlane(t)
	cells := ids(p.AllDataCells())
	if len(cells) != 16 {
		t.Fatalf("Expected 16 cells, got %d", len(cells))
	}
	if cells[0] != cellid.Make("r1", "c1") || cells[1] != cellid.Make("r1", "c2") {
		t.Errorf("Expected row-major order, got %v", cells[:2])
	}
	if cells[15] != cellid.Make("r4", "c4") {
		t.Errorf("Expected last cell r4-c4, got %s", cells[15])
	}
	// restartable
	if again := ids(p.AllDataCells()); !slices.Equal(again, cells) {
		t.Errorf("Second iteration differs: %v", again)
	}
}

func TestFlexibleRowRangeSubstitutesPlaceholder(t *testing.T) {
	p := newTestPlane(t)
	flexible, err := p.DataCellsInFlexibleRowRange("r3", "PH")
	if err != nil {
		t.Fatalf("DataCellsInFlexibleRowRange failed: %v", err)
	}
	plain, err := p.DataCellsInRowRange("r3", "r4")
	if err != nil {
		t.Fatalf("DataCellsInRowRange failed: %v", err)
	}
	a, b := ids(flexible), ids(plain)
	if len(a) != 8 || !slices.Equal(a, b) {
		t.Errorf("flexible range = %v, expected %v", a, b)
	}
}

func TestRowRangeRejectsPlaceholder(t *testing.T) {
	p := newTestPlane(t)
	if _, err := p.DataCellsInRowRange("r3", "PH"); !errors.Is(err, series.ErrValueNotFound) {
		t.Errorf("Expected ErrValueNotFound, got %v", err)
	}
}

func TestColumnRange(t *testing.T) {
	p := newTestPlane(t)
	seq, err := p.DataCellsInColumnRange("c3", "c2")
	if err != nil {
		t.Fatal(err)
	}
	cells := ids(seq)
	if len(cells) != 8 {
		t.Fatalf("Expected 8 cells, got %d", len(cells))
	}
	if cells[0] != cellid.Make("r1", "c2") || cells[1] != cellid.Make("r1", "c3") {
		t.Errorf("Unexpected order: %v", cells[:2])
	}
}

func TestFlexibleCellRange(t *testing.T) {
	p := newTestPlane(t)
	seq, err := p.DataCellsInFlexibleCellRange(cellid.Make("PH", "c2"), cellid.Make("r3", "c1"))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		cellid.Make("r3", "c1"), cellid.Make("r3", "c2"),
		cellid.Make("r4", "c1"), cellid.Make("r4", "c2"),
	}
	if got := ids(seq); !slices.Equal(got, expected) {
		t.Errorf("DataCellsInFlexibleCellRange = %v, expected %v", got, expected)
	}
}

func TestAdjacentCell(t *testing.T) {
	p := newTestPlane(t)
	tests := []struct {
		from     string
		d        direction.Direction
		kind     AdjacentKind
		expected string
	}{
		{cellid.Make("r4", "c4"), direction.Down, AdjacentPlaceholderCell, cellid.Make("PH", "c4")},
		{cellid.Make("r1", "c1"), direction.Up, AdjacentNone, ""},
		{cellid.Make("r1", "c1"), direction.Left, AdjacentNone, ""},
		{cellid.Make("r1", "c4"), direction.Right, AdjacentNone, ""},
		{cellid.Make("r2", "c2"), direction.Right, AdjacentDataCell, cellid.Make("r2", "c3")},
		{cellid.Make("r2", "c2"), direction.Down, AdjacentDataCell, cellid.Make("r3", "c2")},
		{cellid.Make("PH", "c3"), direction.Up, AdjacentDataCell, cellid.Make("r4", "c3")},
		{cellid.Make("PH", "c3"), direction.Down, AdjacentNone, ""},
		{cellid.Make("PH", "c3"), direction.Right, AdjacentNone, ""},
	}

	for _, tt := range tests {
		result, err := p.AdjacentCell(tt.from, tt.d)
		if err != nil {
			t.Fatalf("AdjacentCell(%q, %v) failed: %v", tt.from, tt.d, err)
		}
		if result.Kind != tt.kind || result.CellID != tt.expected {
			t.Errorf("AdjacentCell(%q, %v) = %+v, expected {%v %s}",
				tt.from, tt.d, result, tt.kind, tt.expected)
		}
	}
}

func TestAdjacentCellWithoutPlaceholder(t *testing.T) {
	rows, _ := series.New("r1")
	columns, _ := series.New("c1")
	p := New(rows, columns)
	result, err := p.AdjacentCell(cellid.Make("r1", "c1"), direction.Down)
	if err != nil {
		t.Fatal(err)
	}
	if result.Kind != AdjacentNone {
		t.Errorf("Expected AdjacentNone, got %+v", result)
	}
}

func TestAdjacentCellMalformed(t *testing.T) {
	p := newTestPlane(t)
	if _, err := p.AdjacentCell("garbage", direction.Down); !errors.Is(err, cellid.ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestPlaceholderMustNotBeARow(t *testing.T) {
	rows, _ := series.New("r1", "r2")
	if _, err := NewWithPlaceholder(rows, nil, "r2"); !errors.Is(err, ErrPlaceholderInRows) {
		t.Errorf("Expected ErrPlaceholderInRows, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	a := newTestPlane(t)
	b := newTestPlane(t)
	if !a.Equal(b) {
		t.Errorf("structurally identical planes should be equal")
	}
	if a.Equal(New(a.RowIDs(), a.ColumnIDs())) {
		t.Errorf("planes with different placeholders should not be equal")
	}
}

func TestEmptyPlane(t *testing.T) {
	p := Empty()
	if p.HasResultRows() || p.HasPlaceholder() {
		t.Errorf("empty plane should have no rows and no placeholder")
	}
	if cells := ids(p.AllDataCells()); len(cells) != 0 {
		t.Errorf("Expected no cells, got %v", cells)
	}
}

func TestRowColumnIntersection(t *testing.T) {
	p := newTestPlane(t)
	cells := ids(p.DataCellsInRowColumnIntersection([]string{"r3", "r1", "PH"}, []string{"c2", "nope"}))
	expected := []string{cellid.Make("r1", "c2"), cellid.Make("r3", "c2")}
	if !slices.Equal(cells, expected) {
		t.Errorf("DataCellsInRowColumnIntersection = %v, expected %v", cells, expected)
	}
}
