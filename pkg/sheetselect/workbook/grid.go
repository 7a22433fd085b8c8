package workbook

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/models"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/plane"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/series"
	"github.com/xuri/excelize/v2"
)

// Grid is the used range of one sheet. Row ids are 1-based sheet row
// numbers and column ids are column letters, so a cell id like "3-B"
// names sheet cell B3.
type Grid struct {
	bookName  string
	sheetName string
	rowIDs    []string
	columnIDs []string
	headers   map[string]string
	values    map[string]string
	opts      Options
}

// View selects which part of a grid becomes the plane.
type View struct {
	// Page is the 1-based page. Out of range values are clamped.
	Page int
	// SortColumnID sorts rows by the values of this column. Empty keeps sheet order.
	SortColumnID string
	// SortDescending reverses the sort order.
	SortDescending bool
	// HiddenColumnIDs are left out of the plane.
	HiddenColumnIDs []string
}

// Load opens an xlsx file and reads one sheet into a grid.
func Load(path string, opts Options) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return FromFile(f, filepath.Base(path), opts)
}

// FromFile reads one sheet of an open workbook into a grid.
func FromFile(f *excelize.File, bookName string, opts Options) (*Grid, error) {
	sheetName := opts.Sheet
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrSheetNotFound
		}
		sheetName = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		bookName:  bookName,
		sheetName: sheetName,
		headers:   make(map[string]string),
		values:    make(map[string]string),
		opts:      opts,
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return g, nil
	}

	for colIdx := minCol; colIdx <= maxCol; colIdx++ {
		name, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return nil, err
		}
		g.columnIDs = append(g.columnIDs, name)
	}

	firstDataRow := minRow
	if opts.ShouldUseHeaderRow() {
		for i, columnID := range g.columnIDs {
			if label := cellAt(rows, minRow, minCol+i); label != "" {
				g.headers[columnID] = label
			}
		}
		firstDataRow++
	}

	for rowIdx := firstDataRow; rowIdx <= maxRow; rowIdx++ {
		rowID := strconv.Itoa(rowIdx + 1)
		g.rowIDs = append(g.rowIDs, rowID)
		for i, columnID := range g.columnIDs {
			if value := cellAt(rows, rowIdx, minCol+i); value != "" {
				g.values[cellid.Make(rowID, columnID)] = value
			}
		}
	}

	return g, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return minRow, maxRow, minCol, maxCol
}

func cellAt(rows [][]string, rowIdx, colIdx int) string {
	if rowIdx >= len(rows) || colIdx >= len(rows[rowIdx]) {
		return ""
	}
	return rows[rowIdx][colIdx]
}

// BookName returns the workbook file name.
func (g *Grid) BookName() string { return g.bookName }

// SheetName returns the loaded sheet.
func (g *Grid) SheetName() string { return g.sheetName }

// RowIDs returns every data row id in sheet order.
func (g *Grid) RowIDs() []string { return slices.Clone(g.rowIDs) }

// ColumnIDs returns every column id in sheet order.
func (g *Grid) ColumnIDs() []string { return slices.Clone(g.columnIDs) }

// HasColumn reports whether columnID is part of the used range.
func (g *Grid) HasColumn(columnID string) bool { return slices.Contains(g.columnIDs, columnID) }

// Header returns the label of a column read from the header row.
func (g *Grid) Header(columnID string) (string, bool) {
	label, ok := g.headers[columnID]
	return label, ok
}

// Value returns the text of a cell. Cells without a value read as "".
func (g *Grid) Value(cellID string) string {
	return g.values[cellID]
}

// PageCount returns the number of pages. It is at least 1.
func (g *Grid) PageCount() int {
	size := g.opts.PageSize
	if size <= 0 || len(g.rowIDs) == 0 {
		return 1
	}
	return (len(g.rowIDs) + size - 1) / size
}

// ClampPage returns page limited to [1, PageCount()].
func (g *Grid) ClampPage(page int) int {
	return min(max(page, 1), g.PageCount())
}

// Plane builds the plane visible through view.
func (g *Grid) Plane(view View) (*plane.Plane, error) {
	columnIDs := make([]string, 0, len(g.columnIDs))
	for _, columnID := range g.columnIDs {
		if !slices.Contains(view.HiddenColumnIDs, columnID) {
			columnIDs = append(columnIDs, columnID)
		}
	}

	rowIDs := g.RowIDs()
	if view.SortColumnID != "" {
		slices.SortStableFunc(rowIDs, func(a, b string) int {
			return compareValues(
				g.Value(cellid.Make(a, view.SortColumnID)),
				g.Value(cellid.Make(b, view.SortColumnID)),
				view.SortDescending,
			)
		})
	}

	if size := g.opts.PageSize; size > 0 && len(rowIDs) > 0 {
		start := (g.ClampPage(view.Page) - 1) * size
		end := min(start+size, len(rowIDs))
		rowIDs = rowIDs[start:end]
	}

	rows, err := series.New(rowIDs...)
	if err != nil {
		return nil, err
	}
	columns, err := series.New(columnIDs...)
	if err != nil {
		return nil, err
	}
	if !g.opts.ShouldAddPlaceholder() {
		return plane.New(rows, columns), nil
	}
	return plane.NewWithPlaceholder(rows, columns, PlaceholderRowID)
}

// Model describes the grid as seen through view.
func (g *Grid) Model(view View, p *plane.Plane) models.GridView {
	gv := models.GridView{
		BookName:       g.bookName,
		SheetName:      g.sheetName,
		Page:           g.ClampPage(view.Page),
		PageCount:      g.PageCount(),
		RowIDs:         p.RowIDs().Values(),
		ColumnIDs:      p.ColumnIDs().Values(),
		SortColumnID:   view.SortColumnID,
		SortDescending: view.SortDescending && view.SortColumnID != "",
	}
	if rowID, ok := p.PlaceholderRowID(); ok {
		gv.PlaceholderRowID = rowID
	}
	for _, columnID := range gv.ColumnIDs {
		if label, ok := g.headers[columnID]; ok {
			if gv.Headers == nil {
				gv.Headers = make(map[string]string)
			}
			gv.Headers[columnID] = label
		}
	}
	return gv
}

// compareValues orders numbers before text and empty cells last.
// Numbers compare numerically and text lexically. Empty cells stay last
// in both directions.
func compareValues(a, b string, descending bool) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	var c int
	af, aNum := parseNumber(a)
	bf, bNum := parseNumber(b)
	switch {
	case aNum && bNum:
		c = cmp.Compare(af, bf)
	case aNum:
		c = -1
	case bNum:
		c = 1
	default:
		c = cmp.Compare(a, b)
	}
	if descending {
		return -c
	}
	return c
}

// parseNumber attempts to parse a cell value as a number.
func parseNumber(s string) (float64, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return 0, false
}
