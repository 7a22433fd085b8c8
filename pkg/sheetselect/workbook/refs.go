package workbook

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/xuri/excelize/v2"
)

// RefToCellID converts an A1 reference like "$B$3" to the cell id "3-B".
func RefToCellID(ref string) (string, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	return cellid.Make(strconv.Itoa(row), name), nil
}

// CellIDToRef converts a cell id like "3-B" to the A1 reference "B3".
// The placeholder row has no sheet reference.
func CellIDToRef(cellID string) (string, error) {
	cell, err := cellid.Parse(cellID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRef, err)
	}
	row, err := strconv.Atoi(cell.RowID)
	if err != nil {
		return "", fmt.Errorf("%w: row %q", ErrInvalidRef, cell.RowID)
	}
	ref, err := excelize.JoinCellName(cell.ColumnID, row)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidRef, cellID)
	}
	return ref, nil
}

// ParseRange parses a range like "A1:C4" into its two corner cell ids.
// A single reference yields the same cell id twice.
func ParseRange(rangeStr string) (string, string, error) {
	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRef, rangeStr)
	}
	start, err := RefToCellID(parts[0])
	if err != nil {
		return "", "", err
	}
	if len(parts) == 1 {
		return start, start, nil
	}
	end, err := RefToCellID(parts[1])
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}

// RangeRef renders the rectangle enclosing cellIDs in A1 notation, e.g.
// "B2:D4". A single cell renders as one reference. Placeholder cells are
// skipped and no remaining cells yield "".
func RangeRef(cellIDs iter.Seq[string]) (string, error) {
	minCol, minRow, maxCol, maxRow := 0, 0, 0, 0
	for cellID := range cellIDs {
		cell, err := cellid.Parse(cellID)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidRef, err)
		}
		if cell.RowID == PlaceholderRowID {
			continue
		}
		ref, err := CellIDToRef(cellID)
		if err != nil {
			return "", err
		}
		col, row, err := excelize.CellNameToCoordinates(ref)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidRef, cellID)
		}
		if minRow == 0 {
			minCol, minRow, maxCol, maxRow = col, row, col, row
			continue
		}
		minCol, maxCol = min(minCol, col), max(maxCol, col)
		minRow, maxRow = min(minRow, row), max(maxRow, row)
	}
	if minRow == 0 {
		return "", nil
	}
	start, err := excelize.CoordinatesToCellName(minCol, minRow)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(maxCol, maxRow)
	if err != nil {
		return "", err
	}
	if start == end {
		return start, nil
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}
