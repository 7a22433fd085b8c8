package command

import (
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/clipboard"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/models"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/workbook"
)

// Describe converts a selection to its reporting model. Refs are only
// filled in for cells that exist on the sheet.
func Describe(sel sheetselect.SheetSelection) models.SelectionView {
	v := models.SelectionView{
		BasisType:              string(sel.BasisType()),
		CellIDs:                list(sel.CellIDs().Values()),
		RowIDs:                 list(sel.RowIDs().Values()),
		ColumnIDs:              list(sel.ColumnIDs().Values()),
		FullySelectedColumnIDs: list(sel.FullySelectedColumnIDs().Values()),
		PasteOperation:         string(sel.PasteOperation()),
	}
	if active, ok := sel.ActiveCellID(); ok {
		v.ActiveCellID = active
		if ref, err := workbook.CellIDToRef(active); err == nil {
			v.ActiveCellRef = ref
		}
	}
	if ref, err := workbook.RangeRef(sel.CellIDs().All()); err == nil {
		v.Range = ref
	}
	return v
}

// Report summarizes the session after the applied commands.
func (s *Session) Report() (*models.Report, error) {
	tsv, err := clipboard.TSV(s.selection, s.grid.Value)
	if err != nil {
		return nil, err
	}
	return &models.Report{
		Commands:  list(s.Applied()),
		Grid:      s.grid.Model(s.view, s.selection.Plane()),
		Selection: Describe(s.selection),
		TSV:       tsv,
	}, nil
}

// list keeps empty lists as [] in JSON output.
func list(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
