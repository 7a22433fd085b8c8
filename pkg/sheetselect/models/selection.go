// Package models defines data structures for reporting selections.
package models

// SelectionView represents a selection as seen by the clipboard and UI layers.
type SelectionView struct {
	// BasisType is the selection variant (dataCells, emptyColumns, placeholderCell, empty).
	BasisType string `json:"basis_type"`
	// ActiveCellID is the anchor cell id (omitted if none).
	ActiveCellID string `json:"active_cell_id,omitempty"`
	// ActiveCellRef is the anchor cell in A1 notation (omitted if none or placeholder).
	ActiveCellRef string `json:"active_cell_ref,omitempty"`
	// Range is the selection's bounding rectangle in A1 notation (e.g., "B2:D4").
	Range string `json:"range,omitempty"`
	// CellIDs lists the selected cell ids in row-major order.
	CellIDs []string `json:"cell_ids"`
	// RowIDs lists the rows with at least one selected cell.
	RowIDs []string `json:"row_ids"`
	// ColumnIDs lists the columns with at least one selected cell.
	ColumnIDs []string `json:"column_ids"`
	// FullySelectedColumnIDs lists the columns whose every row is selected.
	FullySelectedColumnIDs []string `json:"fully_selected_column_ids"`
	// PasteOperation is what pasting would do (none, insert, update).
	PasteOperation string `json:"paste_operation"`
}
