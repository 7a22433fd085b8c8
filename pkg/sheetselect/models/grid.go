package models

// GridView represents the visible part of a sheet.
type GridView struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the grid was read from.
	SheetName string `json:"sheet_name"`
	// Page is the 1-based page number.
	Page int `json:"page"`
	// PageCount is the number of pages (1 when paging is off).
	PageCount int `json:"page_count"`
	// RowIDs lists the data rows on the page.
	RowIDs []string `json:"row_ids"`
	// ColumnIDs lists the visible columns.
	ColumnIDs []string `json:"column_ids"`
	// Headers maps column id to its label (omitted without a header row).
	Headers map[string]string `json:"headers,omitempty"`
	// PlaceholderRowID is the "add row" placeholder id (omitted if disabled).
	PlaceholderRowID string `json:"placeholder_row_id,omitempty"`
	// SortColumnID is the column rows are sorted by (omitted if unsorted).
	SortColumnID string `json:"sort_column_id,omitempty"`
	// SortDescending is true when the sort order is descending.
	SortDescending bool `json:"sort_descending,omitempty"`
}
