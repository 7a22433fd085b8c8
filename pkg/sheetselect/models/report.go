package models

// Report is the result of running a command script against a sheet.
type Report struct {
	// Commands lists the commands that were applied, in order.
	Commands []string `json:"commands"`
	// Grid describes the grid after the last command.
	Grid GridView `json:"grid"`
	// Selection describes the selection after the last command.
	Selection SelectionView `json:"selection"`
	// TSV is the clipboard text of the selection (omitted if empty).
	TSV string `json:"tsv,omitempty"`
}
