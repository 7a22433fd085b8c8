// Package workbook loads an xlsx sheet as a grid of row and column ids that
// a selection can be made on.
package workbook

// PlaceholderRowID is the id of the "add row" placeholder below the data rows.
const PlaceholderRowID = "+"

// Options configures how a sheet is loaded and paged.
type Options struct {
	// Sheet is the sheet to load. If empty, the first sheet is used.
	Sheet string
	// HeaderRow specifies whether the first used row holds column labels.
	// If nil, defaults to true.
	HeaderRow *bool
	// PageSize is the number of data rows per page. Zero or less disables paging.
	PageSize int
	// Placeholder specifies whether planes carry the placeholder row.
	// If nil, defaults to true.
	Placeholder *bool
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldUseHeaderRow returns whether the first used row is a header.
func (o Options) ShouldUseHeaderRow() bool {
	if o.HeaderRow != nil {
		return *o.HeaderRow
	}
	return true
}

// ShouldAddPlaceholder returns whether planes carry the placeholder row.
func (o Options) ShouldAddPlaceholder() bool {
	if o.Placeholder != nil {
		return *o.Placeholder
	}
	return true
}
