package workbook

import "errors"

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidRef indicates a cell reference or cell id that does not name a sheet cell.
var ErrInvalidRef = errors.New("invalid cell reference")
