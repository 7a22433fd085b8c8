package sheetselect

import (
	"fmt"
)

// OperationError reports which selection operation rejected its input.
type OperationError struct {
	Op  string // "ofRowRange", "ofColumnRange", "ofDataCellRange", "ofOneCell", "collapsedAndMoved", "resized"
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("sheet selection %s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates a new OperationError.
func NewOperationError(op string, err error) *OperationError {
	return &OperationError{
		Op:  op,
		Err: err,
	}
}
