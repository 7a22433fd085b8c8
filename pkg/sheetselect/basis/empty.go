package basis

import (
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/idset"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/plane"
)

type empty struct {
	selection
}

// Empty returns the basis with nothing selected.
func Empty() Basis {
	return empty{}
}

func (b empty) Type() Type { return TypeEmpty }

func (b empty) PasteOperation() PasteOperation { return PasteNone }

func (b empty) FullySelectedColumnIDs(*plane.Plane) idset.Set { return idset.Set{} }

func (b empty) AdaptToModifiedPlane(_, _ *plane.Plane) Basis { return b }
