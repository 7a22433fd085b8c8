package basis

import (
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/idset"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/series"
)

// FitToTransformation re-projects a contiguous selected range from oldSeries
// onto newSeries.
//
// When any selected value survives in newSeries, the range spans the
// surviving min and max. Otherwise the range keeps its old width (capped to
// the new length) and its old starting index, shifted back as far as needed
// to stay on the series. It returns false when nothing can be placed.
func FitToTransformation(selected idset.Set, oldSeries, newSeries *series.Series[string]) ([]string, bool) {
	if lo, ok := newSeries.Min(selected.All()); ok {
		hi, _ := newSeries.Max(selected.All())
		loIndex, _ := newSeries.IndexOf(lo)
		hiIndex, _ := newSeries.IndexOf(hi)
		return newSeries.Slice(loIndex, hiIndex+1), true
	}

	oldLo, ok := oldSeries.Min(selected.All())
	if !ok || newSeries.Len() == 0 {
		return nil, false
	}
	oldHi, _ := oldSeries.Max(selected.All())
	loIndex, _ := oldSeries.IndexOf(oldLo)
	hiIndex, _ := oldSeries.IndexOf(oldHi)

	width := min(hiIndex-loIndex+1, newSeries.Len())
	overflow := max(loIndex+width-newSeries.Len(), 0)
	start := loIndex - overflow
	return newSeries.Slice(start, start+width), true
}
