package basis

import (
	"slices"
	"testing"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/idset"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/series"
)

func TestFitToTransformation(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		old      []string
		new      []string
		expected []string
		ok       bool
	}{
		{"surviving ids stick", []string{"b", "c"}, []string{"a", "b", "c", "d"}, []string{"d", "c", "x", "b"}, []string{"c", "x", "b"}, true},
		{"one survivor", []string{"b", "c"}, []string{"a", "b", "c"}, []string{"c", "z"}, []string{"c"}, true},
		{"page turn keeps position", []string{"2", "3"}, []string{"1", "2", "3", "4"}, []string{"5", "6", "7", "8"}, []string{"6", "7"}, true},
		{"shifted back to fit", []string{"3", "4"}, []string{"1", "2", "3", "4"}, []string{"5", "6", "7"}, []string{"6", "7"}, true},
		{"width capped", []string{"1", "2", "3", "4"}, []string{"1", "2", "3", "4"}, []string{"5", "6"}, []string{"5", "6"}, true},
		{"new series empty", []string{"1"}, []string{"1"}, nil, nil, false},
		{"nothing selected", nil, []string{"1"}, []string{"2"}, nil, false},
	}

	for _, tt := range tests {
		oldSeries, err := series.New(tt.old...)
		if err != nil {
			t.Fatal(err)
		}
		newSeries, err := series.New(tt.new...)
		if err != nil {
			t.Fatal(err)
		}
		result, ok := FitToTransformation(idset.New(tt.selected...), oldSeries, newSeries)
		if ok != tt.ok || !slices.Equal(result, tt.expected) {
			t.Errorf("%s: FitToTransformation = %v, %v, expected %v, %v",
				tt.name, result, ok, tt.expected, tt.ok)
		}
	}
}
