// Package output serializes reports to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/models"
)

// ToJSON serializes a report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// SelectionToJSON serializes a single selection view.
func SelectionToJSON(view *models.SelectionView, pretty bool) ([]byte, error) {
	return marshal(view, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
