package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/models"
)

func TestToJSON(t *testing.T) {
	report := &models.Report{
		Commands: []string{"all"},
		Grid:     models.GridView{BookName: "book.xlsx", SheetName: "Sheet1", Page: 1, PageCount: 1},
		Selection: models.SelectionView{
			BasisType:      "dataCells",
			ActiveCellID:   "2-A",
			CellIDs:        []string{"2-A"},
			RowIDs:         []string{"2"},
			ColumnIDs:      []string{"A"},
			PasteOperation: "update",
		},
	}

	data, err := ToJSON(report, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	selection, ok := decoded["selection"].(map[string]any)
	if !ok {
		t.Fatalf("Expected selection object, got %v", decoded["selection"])
	}
	if selection["active_cell_id"] != "2-A" {
		t.Errorf("Expected active_cell_id 2-A, got %v", selection["active_cell_id"])
	}
	if _, present := decoded["tsv"]; present {
		t.Errorf("Expected empty tsv to be omitted")
	}

	pretty, err := ToJSON(report, true)
	if err != nil {
		t.Fatalf("ToJSON pretty failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Errorf("Expected indented output, got %s", pretty)
	}
}

func TestSelectionToJSONKeepsEmptyLists(t *testing.T) {
	data, err := SelectionToJSON(&models.SelectionView{
		BasisType:      "empty",
		CellIDs:        []string{},
		RowIDs:         []string{},
		ColumnIDs:      []string{},
		PasteOperation: "none",
	}, false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"cell_ids":[]`) {
		t.Errorf("Expected empty cell_ids list, got %s", data)
	}
}
