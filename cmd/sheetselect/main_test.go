package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func runSelectTo(t *testing.T, cmds []string, onlySelection bool) map[string]any {
	t.Helper()
	input := writeTestBook(t)
	outputPath = filepath.Join(t.TempDir(), "out.json")
	commands, selectionOnly, pretty, copyTSV = cmds, onlySelection, false, false
	pageSize, sheetName, noHeader, noPlaceholder = 0, "", false, false
	t.Cleanup(func() {
		outputPath, commands, selectionOnly = "", nil, false
	})

	if err := runSelect(&cobra.Command{}, []string{input}); err != nil {
		t.Fatalf("runSelect failed: %v", err)
	}
	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	return decoded
}

func TestRunSelectReport(t *testing.T) {
	decoded := runSelectTo(t, []string{"range A2:B3"}, false)
	selection, ok := decoded["selection"].(map[string]any)
	if !ok {
		t.Fatalf("Expected selection object, got %v", decoded)
	}
	if selection["range"] != "A2:B3" {
		t.Errorf("Expected range A2:B3, got %v", selection["range"])
	}
	if _, ok := decoded["grid"]; !ok {
		t.Errorf("Expected grid in full report")
	}
}

func TestRunSelectSelectionOnly(t *testing.T) {
	decoded := runSelectTo(t, []string{"cells A2 B4"}, true)
	if _, ok := decoded["grid"]; ok {
		t.Errorf("Expected no grid in selection-only output")
	}
	if decoded["basis_type"] != "dataCells" {
		t.Errorf("Expected dataCells, got %v", decoded["basis_type"])
	}
	if decoded["active_cell_ref"] != "A2" {
		t.Errorf("Expected active A2, got %v", decoded["active_cell_ref"])
	}
	if decoded["range"] != "A2:B4" {
		t.Errorf("Expected range A2:B4, got %v", decoded["range"])
	}
}

func TestRunSelectBadCommand(t *testing.T) {
	input := writeTestBook(t)
	commands = []string{"jump"}
	t.Cleanup(func() { commands = nil })
	if err := runSelect(&cobra.Command{}, []string{input}); err == nil {
		t.Errorf("Expected an error for an unknown command")
	}
}
