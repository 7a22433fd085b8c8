package workbook

import (
	"errors"
	"slices"
	"testing"
)

func TestRefToCellID(t *testing.T) {
	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"B3", "3-B", false},
		{"$AA$10", "10-AA", false},
		{" C7 ", "7-C", false},
		{"", "", true},
		{"3B", "", true},
	}
	for _, tt := range tests {
		got, err := RefToCellID(tt.ref)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRef) {
				t.Errorf("RefToCellID(%q) error = %v, expected ErrInvalidRef", tt.ref, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("RefToCellID(%q) = %q, %v, expected %q", tt.ref, got, err, tt.want)
		}
	}
}

func TestCellIDToRef(t *testing.T) {
	tests := []struct {
		cellID  string
		want    string
		wantErr bool
	}{
		{"3-B", "B3", false},
		{"10-AA", "AA10", false},
		{PlaceholderRowID + "-B", "", true},
		{"nodelimiter", "", true},
	}
	for _, tt := range tests {
		got, err := CellIDToRef(tt.cellID)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRef) {
				t.Errorf("CellIDToRef(%q) error = %v, expected ErrInvalidRef", tt.cellID, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("CellIDToRef(%q) = %q, %v, expected %q", tt.cellID, got, err, tt.want)
		}
	}
}

func TestParseRange(t *testing.T) {
	a, b, err := ParseRange("$B$2:D4")
	if err != nil || a != "2-B" || b != "4-D" {
		t.Errorf("ParseRange = %q, %q, %v", a, b, err)
	}
	a, b, err = ParseRange("C3")
	if err != nil || a != "3-C" || b != "3-C" {
		t.Errorf("ParseRange single = %q, %q, %v", a, b, err)
	}
	if _, _, err := ParseRange("A1:B2:C3"); !errors.Is(err, ErrInvalidRef) {
		t.Errorf("Expected ErrInvalidRef, got %v", err)
	}
}

func TestRangeRef(t *testing.T) {
	tests := []struct {
		name    string
		cellIDs []string
		want    string
	}{
		{"none", nil, ""},
		{"one cell", []string{"3-B"}, "B3"},
		{"unordered", []string{"6-C", "3-D", "4-B"}, "B3:D6"},
		{"placeholder skipped", []string{PlaceholderRowID + "-B", "4-C"}, "C4"},
	}
	for _, tt := range tests {
		got, err := RangeRef(slices.Values(tt.cellIDs))
		if err != nil || got != tt.want {
			t.Errorf("RangeRef(%s) = %q, %v, expected %q", tt.name, got, err, tt.want)
		}
	}
}
