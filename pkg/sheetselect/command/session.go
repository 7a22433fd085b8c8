// Package command drives a selection over a workbook grid with a small
// line-oriented command language.
package command

import (
	"slices"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/workbook"
)

// Session holds a grid, the view it is shown through and the selection
// on the resulting plane.
type Session struct {
	grid      *workbook.Grid
	view      workbook.View
	selection sheetselect.SheetSelection
	applied   []string
}

// NewSession starts an empty selection on the first page of g.
func NewSession(g *workbook.Grid) (*Session, error) {
	view := workbook.View{Page: 1}
	p, err := g.Plane(view)
	if err != nil {
		return nil, err
	}
	return &Session{
		grid:      g,
		view:      view,
		selection: sheetselect.New(p),
	}, nil
}

// Grid returns the loaded grid.
func (s *Session) Grid() *workbook.Grid { return s.grid }

// View returns the current view.
func (s *Session) View() workbook.View {
	v := s.view
	v.HiddenColumnIDs = slices.Clone(v.HiddenColumnIDs)
	return v
}

// Selection returns the current selection.
func (s *Session) Selection() sheetselect.SheetSelection { return s.selection }

// Applied returns the commands applied so far.
func (s *Session) Applied() []string { return slices.Clone(s.applied) }

// SetSelection replaces the current selection.
func (s *Session) SetSelection(sel sheetselect.SheetSelection) { s.selection = sel }

// SetView switches to view and carries the selection over to the new plane.
func (s *Session) SetView(view workbook.View) error {
	view.Page = s.grid.ClampPage(view.Page)
	p, err := s.grid.Plane(view)
	if err != nil {
		return err
	}
	s.view = view
	s.selection = s.selection.ForNewPlane(p)
	return nil
}

// Run applies each line in order and stops at the first error.
func (s *Session) Run(lines []string) error {
	for _, line := range lines {
		if err := s.Apply(line); err != nil {
			return err
		}
	}
	return nil
}
