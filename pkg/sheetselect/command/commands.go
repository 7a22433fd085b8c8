package command

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetselect-go/pkg/sheetselect"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/direction"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/workbook"
)

// ErrUnknownCommand indicates a command verb that is not recognized.
var ErrUnknownCommand = errors.New("unknown command")

// ErrInvalidArgument indicates a missing or malformed command argument.
var ErrInvalidArgument = errors.New("invalid argument")

var moveKeys = map[string]direction.KeyEvent{
	"up":        {Key: direction.KeyArrowUp},
	"down":      {Key: direction.KeyArrowDown},
	"left":      {Key: direction.KeyArrowLeft},
	"right":     {Key: direction.KeyArrowRight},
	"tab":       {Key: direction.KeyTab},
	"shift+tab": {Key: direction.KeyTab, Shift: true},
}

// Apply parses and runs one command. Blank lines and lines starting with
// "#" are ignored. On error the session is left unchanged.
func (s *Session) Apply(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	if err := s.apply(verb, args); err != nil {
		return fmt.Errorf("%s: %w", strings.TrimSpace(line), err)
	}
	s.applied = append(s.applied, strings.Join(fields, " "))
	return nil
}

func (s *Session) apply(verb string, args []string) error {
	sel := s.selection

	if key, ok := moveKeys[verb]; ok {
		next, err := sel.CollapsedAndMoved(direction.FromKeyEvent(key))
		return s.set(next, err)
	}
	if name, ok := strings.CutPrefix(verb, "shift+"); ok {
		d, ok := direction.Parse(name)
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownCommand, verb)
		}
		next, err := sel.Resized(d)
		return s.set(next, err)
	}

	switch verb {
	case "all":
		return s.set(sel.OfAllDataCells(), nil)
	case "first":
		return s.set(sel.OfFirstDataCell(), nil)
	case "none":
		return s.set(sel.OfNoCells(), nil)
	case "cell", "draw":
		if err := wantArgs(args, 1, 1); err != nil {
			return err
		}
		id, err := resolveCell(args[0])
		if err != nil {
			return err
		}
		if verb == "draw" {
			return s.set(sel.DrawnToDataCell(id))
		}
		return s.set(sel.OfOneCell(id))
	case "range":
		if err := wantArgs(args, 1, 1); err != nil {
			return err
		}
		a, b, err := workbook.ParseRange(args[0])
		if err != nil {
			return err
		}
		return s.set(sel.OfDataCellRange(a, b))
	case "cells":
		if len(args) == 0 {
			return fmt.Errorf("%w: expected at least 1 argument", ErrInvalidArgument)
		}
		ids := make([]string, 0, len(args))
		for _, arg := range args {
			id, err := resolveCell(arg)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return s.set(sel.OfDataCells(ids))
	case "rows":
		if err := wantArgs(args, 1, 2); err != nil {
			return err
		}
		return s.set(sel.OfRowRange(args[0], args[len(args)-1]))
	case "cols":
		if err := wantArgs(args, 1, 2); err != nil {
			return err
		}
		return s.set(sel.OfColumnRange(columnArg(args[0]), columnArg(args[len(args)-1])))
	case "drawrow":
		if err := wantArgs(args, 1, 1); err != nil {
			return err
		}
		return s.set(sel.DrawnToRow(args[0]))
	case "drawcol":
		if err := wantArgs(args, 1, 1); err != nil {
			return err
		}
		return s.set(sel.DrawnToColumn(columnArg(args[0])))
	case "page":
		return s.page(args)
	case "sort":
		return s.sort(args)
	case "hide", "show":
		return s.toggleColumn(verb == "hide", args)
	}
	return fmt.Errorf("%w %q", ErrUnknownCommand, verb)
}

func (s *Session) set(next sheetselect.SheetSelection, err error) error {
	if err != nil {
		return err
	}
	s.selection = next
	return nil
}

func (s *Session) page(args []string) error {
	if err := wantArgs(args, 1, 1); err != nil {
		return err
	}
	view := s.View()
	switch strings.ToLower(args[0]) {
	case "next":
		view.Page++
	case "prev":
		view.Page--
	default:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: page %q", ErrInvalidArgument, args[0])
		}
		view.Page = n
	}
	return s.SetView(view)
}

func (s *Session) sort(args []string) error {
	if err := wantArgs(args, 0, 2); err != nil {
		return err
	}
	view := s.View()
	view.SortColumnID, view.SortDescending = "", false
	if len(args) > 0 {
		columnID := columnArg(args[0])
		if !s.grid.HasColumn(columnID) {
			return fmt.Errorf("%w: column %q", ErrInvalidArgument, args[0])
		}
		view.SortColumnID = columnID
	}
	if len(args) == 2 {
		switch strings.ToLower(args[1]) {
		case "desc":
			view.SortDescending = true
		case "asc":
		default:
			return fmt.Errorf("%w: sort order %q", ErrInvalidArgument, args[1])
		}
	}
	return s.SetView(view)
}

func (s *Session) toggleColumn(hide bool, args []string) error {
	if err := wantArgs(args, 1, 1); err != nil {
		return err
	}
	columnID := columnArg(args[0])
	if !s.grid.HasColumn(columnID) {
		return fmt.Errorf("%w: column %q", ErrInvalidArgument, args[0])
	}
	view := s.View()
	view.HiddenColumnIDs = slices.DeleteFunc(view.HiddenColumnIDs, func(id string) bool { return id == columnID })
	if hide {
		view.HiddenColumnIDs = append(view.HiddenColumnIDs, columnID)
	}
	return s.SetView(view)
}

// resolveCell accepts an A1 reference or a raw cell id such as "+-B".
func resolveCell(arg string) (string, error) {
	if strings.Contains(arg, cellid.Delimiter) {
		return arg, nil
	}
	return workbook.RefToCellID(arg)
}

func columnArg(arg string) string {
	return strings.ToUpper(arg)
}

func wantArgs(args []string, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		if lo == hi {
			return fmt.Errorf("%w: expected %d argument(s), got %d", ErrInvalidArgument, lo, len(args))
		}
		return fmt.Errorf("%w: expected %d to %d arguments, got %d", ErrInvalidArgument, lo, hi, len(args))
	}
	return nil
}
