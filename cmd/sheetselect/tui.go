package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/cellid"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/clipboard"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/command"
	"github.com/ukaji3/sheetselect-go/pkg/sheetselect/workbook"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	fullStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	activeStyle   = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Screen line of the first data row.
const firstRowY = 3

const (
	minColumnWidth = 3
	maxColumnWidth = 24
)

// commandKeys are key names passed to the session unchanged.
var commandKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"tab": true, "shift+tab": true,
	"shift+up": true, "shift+down": true, "shift+left": true, "shift+right": true,
}

type hitKind int

const (
	hitNone hitKind = iota
	hitCell
	hitHeader
	hitRowLabel
)

// hit is what a mouse position lands on.
type hit struct {
	kind     hitKind
	rowID    string
	columnID string
}

// layout is the horizontal and vertical placement of the visible grid.
type layout struct {
	rowIDs    []string
	columnIDs []string
	widths    []int
	gutter    int
}

// hit maps a screen position to a cell, a column header or a row label.
func (l layout) hit(x, y int) hit {
	var h hit
	switch {
	case y == 1:
		h.kind = hitHeader
	case y >= firstRowY && y-firstRowY < len(l.rowIDs):
		h.kind = hitCell
		h.rowID = l.rowIDs[y-firstRowY]
	default:
		return hit{}
	}

	if x < l.gutter {
		if h.kind != hitCell {
			return hit{}
		}
		h.kind = hitRowLabel
		return h
	}
	left := l.gutter + 1
	for i, w := range l.widths {
		right := left + w + 2
		if x >= left && x < right {
			h.columnID = l.columnIDs[i]
			return h
		}
		left = right + 1
	}
	return hit{}
}

type tuiModel struct {
	session  *command.Session
	width    int
	height   int
	dragging hitKind
	lastHit  hit
	status   string
	err      error
}

func newTUIModel(session *command.Session) tuiModel {
	m := tuiModel{session: session}
	m.err = session.Apply("first")
	return m
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	}
	return m, nil
}

func (m tuiModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.status, m.err = "", nil

	if commandKeys[key] {
		m.err = m.session.Apply(key)
		return m, nil
	}
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.err = m.session.Apply("all")
	case "esc":
		m.err = m.session.Apply("none")
	case "n":
		m.err = m.session.Apply("page next")
	case "p":
		m.err = m.session.Apply("page prev")
	case "s":
		m.err = m.session.Apply(m.nextSortCommand())
	case "y":
		m.copySelection()
	case "v":
		m.previewPaste()
	}
	return m, nil
}

// nextSortCommand cycles the active column through ascending, descending
// and unsorted.
func (m tuiModel) nextSortCommand() string {
	active, ok := m.session.Selection().ActiveCellID()
	if !ok {
		return "sort"
	}
	cell, err := cellid.Parse(active)
	if err != nil {
		return "sort"
	}
	view := m.session.View()
	switch {
	case view.SortColumnID != cell.ColumnID:
		return "sort " + cell.ColumnID
	case !view.SortDescending:
		return "sort " + cell.ColumnID + " desc"
	}
	return "sort"
}

func (m *tuiModel) copySelection() {
	tsv, err := clipboard.TSV(m.session.Selection(), m.session.Grid().Value)
	if err != nil {
		m.err = err
		return
	}
	if tsv == "" {
		m.status = "nothing to copy"
		return
	}
	if err := clipboard.WriteSystem(tsv); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("copied %d row(s)", strings.Count(tsv, "\n"))
}

// previewPaste reports the shape of the clipboard text and what pasting it
// onto the selection would do.
func (m *tuiModel) previewPaste() {
	text, err := clipboard.ReadSystem()
	if err != nil {
		m.err = err
		return
	}
	rows, err := clipboard.ParseTSV(text)
	if err != nil {
		m.err = err
		return
	}
	columns := 0
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	m.status = fmt.Sprintf("clipboard %dx%d would %s", len(rows), columns, m.session.Selection().PasteOperation())
}

// updateMouse handles left-button presses and drags. Motion events repeat
// while the pointer stays on one cell, so only a change of cell extends
// the selection.
func (m tuiModel) updateMouse(msg tea.MouseMsg) tuiModel {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		h := m.layout().hit(msg.X, msg.Y)
		if h.kind == hitNone {
			return m
		}
		m.err = m.press(h, msg.Shift)
		m.dragging, m.lastHit = h.kind, h
	case tea.MouseActionMotion:
		if m.dragging == hitNone || msg.Button != tea.MouseButtonLeft {
			return m
		}
		h := m.layout().hit(msg.X, msg.Y)
		if h == m.lastHit {
			return m
		}
		if err := m.drag(h); err != nil {
			m.err = err
		}
		m.lastHit = h
	case tea.MouseActionRelease:
		m.dragging, m.lastHit = hitNone, hit{}
	}
	return m
}

func (m tuiModel) press(h hit, extend bool) error {
	sel := m.session.Selection()
	switch h.kind {
	case hitCell:
		id := cellid.Make(h.rowID, h.columnID)
		if extend {
			return m.set(sel.DrawnToDataCell(id))
		}
		return m.set(sel.OfOneCell(id))
	case hitHeader:
		if extend {
			return m.set(sel.DrawnToColumn(h.columnID))
		}
		return m.set(sel.OfColumnRange(h.columnID, h.columnID))
	case hitRowLabel:
		if sel.Plane().IsPlaceholderRow(h.rowID) {
			return nil
		}
		if extend {
			return m.set(sel.DrawnToRow(h.rowID))
		}
		return m.set(sel.OfRowRange(h.rowID, h.rowID))
	}
	return nil
}

// drag extends the selection toward h. Positions that do not match the
// kind of the initial press are ignored.
func (m tuiModel) drag(h hit) error {
	sel := m.session.Selection()
	switch {
	case m.dragging == hitCell && h.kind == hitCell:
		return m.set(sel.DrawnToDataCell(cellid.Make(h.rowID, h.columnID)))
	case m.dragging == hitHeader && h.columnID != "":
		return m.set(sel.DrawnToColumn(h.columnID))
	case m.dragging == hitRowLabel && h.rowID != "":
		return m.set(sel.DrawnToRow(h.rowID))
	}
	return nil
}

func (m tuiModel) set(next sheetselect.SheetSelection, err error) error {
	if err != nil {
		return err
	}
	m.session.SetSelection(next)
	return nil
}

func (m tuiModel) layout() layout {
	p := m.session.Selection().Plane()
	l := layout{
		rowIDs:    p.RowIDs().Values(),
		columnIDs: p.ColumnIDs().Values(),
	}
	if rowID, ok := p.PlaceholderRowID(); ok {
		l.rowIDs = append(l.rowIDs, rowID)
	}

	labelWidth := 1
	for _, rowID := range l.rowIDs {
		labelWidth = max(labelWidth, lipgloss.Width(rowID))
	}
	l.gutter = labelWidth + 2

	g := m.session.Grid()
	for _, columnID := range l.columnIDs {
		w := lipgloss.Width(columnLabel(g, columnID))
		for _, rowID := range l.rowIDs {
			w = max(w, lipgloss.Width(g.Value(cellid.Make(rowID, columnID))))
		}
		l.widths = append(l.widths, min(max(w, minColumnWidth), maxColumnWidth))
	}
	return l
}

func columnLabel(g *workbook.Grid, columnID string) string {
	if label, ok := g.Header(columnID); ok {
		return columnID + " " + label
	}
	return columnID
}

// fit truncates or pads s to exactly w columns.
func fit(s string, w int) string {
	runes := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(runes) > w {
		runes = append(runes[:w-1], '.')
	}
	return fmt.Sprintf("%-*s", w, string(runes))
}

func (m tuiModel) View() string {
	var b strings.Builder
	sel := m.session.Selection()
	g := m.session.Grid()
	view := m.session.View()
	l := m.layout()

	b.WriteString(titleStyle.Render(fmt.Sprintf(" %s [%s]", g.BookName(), g.SheetName())))
	b.WriteString("\n")

	if len(l.columnIDs) == 0 {
		b.WriteString(dimStyle.Render(" (empty sheet)\n"))
		return b.String()
	}

	// header
	b.WriteString(strings.Repeat(" ", l.gutter))
	b.WriteString(dimStyle.Render("│"))
	fully := sel.FullySelectedColumnIDs()
	for i, columnID := range l.columnIDs {
		label := columnLabel(g, columnID)
		if columnID == view.SortColumnID {
			if view.SortDescending {
				label += " v"
			} else {
				label += " ^"
			}
		}
		style := headerStyle
		if fully.Has(columnID) {
			style = fullStyle
		}
		b.WriteString(style.Render(" " + fit(label, l.widths[i]) + " "))
		b.WriteString(dimStyle.Render("│"))
	}
	b.WriteString("\n")

	// separator
	b.WriteString(dimStyle.Render(strings.Repeat("─", l.gutter) + "┼"))
	for _, w := range l.widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2) + "┼"))
	}
	b.WriteString("\n")

	// data rows and placeholder
	active, _ := sel.ActiveCellID()
	for _, rowID := range l.rowIDs {
		placeholder := sel.Plane().IsPlaceholderRow(rowID)
		label := fmt.Sprintf(" %*s ", l.gutter-2, rowID)
		if sel.ContainsRow(rowID) {
			b.WriteString(headerStyle.Render(label))
		} else {
			b.WriteString(dimStyle.Render(label))
		}
		b.WriteString(dimStyle.Render("│"))
		for i, columnID := range l.columnIDs {
			id := cellid.Make(rowID, columnID)
			cell := " " + fit(g.Value(id), l.widths[i]) + " "
			switch {
			case id == active:
				b.WriteString(activeStyle.Render(cell))
			case sel.ContainsCell(id):
				b.WriteString(selectedStyle.Render(cell))
			case placeholder:
				b.WriteString(dimStyle.Render(cell))
			default:
				b.WriteString(cell)
			}
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	// status bar
	if m.err != nil {
		b.WriteString(errorStyle.Render(" error: " + m.err.Error()))
	} else {
		b.WriteString(statusStyle.Render(m.statusLine()))
	}
	b.WriteString("\n")

	help := " arrows/tab move  shift+arrows resize  a all  n/p page  s sort  y copy  v paste info  q quit"
	b.WriteString(dimStyle.Render(help))
	return b.String()
}

func (m tuiModel) statusLine() string {
	sel := m.session.Selection()
	var parts []string
	if report := command.Describe(sel); report.Range != "" {
		parts = append(parts, report.Range)
	} else if active, ok := sel.ActiveCellID(); ok {
		parts = append(parts, active)
	}
	parts = append(parts,
		string(sel.BasisType()),
		fmt.Sprintf("%d cell(s)", sel.CellIDs().Len()),
		fmt.Sprintf("page %d/%d", m.session.View().Page, m.session.Grid().PageCount()),
		"paste:"+string(sel.PasteOperation()),
	)
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return " " + strings.Join(parts, "  ")
}

func runTUI(cmd *cobra.Command, args []string) error {
	session, err := openSession(args[0], tuiPageSize)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		newTUIModel(session),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
	return nil
}
