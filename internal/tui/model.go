package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"goplot/internal/geom"
	"goplot/internal/graph"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data and the view onto it
	data  geom.Data
	vp    *graph.Viewport
	style graph.Style

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// decorations
	showGrid  bool
	showRings bool
	follow    bool
	mark      graph.MarkKind

	// hover state, in world coordinates
	hovering bool
	hover    graph.Vec
	hoverHit bool
	hoverPt  graph.Vec

	// viewport info table
	showInfo bool
	tbl      table.Model
}

// New returns a viewer over an empty plot, listing data files in the
// working directory.
func New() Model {
	m := Model{
		helpVisible: true,
		status:      "goplot ready",
		vp:          graph.NewViewport(),
		style:       chrome,
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		showGrid:    true,
		mark:        graph.MarkPlus,
		l:           newFileList(),
		ta:          newPasteArea(),
		tbl:         newInfoTable(),
	}
	m.cwd, _ = os.Getwd()
	m.refreshDir()
	return m
}

func newFileList() list.Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	l := list.New(nil, d, 0, 0)
	l.Title = "Data files"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return l
}

func newPasteArea() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Paste WKT (POINT, LINESTRING, POLYGON and MULTI* forms). Enter plots it, Esc cancels."
	ta.CharLimit = 0
	ta.SetWidth(50)
	ta.SetHeight(6)
	return ta
}

func newInfoTable() table.Model {
	return table.New(
		table.WithColumns([]table.Column{{Title: "property", Width: 12}, {Title: "value", Width: 36}}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

// Viewport exposes the view for callers that render the same plot
// elsewhere, such as a PNG export.
func (m Model) Viewport() *graph.Viewport { return m.vp }

func (m Model) Init() tea.Cmd { return nil }
