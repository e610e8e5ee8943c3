package tui

import (
	"fmt"
	"image"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"goplot/internal/braille"
	"goplot/internal/geom"
	"goplot/internal/graph"
)

const (
	panStep  = 8 // px
	zoomStep = 1.25
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
		m.placeViewport()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.handleKey(msg.String()) {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.showInfo {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKTData(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setData(d)
		m.status = "rendered WKT  " + m.counts()
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// handleKey applies one view command and reports whether to quit.
func (m *Model) handleKey(key string) bool {
	switch key {
	case "ctrl+c", "q":
		return true
	case "esc":
		m.showInfo = false
	case "1":
		m.showPoints = !m.showPoints
		m.status = fmt.Sprintf("points: %v", m.showPoints)
	case "2":
		m.showLines = !m.showLines
		m.status = fmt.Sprintf("lines: %v", m.showLines)
	case "3":
		m.showPolys = !m.showPolys
		m.status = fmt.Sprintf("polys: %v", m.showPolys)
	case "l":
		all := m.showPoints && m.showLines && m.showPolys
		m.showPoints = !all
		m.showLines = !all
		m.showPolys = !all
		m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
	case "+", "=":
		m.vp.Zoom(1 / zoomStep)
		m.status = m.scaleStatus()
	case "-", "_":
		m.vp.Zoom(zoomStep)
		m.status = m.scaleStatus()
	case "up":
		m.pan(0, -panStep)
	case "down":
		m.pan(0, panStep)
	case "left":
		m.pan(-panStep, 0)
	case "right":
		m.pan(panStep, 0)
	case "f":
		m.follow = false
		m.fit()
		m.status = "fit to data"
	case "r":
		m.follow = !m.follow
		if m.follow {
			m.followLatest()
		}
		m.status = fmt.Sprintf("follow: %v", m.follow)
	case "g":
		m.showGrid = !m.showGrid
		m.status = fmt.Sprintf("grid: %v", m.showGrid)
	case "o":
		m.showRings = !m.showRings
		m.status = fmt.Sprintf("rings: %v", m.showRings)
	case "t", "y":
		lx, ly := m.vp.LabelPos()
		if key == "t" {
			lx = lx.Next()
		} else {
			ly = ly.Next()
			if ly.IsTime() {
				ly = graph.LabelNone
			}
		}
		m.vp.SetLabelPos(lx, ly)
		m.placeViewport()
		m.status = fmt.Sprintf("labels: x %s, y %s", lx, ly)
	case "m":
		m.mark = m.mark.Next()
		m.status = "marker: " + m.mark.String()
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
		m.placeViewport()
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	case "a":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.appendPath(it.path)
			}
		}
	case "p":
		m.pasteMode = true
		m.ta.SetValue("")
		m.status = "paste mode"
		m.ta.Focus()
	case "v":
		m.showInfo = !m.showInfo
		if m.showInfo {
			m.refreshInfo()
		}
	case "h":
		m.helpVisible = !m.helpVisible
	}
	return false
}

// pan moves the view and drops follow mode, which would snap it back.
func (m *Model) pan(dx, dy int) {
	m.follow = false
	m.vp.Move(dx, dy)
	cx, cy := m.vp.Center()
	m.status = fmt.Sprintf("center: %.5g, %.5g", cx, cy)
}

func (m Model) scaleStatus() string {
	sx, sy := m.vp.Scale()
	return fmt.Sprintf("scale: %.4g x %.4g /px", sx, sy)
}

// updateMouse tracks the hovered world position and zooms on the wheel.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	plot := m.layout().plot
	cell := image.Pt(msg.X, msg.Y)
	if !cell.In(plot) {
		m.hovering = false
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.vp.Zoom(1 / zoomStep)
		m.status = m.scaleStatus()
	case tea.MouseButtonWheelDown:
		m.vp.Zoom(zoomStep)
		m.status = m.scaleStatus()
	}
	// center dot of the hovered cell
	rel := cell.Sub(plot.Min)
	q := image.Pt(rel.X*braille.CellW+braille.CellW/2, rel.Y*braille.CellH+braille.CellH/2)
	m.hovering = true
	m.hover = m.vp.ToWorld(q)
	m.hoverPt, m.hoverHit = m.nearestVertex(q)
}
