package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goplot/internal/braille"
	"goplot/internal/graph"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// frame is the screen layout in cells.
type frame struct {
	contentW, contentH int
	sidebarW           int
	plot               image.Rectangle // plot area, max exclusive
}

func (m Model) layout() frame {
	f := frame{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
	}
	x0 := 0
	if m.showSidebar {
		f.sidebarW = sidebarWidth
		x0 = sidebarWidth + 1
	}
	w := max(10, f.contentW-x0)
	f.plot = image.Rect(x0, headerHeight, x0+w, headerHeight+f.contentH)
	return f
}

// placeViewport sizes the viewport to the braille plot area so key
// handling sees the same mapping as the next View.
func (m Model) placeViewport() {
	f := m.layout()
	c := braille.New(f.plot.Dx(), f.plot.Dy(), nil)
	lx, ly := m.vp.LabelPos()
	p1, p2 := plotRect(c, c.Bounds(), lx, ly, nil)
	m.vp.SetPosition(p1, p2)
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	f := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, f.contentH-2)
	}

	// Header
	header := headerStyle.Render(" goplot ─ terminal plot viewer ")
	header = lipgloss.NewStyle().Width(f.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(f.sidebarW).Render(m.l.View())
	}

	plotW, plotH := f.plot.Dx(), f.plot.Dy()
	var plotView string
	switch {
	case m.showInfo:
		m.refreshInfo()
		m.tbl.SetWidth(min(plotW, 56) - 4)
		m.tbl.SetHeight(min(plotH-2, 12))
		infoBox := panelStyle.Width(min(plotW, 56)).Render(m.tbl.View())
		plotView = lipgloss.Place(plotW, plotH, lipgloss.Center, lipgloss.Center, infoBox)
	case m.pasteMode:
		m.ta.SetWidth(plotW)
		m.ta.SetHeight(min(plotH, 12))
		plotView = lipgloss.NewStyle().Width(plotW).Height(plotH).Render(m.ta.View())
	default:
		plotView = lipgloss.NewStyle().Width(plotW).Height(plotH).Render(m.renderPlot(plotW, plotH))
	}

	// Body row
	body := plotView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plotView)
	}

	// Footer / help
	help := m.renderHelp()
	status := mutedStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = mutedStyle.Render("  " + m.hoverText() + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, f.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(f.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return frameStyle.Width(f.contentW).Height(m.height).Render(ui)
}

// hoverText formats the hovered world position the way the x axis is
// labelled, with the snapped vertex when there is one.
func (m Model) hoverText() string {
	w := m.hover
	if m.hoverHit {
		w = m.hoverPt
	}
	tx, ty := m.vp.Tick()
	lx, _ := m.vp.LabelPos()
	x := graph.FormatLabel(w.X, tx/10, lx)
	y := graph.FormatNumber(w.Y, ty/10)
	if m.hoverHit {
		return fmt.Sprintf("● x=%s y=%s", x, y)
	}
	return fmt.Sprintf("x=%s y=%s", x, y)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"f fit",
		"r follow",
		"g grid",
		"t/y labels",
		"o rings",
		"m marker",
		"Tab files",
		"a add",
		"p paste",
		"v view",
		"h help",
		"q quit",
	}
	return mutedStyle.Render("  " + strings.Join(keys, "  "))
}
