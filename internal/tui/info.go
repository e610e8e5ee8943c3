package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"goplot/internal/graph"
)

// infoRows describes the current view: what is centered, at which scale,
// and which world ranges and ticks that makes visible.
func (m Model) infoRows() []table.Row {
	cx, cy := m.vp.Center()
	sx, sy := m.vp.Scale()
	xr, yr := m.vp.Limits()
	tx, ty := m.vp.Tick()
	lx, ly := m.vp.LabelPos()
	ext := m.vp.Extent()
	xfmt := func(v float64) string { return graph.FormatLabel(v, tx/10, lx) }
	b := m.data.BBox

	rows := []table.Row{
		{"center", fmt.Sprintf("%s, %s", xfmt(cx), graph.FormatNumber(cy, ty/10))},
		{"scale", fmt.Sprintf("%.4g x %.4g /px", sx, sy)},
		{"x range", fmt.Sprintf("%s .. %s", xfmt(xr[0]), xfmt(xr[1]))},
		{"y range", fmt.Sprintf("%s .. %s", graph.FormatNumber(yr[0], ty/10), graph.FormatNumber(yr[1], ty/10))},
		{"tick", fmt.Sprintf("%.4g x %.4g", tx, ty)},
		{"labels", fmt.Sprintf("x %s, y %s", lx, ly)},
		{"extent", fmt.Sprintf("%d x %d px", ext.X, ext.Y)},
		{"marker", m.mark.String()},
		{"features", fmt.Sprintf("pts=%d ls=%d poly=%d", len(m.data.Points), len(m.data.Lines), len(m.data.Polygons))},
	}
	if !b.Empty() {
		rows = append(rows, table.Row{"data box", fmt.Sprintf("[%.5g, %.5g, %.5g, %.5g]", b.MinX, b.MinY, b.MaxX, b.MaxY)})
	}
	if m.selPath != "" {
		rows = append(rows, table.Row{"file", m.selPath})
	}
	return rows
}

// refreshInfo reloads the viewport table from the current view.
func (m *Model) refreshInfo() {
	m.tbl.SetRows(m.infoRows())
}
