package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"goplot/internal/geom"
	"goplot/internal/graph"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".csv" || ext == ".wkt" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// readData loads a CSV series or a WKT geometry file.
func readData(p string) (geom.Data, error) {
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".csv":
		return geom.LoadCSV(p)
	case ".wkt", ".txt":
		b, err := os.ReadFile(p)
		if err != nil {
			return geom.Data{}, fmt.Errorf("wkt: %w", err)
		}
		return geom.ParseWKTData(string(b))
	default:
		return geom.Data{}, fmt.Errorf("unsupported file: %q", ext)
	}
}

// loadPath replaces the plotted data with the contents of p.
func (m *Model) loadPath(p string) {
	d, err := readData(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		graph.Logger().Warn("tui: load failed", "path", p, "err", err)
		return
	}
	m.selPath = p
	m.setData(d)
	m.status = "loaded: " + filepath.Base(p) + "  " + m.counts()
	graph.Logger().Info("tui: loaded", "path", p, "points", len(d.Points), "lines", len(d.Lines), "polygons", len(d.Polygons))
}

// appendPath overlays the contents of p on the plotted data.
func (m *Model) appendPath(p string) {
	d, err := readData(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		graph.Logger().Warn("tui: append failed", "path", p, "err", err)
		return
	}
	all := m.data
	all.Merge(d)
	m.setData(all)
	m.status = fmt.Sprintf("added: %s  %d features", filepath.Base(p), m.data.Len())
}

// setData installs d, fits the view to it and picks matching axis labels.
func (m *Model) setData(d geom.Data) {
	m.data = d
	m.showPolys = len(d.Polygons) > 0
	m.showLines = len(d.Lines) > 0
	m.showPoints = len(d.Points) > 0
	lx, ly := m.vp.LabelPos()
	switch {
	case d.TimeX && !lx.IsTime():
		m.vp.SetLabelPos(graph.LabelTimeOutside, ly)
	case !d.TimeX && lx.IsTime():
		m.vp.SetLabelPos(graph.LabelOutside, ly)
	}
	m.follow = false
	m.hoverHit = false
	if m.width > 0 {
		m.placeViewport()
	}
	m.fit()
}

// WithTimeAxis labels x as Unix time regardless of the data.
func (m Model) WithTimeAxis() Model {
	_, ly := m.vp.LabelPos()
	m.vp.SetLabelPos(graph.LabelTimeOutside, ly)
	m.data.TimeX = true
	m.fit()
	return m
}

func (m Model) counts() string {
	return fmt.Sprintf("counts: pts=%d ls=%d poly=%d", len(m.data.Points), len(m.data.Lines), len(m.data.Polygons))
}

// NewFromFile is NewWithPath for callers that need the load error, such
// as a one-shot export.
func NewFromFile(path string) (Model, error) {
	m := New()
	d, err := readData(path)
	if err != nil {
		return m, err
	}
	m.selPath = path
	m.setData(d)
	return m, nil
}
