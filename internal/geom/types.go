// Package geom loads plot data for the viewer: WKT geometry pasted or read
// from a file, and x/y series from CSV.
package geom

import "goplot/internal/graph"

// BBox is a world-space bounding box. The zero value is empty.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64

	set bool
}

func (b BBox) Empty() bool { return !b.set }

// Extend grows b to cover p.
func (b *BBox) Extend(p graph.Vec) {
	if !b.set {
		*b = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y, set: true}
		return
	}
	b.MinX = min(b.MinX, p.X)
	b.MinY = min(b.MinY, p.Y)
	b.MaxX = max(b.MaxX, p.X)
	b.MaxY = max(b.MaxY, p.Y)
}

// Union returns the box covering both a and b.
func (b BBox) Union(o BBox) BBox {
	if o.Empty() {
		return b
	}
	if b.Empty() {
		return o
	}
	b.Extend(graph.V(o.MinX, o.MinY))
	b.Extend(graph.V(o.MaxX, o.MaxY))
	return b
}

// Limits returns the box ranges widened by frac of their size on every
// side. A degenerate axis is widened by one unit instead, so the result
// is always accepted by Viewport.SetLimits.
func (b BBox) Limits(frac float64) (xr, yr [2]float64) {
	pad := func(lo, hi float64) [2]float64 {
		d := (hi - lo) * frac
		if hi <= lo {
			d = 1
		}
		return [2]float64{lo - d, hi + d}
	}
	return pad(b.MinX, b.MaxX), pad(b.MinY, b.MaxY)
}

// Data is what the viewer plots: scattered points, polylines and
// polygons with rings (first outer, following holes).
type Data struct {
	Points   []graph.Vec
	Lines    [][]graph.Vec
	Polygons [][][]graph.Vec
	BBox     BBox

	// TimeX marks x as Unix seconds.
	TimeX bool
}

func (d *Data) AddPoints(pts ...graph.Vec) {
	d.Points = append(d.Points, pts...)
	for _, p := range pts {
		d.BBox.Extend(p)
	}
}

func (d *Data) AddLine(line []graph.Vec) {
	d.Lines = append(d.Lines, line)
	for _, p := range line {
		d.BBox.Extend(p)
	}
}

func (d *Data) AddPolygon(rings [][]graph.Vec) {
	d.Polygons = append(d.Polygons, rings)
	for _, r := range rings {
		for _, p := range r {
			d.BBox.Extend(p)
		}
	}
}

// Merge appends everything in o.
func (d *Data) Merge(o Data) {
	d.Points = append(d.Points, o.Points...)
	d.Lines = append(d.Lines, o.Lines...)
	d.Polygons = append(d.Polygons, o.Polygons...)
	d.BBox = d.BBox.Union(o.BBox)
	d.TimeX = d.TimeX || o.TimeX
}

// Len counts the features held.
func (d Data) Len() int {
	return len(d.Points) + len(d.Lines) + len(d.Polygons)
}

// Last returns the sample with the greatest x over all lines, the point
// a following view keeps in sight.
func (d Data) Last() (graph.Vec, bool) {
	var best graph.Vec
	found := false
	for _, l := range d.Lines {
		for _, p := range l {
			if !found || p.X > best.X {
				best, found = p, true
			}
		}
	}
	return best, found
}
