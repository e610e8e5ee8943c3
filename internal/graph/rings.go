package graph

import "math"

// maxRings bounds the rings drawn in one call when an explicit tick is far
// smaller than the visible range.
const maxRings = 1000

// DrawRangeRings draws concentric rings about the world origin, spaced by
// the x tick, limited to rings that can reach the visible rectangle. With
// label set each ring is annotated with its radius.
func (r *Renderer) DrawRangeRings(label bool) {
	xr, yr := r.vp.Limits()
	tick, _ := r.vp.Tick()
	lo, hi := ringRange(xr, yr, tick)
	if hi-lo > maxRings {
		Logger().Debug("graph: ring count capped", "from", lo, "to", hi)
		hi = lo + maxRings
	}
	for i := max(lo, 1); i <= hi; i++ {
		rad := float64(i) * tick
		r.DrawCircle(Vec{}, rad, r.style.Grid, Dot)
		if label {
			r.DrawTextHemmed(Vec{0, rad}, FormatNumber(rad, tick), r.style.Label, AlignCenter, AlignBottom, 0)
		}
	}
}

// ringRange returns the smallest and largest ring index that can intersect
// the world rectangle xr x yr for ring spacing tick.
func ringRange(xr, yr [2]float64, tick float64) (lo, hi int) {
	if !(tick > 0) {
		return 0, -1
	}
	var rmin, rmax float64
	rmin = math.Inf(1)
	for _, x := range xr {
		for _, y := range yr {
			d := math.Hypot(x, y)
			rmin = math.Min(rmin, d)
			rmax = math.Max(rmax, d)
		}
	}
	spanX := xr[0] <= 0 && 0 <= xr[1]
	spanY := yr[0] <= 0 && 0 <= yr[1]
	switch {
	case spanX && spanY:
		rmin = 0
	case spanX:
		rmin = math.Min(math.Abs(yr[0]), math.Abs(yr[1]))
	case spanY:
		rmin = math.Min(math.Abs(xr[0]), math.Abs(xr[1]))
	}
	return int(math.Floor(rmin / tick)), int(math.Ceil(rmax / tick))
}
