package graph

import "math"

const (
	tickTargetPx     = 30
	timeTickTargetPx = 60
	crowdedPx        = 50
	maxTimeTick      = 86400 * 140
)

// niceSteps are the mantissas tried by AutoTick, smallest first.
var niceSteps = [...]float64{1, 2, 5, 10}

// timeSteps are calendar friendly intervals in seconds.
var timeSteps = [...]float64{
	0.1, 0.2, 0.5, 1, 3, 6, 12, 30, 60, 300, 900, 1800, 3600, 7200, 10800,
	21600, 43200, 86400, 172800, 604800, 1209600, 3024000, 6048000,
}

// AutoTick returns a 1-2-5 tick interval spacing ticks roughly 30 px apart
// at the given world units per pixel.
func AutoTick(scale float64) float64 {
	target := tickTargetPx * scale
	order := math.Pow(10, math.Floor(math.Log10(target)))
	for _, t := range niceSteps {
		if target <= t*order {
			return t * order
		}
	}
	return 10 * order
}

// AutoTickTime returns a calendar interval in seconds spacing ticks roughly
// 60 px apart. Past the end of the table it returns 140 days.
func AutoTickTime(scale float64) float64 {
	target := timeTickTargetPx * scale
	for _, t := range timeSteps {
		if t >= target {
			return t
		}
	}
	return maxTimeTick
}

// Tick returns the tick spacing per axis: the explicit value when set,
// otherwise AutoTick, or AutoTickTime for time labelled axes.
func (v *Viewport) Tick() (tx, ty float64) {
	return axisTick(v.tickX, v.sx, v.labelX), axisTick(v.tickY, v.sy, v.labelY)
}

func axisTick(explicit, scale float64, pos LabelPos) float64 {
	if explicit > 0 {
		return explicit
	}
	if pos.IsTime() {
		return AutoTickTime(scale)
	}
	return AutoTick(scale)
}

// widenTick spreads ticks that would land closer than 50 px: labelled axes
// take every second tick, unlabelled ones every fourth.
func widenTick(tick, scale float64, labelled bool) float64 {
	if tick/scale >= crowdedPx {
		return tick
	}
	if labelled {
		return tick * 2
	}
	return tick * 4
}
