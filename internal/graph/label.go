package graph

import (
	"math"
	"strconv"
	"time"
)

// LabelPos selects how an axis is labelled.
type LabelPos int

const (
	LabelNone LabelPos = iota
	LabelInside
	LabelOutside
	LabelInsideRot
	LabelOutsideRot
	// LabelAxis anchors labels on the other axis' zero crossing.
	LabelAxis
	LabelTimeInside
	LabelTimeOutside
)

var labelPosNames = [...]string{
	LabelNone:        "none",
	LabelInside:      "inside",
	LabelOutside:     "outside",
	LabelInsideRot:   "inside-rot",
	LabelOutsideRot:  "outside-rot",
	LabelAxis:        "axis",
	LabelTimeInside:  "time-inside",
	LabelTimeOutside: "time-outside",
}

func (p LabelPos) String() string {
	if p < 0 || int(p) >= len(labelPosNames) {
		return "LabelPos(" + strconv.Itoa(int(p)) + ")"
	}
	return labelPosNames[p]
}

// Next cycles through the modes, wrapping after LabelTimeOutside.
func (p LabelPos) Next() LabelPos {
	return (p + 1) % LabelPos(len(labelPosNames))
}

func (p LabelPos) Labelled() bool { return p != LabelNone }

func (p LabelPos) IsTime() bool { return p == LabelTimeInside || p == LabelTimeOutside }

func (p LabelPos) Rotated() bool { return p == LabelInsideRot || p == LabelOutsideRot }

func (p LabelPos) Outside() bool {
	return p == LabelOutside || p == LabelOutsideRot || p == LabelTimeOutside
}

// FormatNumber prints v with as many decimals as the tick spacing needs:
// max(0, floor(0.9 - log10(tick))).
func FormatNumber(v, tick float64) string {
	dec := 0
	if tick > 0 {
		dec = max(0, int(math.Floor(0.9-math.Log10(tick))))
	}
	if math.Abs(v) < tick*1e-9 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', dec, 64)
}

// FormatTime prints v, in Unix seconds, at a resolution suited to tick.
func FormatTime(v, tick float64) string {
	sec := math.Floor(v)
	t := time.Unix(int64(sec), int64((v-sec)*1e9)).UTC()
	switch {
	case tick < 1:
		return t.Format("15:04:05.0")
	case tick < 60:
		return t.Format("15:04:05")
	case tick < 86400:
		return t.Format("15:04")
	case tick < 604800:
		return t.Format("01/02")
	default:
		return t.Format("2006/01/02")
	}
}

// FormatLabel picks FormatTime or FormatNumber by label mode.
func FormatLabel(v, tick float64, pos LabelPos) string {
	if pos.IsTime() {
		return FormatTime(v, tick)
	}
	return FormatNumber(v, tick)
}
