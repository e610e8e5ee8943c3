package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"goplot/internal/graph"
)

var (
	errEmptyCSV  = errors.New("csv: empty input")
	errNoColumns = errors.New("csv: x/y columns not found")
	errNoSamples = errors.New("csv: no valid samples parsed")
)

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"}

var xNames = map[string]bool{
	"x": true, "lon": true, "lng": true, "long": true, "longitude": true, "t": true, "time": true,
}

var yNames = map[string]bool{
	"y": true, "lat": true, "latitude": true, "value": true,
}

// LoadCSV reads a series file. Each file becomes one track.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, fmt.Errorf("csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads x/y samples. The x column is the first header named
// x|lon|lng|long|longitude|t|time and the y column the first named
// y|lat|latitude|value, case-insensitive. Without a recognised header
// the first two columns are used. A t or time column may hold Unix seconds
// or RFC 3339 timestamps and marks the data as time-based. Rows that fail
// to parse are skipped.
func ReadCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return Data{}, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return Data{}, errEmptyCSV
	}

	ix, iy, isTime := columns(recs[0])
	rows := recs[1:]
	if ix < 0 || iy < 0 {
		if len(recs[0]) < 2 || !numeric(recs[0][0]) || !numeric(recs[0][1]) {
			return Data{}, errNoColumns
		}
		ix, iy, rows = 0, 1, recs
	}

	var track []graph.Vec
	for _, row := range rows {
		if ix >= len(row) || iy >= len(row) {
			continue
		}
		x, ok := parseX(row[ix], isTime)
		if !ok {
			continue
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[iy]), 64)
		if err != nil {
			continue
		}
		track = append(track, graph.V(x, y))
	}
	if len(track) == 0 {
		return Data{}, errNoSamples
	}
	d := Data{TimeX: isTime}
	d.AddLine(track)
	return d, nil
}

func columns(header []string) (ix, iy int, isTime bool) {
	ix, iy = -1, -1
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case ix < 0 && xNames[h]:
			ix = i
			isTime = h == "t" || h == "time"
		case iy < 0 && yNames[h]:
			iy = i
		}
	}
	return ix, iy, isTime
}

func numeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func parseX(s string, isTime bool) (float64, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if !isTime {
		return 0, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return float64(t.UnixNano()) / 1e9, true
		}
	}
	return 0, false
}
