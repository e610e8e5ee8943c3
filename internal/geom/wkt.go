package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"goplot/internal/graph"
)

var (
	errEmptyWKT   = errors.New("wkt: empty input")
	errNoCoords   = errors.New("wkt: no coordinates parsed")
	errUnbalanced = errors.New("wkt: unbalanced parentheses")
	errBadTuple   = errors.New("wkt: bad coordinate")
	errShort      = errors.New("wkt: too few points")
	errStray      = errors.New("wkt: unexpected text")
)

// ParseWKTData parses one POINT, MULTIPOINT, LINESTRING, MULTILINESTRING,
// POLYGON or MULTIPOLYGON. Every tuple must hold two to four numbers; Z and
// M values are ignored. Lines need two points and rings three.
func ParseWKTData(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errEmptyWKT
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return Data{}, fmt.Errorf("wkt: missing coordinates in %q", shorten(s))
	}
	if rest := strings.TrimSpace(s[j+1:]); rest != "" {
		return Data{}, fmt.Errorf("%w after geometry: %q", errStray, shorten(rest))
	}
	kind := strings.ToUpper(strings.Fields(s[:i] + " x")[0])
	body := s[i+1 : j]

	var d Data
	switch kind {
	case "POINT":
		pts, err := parseTuples(body, 1)
		if err != nil {
			return Data{}, err
		}
		if len(pts) != 1 {
			return Data{}, fmt.Errorf("%w: POINT holds %d tuples", errBadTuple, len(pts))
		}
		d.AddPoints(pts...)
	case "MULTIPOINT":
		pts, err := parseMultiPoint(body)
		if err != nil {
			return Data{}, err
		}
		d.AddPoints(pts...)
	case "LINESTRING":
		line, err := parseTuples(body, 2)
		if err != nil {
			return Data{}, err
		}
		d.AddLine(line)
	case "MULTILINESTRING":
		parts, err := groups(body)
		if err != nil {
			return Data{}, err
		}
		for _, p := range parts {
			line, err := parseTuples(p, 2)
			if err != nil {
				return Data{}, err
			}
			d.AddLine(line)
		}
	case "POLYGON":
		rings, err := parseRings(body)
		if err != nil {
			return Data{}, err
		}
		d.AddPolygon(rings)
	case "MULTIPOLYGON":
		polys, err := groups(body)
		if err != nil {
			return Data{}, err
		}
		for _, p := range polys {
			rings, err := parseRings(p)
			if err != nil {
				return Data{}, err
			}
			d.AddPolygon(rings)
		}
	default:
		return Data{}, fmt.Errorf("wkt: unsupported type %q", kind)
	}
	if d.BBox.Empty() {
		return Data{}, errNoCoords
	}
	return d, nil
}

func parseRings(body string) ([][]graph.Vec, error) {
	parts, err := groups(body)
	if err != nil {
		return nil, err
	}
	rings := make([][]graph.Vec, 0, len(parts))
	for _, p := range parts {
		ring, err := parseTuples(p, 3)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// parseMultiPoint accepts both the bare "1 2, 3 4" and the wrapped
// "(1 2), (3 4)" forms.
func parseMultiPoint(body string) ([]graph.Vec, error) {
	if !strings.Contains(body, "(") {
		return parseTuples(body, 1)
	}
	parts, err := groups(body)
	if err != nil {
		return nil, err
	}
	var out []graph.Vec
	for _, p := range parts {
		pt, err := parseTuples(p, 1)
		if err != nil {
			return nil, err
		}
		if len(pt) != 1 {
			return nil, fmt.Errorf("%w: %q is not one point", errBadTuple, shorten(p))
		}
		out = append(out, pt[0])
	}
	return out, nil
}

// groups returns the contents of each top-level parenthesized group.
// Between groups only commas and spaces are allowed.
func groups(s string) ([]string, error) {
	var out []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', ',':
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errUnbalanced
			}
			if depth == 0 {
				out = append(out, s[start:i])
			}
		default:
			if depth == 0 {
				return nil, fmt.Errorf("%w: %q", errStray, shorten(s[i:]))
			}
		}
	}
	if depth != 0 {
		return nil, errUnbalanced
	}
	return out, nil
}

// parseTuples reads comma separated coordinate tuples, requiring at least
// minPts of them.
func parseTuples(block string, minPts int) ([]graph.Vec, error) {
	var out []graph.Vec
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 || len(parts) > 4 {
			return nil, fmt.Errorf("%w: %q", errBadTuple, shorten(strings.TrimSpace(tup)))
		}
		var v [4]float64
		for k, f := range parts {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", errBadTuple, shorten(strings.TrimSpace(tup)))
			}
			v[k] = x
		}
		out = append(out, graph.V(v[0], v[1]))
	}
	if len(out) < minPts {
		return nil, fmt.Errorf("%w: %d, need %d", errShort, len(out), minPts)
	}
	return out, nil
}

func shorten(s string) string {
	if len(s) > 24 {
		return s[:24] + "..."
	}
	return s
}
