package primitive

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"techdraw/internal/path"
	"techdraw/pkg/geometry"
)

// Tolerances holds the empirical thresholds of the classifier. The
// defaults match the values the rest of the pipeline was tuned against.
type Tolerances struct {
	// RadiusEquality is the maximum |rx-ry| for an arc to count as
	// circular rather than elliptical.
	RadiusEquality float64 `json:"radius_equality"`
}

// DefaultTolerances returns the standard classifier thresholds.
func DefaultTolerances() Tolerances {
	return Tolerances{RadiusEquality: 0.001}
}

// Classify inspects a raw path string and builds a typed element using
// the default tolerances.
func Classify(raw string, meta Meta) Element {
	return ClassifyWith(raw, meta, DefaultTolerances())
}

// ClassifyWith classifies a raw path string, first match wins: a single
// segment is a line, several joined segments a polyline, an arc a
// circle or ellipse depending on its radii, anything else falls back to
// an opaque "other" element. A branch whose numeric extraction fails
// falls through rather than erroring; only fully parsed shapes are
// referenceable by measurements.
func ClassifyWith(raw string, meta Meta, tol Tolerances) Element {
	el := Element{
		ID:         meta.ID(),
		Visibility: meta.Visibility,
		ViewName:   meta.ViewName,
		PartName:   meta.PartName,
		Index:      meta.Index,
	}

	cmds := path.Parse(raw)
	startsWithMove := len(cmds) > 0 && cmds[0].Letter == 'M' && len(cmds[0].Values) >= 2
	linePairs := countLinePairs(cmds)
	arc, hasArc := firstArc(cmds)

	switch {
	case startsWithMove && !hasArc && linePairs == 1:
		if data, ok := lineData(cmds); ok {
			el.Type = TypeLine
			el.Line = data
			el.Referenceable = true
			return el
		}

	case startsWithMove && linePairs >= 2:
		if data, ok := polylineData(cmds); ok {
			el.Type = TypePolyline
			el.Polyline = data
			el.Referenceable = true
			return el
		}

	case startsWithMove && hasArc:
		start := geometry.Point2D{X: cmds[0].Values[0], Y: cmds[0].Values[1]}
		center := arcCenter(start, arc[0], arc[1], arc[2], arc[3] != 0, arc[4] != 0,
			geometry.Point2D{X: arc[5], Y: arc[6]})
		rx, ry := math.Abs(arc[0]), math.Abs(arc[1])

		if scalar.EqualWithinAbs(rx, ry, tol.RadiusEquality) {
			el.Type = TypeCircle
			el.Circle = &CircleData{
				Center:        center,
				Radius:        rx,
				Diameter:      2 * rx,
				Circumference: 2 * math.Pi * rx,
			}
		} else {
			el.Type = TypeEllipse
			el.Ellipse = &EllipseData{
				Center:      center,
				RadiusX:     rx,
				RadiusY:     ry,
				BoundingBox: geometry.NewRect(center.X-rx, center.Y-ry, 2*rx, 2*ry),
			}
		}
		el.Referenceable = true
		return el
	}

	el.Type = TypeOther
	el.Other = otherData(raw)
	return el
}

// countLinePairs counts the coordinate pairs carried by L commands,
// including implicit repeats within one command.
func countLinePairs(cmds path.Path) int {
	n := 0
	for _, cmd := range cmds {
		if cmd.Letter == 'L' || cmd.Letter == 'l' {
			n += len(cmd.Values) / 2
		}
	}
	return n
}

// firstArc returns the first seven arc parameters, if any A command is
// present with a full parameter group.
func firstArc(cmds path.Path) ([7]float64, bool) {
	for _, cmd := range cmds {
		if cmd.Letter != 'A' && cmd.Letter != 'a' {
			continue
		}
		if len(cmd.Values) < 7 {
			return [7]float64{}, false
		}
		var arc [7]float64
		copy(arc[:], cmd.Values[:7])
		return arc, true
	}
	return [7]float64{}, false
}

// lineData extracts the M x y L x y pattern.
func lineData(cmds path.Path) (*LineData, bool) {
	start := geometry.Point2D{X: cmds[0].Values[0], Y: cmds[0].Values[1]}
	for _, cmd := range cmds[1:] {
		if cmd.Letter != 'L' || len(cmd.Values) < 2 {
			continue
		}
		end := geometry.Point2D{X: cmd.Values[0], Y: cmd.Values[1]}
		return &LineData{
			Start:    start,
			End:      end,
			Length:   start.Distance(end),
			Angle:    start.AngleDeg(end),
			Midpoint: start.Midpoint(end),
		}, true
	}
	return nil, false
}

// polylineData collects every coordinate pair in the path and derives
// the segment count and bounding box from the point set.
func polylineData(cmds path.Path) (*PolylineData, bool) {
	var points []geometry.Point2D
	for _, cmd := range cmds {
		switch upperLetter(cmd.Letter) {
		case 'M', 'L', 'T':
			for i := 0; i+1 < len(cmd.Values); i += 2 {
				points = append(points, geometry.Point2D{X: cmd.Values[i], Y: cmd.Values[i+1]})
			}
		}
	}
	if len(points) < 2 {
		return nil, false
	}
	return &PolylineData{
		Points:      points,
		Segments:    len(points) - 1,
		BoundingBox: geometry.BoundingBox(points),
	}, true
}

// otherData keeps the raw string and its first command letter as a hint.
func otherData(raw string) *OtherData {
	data := &OtherData{Raw: raw}
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		data.Command = trimmed[:1]
	}
	return data
}

func upperLetter(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
