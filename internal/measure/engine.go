package measure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"techdraw/internal/primitive"
	"techdraw/internal/view"
	"techdraw/pkg/geometry"
)

// Engine derives overall-span measurements for projection views.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Span measures the overall extent of a view's geometry along one axis.
// Lines, circles, and ellipses take part; the two extreme elements are
// picked by their effective coordinate and the span runs between their
// outer extents. Fewer than two eligible elements yield no measurement.
func (e *Engine) Span(v *view.ProjectionView, o Orientation) (Measurement, bool) {
	var eligible []primitive.Element
	for _, el := range v.Referenceable() {
		switch el.Type {
		case primitive.TypeLine, primitive.TypeCircle, primitive.TypeEllipse:
			eligible = append(eligible, el)
		}
	}
	if len(eligible) < 2 {
		return Measurement{}, false
	}

	coords := make([]float64, len(eligible))
	for i, el := range eligible {
		coords[i] = effectiveCoord(el, o)
	}
	first := eligible[floats.MinIdx(coords)]
	last := eligible[floats.MaxIdx(coords)]

	lo, _ := extent(first, o)
	_, hi := extent(last, o)

	return Measurement{
		ID:          fmt.Sprintf("%s-span-%s", v.Name, o),
		Orientation: o,
		FromID:      first.ID,
		ToID:        last.ID,
		Value:       hi - lo,
		Unit:        e.cfg.Unit,
		Anchor:      e.spanAnchor(v.CombinedFrame, o),
	}, true
}

// Diameter creates a diameter measurement for a circle element. The
// label starts below the circle; its drag direction later picks the
// chord angle.
func (e *Engine) Diameter(el primitive.Element) (Measurement, bool) {
	if el.Type != primitive.TypeCircle || !el.Referenceable {
		return Measurement{}, false
	}
	c := el.Circle
	return Measurement{
		ID:          el.ID + "-dia",
		Orientation: Horizontal,
		FromID:      el.ID,
		ToID:        el.ID,
		Value:       c.Diameter,
		Unit:        e.cfg.Unit,
		Anchor: geometry.Point2D{
			X: c.Center.X,
			Y: c.Center.Y + c.Radius + e.cfg.AnchorOffset,
		},
	}, true
}

// Distance creates an aligned measurement between two picked points.
// Coincident points yield no measurement.
func (e *Engine) Distance(a, b geometry.Point2D) (Measurement, bool) {
	if a.Distance(b) < geometry.Epsilon {
		return Measurement{}, false
	}

	n := b.Sub(a).Unit().Perp()
	anchor := a.Midpoint(b).Add(n.Scale(e.cfg.AnchorOffset))
	return Measurement{
		ID:          fmt.Sprintf("dist-%.2f,%.2f-%.2f,%.2f", a.X, a.Y, b.X, b.Y),
		Orientation: Aligned,
		FromPoint:   &a,
		ToPoint:     &b,
		Value:       a.Distance(b),
		Unit:        e.cfg.Unit,
		Anchor:      anchor,
	}, true
}

// AllSpans generates the span measurements of both axes, skipping axes
// with too few eligible elements.
func (e *Engine) AllSpans(v *view.ProjectionView) []Measurement {
	var out []Measurement
	for _, o := range []Orientation{Horizontal, Vertical} {
		if m, ok := e.Span(v, o); ok {
			out = append(out, m)
		}
	}
	return out
}

// spanAnchor places a generated label outside the view frame: below it
// for horizontal spans, to the right for vertical ones.
func (e *Engine) spanAnchor(frame geometry.Rect, o Orientation) geometry.Point2D {
	if o == Horizontal {
		return geometry.Point2D{
			X: frame.X + frame.Width/2,
			Y: frame.Y + frame.Height + e.cfg.AnchorOffset,
		}
	}
	return geometry.Point2D{
		X: frame.X + frame.Width + e.cfg.AnchorOffset,
		Y: frame.Y + frame.Height/2,
	}
}

// effectiveCoord is the ordering coordinate of an element along the
// measured axis: the center for round shapes, the lesser endpoint for
// lines.
func effectiveCoord(el primitive.Element, o Orientation) float64 {
	switch el.Type {
	case primitive.TypeCircle:
		return axisValue(el.Circle.Center, o)
	case primitive.TypeEllipse:
		return axisValue(el.Ellipse.Center, o)
	default:
		return math.Min(axisValue(el.Line.Start, o), axisValue(el.Line.End, o))
	}
}

// extent is the true outer range of an element along the measured axis.
func extent(el primitive.Element, o Orientation) (float64, float64) {
	switch el.Type {
	case primitive.TypeCircle:
		c := axisValue(el.Circle.Center, o)
		return c - el.Circle.Radius, c + el.Circle.Radius
	case primitive.TypeEllipse:
		c := axisValue(el.Ellipse.Center, o)
		r := el.Ellipse.RadiusX
		if o == Vertical {
			r = el.Ellipse.RadiusY
		}
		return c - r, c + r
	default:
		a := axisValue(el.Line.Start, o)
		b := axisValue(el.Line.End, o)
		return math.Min(a, b), math.Max(a, b)
	}
}

func axisValue(p geometry.Point2D, o Orientation) float64 {
	if o == Horizontal {
		return p.X
	}
	return p.Y
}

// Endpoints resolves the two measured points of a measurement in the
// view's coordinate space: the stored points for a point measurement,
// the outer extent of each referenced element along the measured axis
// otherwise. Reports ok=false when a referenced element is missing.
func Endpoints(v *view.ProjectionView, m Measurement) (geometry.Point2D, geometry.Point2D, bool) {
	if m.PointBased() {
		return *m.FromPoint, *m.ToPoint, true
	}

	from, ok := v.ElementByID(m.FromID)
	if !ok {
		return geometry.Point2D{}, geometry.Point2D{}, false
	}
	to, ok := v.ElementByID(m.ToID)
	if !ok {
		return geometry.Point2D{}, geometry.Point2D{}, false
	}
	return extentPoint(from, m.Orientation, false), extentPoint(to, m.Orientation, true), true
}

// extentPoint is the point where an element reaches its outer extent
// along the axis; max selects the far side.
func extentPoint(el primitive.Element, o Orientation, max bool) geometry.Point2D {
	lo, hi := extent(el, o)
	v := lo
	if max {
		v = hi
	}

	var cross geometry.Point2D
	switch el.Type {
	case primitive.TypeCircle:
		cross = el.Circle.Center
	case primitive.TypeEllipse:
		cross = el.Ellipse.Center
	default:
		a, b := el.Line.Start, el.Line.End
		cross = a
		if (axisValue(b, o) > axisValue(a, o)) == max {
			cross = b
		}
	}

	if o == Horizontal {
		return geometry.Point2D{X: v, Y: cross.Y}
	}
	return geometry.Point2D{X: cross.X, Y: v}
}
