package measure

import (
	"math"

	"techdraw/internal/primitive"
	"techdraw/internal/view"
	"techdraw/pkg/geometry"
)

// Segment is one straight piece of rendered annotation geometry.
type Segment struct {
	A geometry.Point2D `json:"a"`
	B geometry.Point2D `json:"b"`
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Arrowhead is a small triangular marker at one end of a dimension
// line, pointing along Tip.
type Arrowhead struct {
	Tip   geometry.Point2D `json:"tip"`
	Left  geometry.Point2D `json:"left"`
	Right geometry.Point2D `json:"right"`
}

// DimensionLayout is the full render geometry of one measurement:
// extension lines from the measured geometry, the broken dimension line
// (up to two segments around the label gap), arrowheads, and the text
// position on the line.
type DimensionLayout struct {
	Extensions []Segment    `json:"extensions"`
	Segments   []Segment    `json:"segments"`
	Arrowheads [2]Arrowhead `json:"arrowheads"`
	TextPos    geometry.Point2D `json:"textPos"`
	TextAngle  float64      `json:"textAngle"`
	Label      string       `json:"label"`
}

// LayoutMeasurement computes the render geometry of a measurement in
// its view. Point measurements run between their stored endpoints,
// measurements referencing a single circle get the diameter treatment,
// all others a linear dimension between their resolved endpoints.
// Reports ok=false when a referenced element is gone, in which case
// nothing is rendered.
func LayoutMeasurement(v *view.ProjectionView, m Measurement, cfg Config) (DimensionLayout, bool) {
	if m.PointBased() {
		return LayoutLinear(*m.FromPoint, *m.ToPoint, m.Anchor, m.Label(), cfg), true
	}
	if m.FromID == m.ToID {
		el, ok := v.ElementByID(m.FromID)
		if !ok || el.Type != primitive.TypeCircle {
			return DimensionLayout{}, false
		}
		return LayoutCircle(el.Circle.Center, el.Circle.Radius, m.Anchor, m.Label(), cfg), true
	}

	p1, p2, ok := Endpoints(v, m)
	if !ok {
		return DimensionLayout{}, false
	}
	return LayoutLinear(p1, p2, m.Anchor, m.Label(), cfg), true
}

// LayoutLinear computes the dimension layout between two measured
// points. The anchor's projection onto the perpendicular sets the
// offset of the dimension line (clamped to the minimum), and its
// projection along the line centers the label gap. Dragging the anchor
// only recomputes this layout; the measured geometry is untouched.
func LayoutLinear(p1, p2, anchor geometry.Point2D, label string, cfg Config) DimensionLayout {
	u := p2.Sub(p1).Unit()
	n := u.Perp()
	mid := p1.Midpoint(p2)

	offset := anchor.Sub(mid).Dot(n)
	offset = clampOffset(offset, cfg.MinOffset)
	side := math.Copysign(1, offset)

	q1 := p1.Add(n.Scale(offset))
	q2 := p2.Add(n.Scale(offset))

	layout := layoutAlong(q1, q2, u, n, anchor, label, cfg)
	layout.Extensions = []Segment{
		extensionLine(p1, n, offset, side, cfg),
		extensionLine(p2, n, offset, side, cfg),
	}
	return layout
}

// LayoutCircle computes the layout of a diameter measurement. The
// dimension line is a diameter chord whose direction follows the anchor
// relative to the center, defaulting to horizontal when the anchor sits
// on the center.
func LayoutCircle(center geometry.Point2D, radius float64, anchor geometry.Point2D, label string, cfg Config) DimensionLayout {
	dir := anchor.Sub(center)
	if dir.Length() < geometry.Epsilon {
		dir = geometry.Point2D{X: 1, Y: 0}
	}
	u := dir.Unit()

	p1 := center.Sub(u.Scale(radius))
	p2 := center.Add(u.Scale(radius))
	return layoutAlong(p1, p2, u, u.Perp(), anchor, label, cfg)
}

// layoutAlong breaks the dimension line q1..q2 around the label gap and
// places the arrowheads and text.
func layoutAlong(q1, q2, u, n, anchor geometry.Point2D, label string, cfg Config) DimensionLayout {
	length := q1.Distance(q2)

	gap := estimateTextWidth(label, cfg) + 2*cfg.GapPadding
	center := anchor.Sub(q1).Dot(u)

	// Keep the gap out of the arrowhead zones. When the line is too
	// short for that, fall back to the middle.
	lo := cfg.ArrowLength + gap/2
	hi := length - cfg.ArrowLength - gap/2
	if lo > hi {
		center = length / 2
	} else if center < lo {
		center = lo
	} else if center > hi {
		center = hi
	}

	var segments []Segment
	if left := center - gap/2; left > 0 {
		segments = append(segments, Segment{A: q1, B: q1.Add(u.Scale(left))})
	}
	if right := center + gap/2; length-right > 0 {
		segments = append(segments, Segment{A: q1.Add(u.Scale(right)), B: q2})
	}

	return DimensionLayout{
		Segments: segments,
		Arrowheads: [2]Arrowhead{
			arrowhead(q1, u, n, cfg),
			arrowhead(q2, u.Scale(-1), n, cfg),
		},
		TextPos:   q1.Add(u.Scale(center)),
		TextAngle: math.Atan2(u.Y, u.X) * 180 / math.Pi,
		Label:     label,
	}
}

// extensionLine connects measured geometry to the offset dimension
// line, with a gap at the geometry end and an overhang past the line.
func extensionLine(p, n geometry.Point2D, offset, side float64, cfg Config) Segment {
	return Segment{
		A: p.Add(n.Scale(side * cfg.ExtensionGap)),
		B: p.Add(n.Scale(offset + side*cfg.ExtensionOverhang)),
	}
}

// arrowhead builds the triangle at a dimension-line end, with the tip
// at the end and the base pointing inward along u.
func arrowhead(tip, u, n geometry.Point2D, cfg Config) Arrowhead {
	base := tip.Add(u.Scale(cfg.ArrowLength))
	return Arrowhead{
		Tip:   tip,
		Left:  base.Add(n.Scale(cfg.ArrowWidth)),
		Right: base.Sub(n.Scale(cfg.ArrowWidth)),
	}
}

// estimateTextWidth approximates the rendered label width from its
// character count.
func estimateTextWidth(label string, cfg Config) float64 {
	return float64(len(label)) * cfg.FontSize * cfg.TextWidthFactor
}

// clampOffset enforces the minimum dimension-line offset, preserving
// the side the anchor is on. A zero offset clamps to the positive side.
func clampOffset(offset, min float64) float64 {
	if math.Abs(offset) >= min {
		return offset
	}
	if offset < 0 {
		return -min
	}
	return min
}
