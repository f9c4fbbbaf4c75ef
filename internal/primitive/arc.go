package primitive

import (
	"math"

	"techdraw/pkg/geometry"
)

// arcCenter converts an arc from endpoint parameterization (start point,
// radii, x-axis rotation in degrees, large-arc and sweep flags, end
// point) to its center point.
//
// This is the standard endpoint-to-center conversion: transform the
// chord midpoint into the arc's local frame, scale up degenerate radii,
// solve for the local center, and map back. Degenerate inputs (zero
// radii or coincident endpoints) return the chord midpoint.
func arcCenter(start geometry.Point2D, rx, ry, rotationDeg float64, largeArc, sweep bool, end geometry.Point2D) geometry.Point2D {
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx < geometry.Epsilon || ry < geometry.Epsilon {
		return start.Midpoint(end)
	}

	phi := rotationDeg * math.Pi / 180
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	// Half the chord vector, rotated into the ellipse frame.
	dx := (start.X - end.X) / 2
	dy := (start.Y - end.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	if math.Abs(x1p) < geometry.Epsilon && math.Abs(y1p) < geometry.Epsilon {
		return start.Midpoint(end)
	}

	// Scale radii up if the endpoints cannot be joined with the given
	// radii.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	if den < geometry.Epsilon {
		return start.Midpoint(end)
	}
	factor := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		factor = -factor
	}

	cxp := factor * rx * y1p / ry
	cyp := -factor * ry * x1p / rx

	// Back to the caller's frame.
	mx := (start.X + end.X) / 2
	my := (start.Y + end.Y) / 2
	return geometry.Point2D{
		X: cosPhi*cxp - sinPhi*cyp + mx,
		Y: sinPhi*cxp + cosPhi*cyp + my,
	}
}
