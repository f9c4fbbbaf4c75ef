// Package interaction converts pointer events into view-local anchor
// updates: coordinate mapping plus the drag/click state machine.
package interaction

import (
	"techdraw/pkg/geometry"
)

// Mapper converts between screen space and a view's local coordinate
// space. The composed transform is pan ∘ zoom ∘ local.
type Mapper struct {
	Pan   geometry.Point2D
	Zoom  float64
	Local geometry.AffineTransform
}

// NewMapper creates a mapper with identity local transform.
func NewMapper(pan geometry.Point2D, zoom float64) Mapper {
	return Mapper{Pan: pan, Zoom: zoom, Local: geometry.Identity()}
}

// composed returns the full local-to-screen transform.
func (m Mapper) composed() geometry.AffineTransform {
	return geometry.Translation(m.Pan.X, m.Pan.Y).
		Compose(geometry.Scaling(m.Zoom)).
		Compose(m.Local)
}

// LocalToScreen maps a view-local point to screen space.
func (m Mapper) LocalToScreen(p geometry.Point2D) geometry.Point2D {
	return m.composed().Apply(p)
}

// ScreenToLocal maps a screen point into the view's local space by
// inverting the composed transform. A degenerate transform maps
// everything to the origin instead of failing.
func (m Mapper) ScreenToLocal(p geometry.Point2D) geometry.Point2D {
	inv, ok := m.composed().Inverse()
	if !ok {
		return geometry.Point2D{}
	}
	return inv.Apply(p)
}
