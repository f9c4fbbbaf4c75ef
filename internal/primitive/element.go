// Package primitive classifies raw path strings from the projection
// kernel into typed geometric elements.
package primitive

import (
	"fmt"

	"techdraw/pkg/geometry"
)

// Type identifies the shape class of an element.
type Type string

const (
	TypeLine     Type = "line"
	TypePolyline Type = "polyline"
	TypeCircle   Type = "circle"
	TypeEllipse  Type = "ellipse"
	TypeOther    Type = "other"
)

// Visibility distinguishes solid outlines from hidden-line geometry.
type Visibility string

const (
	Visible Visibility = "visible"
	Hidden  Visibility = "hidden"
)

// Meta identifies where an element came from.
type Meta struct {
	ViewName   string     `json:"view"`
	PartName   string     `json:"part"`
	Visibility Visibility `json:"visibility"`
	Index      int        `json:"index"`
}

// ID builds the element id, unique per view, visibility set, and index.
func (m Meta) ID() string {
	return fmt.Sprintf("%s-%s-%d", m.ViewName, m.Visibility, m.Index)
}

// LineData is the payload of a single straight segment.
type LineData struct {
	Start    geometry.Point2D `json:"start"`
	End      geometry.Point2D `json:"end"`
	Length   float64          `json:"length"`
	Angle    float64          `json:"angle"`
	Midpoint geometry.Point2D `json:"midpoint"`
}

// PolylineData is the payload of a connected multi-segment outline.
type PolylineData struct {
	Points      []geometry.Point2D `json:"points"`
	Segments    int                `json:"segments"`
	BoundingBox geometry.Rect      `json:"boundingBox"`
}

// CircleData is the payload of a full or partial circular arc outline.
type CircleData struct {
	Center        geometry.Point2D `json:"center"`
	Radius        float64          `json:"radius"`
	Diameter      float64          `json:"diameter"`
	Circumference float64          `json:"circumference"`
}

// EllipseData is the payload of an elliptical arc outline.
type EllipseData struct {
	Center      geometry.Point2D `json:"center"`
	RadiusX     float64          `json:"radiusX"`
	RadiusY     float64          `json:"radiusY"`
	BoundingBox geometry.Rect    `json:"boundingBox"`
}

// OtherData holds geometry that did not classify: the raw path string
// and its first command letter as a weak hint.
type OtherData struct {
	Command string `json:"command,omitempty"`
	Raw     string `json:"raw"`
}

// Element is a classified piece of view geometry. Exactly one payload
// field is non-nil, matching Type. Elements are immutable once built;
// measurements reference them by ID only.
type Element struct {
	ID            string     `json:"id"`
	Type          Type       `json:"type"`
	Visibility    Visibility `json:"visibility"`
	ViewName      string     `json:"view"`
	PartName      string     `json:"part"`
	Index         int        `json:"index"`
	Referenceable bool       `json:"referenceable"`

	Line     *LineData     `json:"line,omitempty"`
	Polyline *PolylineData `json:"polyline,omitempty"`
	Circle   *CircleData   `json:"circle,omitempty"`
	Ellipse  *EllipseData  `json:"ellipse,omitempty"`
	Other    *OtherData    `json:"other,omitempty"`
}
