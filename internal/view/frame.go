// Package view assembles classified elements and view frames into
// projection views.
package view

import (
	"strconv"
	"strings"

	"techdraw/pkg/geometry"
)

// DefaultFrame is used when no usable frame string is available.
var DefaultFrame = geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100}

// ParseFrame parses an "x y width height" frame string. Malformed or
// empty input reports ok=false; the caller decides the fallback.
func ParseFrame(s string) (geometry.Rect, bool) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return geometry.Rect{}, false
	}

	var vals [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Rect{}, false
		}
		vals[i] = v
	}
	return geometry.NewRect(vals[0], vals[1], vals[2], vals[3]), true
}

// FrameString renders a frame back to its "x y width height" form.
func FrameString(f geometry.Rect) string {
	parts := [4]float64{f.X, f.Y, f.Width, f.Height}
	fields := make([]string, 4)
	for i, v := range parts {
		fields[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(fields, " ")
}

// CombineFrames merges two frame strings into the minimal frame
// enclosing both. An unparseable frame counts as absent: with one
// absent the other is returned verbatim, with both absent the default
// frame is returned.
func CombineFrames(a, b string) string {
	ra, okA := ParseFrame(a)
	rb, okB := ParseFrame(b)

	switch {
	case !okA && !okB:
		return FrameString(DefaultFrame)
	case !okA:
		return b
	case !okB:
		return a
	}
	return FrameString(combine(ra, rb))
}

// combine merges two frames, clamping the result to non-negative size.
func combine(a, b geometry.Rect) geometry.Rect {
	u := a.Union(b)
	if u.Width < 0 {
		u.Width = 0
	}
	if u.Height < 0 {
		u.Height = 0
	}
	return u
}
