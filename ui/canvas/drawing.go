// Package canvas provides the interactive drawing view: rendered
// geometry, dimension annotations, pan/zoom, and label dragging.
package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"techdraw/pkg/geometry"
)

// drawLine draws a straight line between two points.
func drawLine(img *image.RGBA, a, b geometry.Point2D, col color.RGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		img.SetRGBA(int(a.X), int(a.Y), col)
		return
	}

	sx := dx / float64(steps)
	sy := dy / float64(steps)
	x, y := a.X, a.Y
	for i := 0; i <= steps; i++ {
		img.SetRGBA(int(x), int(y), col)
		x += sx
		y += sy
	}
}

// drawDashedLine draws a line broken into dash/gap runs. Used for
// hidden-line geometry.
func drawDashedLine(img *image.RGBA, a, b geometry.Point2D, col color.RGBA, dash, gap float64) {
	total := a.Distance(b)
	if total < geometry.Epsilon {
		return
	}

	u := b.Sub(a).Unit()
	for t := 0.0; t < total; t += dash + gap {
		end := math.Min(t+dash, total)
		drawLine(img, a.Add(u.Scale(t)), a.Add(u.Scale(end)), col)
	}
}

// drawCircleOutline approximates a circle with short segments.
func drawCircleOutline(img *image.RGBA, center geometry.Point2D, radius float64, col color.RGBA, dashed bool) {
	steps := int(math.Max(24, radius))
	prev := geometry.Point2D{X: center.X + radius, Y: center.Y}
	for i := 1; i <= steps; i++ {
		angle := float64(i) * 2 * math.Pi / float64(steps)
		next := geometry.Point2D{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
		if !dashed || i%2 == 0 {
			drawLine(img, prev, next, col)
		}
		prev = next
	}
}

// drawEllipseOutline approximates an ellipse with short segments.
func drawEllipseOutline(img *image.RGBA, center geometry.Point2D, rx, ry float64, col color.RGBA, dashed bool) {
	steps := int(math.Max(24, math.Max(rx, ry)))
	prev := geometry.Point2D{X: center.X + rx, Y: center.Y}
	for i := 1; i <= steps; i++ {
		angle := float64(i) * 2 * math.Pi / float64(steps)
		next := geometry.Point2D{
			X: center.X + rx*math.Cos(angle),
			Y: center.Y + ry*math.Sin(angle),
		}
		if !dashed || i%2 == 0 {
			drawLine(img, prev, next, col)
		}
		prev = next
	}
}

// drawTriangle draws a filled triangle by sweeping lines from the tip
// to the base. Arrowheads are small, so the sweep stays cheap.
func drawTriangle(img *image.RGBA, a, b, c geometry.Point2D, col color.RGBA) {
	steps := int(b.Distance(c)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := geometry.Point2D{
			X: b.X + (c.X-b.X)*t,
			Y: b.Y + (c.Y-b.Y)*t,
		}
		drawLine(img, a, p, col)
	}
}

// labelFace is the fixed font used for measurement labels.
var labelFace = basicfont.Face7x13

// measureLabel returns the rendered pixel width of a label.
func measureLabel(text string) float64 {
	d := font.Drawer{Face: labelFace}
	return float64(d.MeasureString(text)) / 64
}

// drawLabel draws text centered on the given point.
func drawLabel(img *image.RGBA, text string, at geometry.Point2D, col color.RGBA) {
	w := measureLabel(text)
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6((at.X - w/2) * 64),
			Y: fixed.Int26_6((at.Y + float64(labelFace.Height)/2 - 2) * 64),
		},
	}
	d.DrawString(text)
}
