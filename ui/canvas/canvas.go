package canvas

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"techdraw/internal/app"
	"techdraw/internal/interaction"
	"techdraw/internal/measure"
	"techdraw/internal/primitive"
	"techdraw/pkg/colorutil"
	"techdraw/pkg/geometry"
)

const (
	minZoom  = 0.1
	maxZoom  = 10.0
	zoomStep = 1.25

	// hit slop in screen pixels for taps on geometry and labels
	hitSlop = 5.0
)

// DrawingCanvas displays one projection view with its dimension
// annotations. Dragging a measurement label moves its anchor; dragging
// anywhere else pans, and the wheel zooms.
type DrawingCanvas struct {
	widget.BaseWidget

	state    *app.State
	viewName string

	raster *fynecanvas.Raster
	zoom   float64
	pan    geometry.Point2D

	session *interaction.Session
	panning bool
	hovered string

	onZoomChange func(zoom float64)
}

// NewDrawingCanvas creates a canvas bound to the application state.
func NewDrawingCanvas(state *app.State) *DrawingCanvas {
	dc := &DrawingCanvas{
		state:   state,
		zoom:    1.0,
		session: interaction.NewSession(),
	}
	dc.raster = fynecanvas.NewRaster(dc.draw)
	dc.raster.ScaleMode = fynecanvas.ImageScalePixels
	dc.ExtendBaseWidget(dc)
	return dc
}

// ShowView switches the canvas to the named view.
func (dc *DrawingCanvas) ShowView(name string) {
	dc.viewName = name
	dc.session.Reset()
	dc.Refresh()
}

// ViewName returns the currently displayed view.
func (dc *DrawingCanvas) ViewName() string {
	return dc.viewName
}

// mapper returns the current screen/local coordinate mapper.
func (dc *DrawingCanvas) mapper() interaction.Mapper {
	return interaction.NewMapper(dc.pan, dc.zoom)
}

// SetZoom sets the zoom level, clamped to the supported range.
func (dc *DrawingCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	dc.zoom = zoom
	dc.Refresh()

	if dc.onZoomChange != nil {
		dc.onZoomChange(zoom)
	}
}

// Zoom returns the current zoom level.
func (dc *DrawingCanvas) Zoom() float64 {
	return dc.zoom
}

// ZoomIn increases the zoom level.
func (dc *DrawingCanvas) ZoomIn() {
	dc.SetZoom(dc.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (dc *DrawingCanvas) ZoomOut() {
	dc.SetZoom(dc.zoom / zoomStep)
}

// FitToView adjusts pan and zoom so the view frame fills the canvas.
func (dc *DrawingCanvas) FitToView() {
	v, ok := dc.state.View(dc.viewName)
	if !ok || v.CombinedFrame.Width <= 0 || v.CombinedFrame.Height <= 0 {
		return
	}
	size := dc.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	frame := v.CombinedFrame
	zoomX := float64(size.Width) / frame.Width
	zoomY := float64(size.Height) / frame.Height
	zoom := math.Min(zoomX, zoomY) * 0.85

	dc.pan = geometry.Point2D{
		X: float64(size.Width)/2 - (frame.X+frame.Width/2)*zoom,
		Y: float64(size.Height)/2 - (frame.Y+frame.Height/2)*zoom,
	}
	dc.SetZoom(zoom)
}

// OnZoomChange sets a callback for zoom changes.
func (dc *DrawingCanvas) OnZoomChange(callback func(zoom float64)) {
	dc.onZoomChange = callback
}

// Scrolled zooms with the mouse wheel.
func (dc *DrawingCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		dc.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		dc.ZoomOut()
	}
}

// Dragged moves a measurement label when the drag started on one, and
// pans the view otherwise.
func (dc *DrawingCanvas) Dragged(ev *fyne.DragEvent) {
	screen := geometry.Point2D{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}

	if dc.session.State() != interaction.StateDragging && !dc.panning {
		start := geometry.Point2D{
			X: screen.X - float64(ev.Dragged.DX),
			Y: screen.Y - float64(ev.Dragged.DY),
		}
		if id, ok := dc.hitLabel(start); ok {
			dc.session.PressLabel(id)
		} else {
			dc.panning = true
		}
	}

	if id, ok := dc.session.Move(); ok {
		dc.state.MoveAnchor(dc.viewName, id, dc.mapper().ScreenToLocal(screen))
	} else if dc.panning {
		dc.pan.X += float64(ev.Dragged.DX)
		dc.pan.Y += float64(ev.Dragged.DY)
	}
	dc.Refresh()
}

// DragEnd releases the pointer, ending drag or pan.
func (dc *DrawingCanvas) DragEnd() {
	dc.session.Release()
	dc.panning = false
}

// Tapped toggles annotations: a tap on a circle toggles its diameter
// measurement, a tap on other geometry toggles its selection highlight,
// and two taps on empty space create a point-to-point measurement.
func (dc *DrawingCanvas) Tapped(ev *fyne.PointEvent) {
	v, ok := dc.state.View(dc.viewName)
	if !ok {
		return
	}

	local := dc.mapper().ScreenToLocal(
		geometry.NewPoint2D(float64(ev.Position.X), float64(ev.Position.Y)))
	tol := hitSlop / dc.zoom

	for _, el := range v.Referenceable() {
		if !dc.hitElement(el, local, tol) {
			continue
		}
		// Tapping geometry abandons a half-finished point capture.
		dc.session.Reset()
		if el.Type == primitive.TypeCircle {
			dc.state.ToggleDiameter(dc.viewName, el.ID)
		} else {
			dc.state.ToggleSelect(el.ID)
		}
		dc.Refresh()
		return
	}

	if first, second, done := dc.session.PressPoint(local); done {
		dc.state.AddDistance(dc.viewName, first, second)
		dc.Refresh()
	}
}

// MouseIn implements desktop.Hoverable.
func (dc *DrawingCanvas) MouseIn(ev *desktop.MouseEvent) {
	dc.MouseMoved(ev)
}

// MouseMoved tracks the element under the pointer for the hover
// highlight.
func (dc *DrawingCanvas) MouseMoved(ev *desktop.MouseEvent) {
	v, ok := dc.state.View(dc.viewName)
	if !ok {
		return
	}

	local := dc.mapper().ScreenToLocal(
		geometry.NewPoint2D(float64(ev.Position.X), float64(ev.Position.Y)))
	tol := hitSlop / dc.zoom

	id := ""
	for _, el := range v.Referenceable() {
		if dc.hitElement(el, local, tol) {
			id = el.ID
			break
		}
	}
	if id != dc.hovered {
		dc.hovered = id
		dc.Refresh()
	}
}

// MouseOut clears the hover highlight.
func (dc *DrawingCanvas) MouseOut() {
	if dc.hovered != "" {
		dc.hovered = ""
		dc.Refresh()
	}
}

// hitLabel finds the measurement whose rendered label contains the
// given screen point.
func (dc *DrawingCanvas) hitLabel(screen geometry.Point2D) (string, bool) {
	v, ok := dc.state.View(dc.viewName)
	if !ok {
		return "", false
	}

	m := dc.mapper()
	cfg := dc.state.Config()
	for _, meas := range dc.state.Measurements(dc.viewName) {
		layout, ok := measure.LayoutMeasurement(v, meas, cfg)
		if !ok {
			continue
		}
		pos := m.LocalToScreen(layout.TextPos)
		halfW := measureLabel(layout.Label)/2 + hitSlop
		halfH := float64(labelFace.Height)/2 + hitSlop
		box := geometry.NewRect(pos.X-halfW, pos.Y-halfH, 2*halfW, 2*halfH)
		if box.Contains(screen) {
			return meas.ID, true
		}
	}
	return "", false
}

// hitElement tests whether a local-space point lies on an element's
// outline within the tolerance.
func (dc *DrawingCanvas) hitElement(el primitive.Element, p geometry.Point2D, tol float64) bool {
	switch el.Type {
	case primitive.TypeLine:
		return pointNearSegment(p, el.Line.Start, el.Line.End, tol)
	case primitive.TypePolyline:
		pts := el.Polyline.Points
		for i := 0; i+1 < len(pts); i++ {
			if pointNearSegment(p, pts[i], pts[i+1], tol) {
				return true
			}
		}
	case primitive.TypeCircle:
		return math.Abs(p.Distance(el.Circle.Center)-el.Circle.Radius) <= tol
	case primitive.TypeEllipse:
		e := el.Ellipse
		if e.RadiusX < geometry.Epsilon || e.RadiusY < geometry.Epsilon {
			return false
		}
		nx := (p.X - e.Center.X) / e.RadiusX
		ny := (p.Y - e.Center.Y) / e.RadiusY
		return math.Abs(math.Sqrt(nx*nx+ny*ny)-1) <= tol/math.Min(e.RadiusX, e.RadiusY)
	}
	return false
}

// pointNearSegment tests distance from a point to a segment.
func pointNearSegment(p, a, b geometry.Point2D, tol float64) bool {
	ab := b.Sub(a)
	length := ab.Length()
	if length < geometry.Epsilon {
		return p.Distance(a) <= tol
	}

	t := p.Sub(a).Dot(ab) / (length * length)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Scale(t))) <= tol
}

// CreateRenderer implements fyne.Widget.
func (dc *DrawingCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(dc.raster)
}

// Refresh redraws the canvas.
func (dc *DrawingCanvas) Refresh() {
	dc.raster.Refresh()
	dc.BaseWidget.Refresh()
}

// draw renders the view and its annotations into the raster.
func (dc *DrawingCanvas) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	v, ok := dc.state.View(dc.viewName)
	if !ok {
		return img
	}

	m := dc.mapper()
	selected := dc.state.Selection()
	cfg := dc.state.Config()

	for _, el := range v.Visible.Elements {
		dc.drawElement(img, m, el, selected[el.ID], false)
	}
	for _, el := range v.Hidden.Elements {
		dc.drawElement(img, m, el, selected[el.ID], true)
	}

	for _, meas := range dc.state.Measurements(dc.viewName) {
		layout, ok := measure.LayoutMeasurement(v, meas, cfg)
		if !ok {
			continue
		}
		dc.drawDimension(img, m, layout)
	}

	return img
}

// drawElement renders one classified element; hidden geometry is drawn
// dashed and gray, selected geometry in the highlight color, hovered
// geometry lightened.
func (dc *DrawingCanvas) drawElement(img *image.RGBA, m interaction.Mapper, el primitive.Element, selected, hidden bool) {
	col := colorutil.Black
	if hidden {
		col = colorutil.Gray
	}
	if el.ID == dc.hovered {
		col = colorutil.Lighten(colorutil.Blue, 0.4)
	}
	if selected {
		col = colorutil.Darken(colorutil.Cyan, 0.2)
	}

	switch el.Type {
	case primitive.TypeLine:
		a := m.LocalToScreen(el.Line.Start)
		b := m.LocalToScreen(el.Line.End)
		if hidden {
			drawDashedLine(img, a, b, col, 6, 4)
		} else {
			drawLine(img, a, b, col)
		}
	case primitive.TypePolyline:
		pts := el.Polyline.Points
		for i := 0; i+1 < len(pts); i++ {
			a := m.LocalToScreen(pts[i])
			b := m.LocalToScreen(pts[i+1])
			if hidden {
				drawDashedLine(img, a, b, col, 6, 4)
			} else {
				drawLine(img, a, b, col)
			}
		}
	case primitive.TypeCircle:
		drawCircleOutline(img, m.LocalToScreen(el.Circle.Center), el.Circle.Radius*dc.zoom, col, hidden)
	case primitive.TypeEllipse:
		drawEllipseOutline(img, m.LocalToScreen(el.Ellipse.Center),
			el.Ellipse.RadiusX*dc.zoom, el.Ellipse.RadiusY*dc.zoom, col, hidden)
	}
}

// drawDimension renders a computed dimension layout.
func (dc *DrawingCanvas) drawDimension(img *image.RGBA, m interaction.Mapper, layout measure.DimensionLayout) {
	for _, ext := range layout.Extensions {
		drawLine(img, m.LocalToScreen(ext.A), m.LocalToScreen(ext.B), colorutil.Gray)
	}
	for _, seg := range layout.Segments {
		drawLine(img, m.LocalToScreen(seg.A), m.LocalToScreen(seg.B), colorutil.Blue)
	}
	for _, ah := range layout.Arrowheads {
		drawTriangle(img, m.LocalToScreen(ah.Tip), m.LocalToScreen(ah.Left), m.LocalToScreen(ah.Right), colorutil.Blue)
	}
	drawLabel(img, layout.Label, m.LocalToScreen(layout.TextPos), colorutil.Blue)
}
