// Package mainwindow assembles the application window around the
// drawing canvas.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"techdraw/internal/app"
	"techdraw/internal/measure"
	"techdraw/ui/canvas"
	"techdraw/ui/prefs"
)

// MainWindow is the top-level application window.
type MainWindow struct {
	fyne.Window

	state  *app.State
	prefs  *prefs.Prefs
	canvas *canvas.DrawingCanvas

	zoomLabel *widget.Label
}

// New creates the main window on the given Fyne app.
func New(a fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	mw := &MainWindow{
		Window: a.NewWindow("TechDraw"),
		state:  state,
		prefs:  p,
	}

	mw.canvas = canvas.NewDrawingCanvas(state)
	mw.zoomLabel = widget.NewLabel("100%")
	mw.canvas.OnZoomChange(func(zoom float64) {
		mw.zoomLabel.SetText(fmt.Sprintf("%.0f%%", zoom*100))
		p.Update(func(v *prefs.Values) { v.LastZoom = zoom })
	})

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), mw.openDocument),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), mw.saveDocument),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomInIcon(), mw.canvas.ZoomIn),
		widget.NewToolbarAction(theme.ZoomOutIcon(), mw.canvas.ZoomOut),
		widget.NewToolbarAction(theme.ZoomFitIcon(), mw.canvas.FitToView),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MoreHorizontalIcon(), func() {
			mw.toggleSpan(measure.Horizontal)
		}),
		widget.NewToolbarAction(theme.MoreVerticalIcon(), func() {
			mw.toggleSpan(measure.Vertical)
		}),
	)

	status := container.NewHBox(widget.NewLabel("Zoom:"), mw.zoomLabel)
	mw.SetContent(container.NewBorder(toolbar, status, nil, nil, mw.canvas))
	mw.Resize(fyne.NewSize(float32(p.Values.WindowWidth), float32(p.Values.WindowHeight)))

	mw.SetOnClosed(func() {
		if err := p.Save(); err != nil {
			log.Printf("save preferences: %v", err)
		}
	})
	return mw
}

// ShowView displays the named view on the canvas.
func (mw *MainWindow) ShowView(name string) {
	mw.canvas.ShowView(name)
}

// toggleSpan toggles the overall span measurement of the given axis on
// the displayed view.
func (mw *MainWindow) toggleSpan(o measure.Orientation) {
	name := mw.canvas.ViewName()
	if name == "" {
		return
	}
	mw.state.ToggleSpan(name, o)
	mw.canvas.Refresh()
}

var docFilter = storage.NewExtensionFileFilter([]string{".techdraw"})

// saveDocument writes all views and measurements to a document file
// chosen by the user.
func (mw *MainWindow) saveDocument() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		if w == nil {
			return
		}
		path := w.URI().Path()
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		w.Close()

		if err := mw.state.SaveDocument(name, path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.prefs.Update(func(v *prefs.Values) { v.LastOpenedDoc = path })
	}, mw.Window)
	d.SetFilter(docFilter)
	d.SetFileName("drawing.techdraw")
	d.Show()
}

// openDocument replaces the current views with a document file chosen
// by the user.
func (mw *MainWindow) openDocument() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		if r == nil {
			return
		}
		path := r.URI().Path()
		r.Close()

		if err := mw.state.LoadDocument(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.prefs.Update(func(v *prefs.Values) { v.LastOpenedDoc = path })
		if names := mw.state.ViewNames(); len(names) > 0 {
			mw.ShowView(names[0])
		}
	}, mw.Window)
	d.SetFilter(docFilter)
	d.Show()
}
