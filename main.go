// Package main provides the entry point for the TechDraw annotation
// viewer.
package main

import (
	"log"

	fyneapp "fyne.io/fyne/v2/app"

	"techdraw/internal/app"
	"techdraw/internal/version"
	"techdraw/internal/view"
	"techdraw/ui/mainwindow"
	"techdraw/ui/prefs"
)

const appTitle = "TechDraw"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.String())

	a := fyneapp.New()
	state := app.NewState()
	appPrefs := prefs.Load()

	shown := "front"
	if doc := appPrefs.Values.LastOpenedDoc; doc != "" {
		if err := state.LoadDocument(doc); err != nil {
			log.Printf("reopen %s: %v", doc, err)
		}
	}
	if names := state.ViewNames(); len(names) > 0 {
		shown = names[0]
	} else {
		state.SetView(sampleView())
	}

	win := mainwindow.New(a, state, appPrefs)
	win.SetTitle(appTitle)
	win.ShowView(shown)

	win.ShowAndRun()
}

// sampleView builds a small demo view: a rectangular outline with two
// bores, the kind of projection the CAD kernel produces.
func sampleView() *view.ProjectionView {
	visible := []string{
		"M0 0L120 0",
		"M120 0L120 60",
		"M120 60L0 60",
		"M0 60L0 0",
		"M30 30A10 10 0 1 0 10 30A10 10 0 1 0 30 30",
		"M110 30A10 10 0 1 0 90 30A10 10 0 1 0 110 30",
	}
	hidden := []string{
		"M20 0L20 60",
		"M100 0L100 60",
	}
	return view.Build("front", "plate", visible, hidden, "0 0 120 60", "0 0 120 60")
}
