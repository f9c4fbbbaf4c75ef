// Package app holds the shared application state for the annotation UI.
package app

import (
	"sort"
	"sync"

	"techdraw/internal/document"
	"techdraw/internal/measure"
	"techdraw/internal/primitive"
	"techdraw/internal/view"
	"techdraw/pkg/geometry"
)

// State owns the projection views, their measurements, and the current
// selection. Views are replaced wholesale on regeneration; measurements
// are the only structures mutated in place, and each belongs to exactly
// one view.
type State struct {
	mu sync.RWMutex

	views        map[string]*view.ProjectionView
	measurements map[string][]measure.Measurement
	selection    map[string]bool

	config     measure.Config
	Tolerances primitive.Tolerances

	engine *measure.Engine
}

// NewState creates an empty state with default configuration.
func NewState() *State {
	cfg := measure.DefaultConfig()
	return &State{
		views:        make(map[string]*view.ProjectionView),
		measurements: make(map[string][]measure.Measurement),
		selection:    make(map[string]bool),
		config:       cfg,
		Tolerances:   primitive.DefaultTolerances(),
		engine:       measure.NewEngine(cfg),
	}
}

// Config returns the measurement configuration.
func (s *State) Config() measure.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// SetConfig replaces the measurement configuration. The engine is
// rebuilt so measurements created afterwards pick it up; existing
// measurements keep their recorded unit and value.
func (s *State) SetConfig(cfg measure.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.engine = measure.NewEngine(cfg)
}

// SetView stores a regenerated view and drops measurements whose
// referenced elements no longer exist.
func (s *State) SetView(v *view.ProjectionView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.views[v.Name] = v
	s.measurements[v.Name] = measure.Resolve(v, s.measurements[v.Name])
}

// View returns the named view, if present.
func (s *State) View(name string) (*view.ProjectionView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.views[name]
	return v, ok
}

// ToggleSpan creates the span measurement of the given axis, or removes
// it if it already exists (click-to-toggle).
func (s *State) ToggleSpan(viewName string, o measure.Orientation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[viewName]
	if !ok {
		return
	}

	m, ok := s.engine.Span(v, o)
	if !ok {
		return
	}

	ms := s.measurements[viewName]
	for i, existing := range ms {
		if existing.ID == m.ID {
			s.measurements[viewName] = append(ms[:i], ms[i+1:]...)
			return
		}
	}
	s.measurements[viewName] = append(ms, m)
}

// ToggleDiameter creates or removes a diameter measurement for a
// circle element (click-to-toggle).
func (s *State) ToggleDiameter(viewName, elementID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[viewName]
	if !ok {
		return
	}
	el, ok := v.ElementByID(elementID)
	if !ok {
		return
	}

	m, ok := s.engine.Diameter(el)
	if !ok {
		return
	}

	ms := s.measurements[viewName]
	for i, existing := range ms {
		if existing.ID == m.ID {
			s.measurements[viewName] = append(ms[:i], ms[i+1:]...)
			return
		}
	}
	s.measurements[viewName] = append(ms, m)
}

// AddDistance creates a point-to-point measurement from two picked
// points, or removes an identical one (click-to-toggle, like the other
// measurement kinds).
func (s *State) AddDistance(viewName string, a, b geometry.Point2D) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.views[viewName]; !ok {
		return
	}
	m, ok := s.engine.Distance(a, b)
	if !ok {
		return
	}

	ms := s.measurements[viewName]
	for i, existing := range ms {
		if existing.ID == m.ID {
			s.measurements[viewName] = append(ms[:i], ms[i+1:]...)
			return
		}
	}
	s.measurements[viewName] = append(ms, m)
}

// Measurements returns a copy of the view's measurement list.
func (s *State) Measurements(viewName string) []measure.Measurement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ms := s.measurements[viewName]
	out := make([]measure.Measurement, len(ms))
	copy(out, ms)
	return out
}

// MoveAnchor updates a measurement's label anchor during a drag.
func (s *State) MoveAnchor(viewName, measurementID string, p geometry.Point2D) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := s.measurements[viewName]
	for i := range ms {
		if ms[i].ID == measurementID {
			ms[i].Anchor = p
			return
		}
	}
}

// ToggleSelect flips an element id in the selection set.
func (s *State) ToggleSelect(elementID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection[elementID] {
		delete(s.selection, elementID)
	} else {
		s.selection[elementID] = true
	}
}

// Selection returns the selected element ids as an explicit set for
// render calls.
func (s *State) Selection() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]bool, len(s.selection))
	for id := range s.selection {
		out[id] = true
	}
	return out
}

// SaveMeasurements persists a view's measurements to a JSON file.
func (s *State) SaveMeasurements(viewName, path string) error {
	return measure.Save(path, s.Measurements(viewName))
}

// LoadMeasurements reads measurements for a view, dropping any whose
// elements are missing from the current view.
func (s *State) LoadMeasurements(viewName, path string) error {
	ms, err := measure.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.views[viewName]; ok {
		ms = measure.Resolve(v, ms)
	}
	s.measurements[viewName] = ms
	return nil
}

// ViewNames returns the names of all loaded views, sorted.
func (s *State) ViewNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewNamesLocked()
}

// SaveDocument snapshots every view and its measurements into a
// drawing document file.
func (s *State) SaveDocument(name, path string) error {
	s.mu.RLock()
	doc := document.New(name, s.config.Unit)
	for _, viewName := range s.viewNamesLocked() {
		doc.AddView(s.views[viewName])
		if ms := s.measurements[viewName]; len(ms) > 0 {
			out := make([]measure.Measurement, len(ms))
			copy(out, ms)
			doc.Measurements[viewName] = out
		}
	}
	s.mu.RUnlock()

	return doc.Save(path)
}

// LoadDocument replaces all views and measurements with the contents
// of a drawing document file.
func (s *State) LoadDocument(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.views = make(map[string]*view.ProjectionView)
	s.measurements = make(map[string][]measure.Measurement)
	for _, v := range doc.BuildViews(s.Tolerances) {
		s.views[v.Name] = v
		s.measurements[v.Name] = measure.Resolve(v, doc.Measurements[v.Name])
	}
	return nil
}

func (s *State) viewNamesLocked() []string {
	names := make([]string, 0, len(s.views))
	for name := range s.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
