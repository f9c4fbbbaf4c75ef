package app

import (
	"path/filepath"
	"testing"

	"techdraw/internal/measure"
	"techdraw/internal/view"
	"techdraw/pkg/geometry"
)

// Full circles of radius 2 centered at x=0 and x=20, rendered as two
// half-circle arcs each.
const (
	leftCircle  = "M2 0A2 2 0 1 0 -2 0A2 2 0 1 0 2 0"
	rightCircle = "M22 0A2 2 0 1 0 18 0A2 2 0 1 0 22 0"
)

func testView(t *testing.T) *view.ProjectionView {
	t.Helper()
	v := view.Build("front", "plate",
		[]string{leftCircle, rightCircle},
		nil,
		"-2 -2 24 4", "")
	if len(v.Referenceable()) != 2 {
		t.Fatalf("fixture view has %d referenceable elements, want 2", len(v.Referenceable()))
	}
	return v
}

func TestToggleSpanAddRemove(t *testing.T) {
	s := NewState()
	s.SetView(testView(t))

	s.ToggleSpan("front", measure.Horizontal)
	if got := s.Measurements("front"); len(got) != 1 {
		t.Fatalf("measurements = %d, want 1 after first toggle", len(got))
	}

	s.ToggleSpan("front", measure.Horizontal)
	if got := s.Measurements("front"); len(got) != 0 {
		t.Fatalf("measurements = %d, want 0 after second toggle", len(got))
	}
}

func TestToggleSpanUnknownView(t *testing.T) {
	s := NewState()
	s.ToggleSpan("missing", measure.Vertical)
	if got := s.Measurements("missing"); len(got) != 0 {
		t.Errorf("measurements = %d, want 0 for unknown view", len(got))
	}
}

func TestToggleDiameter(t *testing.T) {
	s := NewState()
	v := testView(t)
	s.SetView(v)

	id := v.Visible.Elements[0].ID
	s.ToggleDiameter("front", id)
	ms := s.Measurements("front")
	if len(ms) != 1 {
		t.Fatalf("measurements = %d, want 1", len(ms))
	}
	if ms[0].FromID != ms[0].ToID {
		t.Error("diameter measurement should reference one element on both ends")
	}

	s.ToggleDiameter("front", id)
	if got := s.Measurements("front"); len(got) != 0 {
		t.Errorf("measurements = %d, want 0 after removing the diameter", len(got))
	}
}

func TestMoveAnchor(t *testing.T) {
	s := NewState()
	s.SetView(testView(t))
	s.ToggleSpan("front", measure.Horizontal)

	m := s.Measurements("front")[0]
	want := geometry.Point2D{X: 3, Y: 50}
	s.MoveAnchor("front", m.ID, want)

	if got := s.Measurements("front")[0].Anchor; got != want {
		t.Errorf("anchor = %+v, want %+v", got, want)
	}
}

func TestSetViewDropsStaleMeasurements(t *testing.T) {
	s := NewState()
	s.SetView(testView(t))
	s.ToggleSpan("front", measure.Horizontal)

	// Regenerate with one circle gone: the span referenced both, so it
	// must not survive.
	s.SetView(view.Build("front", "plate",
		[]string{leftCircle}, nil, "-2 -2 4 4", ""))

	if got := s.Measurements("front"); len(got) != 0 {
		t.Errorf("measurements = %d, want 0 after stale reference dropped", len(got))
	}
}

func TestAddDistance(t *testing.T) {
	s := NewState()
	s.SetView(testView(t))

	a := geometry.Point2D{X: 0, Y: 0}
	b := geometry.Point2D{X: 10, Y: 0}
	s.AddDistance("front", a, b)

	ms := s.Measurements("front")
	if len(ms) != 1 {
		t.Fatalf("measurements = %d, want 1", len(ms))
	}
	if !ms[0].PointBased() {
		t.Error("expected a point-based measurement")
	}
	if ms[0].Value != 10 {
		t.Errorf("Value = %v, want 10", ms[0].Value)
	}

	// Same pair toggles it off.
	s.AddDistance("front", a, b)
	if got := s.Measurements("front"); len(got) != 0 {
		t.Errorf("measurements = %d, want 0 after re-adding the same pair", len(got))
	}

	s.AddDistance("front", a, a)
	if got := s.Measurements("front"); len(got) != 0 {
		t.Errorf("coincident points created a measurement")
	}
}

func TestAddDistanceSurvivesRegeneration(t *testing.T) {
	s := NewState()
	s.SetView(testView(t))
	s.AddDistance("front", geometry.Point2D{X: 0, Y: 0}, geometry.Point2D{X: 10, Y: 0})

	s.SetView(view.Build("front", "plate",
		[]string{leftCircle}, nil, "-2 -2 4 4", ""))

	if got := s.Measurements("front"); len(got) != 1 {
		t.Errorf("measurements = %d, want 1; point measurements do not reference elements", len(got))
	}
}

func TestSetConfigRebuildsEngine(t *testing.T) {
	s := NewState()
	s.SetView(testView(t))

	cfg := s.Config()
	cfg.Unit = "in"
	s.SetConfig(cfg)

	if got := s.Config().Unit; got != "in" {
		t.Fatalf("Config().Unit = %q, want in", got)
	}

	s.ToggleSpan("front", measure.Horizontal)
	if got := s.Measurements("front")[0].Unit; got != "in" {
		t.Errorf("new measurement unit = %q, want the updated unit", got)
	}
}

func TestMeasurementsReturnsCopy(t *testing.T) {
	s := NewState()
	s.SetView(testView(t))
	s.ToggleSpan("front", measure.Horizontal)

	ms := s.Measurements("front")
	ms[0].Anchor = geometry.Point2D{X: -99, Y: -99}

	if got := s.Measurements("front")[0].Anchor; got == (geometry.Point2D{X: -99, Y: -99}) {
		t.Error("mutating the returned slice leaked into state")
	}
}

func TestToggleSelect(t *testing.T) {
	s := NewState()
	s.ToggleSelect("front-visible-0")
	if !s.Selection()["front-visible-0"] {
		t.Error("element should be selected after first toggle")
	}
	s.ToggleSelect("front-visible-0")
	if s.Selection()["front-visible-0"] {
		t.Error("element should be deselected after second toggle")
	}
}

func TestSaveLoadMeasurements(t *testing.T) {
	s := NewState()
	s.SetView(testView(t))
	s.ToggleSpan("front", measure.Horizontal)
	want := s.Measurements("front")

	path := filepath.Join(t.TempDir(), "measurements.json")
	if err := s.SaveMeasurements("front", path); err != nil {
		t.Fatal(err)
	}

	other := NewState()
	other.SetView(testView(t))
	if err := other.LoadMeasurements("front", path); err != nil {
		t.Fatal(err)
	}

	got := other.Measurements("front")
	if len(got) != 1 || got[0].ID != want[0].ID || got[0].Value != want[0].Value {
		t.Errorf("loaded measurements = %+v, want %+v", got, want)
	}
}
