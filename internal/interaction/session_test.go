package interaction

import (
	"testing"

	"techdraw/pkg/geometry"
)

func TestSessionReleaseWithoutPress(t *testing.T) {
	s := NewSession()
	s.Release()
	if s.State() != StateIdle {
		t.Errorf("State = %v, want idle", s.State())
	}
}

func TestSessionTwoClickCapture(t *testing.T) {
	s := NewSession()

	p1 := geometry.Point2D{X: 1, Y: 2}
	p2 := geometry.Point2D{X: 3, Y: 4}

	if _, _, done := s.PressPoint(p1); done {
		t.Fatal("first press should not complete the pair")
	}
	if s.State() != StateFirstPoint {
		t.Fatalf("State = %v, want first-point", s.State())
	}

	first, second, done := s.PressPoint(p2)
	if !done {
		t.Fatal("second press should complete the pair")
	}
	if first != p1 || second != p2 {
		t.Errorf("points = %+v, %+v, want %+v, %+v", first, second, p1, p2)
	}
	if s.State() != StateIdle {
		t.Errorf("State = %v, want idle after completion", s.State())
	}
}

func TestSessionDragLifecycle(t *testing.T) {
	s := NewSession()

	if _, ok := s.Move(); ok {
		t.Error("Move outside a drag should report nothing")
	}

	s.PressLabel("m-1")
	if s.State() != StateDragging {
		t.Fatalf("State = %v, want dragging", s.State())
	}

	id, ok := s.Move()
	if !ok || id != "m-1" {
		t.Errorf("Move = (%q, %v), want (m-1, true)", id, ok)
	}

	s.Release()
	if s.State() != StateIdle {
		t.Errorf("State = %v, want idle after release", s.State())
	}
	if _, ok := s.Move(); ok {
		t.Error("Move after release should report nothing")
	}
}

func TestSessionPressLabelAbandonsFirstPoint(t *testing.T) {
	s := NewSession()
	s.PressPoint(geometry.Point2D{X: 1, Y: 1})
	s.PressLabel("m-2")

	if s.State() != StateDragging {
		t.Fatalf("State = %v, want dragging", s.State())
	}

	s.Release()
	// The abandoned first point must not resurface: the next press
	// starts a fresh pair.
	if _, _, done := s.PressPoint(geometry.Point2D{X: 9, Y: 9}); done {
		t.Error("press after abandoned capture should start a new pair")
	}
}
