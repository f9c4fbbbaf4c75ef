package interaction

import (
	"techdraw/pkg/geometry"
)

// State is the interaction mode of a drawing view.
type State int

const (
	// StateIdle: no interaction in progress.
	StateIdle State = iota
	// StateFirstPoint: one endpoint of a two-click measurement has
	// been captured.
	StateFirstPoint
	// StateDragging: a measurement label follows the pointer.
	StateDragging
)

// Session is the per-view interaction state machine. Transitions happen
// only on press, move, and release events; there is no separate cancel
// path, releasing the pointer anywhere ends a drag.
type Session struct {
	state       State
	firstPoint  geometry.Point2D
	measurement string
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{}
}

// State returns the current machine state.
func (s *Session) State() State {
	return s.state
}

// DraggedMeasurement returns the id of the measurement being dragged,
// if any.
func (s *Session) DraggedMeasurement() (string, bool) {
	if s.state != StateDragging {
		return "", false
	}
	return s.measurement, true
}

// PressLabel starts dragging a measurement label. Pressing a label
// abandons a half-finished two-click measurement.
func (s *Session) PressLabel(measurementID string) {
	s.state = StateDragging
	s.measurement = measurementID
}

// PressPoint captures a measurement endpoint. The first press stores
// the point; the second completes the pair and returns done=true with
// both endpoints, leaving the session idle.
func (s *Session) PressPoint(p geometry.Point2D) (first, second geometry.Point2D, done bool) {
	switch s.state {
	case StateFirstPoint:
		first = s.firstPoint
		s.state = StateIdle
		return first, p, true
	default:
		s.state = StateFirstPoint
		s.firstPoint = p
		return geometry.Point2D{}, geometry.Point2D{}, false
	}
}

// Move reports the measurement whose anchor should follow the pointer.
// Outside a drag it reports ok=false and changes nothing.
func (s *Session) Move() (measurementID string, ok bool) {
	return s.DraggedMeasurement()
}

// Release ends a drag. A release with no matching press is a no-op.
func (s *Session) Release() {
	if s.state == StateDragging {
		s.state = StateIdle
		s.measurement = ""
	}
}

// Reset returns the session to idle, dropping any captured point.
func (s *Session) Reset() {
	s.state = StateIdle
	s.measurement = ""
	s.firstPoint = geometry.Point2D{}
}
