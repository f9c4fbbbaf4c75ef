package measure

import (
	"encoding/json"
	"fmt"
	"os"

	"techdraw/internal/view"
	"techdraw/pkg/geometry"
)

// Orientation is the axis a span measurement runs along.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"

	// Aligned runs point to point instead of along an axis.
	Aligned Orientation = "aligned"
)

// Measurement records a dimension between two elements of one view, or
// between two picked points. Elements are referenced by id only: if a
// referenced element disappears when the view is regenerated, the
// measurement is discarded, not rendered. Point measurements carry
// their endpoints inline and survive regeneration. Anchor is the
// draggable label position and is the only field mutated after
// creation.
type Measurement struct {
	ID          string            `json:"id"`
	Orientation Orientation       `json:"orientation"`
	FromID      string            `json:"fromElementId,omitempty"`
	ToID        string            `json:"toElementId,omitempty"`
	FromPoint   *geometry.Point2D `json:"fromPoint,omitempty"`
	ToPoint     *geometry.Point2D `json:"toPoint,omitempty"`
	Value       float64           `json:"value"`
	Unit        string            `json:"unit"`
	Anchor      geometry.Point2D  `json:"anchor"`
}

// PointBased reports whether the measurement carries its own endpoints
// instead of referencing elements.
func (m *Measurement) PointBased() bool {
	return m.FromPoint != nil && m.ToPoint != nil
}

// Label renders the measurement text shown in the dimension break.
func (m *Measurement) Label() string {
	return fmt.Sprintf("%.2f %s", m.Value, m.Unit)
}

// Resolve drops measurements whose referenced elements no longer exist
// in the view. Point measurements have no references and always
// survive. Used after view regeneration.
func Resolve(v *view.ProjectionView, ms []Measurement) []Measurement {
	var out []Measurement
	for _, m := range ms {
		if m.PointBased() {
			out = append(out, m)
			continue
		}
		if _, ok := v.ElementByID(m.FromID); !ok {
			continue
		}
		if _, ok := v.ElementByID(m.ToID); !ok {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ExportJSON serializes measurements to their persistence records.
func ExportJSON(ms []Measurement) ([]byte, error) {
	data, err := json.MarshalIndent(ms, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal measurements: %w", err)
	}
	return data, nil
}

// ImportJSON parses persistence records back into measurements.
func ImportJSON(data []byte) ([]Measurement, error) {
	var ms []Measurement
	if err := json.Unmarshal(data, &ms); err != nil {
		return nil, fmt.Errorf("unmarshal measurements: %w", err)
	}
	return ms, nil
}

// Save writes measurements to a JSON file.
func Save(path string, ms []Measurement) error {
	data, err := ExportJSON(ms)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads measurements from a JSON file.
func Load(path string) ([]Measurement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ImportJSON(data)
}
