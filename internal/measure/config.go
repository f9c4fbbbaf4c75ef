// Package measure derives span measurements from view geometry and
// computes the render layout of their dimension annotations.
package measure

// Config holds the layout and engine constants. The values are
// empirical; they are kept configurable because no documented rationale
// exists for the exact thresholds.
type Config struct {
	// Unit is attached to newly created measurements.
	Unit string `json:"unit"`

	// AnchorOffset is the distance a generated span measurement's
	// label sits outside the view frame.
	AnchorOffset float64 `json:"anchor_offset"`

	// MinOffset is the smallest allowed distance between measured
	// geometry and its dimension line.
	MinOffset float64 `json:"min_offset"`

	// ExtensionGap is the gap between geometry and the near end of an
	// extension line.
	ExtensionGap float64 `json:"extension_gap"`

	// ExtensionOverhang is how far an extension line continues past
	// the dimension line.
	ExtensionOverhang float64 `json:"extension_overhang"`

	// ArrowLength and ArrowWidth size the triangular arrowheads.
	ArrowLength float64 `json:"arrow_length"`
	ArrowWidth  float64 `json:"arrow_width"`

	// FontSize and TextWidthFactor estimate label width as
	// len(label) * FontSize * TextWidthFactor.
	FontSize        float64 `json:"font_size"`
	TextWidthFactor float64 `json:"text_width_factor"`

	// GapPadding is added on each side of the estimated label width
	// to size the break in the dimension line.
	GapPadding float64 `json:"gap_padding"`
}

// DefaultConfig returns the standard annotation constants.
func DefaultConfig() Config {
	return Config{
		Unit:              "mm",
		AnchorOffset:      20,
		MinOffset:         8,
		ExtensionGap:      2,
		ExtensionOverhang: 3,
		ArrowLength:       6,
		ArrowWidth:        2,
		FontSize:          10,
		TextWidthFactor:   0.6,
		GapPadding:        4,
	}
}
