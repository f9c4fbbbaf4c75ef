package measure

import (
	"math"
	"testing"

	"techdraw/pkg/geometry"
)

func pt(x, y float64) geometry.Point2D {
	return geometry.Point2D{X: x, Y: y}
}

func TestLayoutLinearBreakConservation(t *testing.T) {
	cfg := DefaultConfig()
	label := "100.00 mm"
	layout := LayoutLinear(pt(0, 0), pt(100, 0), pt(50, 0), label, cfg)

	if len(layout.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(layout.Segments))
	}

	gap := float64(len(label))*cfg.FontSize*cfg.TextWidthFactor + 2*cfg.GapPadding
	total := layout.Segments[0].Length() + gap + layout.Segments[1].Length()
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("segments+gap span %v, want 100", total)
	}

	for i, seg := range layout.Segments {
		if seg.Length() < 0 {
			t.Errorf("segment %d has negative length", i)
		}
	}
}

func TestLayoutLinearMinOffsetClamp(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		anchor  geometry.Point2D
		wantDim float64 // y of the dimension line
	}{
		{name: "anchor on the segment clamps positive", anchor: pt(50, 0), wantDim: cfg.MinOffset},
		{name: "small positive offset clamps up", anchor: pt(50, 3), wantDim: cfg.MinOffset},
		{name: "small negative offset clamps down", anchor: pt(50, -3), wantDim: -cfg.MinOffset},
		{name: "large offset kept", anchor: pt(50, 30), wantDim: 30},
		{name: "large negative offset kept", anchor: pt(50, -30), wantDim: -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := LayoutLinear(pt(0, 0), pt(100, 0), tt.anchor, "5 mm", cfg)
			if len(layout.Segments) == 0 {
				t.Fatal("expected dimension line segments")
			}
			if got := layout.Segments[0].A.Y; math.Abs(got-tt.wantDim) > 1e-9 {
				t.Errorf("dimension line y = %v, want %v", got, tt.wantDim)
			}
		})
	}
}

func TestLayoutLinearExtensions(t *testing.T) {
	cfg := DefaultConfig()
	layout := LayoutLinear(pt(0, 0), pt(100, 0), pt(50, 30), "x", cfg)

	if len(layout.Extensions) != 2 {
		t.Fatalf("extensions = %d, want 2", len(layout.Extensions))
	}

	ext := layout.Extensions[0]
	if math.Abs(ext.A.Y-cfg.ExtensionGap) > 1e-9 {
		t.Errorf("extension starts at y=%v, want gap %v from geometry", ext.A.Y, cfg.ExtensionGap)
	}
	if math.Abs(ext.B.Y-(30+cfg.ExtensionOverhang)) > 1e-9 {
		t.Errorf("extension ends at y=%v, want overhang past dimension line", ext.B.Y)
	}
}

func TestLayoutLinearGapClampedAtEnds(t *testing.T) {
	cfg := DefaultConfig()

	// Anchor far beyond the right end: the gap stays out of the
	// arrowhead zone.
	layout := LayoutLinear(pt(0, 0), pt(100, 0), pt(500, 30), "5 mm", cfg)
	if len(layout.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(layout.Segments))
	}

	gap := float64(len("5 mm"))*cfg.FontSize*cfg.TextWidthFactor + 2*cfg.GapPadding
	right := layout.Segments[1]
	if got := right.Length(); math.Abs(got-cfg.ArrowLength) > 1e-9 {
		t.Errorf("right segment length = %v, want arrow zone %v", got, cfg.ArrowLength)
	}
	if got := layout.TextPos.X; math.Abs(got-(100-cfg.ArrowLength-gap/2)) > 1e-9 {
		t.Errorf("text x = %v, want clamped before the arrow zone", got)
	}
}

func TestLayoutLinearShortLineOmitsSegments(t *testing.T) {
	cfg := DefaultConfig()

	// The label gap swallows the whole 20-unit line: both segments are
	// omitted rather than emitted with non-positive length.
	layout := LayoutLinear(pt(0, 0), pt(20, 0), pt(10, 30), "123.45 mm", cfg)
	for i, seg := range layout.Segments {
		if seg.Length() <= 0 {
			t.Errorf("segment %d has non-positive length %v", i, seg.Length())
		}
	}
	if len(layout.Segments) != 0 {
		t.Errorf("segments = %d, want 0 for a line shorter than its label", len(layout.Segments))
	}
}

func TestLayoutLinearArrowheads(t *testing.T) {
	cfg := DefaultConfig()
	layout := LayoutLinear(pt(0, 0), pt(100, 0), pt(50, 30), "5", cfg)

	left, right := layout.Arrowheads[0], layout.Arrowheads[1]
	if math.Abs(left.Tip.X-0) > 1e-9 || math.Abs(left.Tip.Y-30) > 1e-9 {
		t.Errorf("left tip = %+v, want (0,30)", left.Tip)
	}
	if math.Abs(right.Tip.X-100) > 1e-9 {
		t.Errorf("right tip = %+v, want x=100", right.Tip)
	}

	// Bases point inward along the dimension line.
	if left.Left.X <= left.Tip.X {
		t.Error("left arrowhead base should sit inward of its tip")
	}
	if right.Left.X >= right.Tip.X {
		t.Error("right arrowhead base should sit inward of its tip")
	}
}

func TestLayoutLinearDegenerateSegment(t *testing.T) {
	// Zero-length measured segment must not panic or produce NaNs.
	layout := LayoutLinear(pt(5, 5), pt(5, 5), pt(5, 5), "0.00 mm", DefaultConfig())
	for _, seg := range layout.Segments {
		if math.IsNaN(seg.A.X) || math.IsNaN(seg.B.X) {
			t.Fatal("NaN in layout of degenerate segment")
		}
	}
	if math.IsNaN(layout.TextPos.X) || math.IsNaN(layout.TextPos.Y) {
		t.Fatal("NaN text position")
	}
}

func TestLayoutCircleChordFollowsAnchor(t *testing.T) {
	cfg := DefaultConfig()

	// Anchor straight above the center: vertical chord.
	layout := LayoutCircle(pt(0, 0), 5, pt(0, 10), "10.00 mm", cfg)
	if math.Abs(layout.TextAngle-90) > 1e-9 {
		t.Errorf("TextAngle = %v, want 90", layout.TextAngle)
	}
	if math.Abs(layout.Arrowheads[0].Tip.Y-(-5)) > 1e-9 {
		t.Errorf("chord start = %+v, want (0,-5)", layout.Arrowheads[0].Tip)
	}
	if math.Abs(layout.Arrowheads[1].Tip.Y-5) > 1e-9 {
		t.Errorf("chord end = %+v, want (0,5)", layout.Arrowheads[1].Tip)
	}

	if len(layout.Extensions) != 0 {
		t.Errorf("circle dimensions have no extension lines, got %d", len(layout.Extensions))
	}
}

func TestLayoutCircleAnchorAtCenterDefaultsHorizontal(t *testing.T) {
	layout := LayoutCircle(pt(3, 4), 5, pt(3, 4), "10.00 mm", DefaultConfig())
	if math.Abs(layout.TextAngle) > 1e-9 {
		t.Errorf("TextAngle = %v, want 0 (horizontal default)", layout.TextAngle)
	}
	if math.Abs(layout.Arrowheads[0].Tip.X-(-2)) > 1e-9 {
		t.Errorf("chord start = %+v, want (-2,4)", layout.Arrowheads[0].Tip)
	}
}
