package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"techdraw/internal/primitive"
	"techdraw/pkg/geometry"
)

func TestBuildClassifiesBothSets(t *testing.T) {
	visible := []string{"M0 0L10 0", "M5 0A5 5 0 0 1 -5 0"}
	hidden := []string{"M2 2L8 8", "Q1 2 3 4"}

	v := Build("front", "plate", visible, hidden, "0 0 10 10", "0 0 12 12")

	if got := len(v.Visible.Elements); got != 2 {
		t.Fatalf("visible elements = %d, want 2", got)
	}
	if got := len(v.Hidden.Elements); got != 2 {
		t.Fatalf("hidden elements = %d, want 2", got)
	}

	if v.Visible.Elements[0].Type != primitive.TypeLine {
		t.Errorf("visible[0] = %v, want line", v.Visible.Elements[0].Type)
	}
	if v.Visible.Elements[1].Type != primitive.TypeCircle {
		t.Errorf("visible[1] = %v, want circle", v.Visible.Elements[1].Type)
	}
	if v.Hidden.Elements[1].Type != primitive.TypeOther {
		t.Errorf("hidden[1] = %v, want other", v.Hidden.Elements[1].Type)
	}

	wantFrame := geometry.NewRect(0, 0, 12, 12)
	if diff := cmp.Diff(wantFrame, v.CombinedFrame); diff != "" {
		t.Errorf("combined frame mismatch (-want +got):\n%s", diff)
	}
}

func TestElementIDsUniquePerSet(t *testing.T) {
	v := Build("top", "p", []string{"M0 0L1 0"}, []string{"M0 0L1 0"}, "", "")

	visID := v.Visible.Elements[0].ID
	hidID := v.Hidden.Elements[0].ID
	if visID == hidID {
		t.Fatalf("visible and hidden ids collide: %q", visID)
	}
	if visID != "top-visible-0" {
		t.Errorf("visible id = %q, want top-visible-0", visID)
	}
	if hidID != "top-hidden-0" {
		t.Errorf("hidden id = %q, want top-hidden-0", hidID)
	}
}

func TestBuildDefaultFrame(t *testing.T) {
	v := Build("front", "p", nil, nil, "", "garbage")
	if diff := cmp.Diff(DefaultFrame, v.CombinedFrame); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestReferenceablePoolsBothSets(t *testing.T) {
	visible := []string{"M0 0L10 0", "bogus"}
	hidden := []string{"M5 0A5 5 0 0 1 -5 0"}
	v := Build("front", "p", visible, hidden, "", "")

	refs := v.Referenceable()
	if got := len(refs); got != 2 {
		t.Fatalf("referenceable = %d, want 2", got)
	}
	for _, el := range refs {
		if !el.Referenceable {
			t.Errorf("element %s not referenceable", el.ID)
		}
	}
}

func TestElementByID(t *testing.T) {
	v := Build("front", "p", []string{"M0 0L10 0"}, []string{"M1 1L2 2"}, "", "")

	if _, ok := v.ElementByID("front-visible-0"); !ok {
		t.Error("visible element not found")
	}
	if _, ok := v.ElementByID("front-hidden-0"); !ok {
		t.Error("hidden element not found")
	}
	if _, ok := v.ElementByID("front-visible-99"); ok {
		t.Error("missing element reported found")
	}
}
