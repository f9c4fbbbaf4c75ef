package view

import (
	"techdraw/internal/primitive"
	"techdraw/pkg/geometry"
)

// RenderSet holds one visibility class of a view: the raw path strings
// from the kernel and their classified elements, index-aligned.
type RenderSet struct {
	Paths    []string            `json:"paths"`
	Elements []primitive.Element `json:"elements"`
}

// ProjectionView is one rendered view of a part: visible and hidden
// geometry plus the combined coordinate frame. Element slices are built
// once per view generation and treated as immutable afterwards.
type ProjectionView struct {
	Name          string        `json:"name"`
	PartName      string        `json:"part"`
	Visible       RenderSet     `json:"visible"`
	Hidden        RenderSet     `json:"hidden"`
	CombinedFrame geometry.Rect `json:"combinedFrame"`
}

// Build classifies both path sets of a view and merges the two frame
// strings. Classification always completes here, before any measurement
// can reference the elements.
func Build(name, part string, visiblePaths, hiddenPaths []string, visibleFrame, hiddenFrame string) *ProjectionView {
	return BuildWith(name, part, visiblePaths, hiddenPaths, visibleFrame, hiddenFrame, primitive.DefaultTolerances())
}

// BuildWith is Build with explicit classifier tolerances.
func BuildWith(name, part string, visiblePaths, hiddenPaths []string, visibleFrame, hiddenFrame string, tol primitive.Tolerances) *ProjectionView {
	v := &ProjectionView{
		Name:     name,
		PartName: part,
		Visible:  classifySet(name, part, primitive.Visible, visiblePaths, tol),
		Hidden:   classifySet(name, part, primitive.Hidden, hiddenPaths, tol),
	}

	combined, _ := ParseFrame(CombineFrames(visibleFrame, hiddenFrame))
	v.CombinedFrame = combined
	return v
}

func classifySet(name, part string, vis primitive.Visibility, paths []string, tol primitive.Tolerances) RenderSet {
	set := RenderSet{Paths: paths}
	for i, raw := range paths {
		meta := primitive.Meta{
			ViewName:   name,
			PartName:   part,
			Visibility: vis,
			Index:      i,
		}
		set.Elements = append(set.Elements, primitive.ClassifyWith(raw, meta, tol))
	}
	return set
}

// Referenceable pools the measurable elements of both visibility sets.
func (v *ProjectionView) Referenceable() []primitive.Element {
	var out []primitive.Element
	for _, set := range []RenderSet{v.Visible, v.Hidden} {
		for _, el := range set.Elements {
			if el.Referenceable {
				out = append(out, el)
			}
		}
	}
	return out
}

// ElementByID looks up an element in either visibility set.
func (v *ProjectionView) ElementByID(id string) (primitive.Element, bool) {
	for _, set := range []RenderSet{v.Visible, v.Hidden} {
		for _, el := range set.Elements {
			if el.ID == id {
				return el, true
			}
		}
	}
	return primitive.Element{}, false
}
