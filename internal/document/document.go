// Package document provides drawing document file handling and
// persistence. A document bundles the projection views of a part with
// the measurements placed on them, so an annotated drawing can be
// reopened as it was left.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"techdraw/internal/measure"
	"techdraw/internal/primitive"
	"techdraw/internal/view"
)

// FormatVersion is written into every saved document and checked on
// load.
const FormatVersion = 1

// StoredView is the persisted form of a projection view: the raw path
// strings as produced by the kernel plus the combined frame. Elements
// are not stored; they are reclassified on load.
type StoredView struct {
	Name         string   `json:"name"`
	Part         string   `json:"part"`
	VisiblePaths []string `json:"visiblePaths"`
	HiddenPaths  []string `json:"hiddenPaths,omitempty"`
	Frame        string   `json:"frame"`
}

// File represents a drawing document (.techdraw).
type File struct {
	Version  int       `json:"version"`
	Name     string    `json:"name"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	Unit     string    `json:"unit,omitempty"`

	Views        []StoredView                     `json:"views"`
	Measurements map[string][]measure.Measurement `json:"measurements,omitempty"`
}

// New creates an empty document.
func New(name, unit string) *File {
	now := time.Now()
	return &File{
		Version:      FormatVersion,
		Name:         name,
		Created:      now,
		Modified:     now,
		Unit:         unit,
		Measurements: make(map[string][]measure.Measurement),
	}
}

// Load reads a document from a file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc File
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	if doc.Version > FormatVersion {
		return nil, fmt.Errorf("document %s has unsupported version %d", path, doc.Version)
	}
	return &doc, nil
}

// Save writes the document to a file, stamping the modification time.
func (f *File) Save(path string) error {
	f.Modified = time.Now()

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AddView snapshots a built view into the document, replacing any
// stored view of the same name.
func (f *File) AddView(v *view.ProjectionView) {
	sv := StoredView{
		Name:         v.Name,
		Part:         v.PartName,
		VisiblePaths: v.Visible.Paths,
		HiddenPaths:  v.Hidden.Paths,
		Frame:        view.FrameString(v.CombinedFrame),
	}
	for i := range f.Views {
		if f.Views[i].Name == v.Name {
			f.Views[i] = sv
			return
		}
	}
	f.Views = append(f.Views, sv)
}

// BuildViews reclassifies every stored view. Measurements referencing
// elements that no longer classify the same way are dropped by the
// caller through resolution, not here.
func (f *File) BuildViews(tol primitive.Tolerances) []*view.ProjectionView {
	out := make([]*view.ProjectionView, 0, len(f.Views))
	for _, sv := range f.Views {
		out = append(out, view.BuildWith(sv.Name, sv.Part, sv.VisiblePaths, sv.HiddenPaths, sv.Frame, "", tol))
	}
	return out
}
