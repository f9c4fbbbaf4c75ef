// Command classify is a debug tool: it reads path strings from a JSON
// file and prints how the classifier sees them.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"techdraw/internal/primitive"
)

type record struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	input := flag.String("input", "", "JSON file with [{id, path}] records")
	tolerance := flag.Float64("radius-tol", primitive.DefaultTolerances().RadiusEquality,
		"circle/ellipse radius equality tolerance")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatalf("parse input: %v", err)
	}

	tol := primitive.Tolerances{RadiusEquality: *tolerance}
	for i, r := range records {
		meta := primitive.Meta{
			ViewName:   "cli",
			Visibility: primitive.Visible,
			Index:      i,
		}
		el := primitive.ClassifyWith(r.Path, meta, tol)
		fmt.Printf("%-20s %-8s referenceable=%-5v %s\n", r.ID, el.Type, el.Referenceable, describe(el))
	}
}

// describe summarizes the typed payload of an element.
func describe(el primitive.Element) string {
	switch el.Type {
	case primitive.TypeLine:
		l := el.Line
		return fmt.Sprintf("(%.2f,%.2f)-(%.2f,%.2f) len=%.3f angle=%.1f",
			l.Start.X, l.Start.Y, l.End.X, l.End.Y, l.Length, l.Angle)
	case primitive.TypePolyline:
		p := el.Polyline
		return fmt.Sprintf("%d points, %d segments, bbox=(%.2f,%.2f %.2fx%.2f)",
			len(p.Points), p.Segments, p.BoundingBox.X, p.BoundingBox.Y, p.BoundingBox.Width, p.BoundingBox.Height)
	case primitive.TypeCircle:
		c := el.Circle
		return fmt.Sprintf("center=(%.3f,%.3f) r=%.3f d=%.3f", c.Center.X, c.Center.Y, c.Radius, c.Diameter)
	case primitive.TypeEllipse:
		e := el.Ellipse
		return fmt.Sprintf("center=(%.3f,%.3f) rx=%.3f ry=%.3f", e.Center.X, e.Center.Y, e.RadiusX, e.RadiusY)
	default:
		return fmt.Sprintf("raw=%q", el.Other.Raw)
	}
}
