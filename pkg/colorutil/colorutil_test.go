package colorutil

import (
	"image/color"
	"testing"
)

func TestLighten(t *testing.T) {
	got := Lighten(color.RGBA{R: 0, G: 0, B: 100, A: 255}, 0.5)
	want := color.RGBA{R: 127, G: 127, B: 177, A: 255}
	if got != want {
		t.Errorf("Lighten = %v, want %v", got, want)
	}

	if got := Lighten(Black, 1); got != White {
		t.Errorf("full lighten = %v, want white", got)
	}
	if got := Lighten(Blue, -2); got != Blue {
		t.Errorf("negative fraction should clamp to no-op, got %v", got)
	}
}

func TestDarken(t *testing.T) {
	got := Darken(color.RGBA{R: 200, G: 100, B: 0, A: 255}, 0.5)
	want := color.RGBA{R: 100, G: 50, B: 0, A: 255}
	if got != want {
		t.Errorf("Darken = %v, want %v", got, want)
	}

	if got := Darken(White, 1); got != Black {
		t.Errorf("full darken = %v, want black", got)
	}
}

func TestAlphaPreserved(t *testing.T) {
	in := color.RGBA{R: 10, G: 20, B: 30, A: 128}
	if got := Lighten(in, 0.3); got.A != 128 {
		t.Errorf("Lighten changed alpha to %d", got.A)
	}
	if got := Darken(in, 0.3); got.A != 128 {
		t.Errorf("Darken changed alpha to %d", got.A)
	}
}
