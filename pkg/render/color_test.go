package render

import (
	"image/color"
	"testing"
)

func TestTint(t *testing.T) {
	got := Tint(0x3bd3ff)
	want := color.RGBA{R: 0x3b, G: 0xd3, B: 0xff, A: 255}
	if got != want {
		t.Errorf("Tint = %v, want %v", got, want)
	}
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{0, 0, 0, 0}
	b := color.RGBA{200, 100, 50, 250}
	if got := LerpColor(a, b, 0.5); got != (color.RGBA{100, 50, 25, 125}) {
		t.Errorf("LerpColor = %v", got)
	}
	if got := LerpColor(a, b, 3); got != b {
		t.Errorf("LerpColor clamps, got %v", got)
	}
}

func TestLoadFace(t *testing.T) {
	face, err := LoadFace(12)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	if face.Metrics().Height <= 0 {
		t.Error("face has no height")
	}
}
