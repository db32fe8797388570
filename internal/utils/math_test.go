package utils

import (
	"math"
	"testing"

	"go-tower-sim/internal/types"
)

func TestPointToSegmentDistance(t *testing.T) {
	tests := []struct {
		name                   string
		px, py, ax, ay, bx, by float64
		want                   float64
	}{
		{"perpendicular foot inside", 5, 3, 0, 0, 10, 0, 3},
		{"clamped to start", -4, 3, 0, 0, 10, 0, 5},
		{"clamped to end", 13, 4, 0, 0, 10, 0, 5},
		{"degenerate segment", 3, 4, 0, 0, 0, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointToSegmentDistance(tt.px, tt.py, tt.ax, tt.ay, tt.bx, tt.by)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentCircleHit(t *testing.T) {
	tests := []struct {
		name string
		hit  bool
		args [7]float64
	}{
		{"crosses circle", true, [7]float64{0, 0, 100, 0, 50, 5, 10}},
		{"misses circle", false, [7]float64{0, 0, 100, 0, 50, 20, 10}},
		{"stops before circle", false, [7]float64{0, 0, 30, 0, 50, 0, 10}},
		{"ends inside circle", true, [7]float64{0, 0, 45, 0, 50, 0, 10}},
		{"zero length", false, [7]float64{50, 0, 50, 0, 50, 0, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.args
			if got := SegmentCircleHit(a[0], a[1], a[2], a[3], a[4], a[5], a[6]); got != tt.hit {
				t.Fatalf("got %v, want %v", got, tt.hit)
			}
		})
	}
}

func TestClampAndDist(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatal("Clamp out of range")
	}
	if Clamp01(1.7) != 1 || Clamp01(-0.2) != 0 {
		t.Fatal("Clamp01 out of range")
	}
	if Dist2(0, 0, 3, 4) != 25 || Dist(0, 0, 3, 4) != 5 {
		t.Fatal("distance mismatch")
	}
	if Round1(3.846) != 3.8 {
		t.Fatalf("Round1 = %v", Round1(3.846))
	}
}

func TestNearPolyline(t *testing.T) {
	path := []types.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}
	tests := []struct {
		x, y float64
		want bool
	}{
		{50, 10, true},
		{50, 30, false},
		{90, 60, true},
		{140, 60, false},
	}
	for _, tt := range tests {
		if got := NearPolyline(path, tt.x, tt.y, 24); got != tt.want {
			t.Errorf("NearPolyline(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if NearPolyline(nil, 0, 0, 24) {
		t.Error("empty path blocks nothing")
	}
}
