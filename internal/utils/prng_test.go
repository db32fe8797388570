package utils

import "testing"

func TestPickWeighted(t *testing.T) {
	table := []WeightedEntry{{Key: "A", Weight: 1.6}, {Key: "B", Weight: 0.6}}

	tests := []struct {
		name string
		r    float64
		want string
	}{
		{"zero draw picks first", 0.0, "A"},
		{"inside first bucket", 0.72, "A"},
		{"high draw picks second", 0.99, "B"},
		{"just past first bucket", 0.73, "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickWeighted(tt.r, table); got != tt.want {
				t.Fatalf("PickWeighted(%v) = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}

func TestPickWeightedDegenerateTables(t *testing.T) {
	if got := PickWeighted(0.5, nil); got != "" {
		t.Fatalf("empty table: got %q, want empty", got)
	}
	zero := []WeightedEntry{{Key: "x", Weight: 0}, {Key: "y", Weight: 0}}
	if got := PickWeighted(0.5, zero); got != "x" {
		t.Fatalf("zero total: got %q, want first entry", got)
	}
}

func TestChooseWeightedSingleEntry(t *testing.T) {
	rng := NewPRNGService(7)
	table := []WeightedEntry{{Key: "runner", Weight: 1.6}}
	for i := 0; i < 20; i++ {
		if got := rng.ChooseWeighted(table); got != "runner" {
			t.Fatalf("draw %d: got %q, want runner", i, got)
		}
	}
	if rng.Calls() != 20 {
		t.Fatalf("calls = %d, want 20", rng.Calls())
	}
}

func TestPRNGServiceDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	table := []WeightedEntry{{Key: "runner", Weight: 1.6}, {Key: "brute", Weight: 0.9}, {Key: "armored", Weight: 0.4}}
	for i := 0; i < 100; i++ {
		if x, y := a.ChooseWeighted(table), b.ChooseWeighted(table); x != y {
			t.Fatalf("draw %d diverged: %q vs %q", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Fatalf("seed = %d, want 42", a.Seed())
	}
}
