package anim

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < eps }

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		scale float64
		want  int
	}{
		{0, 0},
		{0.5, 0},
		{0.51, 1},
		{0.99, 1},
		{1.1, 2},
		{-0.1, -1},
	}
	for _, tt := range tests {
		if got := ScaleFactor(tt.scale); got != tt.want {
			t.Errorf("ScaleFactor(%v) = %d, want %d", tt.scale, got, tt.want)
		}
	}
}

func TestDivideScale(t *testing.T) {
	tests := []struct {
		scale float64
		i, n  int
		want  float64
	}{
		{0, 0, 2, 0},
		{0.25, 0, 2, 0.5},
		{0.5, 0, 2, 1},
		{0.5, 1, 2, 0},
		{0.75, 1, 2, 0.5},
		{1, 1, 2, 1},
		{1, 3, 4, 1},
		{0.3, 1, 4, 0.2},
	}
	for _, tt := range tests {
		if got := DivideScale(tt.scale, tt.i, tt.n); !almostEqual(got, tt.want) {
			t.Errorf("DivideScale(%v, %d, %d) = %v, want %v", tt.scale, tt.i, tt.n, got, tt.want)
		}
	}
}

func TestDivideScale_MonotonicAndBounded(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		for i := 0; i < n; i++ {
			prev := DivideScale(0, i, n)
			for step := 0; step <= 1000; step++ {
				scale := float64(step) / 1000
				got := DivideScale(scale, i, n)
				if got < -eps || got > 1+eps {
					t.Fatalf("DivideScale(%v, %d, %d) = %v, outside [0, 1]", scale, i, n, got)
				}
				if got < prev-eps {
					t.Fatalf("DivideScale(%v, %d, %d) = %v decreased from %v", scale, i, n, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestMirrorValue(t *testing.T) {
	if got := MirrorValue(0.2, 4, 1); !almostEqual(got, 0.25) {
		t.Errorf("MirrorValue(0.2, 4, 1) = %v, want 0.25", got)
	}
	if got := MirrorValue(0.8, 4, 1); !almostEqual(got, 1) {
		t.Errorf("MirrorValue(0.8, 4, 1) = %v, want 1", got)
	}
}

func TestUpdateValue(t *testing.T) {
	tests := []struct {
		scale, dir float64
		want       float64
	}{
		{0, 1, 0.0125},
		{0.8, 1, 0.05},
		{0.8, -1, -0.05},
		{0.3, -1, -0.0125},
		{0.3, 0, 0},
	}
	for _, tt := range tests {
		if got := UpdateValue(tt.scale, tt.dir, 4, 1); !almostEqual(got, tt.want) {
			t.Errorf("UpdateValue(%v, %v, 4, 1) = %v, want %v", tt.scale, tt.dir, got, tt.want)
		}
	}
}
