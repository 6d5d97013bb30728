package palette

import (
	"math"
	"testing"
)

func TestCIEDE2000_Identity(t *testing.T) {
	colors := []Lab{
		{L: 0, A: 0, B: 0},
		{L: 100, A: 0, B: 0},
		{L: 50, A: 2.6772, B: -79.7751},
		{L: 53.24, A: 80.09, B: 67.20},
		{L: 20, A: -40, B: 15},
	}

	for _, c := range colors {
		if d := CIEDE2000(c, c); d != 0 {
			t.Errorf("CIEDE2000(%+v, same) = %g, want 0", c, d)
		}
	}
}

func TestCIEDE2000_Symmetry(t *testing.T) {
	pairs := [][2]Lab{
		{{L: 50, A: 2.6772, B: -79.7751}, {L: 50, A: 0, B: -82.7485}},
		{{L: 53.24, A: 80.09, B: 67.20}, {L: 87.74, A: -86.18, B: 83.18}},
		{{L: 10, A: 0, B: 0}, {L: 90, A: 0, B: 0}},
		{{L: 60, A: 30, B: -30}, {L: 60.5, A: 29, B: -28}},
	}

	for _, p := range pairs {
		ab := CIEDE2000(p[0], p[1])
		ba := CIEDE2000(p[1], p[0])
		if math.Abs(ab-ba) > 1e-12 {
			t.Errorf("asymmetric: d(a,b)=%.12f d(b,a)=%.12f for %+v / %+v", ab, ba, p[0], p[1])
		}
		if ab < 0 {
			t.Errorf("negative distance %.6f for %+v / %+v", ab, p[0], p[1])
		}
	}
}

func TestCIEDE2000_PublishedVectors(t *testing.T) {
	// Test pairs from Sharma, Wu & Dalal, "The CIEDE2000 Color-Difference
	// Formula: Implementation Notes" (2005), table 1.
	tests := []struct {
		name   string
		c1, c2 Lab
		want   float64
	}{
		{"blue pair", Lab{50.0000, 2.6772, -79.7751}, Lab{50.0000, 0.0000, -82.7485}, 2.0425},
		{"blue pair wider", Lab{50.0000, 3.1571, -77.2803}, Lab{50.0000, 0.0000, -82.7485}, 2.8615},
		{"blue pair widest", Lab{50.0000, 2.8361, -74.0200}, Lab{50.0000, 0.0000, -82.7485}, 3.4412},
		{"neutral vs near neutral", Lab{50.0000, 0.0000, 0.0000}, Lab{50.0000, -1.0000, 2.0000}, 2.3669},
		{"low chroma unit pair", Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 3.2592, 0.3350}, 1.0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CIEDE2000(tt.c1, tt.c2)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("got %.4f, want %.4f +/- 0.01", got, tt.want)
			}
		})
	}
}

func TestCIEDE2000_ZeroChromaBranch(t *testing.T) {
	// Both inputs neutral: the hue terms vanish and only lightness
	// contributes.
	d := CIEDE2000(Lab{L: 40}, Lab{L: 60})
	if d <= 0 {
		t.Fatalf("got %.4f, want positive lightness-only distance", d)
	}

	// One neutral, one chromatic: exercises the zero-product special
	// cases in the hue difference and hue average.
	d = CIEDE2000(Lab{L: 50}, Lab{L: 50, A: 30, B: -20})
	if d <= 0 || math.IsNaN(d) {
		t.Fatalf("got %v, want positive finite distance", d)
	}
}
