package palette

import (
	"math"
	"testing"
)

func TestRGBToLab_ReferenceRed(t *testing.T) {
	lab := RGBToLab(255, 0, 0)

	// Published sRGB red under D65: L=53.24, a=80.09, b=67.20.
	if math.Abs(lab.L-53.24) > 0.5 {
		t.Errorf("L: got %.4f, want 53.24 +/- 0.5", lab.L)
	}
	if math.Abs(lab.A-80.09) > 0.5 {
		t.Errorf("a: got %.4f, want 80.09 +/- 0.5", lab.A)
	}
	if math.Abs(lab.B-67.20) > 0.5 {
		t.Errorf("b: got %.4f, want 67.20 +/- 0.5", lab.B)
	}
}

func TestRGBToLab_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantL   float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 100},
		{"mid gray", 128, 128, 128, 53.59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lab := RGBToLab(tt.r, tt.g, tt.b)
			if math.Abs(lab.L-tt.wantL) > 0.5 {
				t.Errorf("L: got %.4f, want %.2f +/- 0.5", lab.L, tt.wantL)
			}
			// Neutral grays carry no chroma.
			if math.Abs(lab.A) > 0.01 || math.Abs(lab.B) > 0.01 {
				t.Errorf("chroma: got a=%.4f b=%.4f, want ~0 for neutral input", lab.A, lab.B)
			}
		})
	}
}

func TestLabToRGB_RoundTrip(t *testing.T) {
	// Walk the cube on a coarse grid plus the channel extremes; every
	// value must survive the round trip within rounding tolerance.
	levels := []uint8{0, 1, 17, 63, 64, 127, 128, 200, 254, 255}
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				got := LabToRGB(RGBToLab(r, g, b))
				if absDiff(got.R, r) > 1 || absDiff(got.G, g) > 1 || absDiff(got.B, b) > 1 {
					t.Fatalf("round trip (%d,%d,%d): got (%d,%d,%d)", r, g, b, got.R, got.G, got.B)
				}
			}
		}
	}
}

func TestLabToRGB_ClampsOutOfGamut(t *testing.T) {
	// Conversion must clamp, not wrap: extremes land on the gamut
	// boundary rather than folding back into the interior.
	if got := LabToRGB(Lab{L: 150}); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("L=150: got (%d,%d,%d), want clamp to white", got.R, got.G, got.B)
	}
	if got := LabToRGB(Lab{L: -20}); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("L=-20: got (%d,%d,%d), want clamp to black", got.R, got.G, got.B)
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
