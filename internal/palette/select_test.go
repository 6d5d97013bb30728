package palette

import (
	"math/rand"
	"testing"
)

func selectorEngine(seed int64) *Engine {
	return New(Options{Rand: rand.New(rand.NewSource(seed))})
}

func TestSelectPalette_AlwaysFull(t *testing.T) {
	tests := []struct {
		name     string
		clusters []Cluster
	}{
		{"no clusters", nil},
		{"one dominant cluster", []Cluster{
			{Centroid: Lab{L: 50, A: 20, B: 20}, Size: 5000},
		}},
		{"all identical centroids", []Cluster{
			{Centroid: Lab{L: 40, A: 10, B: -10}, Size: 300},
			{Centroid: Lab{L: 40, A: 10, B: -10}, Size: 200},
			{Centroid: Lab{L: 40, A: 10, B: -10}, Size: 100},
		}},
		{"diverse clusters", []Cluster{
			{Centroid: Lab{L: 30, A: 50, B: 30}, Size: 900},
			{Centroid: Lab{L: 70, A: -40, B: 50}, Size: 800},
			{Centroid: Lab{L: 55, A: 0, B: -55}, Size: 700},
			{Centroid: Lab{L: 85, A: 5, B: 70}, Size: 600},
			{Centroid: Lab{L: 25, A: -30, B: -30}, Size: 500},
			{Centroid: Lab{L: 60, A: 60, B: -20}, Size: 400},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := selectorEngine(11)
			colors := e.SelectPalette(tt.clusters)
			if len(colors) != e.numColors {
				t.Errorf("got %d colors, want %d", len(colors), e.numColors)
			}
		})
	}
}

func TestSelectPalette_MostProminentFirst(t *testing.T) {
	big := Cluster{Centroid: Lab{L: 35, A: 45, B: 25}, Size: 4000}
	clusters := []Cluster{
		{Centroid: Lab{L: 70, A: -40, B: 50}, Size: 100},
		big,
		{Centroid: Lab{L: 55, A: 0, B: -55}, Size: 500},
	}

	e := selectorEngine(3)
	colors := e.SelectPalette(clusters)

	if colors[0] != big.Centroid {
		t.Errorf("first color %+v, want the largest cluster's centroid %+v", colors[0], big.Centroid)
	}
}

func TestSelectPalette_RespectsMinDistance(t *testing.T) {
	// Two near-identical dominant clusters and one distant one: the
	// primary greedy pass must reject the near-duplicate.
	clusters := []Cluster{
		{Centroid: Lab{L: 40, A: 30, B: 30}, Size: 900},
		{Centroid: Lab{L: 41, A: 31, B: 30}, Size: 850},
		{Centroid: Lab{L: 75, A: -50, B: -10}, Size: 200},
	}

	e := New(Options{NumColors: 2, Rand: rand.New(rand.NewSource(5))})
	colors := e.SelectPalette(clusters)

	if len(colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(colors))
	}
	if d := CIEDE2000(colors[0], colors[1]); d < DefaultMinDistance {
		t.Errorf("selected colors only %.2f apart, want >= %.1f", d, DefaultMinDistance)
	}
}

func TestSelectPalette_RelaxedPassFillsGaps(t *testing.T) {
	// Clusters 10-19 apart: too close for the 20.0 primary threshold,
	// far enough for the relaxed 10.0 pass, so no synthesis is needed
	// for a 3-color palette.
	clusters := []Cluster{
		{Centroid: Lab{L: 50, A: 0, B: 0}, Size: 900},
		{Centroid: Lab{L: 62, A: 4, B: 4}, Size: 800},
		{Centroid: Lab{L: 74, A: 8, B: 8}, Size: 700},
	}

	e := New(Options{NumColors: 3, Rand: rand.New(rand.NewSource(6))})
	colors := e.SelectPalette(clusters)

	if len(colors) != 3 {
		t.Fatalf("got %d colors, want 3", len(colors))
	}
	for i := 1; i < len(colors); i++ {
		for j := 0; j < i; j++ {
			if d := CIEDE2000(colors[i], colors[j]); d < duplicateEpsilon {
				t.Errorf("colors %d and %d are duplicates (%.4f apart)", i, j, d)
			}
		}
	}
}

func TestSynthesize_ComplementOfAccepted(t *testing.T) {
	e := selectorEngine(8)
	accepted := []Lab{{L: 30, A: 40, B: -20}}

	got := e.synthesize(accepted)

	// The complement (70, -40, 20) is far from the accepted color, so it
	// is taken as-is without perturbation.
	want := Lab{L: 70, A: -40, B: 20}
	if got != want {
		t.Errorf("got %+v, want complement %+v", got, want)
	}
}

func TestSynthesize_StaysInRange(t *testing.T) {
	e := selectorEngine(8)
	var selected []Lab
	for i := 0; i < 50; i++ {
		c := e.synthesize(selected)
		if c.L < 0 || c.L > 100 || c.A < -128 || c.A > 127 || c.B < -128 || c.B > 127 {
			t.Fatalf("synthesized color out of range: %+v", c)
		}
		selected = append(selected, c)
	}
}
