package palette

import "sort"

// Selection constants.
const (
	// relaxedDistance is the fallback acceptance threshold used when the
	// caller's minimum distance rejects too many clusters.
	relaxedDistance = 10.0

	// duplicateEpsilon is the distance below which a centroid counts as
	// already selected during the relaxed pass.
	duplicateEpsilon = 0.1
)

// Synthesis ranges for degenerate inputs and perturbation magnitudes.
const (
	synthLMin  = 20.0
	synthLMax  = 80.0
	synthABMin = -100.0
	synthABMax = 100.0

	perturbL  = 30.0
	perturbAB = 45.0
)

// SelectPalette reduces clusters to exactly NumColors Lab colors, most
// prominent first.
//
// Clusters are ranked by descending member count (stable, so equal-size
// clusters keep their original order) and walked greedily: a centroid is
// accepted only if it sits at least MinDistance (CIEDE2000) from every
// color accepted before it. If that pass comes up short, a second greedy
// pass relaxes the threshold to relaxedDistance, skipping centroids that
// are near-duplicates of an accepted color. If the palette is still not
// full, synthetic colors are generated: the complement of the mean of the
// accepted colors (or a random plausible Lab when nothing was accepted),
// perturbed once and then accepted unconditionally when the complement
// itself is too close. The unconditional acceptance after one perturbation
// guarantees termination.
func (e *Engine) SelectPalette(clusters []Cluster) []Lab {
	ranked := make([]Cluster, len(clusters))
	copy(ranked, clusters)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Size > ranked[j].Size
	})

	selected := make([]Lab, 0, e.numColors)

	for _, c := range ranked {
		if len(selected) >= e.numColors {
			break
		}
		if minDistanceTo(c.Centroid, selected) >= e.minDistance {
			selected = append(selected, c.Centroid)
		}
	}

	if len(selected) < e.numColors {
		for _, c := range ranked {
			if len(selected) >= e.numColors {
				break
			}
			d := minDistanceTo(c.Centroid, selected)
			if d < duplicateEpsilon {
				continue
			}
			if d >= relaxedDistance {
				selected = append(selected, c.Centroid)
			}
		}
	}

	for len(selected) < e.numColors {
		selected = append(selected, e.synthesize(selected))
	}

	return selected
}

// synthesize proposes one additional color distinct from the already
// selected set.
func (e *Engine) synthesize(selected []Lab) Lab {
	var proposal Lab
	if len(selected) == 0 {
		proposal = Lab{
			L: synthLMin + e.rng.Float64()*(synthLMax-synthLMin),
			A: synthABMin + e.rng.Float64()*(synthABMax-synthABMin),
			B: synthABMin + e.rng.Float64()*(synthABMax-synthABMin),
		}
	} else {
		var avg Lab
		for _, c := range selected {
			avg.L += c.L
			avg.A += c.A
			avg.B += c.B
		}
		n := float64(len(selected))
		proposal = Lab{
			L: 100.0 - avg.L/n,
			A: -avg.A / n,
			B: -avg.B / n,
		}
	}

	if minDistanceTo(proposal, selected) >= e.minDistance {
		return proposal
	}

	// The perturbed candidate is accepted without re-checking its
	// distance to the selected set.
	return Lab{
		L: clampRange(proposal.L+e.symmetric(perturbL), 0.0, 100.0),
		A: clampRange(proposal.A+e.symmetric(perturbAB), -128.0, 127.0),
		B: clampRange(proposal.B+e.symmetric(perturbAB), -128.0, 127.0),
	}
}

// symmetric draws uniformly from [-magnitude, magnitude).
func (e *Engine) symmetric(magnitude float64) float64 {
	return (e.rng.Float64()*2.0 - 1.0) * magnitude
}

// minDistanceTo returns the smallest CIEDE2000 distance from c to any
// color in set, or a large value for an empty set so any threshold check
// passes.
func minDistanceTo(c Lab, set []Lab) float64 {
	min := 1e9
	for _, s := range set {
		if d := CIEDE2000(c, s); d < min {
			min = d
		}
	}
	return min
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
