package palette

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Clustering constants. These are engine-fixed, not caller-tunable: total
// work is bounded by maxSamples * numClusters * maxIterations regardless
// of image size.
const (
	// numClusters is k for the k-means pass.
	numClusters = 8

	// maxIterations bounds the assign/update loop.
	maxIterations = 30

	// convergenceThreshold stops iteration early once no centroid moved
	// further than this (in CIEDE2000 units) in one update.
	convergenceThreshold = 1.0
)

// Cluster pairs a Lab centroid with the number of samples assigned to it
// in the final clustering iteration. Clusters are local to one Cluster()
// call; they hold no references into the sample set.
type Cluster struct {
	Centroid Lab
	Size     int
}

// Cluster partitions the samples into numClusters clusters by k-means in
// Lab space, using CIEDE2000 as the assignment metric.
//
// Centroids are initialized by drawing random samples with replacement
// from the input. Each iteration assigns every sample to its nearest
// centroid (ties go to the lowest index), then recomputes centroids as
// the component-wise mean of their members. A cluster left empty by an
// iteration is reseeded once with a random sample, never left undefined
// and never retried in a loop. Iteration stops early once every centroid
// moved less than convergenceThreshold from its previous position.
//
// The assignment step has no cross-sample dependency and runs in parallel
// across worker goroutines; the update and convergence steps run on the
// calling goroutine. Each iteration publishes a fresh centroid slice, so
// the parallel phase only ever reads immutable data.
//
// Always returns exactly numClusters clusters. The samples slice must be
// non-empty; Extract guarantees this via SamplePixels.
func (e *Engine) Cluster(samples []Lab) []Cluster {
	centroids := make([]Lab, numClusters)
	for i := range centroids {
		centroids[i] = samples[e.rng.Intn(len(samples))]
	}

	assignments := make([]int, len(samples))
	sizes := make([]int, numClusters)

	for iter := 0; iter < maxIterations; iter++ {
		assignParallel(samples, centroids, assignments)

		next := make([]Lab, numClusters)
		for i := range sizes {
			sizes[i] = 0
		}
		for i, s := range samples {
			c := assignments[i]
			next[c].L += s.L
			next[c].A += s.A
			next[c].B += s.B
			sizes[c]++
		}
		for j := range next {
			if sizes[j] > 0 {
				n := float64(sizes[j])
				next[j].L /= n
				next[j].A /= n
				next[j].B /= n
			} else {
				next[j] = samples[e.rng.Intn(len(samples))]
			}
		}

		converged := true
		for j := range next {
			if CIEDE2000(centroids[j], next[j]) > convergenceThreshold {
				converged = false
				break
			}
		}

		centroids = next
		if converged {
			break
		}
	}

	clusters := make([]Cluster, numClusters)
	for j := range clusters {
		clusters[j] = Cluster{Centroid: centroids[j], Size: sizes[j]}
	}
	return clusters
}

// assignParallel writes the nearest-centroid index for every sample into
// assignments. Workers operate on disjoint chunks, so no synchronization
// beyond the group wait is needed.
func assignParallel(samples []Lab, centroids []Lab, assignments []int) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(samples) {
		workers = len(samples)
	}
	chunk := (len(samples) + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(samples) {
			hi = len(samples)
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				assignments[i] = nearestCentroid(samples[i], centroids)
			}
			return nil
		})
	}
	// Workers cannot fail; Wait is only a barrier.
	_ = g.Wait()
}

// nearestCentroid returns the index of the centroid closest to s by
// CIEDE2000, preferring the lowest index on ties.
func nearestCentroid(s Lab, centroids []Lab) int {
	closest := 0
	minDist := math.MaxFloat64
	for j, c := range centroids {
		if d := CIEDE2000(s, c); d < minDist {
			minDist = d
			closest = j
		}
	}
	return closest
}
