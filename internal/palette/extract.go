package palette

import (
	"math/rand"
	"time"
)

// Caller-facing defaults.
const (
	// DefaultNumColors is the palette size used when Options.NumColors
	// is zero.
	DefaultNumColors = 5

	// DefaultMinDistance is the CIEDE2000 threshold below which two
	// colors are not considered visually distinct.
	DefaultMinDistance = 20.0

	// DefaultMaxSampleDim bounds the sampling grid to roughly this many
	// positions per axis.
	DefaultMaxSampleDim = 150
)

// Options configures an Engine. The zero value selects the defaults
// documented on each field.
type Options struct {
	// NumColors is the exact palette size Extract returns. Default 5.
	NumColors int

	// MinDistance is the CIEDE2000 distance two palette entries must keep
	// from each other during greedy selection. Default 20.0.
	MinDistance float64

	// MaxSampleDim caps the sampling grid per axis. Default 150.
	MaxSampleDim int

	// Rand supplies the engine's random generator for centroid seeding,
	// reseeding, sample capping and color synthesis. Leave nil for a
	// time-seeded generator; inject a fixed-seed generator to make
	// extraction deterministic.
	Rand *rand.Rand
}

// Engine extracts representative color palettes from pixel buffers.
//
// An Engine owns its random generator and is therefore not safe for
// concurrent use; create one engine per goroutine or confine calls.
type Engine struct {
	numColors    int
	minDistance  float64
	maxSampleDim int
	rng          *rand.Rand
}

// New creates an Engine, applying defaults for any zero Options fields.
func New(opts Options) *Engine {
	if opts.NumColors <= 0 {
		opts.NumColors = DefaultNumColors
	}
	if opts.MinDistance <= 0 {
		opts.MinDistance = DefaultMinDistance
	}
	if opts.MaxSampleDim <= 0 {
		opts.MaxSampleDim = DefaultMaxSampleDim
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		numColors:    opts.NumColors,
		minDistance:  opts.MinDistance,
		maxSampleDim: opts.MaxSampleDim,
		rng:          opts.Rand,
	}
}

// Extract runs the full pipeline on a pixel buffer: sampling and
// filtering, Lab conversion, k-means clustering, diverse selection and
// conversion back to sRGB.
//
// The result always holds exactly NumColors valid RGB triples ordered
// most prominent first. Errors wrap ErrInvalidInput or
// ErrInsufficientPixels; there is no partial success and no retry. A
// caller wanting a fallback palette supplies its own.
func (e *Engine) Extract(buf PixelBuffer) ([]RGB, error) {
	samples, err := SamplePixels(buf, e.maxSampleDim, e.rng)
	if err != nil {
		return nil, err
	}

	clusters := e.Cluster(samples)
	colors := e.SelectPalette(clusters)

	out := make([]RGB, len(colors))
	for i, c := range colors {
		out[i] = LabToRGB(c)
	}
	return out, nil
}

// ExtractFramed is Extract for the 8-byte header wire convention
// understood by DecodeFramedBuffer.
func (e *Engine) ExtractFramed(data []byte) ([]RGB, error) {
	buf, err := DecodeFramedBuffer(data)
	if err != nil {
		return nil, err
	}
	return e.Extract(buf)
}
