package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
)

// Error category sentinels. Wrapped errors carry detail; match the
// category with errors.Is.
var (
	// ErrInvalidInput indicates a pixel buffer whose geometry, channel
	// count or payload size is inconsistent.
	ErrInvalidInput = errors.New("invalid pixel buffer")

	// ErrInsufficientPixels indicates that fewer than 10 pixels survived
	// the alpha and brightness filters, leaving nothing meaningful to
	// cluster.
	ErrInsufficientPixels = errors.New("insufficient pixels after filtering")
)

// Sampling policy constants.
const (
	// minSamples is the smallest filtered sample set the engine accepts.
	minSamples = 10

	// maxSamples caps the clustering input; larger sets are uniformly
	// subsampled down to this size.
	maxSamples = 5000

	// Pixels darker or brighter than these average-brightness bounds are
	// treated as background/highlight noise and skipped.
	brightnessMin = 20
	brightnessMax = 240

	// alphaOpaque is the minimum alpha for a 4-channel pixel to count as
	// visible.
	alphaOpaque = 128
)

// PixelBuffer describes a decoded image as raw row-major 8-bit pixel data.
//
// Channels must be 3 (RGB) or 4 (RGBA). Pix holds Width*Height*Channels
// bytes, rows top to bottom, channels interleaved.
type PixelBuffer struct {
	Pix      []byte // Raw pixel bytes, row-major, channel-interleaved
	Width    int    // Width in pixels
	Height   int    // Height in pixels
	Channels int    // Channels per pixel: 3 (RGB) or 4 (RGBA)
}

// Validate checks the buffer's geometry against its payload.
//
// Returns nil for a well-formed buffer, otherwise an error wrapping
// ErrInvalidInput that names the inconsistency.
func (b PixelBuffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: non-positive dimensions %dx%d", ErrInvalidInput, b.Width, b.Height)
	}
	if b.Channels != 3 && b.Channels != 4 {
		return fmt.Errorf("%w: unsupported channel count %d (want 3 or 4)", ErrInvalidInput, b.Channels)
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return fmt.Errorf("%w: %d pixel bytes, want %d for %dx%dx%d",
			ErrInvalidInput, len(b.Pix), want, b.Width, b.Height, b.Channels)
	}
	return nil
}

// DecodeFramedBuffer interprets a byte slice with a fixed 8-byte header as
// a pixel buffer.
//
// The header is two little-endian uint32 values, width then height,
// followed immediately by the raw pixel payload. The channel count is
// inferred from the payload size: it must be exactly width*height*3 or
// width*height*4 bytes.
//
// This is the wire convention used by callers that hand over pixels they
// decoded themselves rather than an image file.
func DecodeFramedBuffer(data []byte) (PixelBuffer, error) {
	if len(data) < 8 {
		return PixelBuffer{}, fmt.Errorf("%w: %d bytes, want at least an 8-byte header", ErrInvalidInput, len(data))
	}

	width := int(binary.LittleEndian.Uint32(data[0:4]))
	height := int(binary.LittleEndian.Uint32(data[4:8]))
	payload := data[8:]

	if width <= 0 || height <= 0 {
		return PixelBuffer{}, fmt.Errorf("%w: non-positive dimensions %dx%d", ErrInvalidInput, width, height)
	}

	area := width * height
	var channels int
	switch len(payload) {
	case area * 3:
		channels = 3
	case area * 4:
		channels = 4
	default:
		return PixelBuffer{}, fmt.Errorf("%w: %d payload bytes do not match %dx%d RGB or RGBA",
			ErrInvalidInput, len(payload), width, height)
	}

	buf := PixelBuffer{Pix: payload, Width: width, Height: height, Channels: channels}
	return buf, nil
}

// SamplePixels selects a bounded, filtered subset of a buffer's pixels and
// converts it to Lab.
//
// The buffer is walked on a stride grid so that at most maxDim positions
// are visited per axis. Pixels are skipped when they are effectively
// transparent (alpha < 128 on 4-channel input) or when their average
// brightness (r+g+b)/3 falls outside [20,240], since near-black and
// near-white pixels are background/highlight noise rather than
// representative content. If more than 5000 pixels survive, the set is
// uniformly subsampled down to exactly 5000 using rng.
//
// Returns an error wrapping ErrInvalidInput for a malformed buffer, or
// ErrInsufficientPixels when fewer than 10 samples remain.
func SamplePixels(buf PixelBuffer, maxDim int, rng *rand.Rand) ([]Lab, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if maxDim <= 0 {
		maxDim = DefaultMaxSampleDim
	}

	strideX := buf.Width / maxDim
	if strideX < 1 {
		strideX = 1
	}
	strideY := buf.Height / maxDim
	if strideY < 1 {
		strideY = 1
	}

	samples := make([]Lab, 0, (buf.Width/strideX+1)*(buf.Height/strideY+1))
	for y := 0; y < buf.Height; y += strideY {
		for x := 0; x < buf.Width; x += strideX {
			idx := (y*buf.Width + x) * buf.Channels

			r := buf.Pix[idx]
			g := buf.Pix[idx+1]
			b := buf.Pix[idx+2]

			if buf.Channels == 4 && buf.Pix[idx+3] < alphaOpaque {
				continue
			}

			brightness := (int(r) + int(g) + int(b)) / 3
			if brightness > brightnessMax || brightness < brightnessMin {
				continue
			}

			samples = append(samples, RGBToLab(r, g, b))
		}
	}

	if len(samples) < minSamples {
		return nil, fmt.Errorf("%w: %d of %d required", ErrInsufficientPixels, len(samples), minSamples)
	}

	if len(samples) > maxSamples {
		rng.Shuffle(len(samples), func(i, j int) {
			samples[i], samples[j] = samples[j], samples[i]
		})
		samples = samples[:maxSamples]
	}

	return samples, nil
}
