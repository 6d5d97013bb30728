package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/freeassetfilter/color-tools-mcp/internal/palette"
)

// ToPixelBuffer flattens a decoded image into the raw RGBA buffer the
// palette engine consumes.
//
// When either axis exceeds maxDim the image is first downscaled with
// nearest-neighbour resampling, preserving aspect ratio. Interpolating
// filters would invent blended colors that were never in the source,
// which skews clustering on hard-edged artwork. maxDim <= 0 means no
// downscaling.
//
// The result always has four channels; fully opaque sources simply carry
// alpha 255 everywhere.
func ToPixelBuffer(img image.Image, maxDim int) palette.PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			img = imaging.Resize(img, maxDim, 0, imaging.NearestNeighbor)
		} else {
			img = imaging.Resize(img, 0, maxDim, imaging.NearestNeighbor)
		}
	}

	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()

	return palette.PixelBuffer{
		Pix:      nrgba.Pix,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: 4,
	}
}
