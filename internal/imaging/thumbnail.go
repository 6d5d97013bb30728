package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/transform"
)

// ThumbnailResult contains a downscaled copy of an image encoded as
// base64 PNG.
type ThumbnailResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Thumbnail scales an image down to fit within maxWidth x maxHeight,
// preserving aspect ratio, and returns it as base64-encoded PNG.
//
// Images already inside the bounding box are re-encoded at their original
// size rather than upscaled. Linear resampling keeps thumbnails smooth at
// the small sizes preview panes use.
func Thumbnail(img image.Image, maxWidth, maxHeight int) (*ThumbnailResult, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("invalid thumbnail bounds %dx%d", maxWidth, maxHeight)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	outW, outH := w, h
	if w > maxWidth || h > maxHeight {
		scaleW := float64(maxWidth) / float64(w)
		scaleH := float64(maxHeight) / float64(h)
		scale := scaleW
		if scaleH < scale {
			scale = scaleH
		}
		outW = int(float64(w) * scale)
		outH = int(float64(h) * scale)
		if outW < 1 {
			outW = 1
		}
		if outH < 1 {
			outH = 1
		}
	}

	thumb := transform.Resize(img, outW, outH, transform.Linear)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return &ThumbnailResult{
		Width:       outW,
		Height:      outH,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
