package lut

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewResult contains a graded preview image encoded as base64 PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	LUTTitle    string `json:"lut_title,omitempty"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview renders an image through a LUT at the requested output size.
//
// The source is first downscaled to outWidth x outHeight with bilinear
// resampling (previews are small, so grading the full frame would be
// wasted work), then every pixel is mapped through the table. Alpha is
// dropped; color grades operate on opaque RGB.
func Preview(l *LUT, img image.Image, outWidth, outHeight int) (*PreviewResult, error) {
	if outWidth <= 0 || outHeight <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", outWidth, outHeight)
	}

	scaled := imaging.Resize(img, outWidth, outHeight, imaging.Linear)

	out := image.NewRGBA(image.Rect(0, 0, outWidth, outHeight))
	for y := 0; y < outHeight; y++ {
		for x := 0; x < outWidth; x++ {
			px := scaled.NRGBAAt(x, y)

			r, g, b := l.Apply(
				float64(px.R)/255.0,
				float64(px.G)/255.0,
				float64(px.B)/255.0,
			)

			out.SetRGBA(x, y, color.RGBA{
				R: toChannel(r),
				G: toChannel(g),
				B: toChannel(b),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       outWidth,
		Height:      outHeight,
		LUTTitle:    l.Title,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// toChannel converts a normalized value to an 8-bit channel with clamping
// and round-to-nearest.
func toChannel(v float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(v*255.0 + 0.5)
}
