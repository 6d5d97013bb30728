package imaging

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestToPixelBuffer(t *testing.T) {
	img := solidImage(20, 10, color.RGBA{120, 80, 160, 255})

	buf := ToPixelBuffer(img, 0)
	if err := buf.Validate(); err != nil {
		t.Fatalf("buffer invalid: %v", err)
	}
	if buf.Width != 20 || buf.Height != 10 || buf.Channels != 4 {
		t.Errorf("got %dx%dx%d, want 20x10x4", buf.Width, buf.Height, buf.Channels)
	}

	// Spot-check the first pixel.
	if buf.Pix[0] != 120 || buf.Pix[1] != 80 || buf.Pix[2] != 160 || buf.Pix[3] != 255 {
		t.Errorf("first pixel: got (%d,%d,%d,%d), want (120,80,160,255)",
			buf.Pix[0], buf.Pix[1], buf.Pix[2], buf.Pix[3])
	}
}

func TestToPixelBuffer_Downscales(t *testing.T) {
	tests := []struct {
		name             string
		width, height    int
		maxDim           int
		wantW, wantH     int
	}{
		{"landscape", 600, 300, 150, 150, 75},
		{"portrait", 200, 400, 100, 50, 100},
		{"already small", 80, 60, 150, 80, 60},
		{"no cap", 500, 500, 0, 500, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidImage(tt.width, tt.height, color.RGBA{90, 90, 90, 255})
			buf := ToPixelBuffer(img, tt.maxDim)
			if buf.Width != tt.wantW || buf.Height != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", buf.Width, buf.Height, tt.wantW, tt.wantH)
			}
			if err := buf.Validate(); err != nil {
				t.Errorf("buffer invalid: %v", err)
			}
		})
	}
}

func TestToPixelBuffer_PreservesAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{100, 100, 100, 0})
		}
	}

	buf := ToPixelBuffer(img, 0)
	if buf.Pix[3] != 0 {
		t.Errorf("alpha: got %d, want 0 preserved from transparent source", buf.Pix[3])
	}
}
