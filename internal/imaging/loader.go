package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"
)

// Cache provides thread-safe caching of decoded images keyed by file path.
//
// Palette extraction, thumbnailing and LUT previews frequently hit the
// same asset in one browsing session; caching the decode avoids repeating
// the most expensive step. Entries are keyed by the exact path string, so
// relative and absolute spellings of the same file cache separately.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]image.Image
}

// NewCache creates an empty image cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]image.Image)}
}

// Load returns the decoded image for path, reading and decoding the file
// only on the first request.
//
// Supported formats are PNG, JPEG and GIF. The concrete image type
// depends on the source format (e.g. *image.NRGBA, *image.YCbCr).
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.entries[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.entries[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes every cached image, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes the cached image for path, if present. The next Load for
// this path reads from disk again.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width and Height are the pixel dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is detected from the file extension: "png", "jpeg", "gif"
	// or "unknown".
	Format string `json:"format"`

	// ColorDepth is the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha reports whether the decoded image carries an alpha
	// channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the on-disk size of the source file.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns its
// dimensions, format, color depth, alpha presence and file size.
func LoadImageInfo(cache *Cache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains just the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns an image's dimensions, loading it through the
// cache if needed. Lighter than LoadImageInfo when metadata beyond the
// size is not required.
func GetDimensions(cache *Cache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
