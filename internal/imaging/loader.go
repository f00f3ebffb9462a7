package imaging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-tools-mcp/internal/pixbuf"
	"github.com/ironsheep/pixel-tools-mcp/internal/resample"
)

// ImageCache provides thread-safe caching of decoded pixel buffers to avoid
// redundant disk reads.
//
// The cache stores one *pixbuf.Buffer per file path. Once an image is loaded,
// subsequent Load() calls for the same path return the cached buffer without
// disk I/O.
//
// # Memory Management
//
// Cached buffers remain in memory until explicitly removed via Evict() or
// Clear().
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	buf, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	blurred, err := convolve.Apply(buf, convolve.GaussianBlur())
type ImageCache struct {
	mu      sync.RWMutex
	buffers map[string]*pixbuf.Buffer
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		buffers: make(map[string]*pixbuf.Buffer),
	}
}

// Load retrieves a buffer from the cache or decodes it from disk.
//
// Supported formats are those of the disintegration/imaging decoder (PNG,
// JPEG, GIF, BMP, TIFF). JPEG EXIF orientation is applied during decoding so
// the buffer matches what a viewer displays.
//
// The buffer is cached using the exact path string provided. Different paths
// to the same file (e.g., relative vs absolute) result in separate entries.
func (c *ImageCache) Load(path string) (*pixbuf.Buffer, error) {
	c.mu.RLock()
	if buf, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	buf, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.buffers[path] = buf
	c.mu.Unlock()

	return buf, nil
}

// Clear removes all buffers from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*pixbuf.Buffer)
	c.mu.Unlock()
}

// Evict removes a specific buffer from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// Len returns the number of cached buffers.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.buffers)
}

// LoadFile decodes an image file into a new buffer without caching.
func LoadFile(path string) (*pixbuf.Buffer, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return pixbuf.FromImage(img), nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension: "png", "jpeg",
	// "gif", "bmp", "tiff" or "unknown".
	Format string `json:"format"`

	// HasAlpha indicates whether any pixel is not fully opaque.
	HasAlpha bool `json:"has_alpha"`

	// Megapixels is Width*Height in millions of pixels.
	Megapixels float64 `json:"megapixels"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image into the cache and returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	buf, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ImageInfo{
		Width:         buf.Width(),
		Height:        buf.Height(),
		Format:        formatName(path),
		HasAlpha:      buf.HasTransparency(),
		Megapixels:    resample.Megapixels(buf.Width(), buf.Height()),
		FileSizeBytes: stat.Size(),
	}, nil
}

// formatName maps a file extension to a short format name.
func formatName(path string) string {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "unknown"
	}
	return strings.ToLower(f.String())
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	buf, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{Width: buf.Width(), Height: buf.Height()}, nil
}
