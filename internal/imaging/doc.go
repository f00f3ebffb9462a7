// Package imaging connects image files to the pixel engine.
//
// It loads image files into pixbuf.Buffer values, encodes buffers back to PNG
// for transport or disk, and implements the eyedropper readouts built on the
// colorconv package. The pixel operations themselves live in the resample
// and convolve packages; this package only moves pixels in and out of them.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Cached buffers are shared
// between callers and must be treated as read-only; every pixel operation
// returns a new buffer instead of modifying its input.
//
// # Color Representation
//
// Sampled colors are returned in multiple formats:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB / RGBA: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - XYZ and Lab: integer CIE values (D65, 2° observer)
//   - Luminance (0-1) and brightness (0-255)
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds (wrapping pixbuf.ErrOutOfBounds)
//   - File I/O errors during image loading
//   - Encoding errors during image output
//
// # Performance Considerations
//
// For repeated operations on the same image, use ImageCache to avoid redundant
// disk reads and decoding. Each cached image costs width*height*4 bytes.
// Use Evict() or Clear() to manage memory for long-running processes.
package imaging
