// Package pixbuf defines the RGBA pixel buffer shared by every pixel operation.
//
// A Buffer is a width×height grid of 8-bit RGBA pixels stored row-major,
// four bytes per pixel in the fixed order R, G, B, A. The length of the
// backing slice always equals Width*Height*4; constructors reject anything
// else with ErrInvalidBufferShape.
//
// # Ownership
//
// Buffers are treated as immutable values. Operations in the resample and
// convolve packages read a source Buffer and return a newly allocated one;
// they never write to their input. Callers decide which Buffer becomes the
// current image state.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - Valid X range: 0 to Width-1
//   - Valid Y range: 0 to Height-1
//
// Accessing a pixel outside that range fails with ErrOutOfBounds.
package pixbuf
