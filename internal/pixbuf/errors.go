package pixbuf

import "errors"

var (
	// ErrInvalidBufferShape is returned when a pixel slice does not hold
	// exactly width*height*4 bytes.
	ErrInvalidBufferShape = errors.New("invalid buffer shape")

	// ErrOutOfBounds is returned when a pixel coordinate lies outside the buffer.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrInvalidDimensions is returned when a requested size is not positive.
	ErrInvalidDimensions = errors.New("invalid dimensions")
)
