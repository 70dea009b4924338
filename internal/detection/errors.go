package detection

import "errors"

var (
	// ErrEmptyFrame is returned for frames with a zero width or height.
	ErrEmptyFrame = errors.New("frame has zero width or height")

	// ErrBufferLength is returned when a pixel buffer does not hold exactly
	// width*height*channels samples.
	ErrBufferLength = errors.New("pixel buffer length does not match frame shape")

	// ErrChannels is returned for channel counts outside 1-4.
	ErrChannels = errors.New("unsupported channel count")

	// ErrDimensionMismatch is returned when a frame is compared against a
	// baseline of a different size.
	ErrDimensionMismatch = errors.New("frame dimensions do not match baseline")

	// ErrNoBaseline is returned when Locate or Difference get a nil baseline.
	ErrNoBaseline = errors.New("no baseline")
)
