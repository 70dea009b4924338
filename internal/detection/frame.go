package detection

import "fmt"

// Frame is a decoded pixel buffer with interleaved 8-bit channels.
//
// Pix holds Height rows of Width pixels, each pixel Channels samples wide,
// with no padding between rows. Supported layouts:
//   - 1 channel: luminance
//   - 2 channels: luminance + alpha
//   - 3 channels: RGB
//   - 4 channels: RGBA (non-premultiplied, as produced by canvas readback)
type Frame struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewFrame wraps pix as a Frame after validating its shape.
//
// The buffer is not copied; callers must not modify it afterwards.
func NewFrame(width, height, channels int, pix []uint8) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyFrame, width, height)
	}
	if channels < 1 || channels > 4 {
		return nil, fmt.Errorf("%w: %d", ErrChannels, channels)
	}
	if want := width * height * channels; len(pix) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d (%dx%dx%d)",
			ErrBufferLength, len(pix), want, width, height, channels)
	}
	return &Frame{Width: width, Height: height, Channels: channels, Pix: pix}, nil
}

// validate re-checks the invariants NewFrame establishes, for frames built
// as struct literals.
func (f *Frame) validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrEmptyFrame)
	}
	_, err := NewFrame(f.Width, f.Height, f.Channels, f.Pix)
	return err
}

// At returns the first channel of the pixel at (x, y).
func (f *Frame) At(x, y int) uint8 {
	return f.Pix[(y*f.Width+x)*f.Channels]
}
