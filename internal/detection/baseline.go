package detection

import "fmt"

// Baseline is the smoothed luminance of a frame captured with no light
// active. Every lit frame passed to Locate is compared against it.
//
// A Baseline is immutable; rebuild it when ambient conditions change.
type Baseline struct {
	lum *Frame
}

// BuildBaseline converts an ambient frame into a Baseline.
//
// The frame is reduced to luminance and blurred with BlurSigma. The result
// has the same width and height as the input and depends only on its pixel
// content.
//
// Errors:
//   - ErrEmptyFrame, ErrChannels, ErrBufferLength for malformed frames
func BuildBaseline(f *Frame) (*Baseline, error) {
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid baseline frame: %w", err)
	}
	return &Baseline{lum: prepare(f)}, nil
}

// RestoreBaseline adopts a luminance buffer previously obtained from
// Baseline.Bytes. The buffer is assumed to be prepared already and is not
// blurred again. It is copied.
func RestoreBaseline(width, height int, lum []uint8) (*Baseline, error) {
	f, err := NewFrame(width, height, 1, append([]uint8(nil), lum...))
	if err != nil {
		return nil, fmt.Errorf("invalid baseline buffer: %w", err)
	}
	return &Baseline{lum: f}, nil
}

// Width returns the baseline width in pixels.
func (b *Baseline) Width() int { return b.lum.Width }

// Height returns the baseline height in pixels.
func (b *Baseline) Height() int { return b.lum.Height }

// Bytes returns a copy of the smoothed luminance, one byte per pixel in
// row-major order.
func (b *Baseline) Bytes() []uint8 {
	return append([]uint8(nil), b.lum.Pix...)
}
