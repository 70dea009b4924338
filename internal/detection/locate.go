package detection

import "fmt"

// Light is a detected light source.
type Light struct {
	// X and Y are the floored intensity-weighted centroid, in pixels.
	X uint64 `json:"x"`
	Y uint64 `json:"y"`

	// Intensity is the adaptive threshold used for this frame: half of the
	// brightest difference pixel. It is not the peak itself.
	Intensity uint8 `json:"intensity"`
}

// Locate finds the light that is on in f but was off in the baseline.
//
// It returns (nil, nil) when no light is visible, which is an ordinary
// outcome rather than a failure. Noise alone can still yield a detection;
// callers wanting a plausibility check should compare Light.Intensity
// against a minimum of their own.
//
// Errors:
//   - ErrEmptyFrame, ErrChannels, ErrBufferLength for malformed frames
//   - ErrDimensionMismatch if f is not the same size as the baseline
//   - ErrNoBaseline if b is nil
func Locate(b *Baseline, f *Frame) (*Light, error) {
	diff, err := Difference(b, f)
	if err != nil {
		return nil, err
	}
	return FindBlob(diff), nil
}

// Difference prepares f exactly like the baseline and subtracts the baseline
// from it, clamping every pixel at zero. The result is single-channel.
func Difference(b *Baseline, f *Frame) (*Frame, error) {
	if b == nil || b.lum == nil {
		return nil, ErrNoBaseline
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid frame: %w", err)
	}
	if f.Width != b.Width() || f.Height != b.Height() {
		return nil, fmt.Errorf("%w: frame %dx%d, baseline %dx%d",
			ErrDimensionMismatch, f.Width, f.Height, b.Width(), b.Height())
	}

	lit := prepare(f)
	subtract(lit.Pix, b.lum.Pix)
	return lit, nil
}

// subtract replaces every lhs sample with lhs-rhs, or 0 where rhs is larger.
func subtract(lhs, rhs []uint8) {
	for i, r := range rhs {
		if l := lhs[i]; l > r {
			lhs[i] = l - r
		} else {
			lhs[i] = 0
		}
	}
}
