package detection

// FindBlob computes the weighted centroid of the bright region in a
// single-channel difference map.
//
// The threshold is half of the brightest pixel (integer division). Only
// pixels strictly above it contribute, each weighted by its own value.
// FindBlob returns nil when no pixel exceeds the threshold, which includes
// an all-zero map.
func FindBlob(diff *Frame) *Light {
	var peak uint8
	for i := 0; i < len(diff.Pix); i += diff.Channels {
		if v := diff.Pix[i]; v > peak {
			peak = v
		}
	}
	threshold := peak / 2

	var xPos, yPos, total uint64
	for y := 0; y < diff.Height; y++ {
		for x := 0; x < diff.Width; x++ {
			v := diff.At(x, y)
			if v <= threshold {
				continue
			}
			w := uint64(v)
			xPos += uint64(x) * w
			yPos += uint64(y) * w
			total += w
		}
	}
	if total == 0 {
		return nil
	}

	return &Light{
		X:         xPos / total,
		Y:         yPos / total,
		Intensity: threshold,
	}
}
