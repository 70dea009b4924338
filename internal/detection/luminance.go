package detection

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
)

// BlurSigma is the standard deviation, in pixels, of the Gaussian blur
// applied to the baseline and to every lit frame.
const BlurSigma = 3.0

// Rec. 709 luma weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// prepare converts f to luminance and blurs it. The result is always a
// single-channel frame of the same size as f.
func prepare(f *Frame) *Frame {
	return gaussianBlur(luminance(f), BlurSigma)
}

// luminance reduces f to a single-channel Gray image.
func luminance(f *Frame) *image.Gray {
	rect := image.Rect(0, 0, f.Width, f.Height)
	switch f.Channels {
	case 1:
		return &image.Gray{Pix: f.Pix, Stride: f.Width, Rect: rect}
	case 2:
		gray := image.NewGray(rect)
		for i := range gray.Pix {
			gray.Pix[i] = f.Pix[i*2]
		}
		return gray
	}

	// bild returns the luma replicated across R, G and B of an RGBA image.
	rgba := effect.GrayscaleWithWeights(opaque(f), lumaR, lumaG, lumaB)
	gray := image.NewGray(rect)
	for y := 0; y < f.Height; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+f.Width*4]
		for x := 0; x < f.Width; x++ {
			gray.Pix[y*gray.Stride+x] = row[x*4]
		}
	}
	return gray
}

// opaque copies the colour channels of a 3 or 4 channel frame into an RGBA
// image with alpha forced to 255, so that alpha never darkens the luminance.
func opaque(f *Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, o := 0, 0; i < len(f.Pix); i, o = i+f.Channels, o+4 {
		img.Pix[o] = f.Pix[i]
		img.Pix[o+1] = f.Pix[i+1]
		img.Pix[o+2] = f.Pix[i+2]
		img.Pix[o+3] = 255
	}
	return img
}

// gaussianKernel builds a normalized 1-D Gaussian kernel with a radius of
// ceil(2*sigma) taps on each side of the centre.
func gaussianKernel(sigma float64) convolution.Matrix {
	radius := int(math.Ceil(2 * sigma))
	length := 2*radius + 1
	k := convolution.NewKernel(length, 1)
	for i := 0; i < length; i++ {
		x := float64(i - radius)
		k.Matrix[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
	}
	return k.Normalized()
}

// gaussianBlur applies a separable Gaussian blur to gray. Pixels beyond the
// border take the value of the nearest edge pixel.
func gaussianBlur(gray *image.Gray, sigma float64) *Frame {
	k := gaussianKernel(sigma)
	opts := &convolution.Options{Bias: 0, Wrap: false, KeepAlpha: true}

	horizontal := convolution.Convolve(gray, k, opts)
	blurred := convolution.Convolve(horizontal, k.Transposed(), opts)

	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	pix := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		row := blurred.Pix[y*blurred.Stride : y*blurred.Stride+w*4]
		for x := 0; x < w; x++ {
			pix[y*w+x] = row[x*4]
		}
	}
	return &Frame{Width: w, Height: h, Channels: 1, Pix: pix}
}
