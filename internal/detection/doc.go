// Package detection locates a single point-light source in a camera frame by
// comparing it against a baseline frame captured with every light off.
//
// The package is used to map individually addressable LEDs onto camera
// pixels: a capture rig lights one LED at a time, captures a frame, and
// Locate reports where that LED appears.
//
// # Pipeline
//
// Both the baseline and every lit frame go through the same preparation:
//
//  1. Luminance: multi-channel pixels are reduced to one 8-bit channel using
//     Rec. 709 weights (0.2126*R + 0.7152*G + 0.0722*B). Alpha is ignored.
//  2. Gaussian blur: a separable blur with sigma 3.0 and edge pixels extended
//     past the border.
//
// Locate then subtracts the baseline from the prepared lit frame, clamping at
// zero, and computes the intensity-weighted centroid of every difference
// pixel strictly brighter than half of the brightest difference.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner. X increases
// rightward and Y increases downward. Reported coordinates are floored.
//
// # Results
//
// Locate returns a nil *Light and a nil error when no light is visible. That
// outcome is not a failure. Errors are reserved for precondition violations:
// empty frames, buffers whose length does not match the declared shape, and
// baseline/frame dimension mismatches.
//
// # Thread Safety
//
// All functions are pure. Frames and baselines are never mutated after
// construction, so they may be shared between goroutines freely.
package detection
