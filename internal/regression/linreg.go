// Package regression fits the straight-line models the mapping front end uses
// to estimate LED strip spacing from located positions.
package regression

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("x and y must have the same length")

	// ErrTooFewPoints is returned when fewer than two observations are given.
	ErrTooFewPoints = errors.New("at least two observations are required")

	// ErrDegenerate is returned when every y value is identical, leaving the
	// slope undefined.
	ErrDegenerate = errors.New("y has no variance")
)

// Slope fits the model x ~ y by ordinary least squares and returns the
// coefficient of y.
//
// With x as LED index and y as a located pixel coordinate this is the number
// of LEDs per pixel along that axis.
func Slope(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(x))
	}
	if stat.Variance(y, nil) == 0 {
		return 0, ErrDegenerate
	}

	// LinearRegression fits its second argument against its first.
	_, beta := stat.LinearRegression(y, x, nil, false)
	return beta, nil
}
