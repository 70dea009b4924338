// Package session drives a mapping run over a directory of captures: one
// baseline frame, then one lit frame per LED.
package session

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/led-locator/internal/detection"
	"github.com/ironsheep/led-locator/internal/imaging"
)

// Result is the outcome for one lit frame.
type Result struct {
	// Path is the capture file the result belongs to.
	Path string

	// Light is nil when no light was detected, or when the detection was
	// rejected by Driver.MinIntensity.
	Light *detection.Light
}

// Driver locates the light in every capture of a directory.
//
// The zero value is usable: it runs one worker per CPU, accepts every
// detection and writes no diagnostics.
type Driver struct {
	// Workers bounds the number of frames processed concurrently.
	// Zero or less means runtime.NumCPU().
	Workers int

	// MinIntensity rejects detections whose intensity is below it. The
	// locator cannot tell a dim LED from sensor noise; this is where the
	// caller draws that line.
	MinIntensity uint8

	// DebugDir, when non-empty, receives a "<frame>.diff.png" heat map for
	// every processed frame.
	DebugDir string

	// MarkerColor is the crosshair colour for diagnostics, "#RRGGBB" or
	// "#RRGGBBAA". Empty means imaging.DefaultMarkerColor.
	MarkerColor string

	// Logger receives per-frame trace lines. Nil disables logging.
	Logger *log.Logger
}

// Run builds the baseline from dir/baseName and locates the light in every
// other capture in dir.
//
// Results are returned in lexicographic file order regardless of the order
// in which workers finish. The first error cancels outstanding work and is
// returned; no partial results are returned with it.
func (d *Driver) Run(ctx context.Context, dir, baseName string) ([]Result, error) {
	baseFrame, err := imaging.LoadFrame(filepath.Join(dir, baseName))
	if err != nil {
		return nil, fmt.Errorf("failed to load baseline: %w", err)
	}
	baseline, err := detection.BuildBaseline(baseFrame)
	if err != nil {
		return nil, fmt.Errorf("failed to build baseline: %w", err)
	}

	paths, err := imaging.ListFrames(dir, baseName)
	if err != nil {
		return nil, err
	}

	if d.DebugDir != "" {
		if err := os.MkdirAll(d.DebugDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create debug directory: %w", err)
		}
	}

	d.logf("baseline %s (%dx%d), %d frames", baseName, baseline.Width(), baseline.Height(), len(paths))

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers())

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			light, err := d.process(baseline, path)
			if err != nil {
				return err
			}
			results[i] = Result{Path: path, Light: light}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// process locates the light in a single capture.
func (d *Driver) process(baseline *detection.Baseline, path string) (*detection.Light, error) {
	frame, err := imaging.LoadFrame(path)
	if err != nil {
		return nil, err
	}

	diff, err := detection.Difference(baseline, frame)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	light := detection.FindBlob(diff)

	if light != nil && light.Intensity < d.MinIntensity {
		d.logf("%s: rejected (%d,%d) intensity %d below %d",
			filepath.Base(path), light.X, light.Y, light.Intensity, d.MinIntensity)
		light = nil
	}

	if d.DebugDir != "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".diff.png"
		img := imaging.RenderDiagnostic(diff, light, d.markerColor())
		if err := imaging.SaveDiagnostic(filepath.Join(d.DebugDir, name), img); err != nil {
			return nil, err
		}
	}

	if light != nil {
		d.logf("%s: (%d,%d) intensity %d", filepath.Base(path), light.X, light.Y, light.Intensity)
	} else {
		d.logf("%s: no light", filepath.Base(path))
	}
	return light, nil
}

func (d *Driver) workers() int {
	if d.Workers <= 0 {
		return runtime.NumCPU()
	}
	return d.Workers
}

func (d *Driver) markerColor() string {
	if d.MarkerColor == "" {
		return imaging.DefaultMarkerColor
	}
	return d.MarkerColor
}

func (d *Driver) logf(format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

// WriteResults writes one line per result: "x, y, intensity" for a
// detection and an empty line otherwise, so that line N always belongs to
// frame N.
func WriteResults(w io.Writer, results []Result) error {
	for _, r := range results {
		var err error
		if r.Light != nil {
			_, err = fmt.Fprintf(w, "%d, %d, %d\n", r.Light.X, r.Light.Y, r.Light.Intensity)
		} else {
			_, err = fmt.Fprintln(w)
		}
		if err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}
	return nil
}
