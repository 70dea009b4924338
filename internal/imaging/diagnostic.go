package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/led-locator/internal/detection"
)

// DefaultMarkerColor is the crosshair colour used by RenderDiagnostic.
const DefaultMarkerColor = "#00FF00"

// markerArm is the crosshair half-length in pixels.
const markerArm = 6

// RenderDiagnostic draws a difference map as a heat map and marks the
// detected light.
//
// Difference values run from black (0) through blue and red to yellow (255).
// When light is non-nil a crosshair is drawn at its centroid with an "x,y"
// label beside it. The map must be single-channel, as produced by
// detection.Difference.
//
// markerHex is parsed as "#RRGGBB" or "#RRGGBBAA"; an invalid value falls
// back to DefaultMarkerColor.
func RenderDiagnostic(diff *detection.Frame, light *detection.Light, markerHex string) *image.RGBA {
	bounds := image.Rect(0, 0, diff.Width, diff.Height)
	result := image.NewRGBA(bounds)

	for y := 0; y < diff.Height; y++ {
		for x := 0; x < diff.Width; x++ {
			result.SetRGBA(x, y, heat(diff.At(x, y)))
		}
	}

	if light == nil {
		return result
	}

	marker, err := parseHexColor(markerHex)
	if err != nil {
		marker, _ = parseHexColor(DefaultMarkerColor)
	}

	cx, cy := int(light.X), int(light.Y)
	for d := -markerArm; d <= markerArm; d++ {
		setClipped(result, cx+d, cy, marker)
		setClipped(result, cx, cy+d, marker)
	}

	labelColor := color.RGBA{255, 255, 255, 255}
	bgColor := color.RGBA{0, 0, 0, 180}
	drawLabel(result, cx+markerArm+2, cy+2, fmt.Sprintf("%d,%d", light.X, light.Y), labelColor, bgColor)

	return result
}

// SaveDiagnostic writes img to path. The format follows the file extension.
func SaveDiagnostic(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save diagnostic image: %w", err)
	}
	return nil
}

// heat maps a difference value onto a black-blue-red-yellow ramp.
func heat(v uint8) color.RGBA {
	if v == 0 {
		return color.RGBA{0, 0, 0, 255}
	}
	t := float64(v) / 255.0
	c := colorful.Hsv(math.Mod(240+180*t, 360), 1, 0.25+0.75*t).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

func setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// drawLabel draws text using a 3x5 pixel font covering digits and comma.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			setClipped(img, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					setClipped(img, cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
