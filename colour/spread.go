package colour

import (
	"image/color"
	"math"
)

// Saturation and value of the hues handed out by Spread.
const (
	spreadSaturation = 0.7
	spreadValue      = 0.9
)

// Spread returns n colours with hues evenly spaced around the colour
// wheel, starting at red. It backs data sets with more series than any
// scheme has colours.
func Spread(n int) []color.Color {
	out := make([]color.Color, 0, max(n, 0))
	for i := 0; i < n; i++ {
		r, g, b := hsvToRGB(float64(i)/float64(n), spreadSaturation, spreadValue)
		out = append(out, color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff})
	}
	return out
}

// SpreadHexes is Spread formatted as "#RRGGBB" strings.
func SpreadHexes(n int) []string {
	cols := Spread(n)
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = Hex(c)
	}
	return out
}

func channel(v float64) uint8 { return uint8(v * 0xff) }

// hsvToRGB converts h, s, v in [0, 1] to r, g, b in [0, 1].
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	sector := math.Floor(h * 6)
	f := h*6 - sector
	lo := v * (1 - s)
	down := v * (1 - f*s)
	up := v * (1 - (1-f)*s)
	switch int(sector) % 6 {
	case 0:
		return v, up, lo
	case 1:
		return down, v, lo
	case 2:
		return lo, v, up
	case 3:
		return lo, down, v
	case 4:
		return up, lo, v
	default:
		return v, lo, down
	}
}
