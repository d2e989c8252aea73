// Package colour holds the brand palette and the named colour schemes
// used for cycling through plotted series.
package colour

import (
	"fmt"
	"image/color"
	"strings"
)

// Colour is a named brand colour. Its value is the "#RRGGBB" hex code.
type Colour string

const (
	AccentBlue            Colour = "#0148A4"
	AccentGrey            Colour = "#F1F1F1"
	AccentYellow          Colour = "#FFB800"
	MasterbrandBlack      Colour = "#0A0A0A"
	MasterbrandCharcoal   Colour = "#424242"
	MasterbrandOchre      Colour = "#E64626"
	MasterbrandWhite      Colour = "#FFFFFF"
	SecondaryBeige        Colour = "#FDCA90"
	SecondaryBlue         Colour = "#4E98D3"
	SecondaryDarkGreen    Colour = "#007E3B"
	SecondaryDarkSeafoam  Colour = "#00A485"
	SecondaryIvory        Colour = "#F8EFDD"
	SecondaryLemon        Colour = "#FBF38D"
	SecondaryLightBlue    Colour = "#91BDE5"
	SecondaryLightGreen   Colour = "#BDDC96"
	SecondaryLightPink    Colour = "#F8B9CC"
	SecondaryLightSeafoam Colour = "#68C6B6"
	SecondaryLilac        Colour = "#B896C6"
	SecondaryMaroon       Colour = "#7A2000"
	SecondaryOrange       Colour = "#F9A134"
	SecondaryPeach        Colour = "#F79C72"
	SecondaryPink         Colour = "#D6519D"
	SecondaryPurple       Colour = "#7F3F98"
	RainbowRed            Colour = "#D81E31"
	RainbowDarkBlue       Colour = "#1B639D"
	RainbowBlack          Colour = "#000000"
	RainbowGreen          Colour = "#008000"
	RainbowLightBlue      Colour = "#02A9E2"
	RainbowYellow         Colour = "#FBC20D"
	RainbowGrey           Colour = "#595959"
)

type namedColour struct {
	name string
	c    Colour
}

// Declaration order, used by Colours and by name lookups.
var palette = []namedColour{
	{"AccentBlue", AccentBlue},
	{"AccentGrey", AccentGrey},
	{"AccentYellow", AccentYellow},
	{"MasterbrandBlack", MasterbrandBlack},
	{"MasterbrandCharcoal", MasterbrandCharcoal},
	{"MasterbrandOchre", MasterbrandOchre},
	{"MasterbrandWhite", MasterbrandWhite},
	{"SecondaryBeige", SecondaryBeige},
	{"SecondaryBlue", SecondaryBlue},
	{"SecondaryDarkGreen", SecondaryDarkGreen},
	{"SecondaryDarkSeafoam", SecondaryDarkSeafoam},
	{"SecondaryIvory", SecondaryIvory},
	{"SecondaryLemon", SecondaryLemon},
	{"SecondaryLightBlue", SecondaryLightBlue},
	{"SecondaryLightGreen", SecondaryLightGreen},
	{"SecondaryLightPink", SecondaryLightPink},
	{"SecondaryLightSeafoam", SecondaryLightSeafoam},
	{"SecondaryLilac", SecondaryLilac},
	{"SecondaryMaroon", SecondaryMaroon},
	{"SecondaryOrange", SecondaryOrange},
	{"SecondaryPeach", SecondaryPeach},
	{"SecondaryPink", SecondaryPink},
	{"SecondaryPurple", SecondaryPurple},
	{"RainbowRed", RainbowRed},
	{"RainbowDarkBlue", RainbowDarkBlue},
	{"RainbowBlack", RainbowBlack},
	{"RainbowGreen", RainbowGreen},
	{"RainbowLightBlue", RainbowLightBlue},
	{"RainbowYellow", RainbowYellow},
	{"RainbowGrey", RainbowGrey},
}

// Colours returns every brand colour in declaration order.
func Colours() []Colour {
	out := make([]Colour, len(palette))
	for i, nc := range palette {
		out[i] = nc.c
	}
	return out
}

// Lookup finds a brand colour by name, e.g. "MasterbrandOchre".
func Lookup(name string) (Colour, bool) {
	for _, nc := range palette {
		if strings.EqualFold(nc.name, name) {
			return nc.c, true
		}
	}
	return "", false
}

// Name returns the palette name of c, or "" for a colour outside the palette.
func (c Colour) Name() string {
	for _, nc := range palette {
		if nc.c == c {
			return nc.name
		}
	}
	return ""
}

// Hex returns the "#RRGGBB" code.
func (c Colour) Hex() string { return string(c) }

// RGBA converts the hex code. Palette entries are always valid, so a
// parse failure only happens for hand-built values and yields opaque black.
func (c Colour) RGBA() color.RGBA {
	rgba, err := ParseHex(string(c))
	if err != nil {
		return color.RGBA{A: 255}
	}
	return rgba
}

// String implements fmt.Stringer.
func (c Colour) String() string {
	if n := c.Name(); n != "" {
		return fmt.Sprintf("%s(%s)", n, string(c))
	}
	return string(c)
}

// ParseHex parses "#RRGGBB", "RRGGBB", "#RGB" or "RGB". The value "none"
// parses to a fully transparent colour.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return color.RGBA{}, nil
	}
	hex := strings.TrimPrefix(s, "#")

	var vals []uint8
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			v, ok := hexNibble(hex[i])
			if !ok {
				return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
			}
			vals = append(vals, v<<4|v)
		}
	case 6:
		for i := 0; i < 6; i += 2 {
			hi, ok1 := hexNibble(hex[i])
			lo, ok2 := hexNibble(hex[i+1])
			if !ok1 || !ok2 {
				return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
			}
			vals = append(vals, hi<<4|lo)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: want 3 or 6 hex digits", s)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}, nil
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex formats any colour as "#RRGGBB", dropping alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
