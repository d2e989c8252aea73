package colour

import (
	"image/color"
	"strings"
)

// Scheme is a named, ordered sequence of palette colours. The order is the
// order in which series are coloured.
type Scheme struct {
	Name    string
	Colours []Colour
}

// Hexes returns the scheme as "#RRGGBB" strings.
func (s Scheme) Hexes() []string {
	out := make([]string, len(s.Colours))
	for i, c := range s.Colours {
		out[i] = c.Hex()
	}
	return out
}

// Colors returns the scheme as image colours.
func (s Scheme) Colors() []color.Color {
	out := make([]color.Color, len(s.Colours))
	for i, c := range s.Colours {
		out[i] = c.RGBA()
	}
	return out
}

// Len returns the number of colours in the scheme.
func (s Scheme) Len() int { return len(s.Colours) }

// At returns the colour for series index i, cycling through the scheme.
func (s Scheme) At(i int) Colour {
	return s.Colours[i%len(s.Colours)]
}

// Colour schemes. Sources: https://github.com/Sydney-Informatics-Hub/usydColours,
// Rainbow is from GraphGood.m.
var (
	Rainbow = Scheme{"Rainbow", []Colour{
		RainbowRed, RainbowDarkBlue, RainbowBlack, RainbowGreen,
		RainbowLightBlue, RainbowYellow, RainbowGrey,
	}}
	Primary = Scheme{"Primary", []Colour{
		MasterbrandCharcoal, MasterbrandOchre, AccentBlue, AccentYellow, AccentGrey,
	}}
	Extended = Scheme{"Extended", []Colour{
		MasterbrandCharcoal, MasterbrandOchre, AccentBlue, AccentYellow,
		SecondaryDarkGreen, SecondaryBlue, SecondaryPeach, SecondaryBeige,
		SecondaryLemon, SecondaryLightGreen, SecondaryDarkSeafoam,
		SecondaryLightSeafoam, SecondaryLightBlue, SecondaryLilac,
		SecondaryPurple, SecondaryPink, SecondaryLightPink, SecondaryOrange,
		SecondaryMaroon, MasterbrandBlack, AccentGrey,
	}}
	Secondary = Scheme{"Secondary", []Colour{
		MasterbrandOchre, SecondaryBlue, AccentYellow, SecondaryDarkSeafoam, SecondaryLilac,
	}}
	Pastel = Scheme{"Pastel", []Colour{
		SecondaryLemon, SecondaryPeach, SecondaryLightPink, SecondaryLilac,
		SecondaryLightBlue, SecondaryLightSeafoam, SecondaryLightGreen,
	}}
	ComplementaryReGr = Scheme{"Complementary_ReGr", []Colour{
		MasterbrandOchre, SecondaryPeach, SecondaryMaroon, SecondaryDarkSeafoam, SecondaryLightSeafoam,
	}}
	ComplementaryReBl = Scheme{"Complementary_ReBl", []Colour{
		MasterbrandOchre, SecondaryPeach, SecondaryBeige, AccentBlue, SecondaryBlue, SecondaryLightBlue,
	}}
	Bright = Scheme{"Bright", []Colour{
		MasterbrandOchre, SecondaryDarkGreen, SecondaryLightGreen, SecondaryLightBlue,
		SecondaryBlue, SecondaryOrange, AccentYellow,
	}}
	Muted        = Scheme{"Muted", []Colour{SecondaryLightBlue, SecondaryLemon, SecondaryPeach}}
	TrafficLight = Scheme{"TrafficLight", []Colour{SecondaryDarkSeafoam, SecondaryLemon, MasterbrandOchre}}
	Heatmap      = Scheme{"Heatmap", []Colour{SecondaryDarkSeafoam, MasterbrandWhite, MasterbrandOchre}}
	FlameTree    = Scheme{"FlameTree", []Colour{SecondaryLemon, SecondaryOrange, MasterbrandOchre, SecondaryMaroon}}
	Jacaranda    = Scheme{"Jacaranda", []Colour{SecondaryLightPink, SecondaryLilac, SecondaryBlue, AccentBlue}}
	Harbour      = Scheme{"Harbour", []Colour{SecondaryLightGreen, SecondaryLightSeafoam, SecondaryBlue, AccentBlue}}
	Sandstone    = Scheme{"Sandstone", []Colour{SecondaryIvory, SecondaryBeige, SecondaryMaroon, MasterbrandCharcoal}}
	Ochre        = Scheme{"Ochre", []Colour{SecondaryIvory, SecondaryBeige, SecondaryPeach, MasterbrandOchre}}
	Greyscale    = Scheme{"Greyscale", []Colour{MasterbrandCharcoal, AccentGrey}}
	BlGrYe       = Scheme{"BlGrYe", []Colour{AccentBlue, SecondaryLightGreen, SecondaryLemon}}
	BlOr         = Scheme{"BlOr", []Colour{AccentBlue, SecondaryOrange, SecondaryLemon}}

	DivergingBlueRed = Scheme{"DivergingBlueRed", []Colour{
		SecondaryMaroon, MasterbrandOchre, SecondaryPeach, MasterbrandWhite,
		SecondaryLightBlue, SecondaryBlue, AccentBlue,
	}}
	DivergingBlueOrange = Scheme{"DivergingBlueOrange", []Colour{
		SecondaryOrange, MasterbrandWhite, AccentBlue,
	}}
)

var schemes = []Scheme{
	Rainbow, Primary, Extended, Secondary, Pastel, ComplementaryReGr,
	ComplementaryReBl, Bright, Muted, TrafficLight, Heatmap, FlameTree,
	Jacaranda, Harbour, Sandstone, Ochre, Greyscale, BlGrYe, BlOr,
	DivergingBlueRed, DivergingBlueOrange,
}

// Schemes returns all named schemes in declaration order.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)
	return out
}

// LookupScheme finds a scheme by name (case-insensitive).
func LookupScheme(name string) (Scheme, bool) {
	for _, s := range schemes {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Scheme{}, false
}
