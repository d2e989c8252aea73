package plotter

import (
	"fmt"
	"image/color"

	"vis-go/style"
)

// Marker is the shape drawn at each data point.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerCircle
	MarkerSquare
	MarkerTriangle
	MarkerDiamond
)

// ParseMarker maps the usual one-letter marker codes ("o", "s", "^", "D")
// to a Marker. "" and "none" are MarkerNone.
func ParseMarker(s string) (Marker, error) {
	switch s {
	case "", "none":
		return MarkerNone, nil
	case "o", "circle":
		return MarkerCircle, nil
	case "s", "square":
		return MarkerSquare, nil
	case "^", "triangle":
		return MarkerTriangle, nil
	case "D", "d", "diamond":
		return MarkerDiamond, nil
	}
	return MarkerNone, fmt.Errorf("unknown marker %q", s)
}

// LineOptions are the drawing parameters of a line series. Zero values
// fall back to the style parameters and the colour cycle.
type LineOptions struct {
	Label      string
	Color      color.Color
	Width      float64   // points
	Dashes     []float64 // on/off lengths in points
	Marker     Marker
	MarkerSize float64 // points
	Alpha      float64
}

// Line is a line series.
type Line struct {
	X, Y       []float64
	Label      string
	Color      color.Color
	Width      float64
	Dashes     []float64
	Marker     Marker
	MarkerSize float64
	Alpha      float64
}

// ScatterOptions are the drawing parameters of a scatter series.
type ScatterOptions struct {
	Label  string
	Color  color.Color
	Size   float64 // marker diameter in points
	Marker Marker
	Alpha  float64
}

// Scatter is a scatter series.
type Scatter struct {
	X, Y   []float64
	Label  string
	Color  color.Color
	Size   float64
	Marker Marker
	Alpha  float64
}

// Legend holds the frame formatting captured when the legend was created.
type Legend struct {
	Title      string
	FontSize   float64
	TitleSize  float64
	FrameAlpha float64
	Facecolor  color.Color
	Edgecolor  color.Color
	Fancybox   bool
}

func newLegend() *Legend {
	return &Legend{
		FontSize:   style.FontSize("legend.fontsize"),
		TitleSize:  style.FontSize("legend.title_fontsize"),
		FrameAlpha: style.Float("legend.framealpha"),
		Facecolor:  style.Color("legend.facecolor"),
		Edgecolor:  style.Color("legend.edgecolor"),
		Fancybox:   style.Bool("legend.fancybox"),
	}
}

type legendEntry struct {
	label  string
	color  color.Color
	line   bool
	marker Marker
}

func (ax *Axes) legendEntries() []legendEntry {
	var out []legendEntry
	for _, l := range ax.lines {
		if l.Label != "" {
			out = append(out, legendEntry{label: l.Label, color: l.Color, line: true, marker: l.Marker})
		}
	}
	for _, s := range ax.scatters {
		if s.Label != "" {
			out = append(out, legendEntry{label: s.Label, color: s.Color, marker: s.Marker})
		}
	}
	return out
}
