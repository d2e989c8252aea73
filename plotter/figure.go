// Package plotter is a small figure/axes model rendered with gg: figures
// own axes, axes own lines and scatter collections, and twin axes overlay
// a primary axes while sharing one of its dimensions.
//
// Formatting is read from the style package when each artist is created,
// so the parameters in force at creation time are the ones it keeps.
package plotter

import (
	"image/color"
	"sync"

	"vis-go/style"
)

// Rect is a rectangle in figure fractions, origin bottom-left.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// Subplot layout, in figure fractions.
const (
	subplotLeft   = 0.125
	subplotRight  = 0.9
	subplotBottom = 0.11
	subplotTop    = 0.88
	subplotWSpace = 0.2
	subplotHSpace = 0.2
)

// Figure is a canvas holding one or more axes.
type Figure struct {
	Number    int
	Label     string
	Width     float64 // inches
	Height    float64 // inches
	DPI       float64
	Facecolor color.Color

	axes []*Axes
}

var (
	registryMu sync.Mutex
	open       []*Figure
)

// NewFigure creates an empty figure sized from figure.figsize and
// registers it as pending until Close or Show.
func NewFigure() *Figure {
	w, h := style.Pair("figure.figsize")
	f := &Figure{
		Width:     w,
		Height:    h,
		DPI:       style.Float("figure.dpi"),
		Facecolor: style.Color("figure.facecolor"),
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	n := 0
	for _, o := range open {
		if o.Number > n {
			n = o.Number
		}
	}
	f.Number = n + 1
	open = append(open, f)
	return f
}

// Subplots creates a figure with a rows x cols grid of axes, returned in
// row-major order.
func Subplots(rows, cols int) (*Figure, []*Axes) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	f := NewFigure()
	axes := make([]*Axes, 0, rows*cols)
	for i := 0; i < rows*cols; i++ {
		axes = append(axes, f.AddSubplot(rows, cols, i))
	}
	return f, axes
}

// AddSubplot adds an axes in cell index (row-major, 0-based) of a
// rows x cols grid.
func (f *Figure) AddSubplot(rows, cols, index int) *Axes {
	return f.AddAxes(subplotRect(rows, cols, index))
}

// AddAxes adds an axes at rect.
func (f *Figure) AddAxes(rect Rect) *Axes {
	ax := newAxes(f, rect)
	f.axes = append(f.axes, ax)
	return ax
}

// Axes returns the figure's axes in creation order.
func (f *Figure) Axes() []*Axes {
	return append([]*Axes(nil), f.axes...)
}

// ID is the figure label, or its number when the label is empty.
func (f *Figure) ID() any {
	if f.Label != "" {
		return f.Label
	}
	return f.Number
}

func subplotRect(rows, cols, index int) Rect {
	row, col := index/cols, index%cols
	cellW := (subplotRight - subplotLeft) / (float64(cols) + subplotWSpace*float64(cols-1))
	cellH := (subplotTop - subplotBottom) / (float64(rows) + subplotHSpace*float64(rows-1))
	left := subplotLeft + float64(col)*cellW*(1+subplotWSpace)
	top := subplotTop - float64(row)*cellH*(1+subplotHSpace)
	return Rect{Left: left, Bottom: top - cellH, Width: cellW, Height: cellH}
}

// Figures returns the pending figures in creation order.
func Figures() []*Figure {
	registryMu.Lock()
	defer registryMu.Unlock()
	return append([]*Figure(nil), open...)
}

// Close drops f from the pending figures.
func Close(f *Figure) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for i, o := range open {
		if o == f {
			open = append(open[:i], open[i+1:]...)
			return
		}
	}
}

// CloseAll drops every pending figure.
func CloseAll() {
	registryMu.Lock()
	defer registryMu.Unlock()
	open = nil
}
