package vis

import (
	"image/color"

	"vis-go/plotter"
	"vis-go/style"
)

// Option configures a plotting helper.
type Option func(*options)

type options struct {
	ax  *plotter.Axes
	cfg style.Config

	label   string
	labels  [2]*string
	xlabel  *string
	ylabel  *string
	xlabels [2]*string
	ylabels [2]*string
	color   color.Color
	colors  [2]color.Color

	width      float64
	dashes     []float64
	marker     plotter.Marker
	markerSize float64
	alpha      float64

	xWarn bool
	yWarn bool
}

func newOptions(opts []Option) options {
	o := options{xWarn: true, yWarn: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAxes draws on ax instead of a new figure.
func WithAxes(ax *plotter.Axes) Option {
	return func(o *options) { o.ax = ax }
}

// WithStyle runs the helper under cfg instead of the house style. Axes,
// twins and series created by the helper take their formatting from cfg.
func WithStyle(cfg style.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLabel sets the legend label of the series.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithLabels sets the legend labels of the two series of a dual-axis plot.
func WithLabels(first, second string) Option {
	return func(o *options) { o.labels = [2]*string{&first, &second} }
}

// WithXLabel sets the x-axis label unless the axes already has another.
func WithXLabel(label string) Option {
	return func(o *options) { o.xlabel = &label }
}

// WithYLabel sets the y-axis label unless the axes already has another.
func WithYLabel(label string) Option {
	return func(o *options) { o.ylabel = &label }
}

// WithXLabels sets the bottom and top x-axis labels of DualXAxisPlot.
// An empty string leaves that label unset.
func WithXLabels(bottom, top string) Option {
	return func(o *options) { o.xlabels = [2]*string{optional(bottom), optional(top)} }
}

// WithYLabels sets the left and right y-axis labels of DualYAxisPlot.
// An empty string leaves that label unset.
func WithYLabels(left, right string) Option {
	return func(o *options) { o.ylabels = [2]*string{optional(left), optional(right)} }
}

// WithColor fixes the series colour instead of taking the next cycle colour.
func WithColor(c color.Color) Option {
	return func(o *options) { o.color = c }
}

// WithColors fixes the colours of the two series of a dual-axis plot; nil
// takes the next cycle colour.
func WithColors(first, second color.Color) Option {
	return func(o *options) { o.colors = [2]color.Color{first, second} }
}

// WithLineWidth sets the line width in points.
func WithLineWidth(w float64) Option {
	return func(o *options) { o.width = w }
}

// WithDashes sets the on/off dash pattern in points.
func WithDashes(d ...float64) Option {
	return func(o *options) { o.dashes = d }
}

// WithMarker sets the marker drawn at each point.
func WithMarker(m plotter.Marker) Option {
	return func(o *options) { o.marker = m }
}

// WithMarkerSize sets the marker diameter in points.
func WithMarkerSize(s float64) Option {
	return func(o *options) { o.markerSize = s }
}

// WithAlpha sets the series opacity in (0, 1].
func WithAlpha(a float64) Option {
	return func(o *options) { o.alpha = a }
}

// WithXLabelOverrideWarn controls the warning logged when the x label
// argument is discarded because the axes already has a different one.
func WithXLabelOverrideWarn(warn bool) Option {
	return func(o *options) { o.xWarn = warn }
}

// WithYLabelOverrideWarn is WithXLabelOverrideWarn for the y label.
func WithYLabelOverrideWarn(warn bool) Option {
	return func(o *options) { o.yWarn = warn }
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (o options) lineOptions() plotter.LineOptions {
	return plotter.LineOptions{
		Label:      o.label,
		Color:      o.color,
		Width:      o.width,
		Dashes:     o.dashes,
		Marker:     o.marker,
		MarkerSize: o.markerSize,
		Alpha:      o.alpha,
	}
}

func (o options) scatterOptions() plotter.ScatterOptions {
	return plotter.ScatterOptions{
		Label:  o.label,
		Color:  o.color,
		Size:   o.markerSize,
		Marker: o.marker,
		Alpha:  o.alpha,
	}
}

// series returns the options for series i (0 or 1) of a dual-axis plot.
func (o options) series(i int) options {
	s := o
	s.color = o.colors[i]
	if o.labels[i] != nil {
		s.label = *o.labels[i]
	}
	return s
}
