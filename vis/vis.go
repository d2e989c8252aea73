// Package vis draws house-styled line, scatter and dual-axis plots.
//
// Every helper runs inside the house style scope (or the config given with
// WithStyle), draws onto the axes it is given (or a new figure) and returns
// the figure and axes so that later calls can add to them:
//
//	fig, ax, err := vis.UniPlot(x, y1, vis.WithLabel("y1"))
//	_, _, err = vis.UniPlot(x, y2, vis.WithAxes(ax), vis.WithLabel("y2"),
//		vis.WithXLabel("xlabel"), vis.WithYLabel("ylabel"))
//
// Axis labels that are already set are never replaced by a later call; the
// new label is discarded with a warning instead.
package vis

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"vis-go/plotter"
	"vis-go/style"
)

var logger hclog.Logger = hclog.New(&hclog.LoggerOptions{
	Name:   "vis",
	Output: os.Stderr,
	Level:  hclog.Warn,
})

// SetLogger replaces the package logger. A nil logger silences output.
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	logger = l
}

// GetFigAx returns the figure of ax together with ax, or a new figure with
// a single house-styled axes when ax is nil.
func GetFigAx(ax *plotter.Axes) (*plotter.Figure, *plotter.Axes) {
	return getFigAx(ax, nil)
}

// getFigAx is GetFigAx with the new figure styled by cfg (nil for the house
// style).
func getFigAx(ax *plotter.Axes, cfg style.Config) (*plotter.Figure, *plotter.Axes) {
	if ax != nil {
		return ax.Figure(), ax
	}
	var fig *plotter.Figure
	_ = style.With(cfg, func() error {
		var axes []*plotter.Axes
		fig, axes = plotter.Subplots(1, 1)
		ax = axes[0]
		return nil
	})
	return fig, ax
}

// Subplots creates a house-styled figure with a rows x cols grid of axes.
func Subplots(rows, cols int) (*plotter.Figure, []*plotter.Axes) {
	var fig *plotter.Figure
	var axes []*plotter.Axes
	_ = style.With(nil, func() error {
		fig, axes = plotter.Subplots(rows, cols)
		return nil
	})
	return fig, axes
}

// UniPlot draws a line of y against x.
func UniPlot(x, y []float64, opts ...Option) (*plotter.Figure, *plotter.Axes, error) {
	return uniPlot(x, y, newOptions(opts))
}

func uniPlot(x, y []float64, o options) (fig *plotter.Figure, ax *plotter.Axes, err error) {
	err = style.With(o.cfg, func() error {
		fig, ax = getFigAx(o.ax, o.cfg)
		xlabel, ylabel := noOverrideAxisLabels(ax, o.xlabel, o.ylabel, o.xWarn, o.yWarn)
		if _, err := ax.Plot(x, y, o.lineOptions()); err != nil {
			return err
		}
		ax.SetXLabel(xlabel)
		ax.SetYLabel(ylabel)
		return nil
	})
	return fig, ax, err
}

// UniScatter draws a scatter of y against x.
func UniScatter(x, y []float64, opts ...Option) (fig *plotter.Figure, ax *plotter.Axes, err error) {
	o := newOptions(opts)
	err = style.With(o.cfg, func() error {
		fig, ax = getFigAx(o.ax, o.cfg)
		xlabel, ylabel := noOverrideAxisLabels(ax, o.xlabel, o.ylabel, o.xWarn, o.yWarn)
		if _, err := ax.Scatter(x, y, o.scatterOptions()); err != nil {
			return err
		}
		ax.SetXLabel(xlabel)
		ax.SetYLabel(ylabel)
		return nil
	})
	return fig, ax, err
}

// SiblingsTwinX returns the other axes sharing ax's x dimension.
func SiblingsTwinX(ax *plotter.Axes) []*plotter.Axes {
	return ax.SharedXSiblings()
}

// SiblingsTwinY returns the other axes sharing ax's y dimension.
func SiblingsTwinY(ax *plotter.Axes) []*plotter.Axes {
	return ax.SharedYSiblings()
}

// noOverrideAxisLabels decides the labels to set on ax. A label that is
// already set is kept; a different candidate is discarded and, when warn is
// set for that axis, a warning names the figure.
func noOverrideAxisLabels(ax *plotter.Axes, xlabel, ylabel *string, xWarn, yWarn bool) (string, string) {
	id := ax.Figure().ID()
	x := resolveLabel("xlabel", ax.XLabel(), xlabel, xWarn, id)
	y := resolveLabel("ylabel", ax.YLabel(), ylabel, yWarn, id)
	return x, y
}

func resolveLabel(which, current string, candidate *string, warn bool, figure any) string {
	if candidate == nil {
		return current
	}
	if current == "" || current == *candidate {
		return *candidate
	}
	if warn {
		logger.Warn(which+" arg discarded", "figure", figure, "kept", current, "discarded", *candidate)
	}
	return current
}
