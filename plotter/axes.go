package plotter

import (
	"fmt"
	"image/color"
	"math"

	"vis-go/style"
)

// Side identifies one edge of an axes.
type Side int

const (
	Left Side = iota
	Right
	Bottom
	Top
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Spine is the line along one edge of the axes box.
type Spine struct {
	Color   color.Color
	Width   float64 // points
	Visible bool
}

// Axis holds the label and tick formatting of one dimension.
type Axis struct {
	Label          string
	LabelColor     color.Color
	LabelSize      float64 // points
	TickColor      color.Color
	TickLabelColor color.Color
	TickLabelSize  float64 // points
	TickLength     float64 // points
	Side           Side
	// Visible controls ticks, tick labels and the axis label.
	Visible bool

	min, max float64
	fixed    bool
}

// SetLimits fixes the view limits instead of autoscaling.
func (a *Axis) SetLimits(min, max float64) {
	a.min, a.max, a.fixed = min, max, true
}

// shareGroup is the set of axes sharing one dimension.
type shareGroup struct {
	members []*Axes
}

// Axes is a plotting area within a figure.
type Axes struct {
	fig  *Figure
	rect Rect

	title     string
	titleSize float64
	family    string

	xaxis, yaxis *Axis
	spines       map[Side]*Spine

	grid      bool
	gridColor color.Color
	gridWidth float64
	gridAlpha float64

	facecolor color.Color
	xmargin   float64
	ymargin   float64

	cycle    *ColorCycle
	lines    []*Line
	scatters []*Scatter
	legend   *Legend

	sharex, sharey *shareGroup
}

func newAxes(f *Figure, rect Rect) *Axes {
	ax := &Axes{
		fig:       f,
		rect:      rect,
		titleSize: style.FontSize("axes.titlesize"),
		family:    style.String("font.family"),
		xaxis:     newAxis(Bottom, "xtick"),
		yaxis:     newAxis(Left, "ytick"),
		spines:    make(map[Side]*Spine, 4),
		grid:      style.Bool("axes.grid"),
		gridColor: style.Color("grid.color"),
		gridWidth: style.Float("grid.linewidth"),
		gridAlpha: style.Float("grid.alpha"),
		facecolor: style.Color("axes.facecolor"),
		xmargin:   style.Float("axes.xmargin"),
		ymargin:   style.Float("axes.ymargin"),
		cycle:     NewColorCycle(style.Colors("axes.prop_cycle")),
	}
	for _, s := range []Side{Left, Right, Bottom, Top} {
		ax.spines[s] = &Spine{
			Color:   style.Color("axes.edgecolor"),
			Width:   style.Float("axes.linewidth"),
			Visible: true,
		}
	}
	ax.sharex = &shareGroup{members: []*Axes{ax}}
	ax.sharey = &shareGroup{members: []*Axes{ax}}
	return ax
}

func newAxis(side Side, tick string) *Axis {
	return &Axis{
		LabelColor:     style.Color("axes.labelcolor"),
		LabelSize:      style.FontSize("axes.labelsize"),
		TickColor:      style.Color(tick + ".color"),
		TickLabelColor: style.Color(tick + ".color"),
		TickLabelSize:  style.FontSize(tick + ".labelsize"),
		TickLength:     style.Float(tick + ".major.size"),
		Side:           side,
		Visible:        true,
	}
}

// Figure returns the owning figure.
func (ax *Axes) Figure() *Figure { return ax.fig }

// Rect returns the axes position in figure fractions.
func (ax *Axes) Rect() Rect { return ax.rect }

// XAxis returns the x-axis formatting.
func (ax *Axes) XAxis() *Axis { return ax.xaxis }

// YAxis returns the y-axis formatting.
func (ax *Axes) YAxis() *Axis { return ax.yaxis }

// Spine returns the spine on side s.
func (ax *Axes) Spine(s Side) *Spine { return ax.spines[s] }

func (ax *Axes) XLabel() string     { return ax.xaxis.Label }
func (ax *Axes) YLabel() string     { return ax.yaxis.Label }
func (ax *Axes) SetXLabel(s string) { ax.xaxis.Label = s }
func (ax *Axes) SetYLabel(s string) { ax.yaxis.Label = s }
func (ax *Axes) Title() string      { return ax.title }
func (ax *Axes) SetTitle(s string)  { ax.title = s }

// SetXLim fixes the x view limits of the axes and everything sharing x.
func (ax *Axes) SetXLim(min, max float64) {
	for _, m := range ax.sharex.members {
		m.xaxis.SetLimits(min, max)
	}
}

// SetYLim fixes the y view limits of the axes and everything sharing y.
func (ax *Axes) SetYLim(min, max float64) {
	for _, m := range ax.sharey.members {
		m.yaxis.SetLimits(min, max)
	}
}

// Grid reports whether gridlines are drawn.
func (ax *Axes) Grid() bool { return ax.grid }

// SetGrid turns gridlines on or off.
func (ax *Axes) SetGrid(on bool) { ax.grid = on }

// ColorCycle returns the cycle new series draw their colours from.
func (ax *Axes) ColorCycle() *ColorCycle { return ax.cycle }

// Lines returns the line series in drawing order.
func (ax *Axes) Lines() []*Line { return append([]*Line(nil), ax.lines...) }

// Scatters returns the scatter series in drawing order.
func (ax *Axes) Scatters() []*Scatter { return append([]*Scatter(nil), ax.scatters...) }

// Plot adds a line series.
func (ax *Axes) Plot(x, y []float64, opts LineOptions) (*Line, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must have same first dimension, but have shapes (%d,) and (%d,)", len(x), len(y))
	}
	l := &Line{
		X:          append([]float64(nil), x...),
		Y:          append([]float64(nil), y...),
		Label:      opts.Label,
		Color:      opts.Color,
		Width:      opts.Width,
		Dashes:     append([]float64(nil), opts.Dashes...),
		Marker:     opts.Marker,
		MarkerSize: opts.MarkerSize,
		Alpha:      opts.Alpha,
	}
	if l.Color == nil {
		l.Color = ax.cycle.Next()
	}
	if l.Width <= 0 {
		l.Width = style.Float("lines.linewidth")
	}
	if l.MarkerSize <= 0 {
		l.MarkerSize = style.Float("lines.markersize")
	}
	if l.Alpha <= 0 || l.Alpha > 1 {
		l.Alpha = 1
	}
	ax.lines = append(ax.lines, l)
	return l, nil
}

// Scatter adds a scatter series.
func (ax *Axes) Scatter(x, y []float64, opts ScatterOptions) (*Scatter, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must be the same size, but have sizes %d and %d", len(x), len(y))
	}
	s := &Scatter{
		X:      append([]float64(nil), x...),
		Y:      append([]float64(nil), y...),
		Label:  opts.Label,
		Color:  opts.Color,
		Size:   opts.Size,
		Marker: opts.Marker,
		Alpha:  opts.Alpha,
	}
	if s.Color == nil {
		s.Color = ax.cycle.Next()
	}
	if s.Size <= 0 {
		s.Size = style.Float("lines.markersize")
	}
	if s.Marker == MarkerNone {
		s.Marker = MarkerCircle
	}
	if s.Alpha <= 0 || s.Alpha > 1 {
		s.Alpha = 1
	}
	ax.scatters = append(ax.scatters, s)
	return s, nil
}

// Legend turns on the legend for the labelled series of this axes, using
// the legend parameters in force now.
func (ax *Axes) Legend() *Legend {
	ax.legend = newLegend()
	return ax.legend
}

// TwinX creates an axes at the same position sharing the x dimension, with
// its y ticks and label on the right.
func (ax *Axes) TwinX() *Axes {
	twin := ax.fig.AddAxes(ax.rect)
	twin.facecolor = nil
	twin.yaxis.Side = Right
	twin.xaxis.Visible = false
	ax.yaxis.Side = Left
	join(ax.sharex, twin, func(a *Axes) **shareGroup { return &a.sharex })
	return twin
}

// TwinY creates an axes at the same position sharing the y dimension, with
// its x ticks and label on the top.
func (ax *Axes) TwinY() *Axes {
	twin := ax.fig.AddAxes(ax.rect)
	twin.facecolor = nil
	twin.xaxis.Side = Top
	twin.yaxis.Visible = false
	ax.xaxis.Side = Bottom
	join(ax.sharey, twin, func(a *Axes) **shareGroup { return &a.sharey })
	return twin
}

func join(g *shareGroup, a *Axes, field func(*Axes) **shareGroup) {
	g.members = append(g.members, a)
	*field(a) = g
}

// SharedXSiblings returns the other axes sharing the x dimension.
func (ax *Axes) SharedXSiblings() []*Axes { return siblings(ax.sharex, ax) }

// SharedYSiblings returns the other axes sharing the y dimension.
func (ax *Axes) SharedYSiblings() []*Axes { return siblings(ax.sharey, ax) }

func siblings(g *shareGroup, self *Axes) []*Axes {
	out := make([]*Axes, 0, len(g.members))
	for _, m := range g.members {
		if m != self {
			out = append(out, m)
		}
	}
	return out
}

// ShareColorCycle makes dst draw new series colours from src's cycle, so
// the two axes continue one sequence instead of each starting over.
func ShareColorCycle(dst, src *Axes) error {
	if src == nil || src.cycle == nil {
		return fmt.Errorf("%w: source axes has no colour cycle; was it created outside a Figure?", ErrColorCycle)
	}
	if dst == nil {
		return fmt.Errorf("%w: destination axes is nil", ErrColorCycle)
	}
	dst.cycle = src.cycle
	return nil
}

// dataLimits returns the x and y extent of the series on this axes. ok is
// false when there is no finite data.
func (ax *Axes) dataLimits() (x, y [2]float64, ok bool) {
	x = [2]float64{math.Inf(1), math.Inf(-1)}
	y = x
	add := func(xs, ys []float64) {
		for i := range xs {
			if isFinite(xs[i]) && isFinite(ys[i]) {
				x[0], x[1] = math.Min(x[0], xs[i]), math.Max(x[1], xs[i])
				y[0], y[1] = math.Min(y[0], ys[i]), math.Max(y[1], ys[i])
				ok = true
			}
		}
	}
	for _, l := range ax.lines {
		add(l.X, l.Y)
	}
	for _, s := range ax.scatters {
		add(s.X, s.Y)
	}
	return x, y, ok
}

// viewLimits returns the x and y ranges to draw, taking fixed limits,
// shared dimensions and margins into account.
func (ax *Axes) viewLimits() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = groupLimits(ax.sharex, ax.xaxis, ax.xmargin, 0)
	ymin, ymax = groupLimits(ax.sharey, ax.yaxis, ax.ymargin, 1)
	return
}

func groupLimits(g *shareGroup, a *Axis, margin float64, dim int) (float64, float64) {
	if a.fixed {
		return a.min, a.max
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, m := range g.members {
		x, y, ok := m.dataLimits()
		if !ok {
			continue
		}
		r := x
		if dim == 1 {
			r = y
		}
		lo, hi = math.Min(lo, r[0]), math.Max(hi, r[1])
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		// Same expansion as for a single repeated value: +-5% or +-0.5 at zero.
		d := math.Abs(lo) * 0.05
		if d == 0 {
			d = 0.5
		}
		return lo - d, hi + d
	}
	pad := (hi - lo) * margin
	return lo - pad, hi + pad
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
