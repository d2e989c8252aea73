package vis

import (
	"vis-go/plotter"
	"vis-go/style"
)

// DualYAxisPlot draws ys[0] and ys[1] against x, the second on a twin axes
// with its own y scale on the right. The twin continues the primary's
// colour cycle, its right spine, label and tick labels take the colour of
// its line, and it draws no grid. The primary axes is returned.
func DualYAxisPlot(ys [2][]float64, x []float64, opts ...Option) (fig *plotter.Figure, ax *plotter.Axes, err error) {
	o := newOptions(opts)
	err = style.With(o.cfg, func() error {
		first := o.series(0)
		first.ylabel = o.ylabels[0]
		fig, ax, err = uniPlot(x, ys[0], first)
		if err != nil {
			return err
		}

		twin := ax.TwinX()
		if err := plotter.ShareColorCycle(twin, ax); err != nil {
			return err
		}

		second := o.series(1)
		second.ax = twin
		second.xlabel = nil
		second.ylabel = o.ylabels[1]
		if _, _, err := uniPlot(x, ys[1], second); err != nil {
			return err
		}

		recolorTwin(twin, plotter.Right, twin.YAxis())
		return nil
	})
	return fig, ax, err
}

// DualXAxisPlot draws y against xs[0] and xs[1], the second on a twin axes
// with its own x scale on the top. Colouring follows DualYAxisPlot.
func DualXAxisPlot(y []float64, xs [2][]float64, opts ...Option) (fig *plotter.Figure, ax *plotter.Axes, err error) {
	o := newOptions(opts)
	err = style.With(o.cfg, func() error {
		first := o.series(0)
		first.xlabel = o.xlabels[0]
		fig, ax, err = uniPlot(xs[0], y, first)
		if err != nil {
			return err
		}

		twin := ax.TwinY()
		if err := plotter.ShareColorCycle(twin, ax); err != nil {
			return err
		}

		second := o.series(1)
		second.ax = twin
		second.xlabel = o.xlabels[1]
		second.ylabel = nil
		if _, _, err := uniPlot(xs[1], y, second); err != nil {
			return err
		}

		recolorTwin(twin, plotter.Top, twin.XAxis())
		return nil
	})
	return fig, ax, err
}

func recolorTwin(twin *plotter.Axes, side plotter.Side, axis *plotter.Axis) {
	lines := twin.Lines()
	c := lines[len(lines)-1].Color
	twin.Spine(side).Color = c
	axis.LabelColor = c
	axis.TickLabelColor = c
	twin.SetGrid(false)
}
