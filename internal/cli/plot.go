package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"vis-go/csvdata"
	"vis-go/plotter"
	"vis-go/style"
	"vis-go/vis"
)

// dataFlags select the CSV columns and rows to plot.
type dataFlags struct {
	columns  []string
	xdata    bool
	skip     int
	maxRange float64
	xscale   string
}

func (d *dataFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&d.columns, "columns", "c", nil, "columns to plot")
	fs.BoolVar(&d.xdata, "xdata", false, "first CSV column holds the x values")
	fs.IntVar(&d.skip, "skip", 1, "keep every Nth row")
	fs.Float64Var(&d.maxRange, "max-range", 0, "drop rows whose x exceeds this value (0 for no limit)")
	fs.StringVar(&d.xscale, "xscale", "", "map x values onto START,END")
}

func (d *dataFlags) load(path string) (*csvdata.Dataset, error) {
	return csvdata.ReadFile(path, csvdata.Options{
		Columns:  d.columns,
		MaxRange: d.maxRange,
		Skip:     d.skip,
		XData:    d.xdata,
		XScale:   d.xscale,
	})
}

// labelFlags set the figure text.
type labelFlags struct {
	output string
	title  string
	xlabel string
	ylabel string
}

func (l *labelFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&l.output, "output", "o", "plot.png", "output image (.png, .jpg)")
	fs.StringVar(&l.title, "title", "", "figure title")
	fs.StringVar(&l.xlabel, "xlabel", "", "x axis label (default: x column name)")
	fs.StringVar(&l.ylabel, "ylabel", "", "y axis label")
}

func (l *labelFlags) xLabelFor(ds *csvdata.Dataset) string {
	if l.xlabel != "" || ds.XName == csvdata.GeneratedX {
		return l.xlabel
	}
	return ds.XName
}

func newPlotCmd(g *globalFlags, kind, short string) *cobra.Command {
	var (
		data   dataFlags
		labels labelFlags
		marker string
		legend bool
	)
	cmd := &cobra.Command{
		Use:   kind + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := data.load(args[0])
			if err != nil {
				return err
			}
			if len(ds.Series) == 0 {
				return fmt.Errorf("no columns to plot in %s", args[0])
			}
			m, err := plotter.ParseMarker(marker)
			if err != nil {
				return err
			}
			cfg, err := g.styleConfig(len(ds.Series))
			if err != nil {
				return err
			}

			fig, err := drawColumns(cfg, kind, ds, labels, m, legend)
			if err != nil {
				return err
			}
			return g.save(fig, labels.output)
		},
	}
	data.register(cmd.Flags())
	labels.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("columns")
	cmd.Flags().StringVar(&marker, "marker", "", "marker drawn at each point (o, s, ^, D)")
	cmd.Flags().BoolVar(&legend, "legend", true, "draw a legend of the column names")
	return cmd
}

func newDualCmd(g *globalFlags) *cobra.Command {
	var (
		data   dataFlags
		labels labelFlags
		twin   string
	)
	cmd := &cobra.Command{
		Use:   "dual FILE",
		Short: "Draw two columns against separate y (or x) axes",
		Long: `dual draws exactly two columns on twinned axes that share the colour
cycle, so each column and its axis get a distinct colour.

With --twin y the columns are plotted against the x column on left and
right y axes. With --twin x the x column is plotted against the two
columns on bottom and top x axes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if twin != "x" && twin != "y" {
				return fmt.Errorf("--twin must be x or y, got %q", twin)
			}
			ds, err := data.load(args[0])
			if err != nil {
				return err
			}
			if len(ds.Series) != 2 {
				return fmt.Errorf("dual needs exactly 2 columns, got %d", len(ds.Series))
			}
			cfg, err := g.styleConfig(2)
			if err != nil {
				return err
			}

			fig, err := drawDual(cfg, twin, ds, labels)
			if err != nil {
				return err
			}
			return g.save(fig, labels.output)
		},
	}
	data.register(cmd.Flags())
	labels.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("columns")
	cmd.Flags().StringVar(&twin, "twin", "y", "which axis is twinned: y or x")
	return cmd
}

// drawColumns draws every series of ds as a line (or scatter) on one axes
// styled by cfg.
func drawColumns(cfg style.Config, kind string, ds *csvdata.Dataset, labels labelFlags, m plotter.Marker, legend bool) (*plotter.Figure, error) {
	var fig *plotter.Figure
	err := style.With(cfg, func() error {
		var axes []*plotter.Axes
		fig, axes = plotter.Subplots(1, 1)
		ax := axes[0]
		ax.SetTitle(labels.title)
		for _, s := range ds.Series {
			opts := []vis.Option{
				vis.WithStyle(cfg),
				vis.WithAxes(ax),
				vis.WithLabel(s.Name),
				vis.WithXLabel(labels.xLabelFor(ds)),
				vis.WithYLabel(labels.ylabel),
				vis.WithMarker(m),
			}
			var err error
			if kind == "scatter" {
				_, _, err = vis.UniScatter(ds.X, s.Y, opts...)
			} else {
				_, _, err = vis.UniPlot(ds.X, s.Y, opts...)
			}
			if err != nil {
				return fmt.Errorf("column %q: %w", s.Name, err)
			}
		}
		if legend {
			ax.Legend()
		}
		return nil
	})
	if err != nil {
		if fig != nil {
			plotter.Close(fig)
		}
		return nil, err
	}
	return fig, nil
}

// drawDual draws the two series of ds on twinned axes styled by cfg. twin
// is "y" (shared x) or "x" (shared y).
func drawDual(cfg style.Config, twin string, ds *csvdata.Dataset, labels labelFlags) (*plotter.Figure, error) {
	first, second := ds.Series[0], ds.Series[1]
	var fig *plotter.Figure
	err := style.With(cfg, func() error {
		var axes []*plotter.Axes
		fig, axes = plotter.Subplots(1, 1)
		ax := axes[0]
		ax.SetTitle(labels.title)
		opts := []vis.Option{
			vis.WithStyle(cfg),
			vis.WithAxes(ax),
			vis.WithLabels(first.Name, second.Name),
		}
		if twin == "y" {
			opts = append(opts,
				vis.WithXLabel(labels.xLabelFor(ds)),
				vis.WithYLabels(first.Name, second.Name))
			_, _, err := vis.DualYAxisPlot([2][]float64{first.Y, second.Y}, ds.X, opts...)
			return err
		}
		ylabel := labels.ylabel
		if ylabel == "" {
			ylabel = labels.xLabelFor(ds)
		}
		opts = append(opts,
			vis.WithYLabel(ylabel),
			vis.WithXLabels(first.Name, second.Name))
		_, _, err := vis.DualXAxisPlot(ds.X, [2][]float64{first.Y, second.Y}, opts...)
		return err
	})
	if err != nil {
		if fig != nil {
			plotter.Close(fig)
		}
		return nil, err
	}
	return fig, nil
}
