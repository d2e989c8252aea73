// Package cli provides the command-line interface for vis.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"vis-go/colour"
	"vis-go/csvdata"
	"vis-go/plotter"
	"vis-go/style"
	"vis-go/vis"
)

// globalFlags are shared by every plotting command.
type globalFlags struct {
	verbose   bool
	styleFile string
	scheme    string
	dpi       float64
	opaque    bool
	show      bool
}

// NewRootCmd builds the vis command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "vis",
		Short: "Render CSV columns as house-styled plots",
		Long: `vis reads numeric columns from a CSV file and renders them as line,
scatter or dual-axis plots using the house colour schemes and style.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(g.verbose)
		},
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&g.styleFile, "style", "", "YAML file with style parameters")
	root.PersistentFlags().StringVar(&g.scheme, "scheme", colour.Primary.Name, "colour scheme name, or \"spread\" for evenly spaced hues")
	root.PersistentFlags().Float64Var(&g.dpi, "dpi", 200, "output resolution")
	root.PersistentFlags().BoolVar(&g.opaque, "opaque", false, "draw backgrounds instead of leaving them transparent")
	root.PersistentFlags().BoolVar(&g.show, "show", false, "open the rendered figure in the image viewer")

	root.AddCommand(newPlotCmd(g, "plot", "Draw each column as a line"))
	root.AddCommand(newPlotCmd(g, "scatter", "Draw each column as a scatter"))
	root.AddCommand(newDualCmd(g))
	root.AddCommand(newSchemesCmd())
	return root
}

func configureLogging(verbose bool) {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "vis",
		Output: os.Stderr,
		Level:  level,
	})
	vis.SetLogger(logger)
	plotter.SetLogger(logger.Named("plotter"))
	csvdata.SetLogger(logger.Named("csvdata"))
}

// styleConfig is the house style overlaid with the style file and the
// colour scheme chosen on the command line.
func (g *globalFlags) styleConfig(series int) (style.Config, error) {
	cfg := style.House()
	if g.styleFile != "" {
		user, err := style.Load(g.styleFile)
		if err != nil {
			return nil, err
		}
		for group, params := range user {
			if cfg[group] == nil {
				cfg[group] = map[string]any{}
			}
			for k, v := range params {
				cfg[group][k] = v
			}
		}
	}

	switch {
	case strings.EqualFold(g.scheme, "spread"):
		cfg["axes"]["prop_cycle"] = colour.SpreadHexes(max(series, 1))
	case g.scheme != "":
		s, ok := colour.LookupScheme(g.scheme)
		if !ok {
			return nil, fmt.Errorf("unknown colour scheme %q (see \"vis schemes\")", g.scheme)
		}
		cfg["axes"]["prop_cycle"] = s.Hexes()
	}
	return cfg, nil
}

func (g *globalFlags) save(fig *plotter.Figure, output string) error {
	if err := vis.Save(fig, output, vis.WithDPI(g.dpi), vis.WithTransparent(!g.opaque)); err != nil {
		return err
	}
	plotter.Logger().Debug("figure saved", "path", output)
	if g.show {
		return vis.Show()
	}
	plotter.Close(fig)
	return nil
}
