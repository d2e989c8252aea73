//go:build js && wasm

// Command vis-wasm exposes the plotting helpers to JavaScript as
// generatePlotGo(csvData, optionsJSON).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/hashicorp/go-hclog"

	"vis-go/colour"
	"vis-go/csvdata"
	"vis-go/plotter"
	"vis-go/style"
	"vis-go/vis"
)

const (
	defaultWidth  = 768
	defaultHeight = 512
	renderDPI     = 100
)

var logger = hclog.New(&hclog.LoggerOptions{
	Name:   "vis-wasm",
	Output: os.Stdout,
	Level:  hclog.Info,
})

// plotOptions is the JSON options object passed from JavaScript.
type plotOptions struct {
	csvdata.Options
	Size   string `json:"size,omitempty"` // "WIDTHxHEIGHT", overrides width/height
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	Scheme string `json:"scheme,omitempty"`
}

func parseOptions(optionsJSON string) (plotOptions, error) {
	opts := plotOptions{
		Width:  defaultWidth,
		Height: defaultHeight,
		Title:  "Plot from CSV",
	}
	opts.Skip = 1
	if err := json.Unmarshal([]byte(optionsJSON), &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options JSON: %w", err)
	}

	if opts.Size != "" {
		w, h, ok := parseSize(opts.Size)
		if ok {
			opts.Width, opts.Height = w, h
		} else {
			logger.Warn("invalid size option, keeping width/height", "size", opts.Size, "width", opts.Width, "height", opts.Height)
		}
	}
	if opts.Skip < 1 {
		opts.Skip = 1
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	return opts, nil
}

func parseSize(s string) (int, int, bool) {
	wh := strings.Split(s, "x")
	if len(wh) != 2 {
		return 0, 0, false
	}
	w, errW := strconv.Atoi(wh[0])
	h, errH := strconv.Atoi(wh[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// generatePlot renders every selected column as a line on one axes and
// returns the PNG as base64.
func generatePlot(csvData string, opts plotOptions) (string, error) {
	ds, err := csvdata.Load(csvData, opts.Options)
	if err != nil {
		return "", err
	}

	cfg := style.House()
	if opts.Scheme != "" {
		s, ok := colour.LookupScheme(opts.Scheme)
		if !ok {
			return "", fmt.Errorf("unknown colour scheme %q", opts.Scheme)
		}
		cfg["axes"]["prop_cycle"] = s.Hexes()
	} else if len(ds.Series) > colour.Primary.Len() {
		cfg["axes"]["prop_cycle"] = colour.SpreadHexes(len(ds.Series))
	}

	var fig *plotter.Figure
	defer func() {
		if fig != nil {
			plotter.Close(fig)
		}
	}()
	err = style.With(cfg, func() error {
		var axes []*plotter.Axes
		fig, axes = plotter.Subplots(1, 1)
		fig.Width = float64(opts.Width) / renderDPI
		fig.Height = float64(opts.Height) / renderDPI
		ax := axes[0]
		ax.SetTitle(opts.Title)

		xlabel := ds.XName
		if xlabel == csvdata.GeneratedX {
			xlabel = "Index"
		}
		for _, s := range ds.Series {
			if _, _, err := vis.UniPlot(ds.X, s.Y, vis.WithStyle(cfg), vis.WithAxes(ax), vis.WithLabel(s.Name), vis.WithXLabel(xlabel)); err != nil {
				return err
			}
		}
		ax.Legend()
		return nil
	})
	if err != nil {
		return "", err
	}
	return fig.EncodeBase64PNG(plotter.SaveOptions{DPI: renderDPI})
}

func errorResult(msg string) js.Value {
	return js.ValueOf(map[string]any{"error": msg})
}

// generatePlotWasm is the function exposed to JavaScript.
func generatePlotWasm(this js.Value, args []js.Value) any {
	if len(args) != 2 {
		return errorResult("Invalid number of arguments: expected 2 (csvData, optionsJSON)")
	}
	if args[0].Type() != js.TypeString || args[1].Type() != js.TypeString {
		return errorResult("Invalid argument types: both arguments must be strings")
	}

	opts, err := parseOptions(args[1].String())
	if err != nil {
		return errorResult(err.Error())
	}
	img, err := generatePlot(args[0].String(), opts)
	if err != nil {
		return errorResult(err.Error())
	}
	return js.ValueOf(map[string]any{"base64Image": img})
}

func main() {
	vis.SetLogger(logger.Named("vis"))
	plotter.SetLogger(logger.Named("plotter"))
	csvdata.SetLogger(logger.Named("csvdata"))

	logger.Info("Go WASM initialized")
	js.Global().Set("generatePlotGo", js.FuncOf(generatePlotWasm))
	select {}
}
