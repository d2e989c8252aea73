// Package csvdata turns CSV text into numeric series ready for plotting.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

var logger hclog.Logger = hclog.New(&hclog.LoggerOptions{
	Name:   "csvdata",
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

// GeneratedX is the name given to the x column when the CSV has none.
const GeneratedX = "_generated_x_"

// Options select and shape the data read from the CSV.
type Options struct {
	Columns  []string `json:"columns"`          // Columns to plot
	MaxRange float64  `json:"maxRange"`         // Max X value, keep rows <= this (optional, <= 0 means no limit)
	Skip     int      `json:"skip"`             // Data thinning (keep every Nth row, default=1)
	XData    bool     `json:"xdata"`            // When true, CSV has X-axis values in first column
	XScale   string   `json:"xscale,omitempty"` // Map X values to range "START,END" (optional)
}

// Series is one y column. Cells that are missing or not numeric are NaN.
type Series struct {
	Name string
	Y    []float64
}

// Dataset is the shared x column and the selected y columns.
type Dataset struct {
	XName  string
	X      []float64
	Series []Series
}

// Lookup returns the series called name.
func (d *Dataset) Lookup(name string) (Series, bool) {
	for _, s := range d.Series {
		if s.Name == name {
			return s, true
		}
	}
	return Series{}, false
}

// Load parses csvData with opts.
func Load(csvData string, opts Options) (*Dataset, error) {
	return Read(strings.NewReader(csvData), opts)
}

// ReadFile parses the CSV file at path with opts.
func ReadFile(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, opts)
}

// Read parses CSV from r with opts. The first row is the header.
func Read(r io.Reader, opts Options) (*Dataset, error) {
	if opts.Skip < 1 {
		opts.Skip = 1
	}
	if len(opts.Columns) == 0 {
		return nil, fmt.Errorf("no columns specified to plot")
	}

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows found in CSV")
	}

	header := records[0]
	dataRows := records[1:]

	// Generate X column if xdata=false
	xIndex := 0
	if !opts.XData {
		header = append([]string{GeneratedX}, header...)
		for i := range dataRows {
			dataRows[i] = append([]string{strconv.Itoa(i + 1)}, dataRows[i]...)
		}
	} else if len(header) == 0 || len(dataRows[0]) == 0 {
		return nil, fmt.Errorf("csv requires at least one column when xdata is true")
	}

	colIndexMap := make(map[string]int)
	for i, h := range header {
		colIndexMap[strings.TrimSpace(h)] = i
	}

	var names []string
	var indices []int
	for _, colName := range opts.Columns {
		idx, ok := colIndexMap[colName]
		if !ok {
			logger.Warn("column not found in CSV header, skipping", "column", colName)
			continue
		}
		names = append(names, colName)
		indices = append(indices, idx)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("none of the specified columns were found in the CSV")
	}

	// Keep rows with a numeric x value within range
	type row struct {
		x     float64
		cells []string
	}
	var filtered []row
	for _, cells := range dataRows {
		if len(cells) <= xIndex {
			continue
		}
		xVal, err := strconv.ParseFloat(strings.TrimSpace(cells[xIndex]), 64)
		if err != nil {
			continue
		}
		if opts.MaxRange > 0 && xVal > opts.MaxRange {
			continue
		}
		filtered = append(filtered, row{xVal, cells})
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no data points remain after filtering by range")
	}

	origXMin, origXMax := math.Inf(1), math.Inf(-1)
	for _, r := range filtered {
		origXMin = math.Min(origXMin, r.x)
		origXMax = math.Max(origXMax, r.x)
	}

	scale, err := parseXScale(opts.XScale)
	if err != nil {
		logger.Warn("invalid xscale, using original data range", "xscale", opts.XScale, "error", err)
		scale = nil
	}

	ds := &Dataset{XName: header[xIndex]}
	for _, name := range names {
		ds.Series = append(ds.Series, Series{Name: name})
	}
	for i := 0; i < len(filtered); i += opts.Skip {
		r := filtered[i]
		x := r.x
		if scale != nil {
			if origXMax != origXMin {
				x = scale[0] + (r.x-origXMin)/(origXMax-origXMin)*(scale[1]-scale[0])
			} else {
				x = scale[0]
			}
		}
		ds.X = append(ds.X, x)
		for j, idx := range indices {
			y := math.NaN()
			if idx < len(r.cells) {
				if v, err := strconv.ParseFloat(strings.TrimSpace(r.cells[idx]), 64); err == nil {
					y = v
				}
			}
			ds.Series[j].Y = append(ds.Series[j].Y, y)
		}
	}
	return ds, nil
}

// parseXScale parses "START,END". An empty string means no remapping.
func parseXScale(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("want START,END")
	}
	start, errS := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	end, errE := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errS != nil || errE != nil || end <= start {
		return nil, fmt.Errorf("want two numbers with START < END")
	}
	return []float64{start, end}, nil
}
