package vis

import (
	"io"

	"vis-go/plotter"
)

// SaveOption overrides one of the Save defaults.
type SaveOption func(*plotter.SaveOptions)

// WithDPI sets the output resolution.
func WithDPI(dpi float64) SaveOption {
	return func(o *plotter.SaveOptions) { o.DPI = dpi }
}

// WithTransparent controls whether backgrounds are left empty.
func WithTransparent(transparent bool) SaveOption {
	return func(o *plotter.SaveOptions) { o.Transparent = transparent }
}

// WithBBoxTight controls cropping to the drawn content.
func WithBBoxTight(tight bool) SaveOption {
	return func(o *plotter.SaveOptions) { o.BBoxTight = tight }
}

// WithPadInches sets the padding kept around the content when cropping.
func WithPadInches(pad float64) SaveOption {
	return func(o *plotter.SaveOptions) { o.PadInches = pad }
}

func saveOptions(opts []SaveOption) plotter.SaveOptions {
	o := plotter.SaveOptions{
		DPI:         200,
		Transparent: true,
		BBoxTight:   true,
		PadInches:   0.1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Save writes fig to path, cropped to its content at 200 dpi with a
// transparent background unless overridden.
func Save(fig *plotter.Figure, path string, opts ...SaveOption) error {
	return fig.Save(path, saveOptions(opts))
}

// SaveTo is Save for an io.Writer; format is "png", "jpg" or "jpeg".
func SaveTo(fig *plotter.Figure, w io.Writer, format string, opts ...SaveOption) error {
	return fig.Encode(w, format, saveOptions(opts))
}

// Show displays every pending figure and closes them.
func Show() error {
	return plotter.Show()
}
