package plotter

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SaveOptions control rendering for export.
type SaveOptions struct {
	DPI         float64 // <= 0 uses the figure DPI
	Transparent bool    // leave figure and axes backgrounds empty
	BBoxTight   bool    // crop to the drawn content
	PadInches   float64 // padding kept around the content when cropping
}

// Save renders the figure and writes it to path. The format follows the
// file extension (.png, .jpg, .jpeg).
func (f *Figure) Save(path string, opts SaveOptions) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !supportedFormat(format) {
		return fmt.Errorf("unsupported image format %q (supported: png, jpg, jpeg)", format)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Encode(out, format, opts); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Encode renders the figure and writes it to w in format ("png", "jpg"
// or "jpeg").
func (f *Figure) Encode(w io.Writer, format string, opts SaveOptions) error {
	if !supportedFormat(format) {
		return fmt.Errorf("unsupported image format %q (supported: png, jpg, jpeg)", format)
	}
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = f.DPI
	}
	img := image.Image(f.Render(dpi, opts.Transparent))
	if opts.BBoxTight {
		img = cropToContent(img.(*image.RGBA), f.background(opts.Transparent), int(opts.PadInches*dpi))
	}

	switch format {
	case "png":
		return png.Encode(w, img)
	default:
		// JPEG has no alpha channel; flatten onto white.
		flat := image.NewRGBA(img.Bounds())
		draw.Draw(flat, flat.Bounds(), image.White, image.Point{}, draw.Src)
		draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)
		return jpeg.Encode(w, flat, &jpeg.Options{Quality: 95})
	}
}

func supportedFormat(format string) bool {
	switch format {
	case "png", "jpg", "jpeg":
		return true
	}
	return false
}

// background is the colour of an untouched pixel.
func (f *Figure) background(transparent bool) color.RGBA {
	if transparent || f.Facecolor == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(f.Facecolor).(color.RGBA)
}

// cropToContent trims the rows and columns that only hold background,
// keeping pad pixels around the content.
func cropToContent(img *image.RGBA, bg color.RGBA, pad int) image.Image {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == bg {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX {
		return img
	}
	r := image.Rect(minX-pad, minY-pad, maxX+1+pad, maxY+1+pad).Intersect(b)
	return img.SubImage(r)
}

// EncodePNG renders the figure as PNG bytes.
func (f *Figure) EncodePNG(opts SaveOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Encode(&buf, "png", opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeBase64PNG renders the figure as a base64 encoded PNG string.
func (f *Figure) EncodeBase64PNG(opts SaveOptions) (string, error) {
	data, err := f.EncodePNG(opts)
	if err != nil {
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
