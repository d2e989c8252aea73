package plotter

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/plot"
)

// Padding between ticks, tick labels and axis labels, in points.
const (
	tickLabelPad = 3.5
	axisLabelPad = 4.0
	titlePad     = 6.0
)

// Render draws the figure at dpi (the figure DPI when dpi <= 0). With
// transparent set, the figure and axes backgrounds are left empty.
func (f *Figure) Render(dpi float64, transparent bool) *image.RGBA {
	if dpi <= 0 {
		dpi = f.DPI
	}
	w := int(math.Max(1, math.Round(f.Width*dpi)))
	h := int(math.Max(1, math.Round(f.Height*dpi)))

	dc := gg.NewContext(w, h)
	if !transparent && f.Facecolor != nil {
		dc.SetColor(f.Facecolor)
		dc.Clear()
	}

	r := &renderer{
		dc:          dc,
		scale:       dpi / 72,
		width:       float64(w),
		height:      float64(h),
		transparent: transparent,
	}
	for _, ax := range f.axes {
		r.drawAxes(ax)
	}
	return dc.Image().(*image.RGBA)
}

type renderer struct {
	dc            *gg.Context
	scale         float64 // pixels per point
	width, height float64
	transparent   bool
}

// box is an axes area in pixels, origin top-left.
type box struct {
	x0, y0, x1, y1 float64
}

func (r *renderer) box(rect Rect) box {
	return box{
		x0: rect.Left * r.width,
		y0: (1 - rect.Bottom - rect.Height) * r.height,
		x1: (rect.Left + rect.Width) * r.width,
		y1: (1 - rect.Bottom) * r.height,
	}
}

// transform maps data to pixel coordinates within a box.
type transform struct {
	b                      box
	xmin, xmax, ymin, ymax float64
}

func (t transform) apply(x, y float64) (float64, float64) {
	px := t.b.x0 + (x-t.xmin)/(t.xmax-t.xmin)*(t.b.x1-t.b.x0)
	py := t.b.y1 - (y-t.ymin)/(t.ymax-t.ymin)*(t.b.y1-t.b.y0)
	return px, py
}

func (r *renderer) drawAxes(ax *Axes) {
	dc := r.dc
	b := r.box(ax.rect)
	xmin, xmax, ymin, ymax := ax.viewLimits()
	t := transform{b, xmin, xmax, ymin, ymax}
	xticks := majorTicks(xmin, xmax)
	yticks := majorTicks(ymin, ymax)

	// Background
	if !r.transparent && ax.facecolor != nil {
		dc.SetColor(ax.facecolor)
		dc.DrawRectangle(b.x0, b.y0, b.x1-b.x0, b.y1-b.y0)
		dc.Fill()
	}

	// Grid lines at the major ticks
	if ax.grid {
		dc.SetColor(withAlpha(ax.gridColor, ax.gridAlpha))
		dc.SetLineWidth(ax.gridWidth * r.scale)
		for _, tk := range xticks {
			px, _ := t.apply(tk.Value, ymin)
			dc.DrawLine(px, b.y0, px, b.y1)
		}
		for _, tk := range yticks {
			_, py := t.apply(xmin, tk.Value)
			dc.DrawLine(b.x0, py, b.x1, py)
		}
		dc.Stroke()
	}

	// Series, clipped to the axes box
	dc.DrawRectangle(b.x0, b.y0, b.x1-b.x0, b.y1-b.y0)
	dc.Clip()
	for _, l := range ax.lines {
		r.drawLine(t, l)
	}
	for _, s := range ax.scatters {
		r.drawScatter(t, s)
	}
	dc.ResetClip()

	// Spines
	for _, side := range []Side{Left, Right, Bottom, Top} {
		sp := ax.spines[side]
		if !sp.Visible {
			continue
		}
		dc.SetColor(sp.Color)
		dc.SetLineWidth(sp.Width * r.scale)
		switch side {
		case Left:
			dc.DrawLine(b.x0, b.y0, b.x0, b.y1)
		case Right:
			dc.DrawLine(b.x1, b.y0, b.x1, b.y1)
		case Bottom:
			dc.DrawLine(b.x0, b.y1, b.x1, b.y1)
		case Top:
			dc.DrawLine(b.x0, b.y0, b.x1, b.y0)
		}
		dc.Stroke()
	}

	if ax.xaxis.Visible {
		r.drawAxis(ax, ax.xaxis, b, t, xticks)
	}
	if ax.yaxis.Visible {
		r.drawAxis(ax, ax.yaxis, b, t, yticks)
	}

	if ax.title != "" {
		dc.SetColor(color.Black)
		dc.SetFontFace(face(ax.family, ax.titleSize*r.scale))
		y := b.y0 - titlePad*r.scale - r.topDecoration(ax)
		dc.DrawStringAnchored(ax.title, (b.x0+b.x1)/2, y, 0.5, 0)
	}

	if ax.legend != nil {
		r.drawLegend(ax, b)
	}
}

// drawAxis draws ticks, tick labels and the label of one axis on its side.
func (r *renderer) drawAxis(ax *Axes, a *Axis, b box, t transform, ticks []plot.Tick) {
	dc := r.dc
	tickLen := a.TickLength * r.scale
	pad := tickLabelPad * r.scale

	dc.SetColor(a.TickColor)
	dc.SetLineWidth(ax.spines[a.Side].Width * r.scale)
	for _, tk := range ticks {
		px, py := t.apply(tk.Value, tk.Value)
		switch a.Side {
		case Bottom:
			dc.DrawLine(px, b.y1, px, b.y1+tickLen)
		case Top:
			dc.DrawLine(px, b.y0, px, b.y0-tickLen)
		case Left:
			dc.DrawLine(b.x0, py, b.x0-tickLen, py)
		case Right:
			dc.DrawLine(b.x1, py, b.x1+tickLen, py)
		}
	}
	dc.Stroke()

	// Tick labels; extent is how far they reach away from the box.
	dc.SetColor(a.TickLabelColor)
	dc.SetFontFace(face(ax.family, a.TickLabelSize*r.scale))
	extent := 0.0
	for _, tk := range ticks {
		px, py := t.apply(tk.Value, tk.Value)
		w, h := dc.MeasureString(tk.Label)
		switch a.Side {
		case Bottom:
			dc.DrawStringAnchored(tk.Label, px, b.y1+tickLen+pad, 0.5, 1)
			extent = math.Max(extent, h)
		case Top:
			dc.DrawStringAnchored(tk.Label, px, b.y0-tickLen-pad, 0.5, 0)
			extent = math.Max(extent, h)
		case Left:
			dc.DrawStringAnchored(tk.Label, b.x0-tickLen-pad, py, 1, 0.5)
			extent = math.Max(extent, w)
		case Right:
			dc.DrawStringAnchored(tk.Label, b.x1+tickLen+pad, py, 0, 0.5)
			extent = math.Max(extent, w)
		}
	}

	if a.Label == "" {
		return
	}
	dc.SetColor(a.LabelColor)
	dc.SetFontFace(face(ax.family, a.LabelSize*r.scale))
	off := tickLen + pad + extent + axisLabelPad*r.scale
	cx, cy := (b.x0+b.x1)/2, (b.y0+b.y1)/2
	switch a.Side {
	case Bottom:
		dc.DrawStringAnchored(a.Label, cx, b.y1+off, 0.5, 1)
	case Top:
		dc.DrawStringAnchored(a.Label, cx, b.y0-off, 0.5, 0)
	case Left:
		dc.Push()
		dc.RotateAbout(-math.Pi/2, b.x0-off, cy)
		dc.DrawStringAnchored(a.Label, b.x0-off, cy, 0.5, 0)
		dc.Pop()
	case Right:
		dc.Push()
		dc.RotateAbout(-math.Pi/2, b.x1+off, cy)
		dc.DrawStringAnchored(a.Label, b.x1+off, cy, 0.5, 1)
		dc.Pop()
	}
}

// topDecoration is the height taken above the box by a top x axis on ax
// or on a twin sharing its y dimension.
func (r *renderer) topDecoration(ax *Axes) float64 {
	for _, a := range append([]*Axes{ax}, ax.SharedYSiblings()...) {
		if a.xaxis.Side != Top || !a.xaxis.Visible {
			continue
		}
		h := (a.xaxis.TickLength + tickLabelPad + a.xaxis.TickLabelSize*1.2) * r.scale
		if a.xaxis.Label != "" {
			h += (axisLabelPad + a.xaxis.LabelSize*1.2) * r.scale
		}
		return h
	}
	return 0
}

func (r *renderer) drawLine(t transform, l *Line) {
	dc := r.dc
	c := withAlpha(l.Color, l.Alpha)
	dc.SetColor(c)
	dc.SetLineWidth(l.Width * r.scale)
	if len(l.Dashes) > 0 {
		d := make([]float64, len(l.Dashes))
		for i, v := range l.Dashes {
			d[i] = v * r.scale
		}
		dc.SetDash(d...)
	}
	pen := false
	for i := range l.X {
		if !isFinite(l.X[i]) || !isFinite(l.Y[i]) {
			pen = false
			continue
		}
		px, py := t.apply(l.X[i], l.Y[i])
		if pen {
			dc.LineTo(px, py)
		} else {
			dc.MoveTo(px, py)
		}
		pen = true
	}
	dc.Stroke()
	dc.SetDash()

	if l.Marker == MarkerNone {
		return
	}
	for i := range l.X {
		if isFinite(l.X[i]) && isFinite(l.Y[i]) {
			px, py := t.apply(l.X[i], l.Y[i])
			r.drawMarker(l.Marker, px, py, l.MarkerSize*r.scale/2, c)
		}
	}
}

func (r *renderer) drawScatter(t transform, s *Scatter) {
	c := withAlpha(s.Color, s.Alpha)
	for i := range s.X {
		if isFinite(s.X[i]) && isFinite(s.Y[i]) {
			px, py := t.apply(s.X[i], s.Y[i])
			r.drawMarker(s.Marker, px, py, s.Size*r.scale/2, c)
		}
	}
}

func (r *renderer) drawMarker(m Marker, x, y, radius float64, c color.Color) {
	dc := r.dc
	dc.SetColor(c)
	switch m {
	case MarkerCircle:
		dc.DrawCircle(x, y, radius)
	case MarkerSquare:
		dc.DrawRectangle(x-radius, y-radius, 2*radius, 2*radius)
	case MarkerTriangle:
		dc.DrawRegularPolygon(3, x, y, radius, 0)
	case MarkerDiamond:
		dc.DrawRegularPolygon(4, x, y, radius, math.Pi/4)
	default:
		return
	}
	dc.Fill()
}

// drawLegend draws the labelled series of ax in the upper right corner.
func (r *renderer) drawLegend(ax *Axes, b box) {
	entries := ax.legendEntries()
	if len(entries) == 0 {
		logger.Debug("no series with labels found to put in legend")
		return
	}
	dc := r.dc
	lg := ax.legend
	size := lg.FontSize * r.scale
	dc.SetFontFace(face(ax.family, size))

	handle := 2 * size
	gap := 0.8 * size
	pad := 0.4 * size
	rowH := 1.4 * size
	textW := 0.0
	for _, e := range entries {
		w, _ := dc.MeasureString(e.label)
		textW = math.Max(textW, w)
	}
	titleH := 0.0
	if lg.Title != "" {
		dc.SetFontFace(face(ax.family, lg.TitleSize*r.scale))
		w, _ := dc.MeasureString(lg.Title)
		textW = math.Max(textW, w-handle-gap)
		titleH = 1.4 * lg.TitleSize * r.scale
	}

	w := 2*pad + handle + gap + textW
	h := 2*pad + titleH + float64(len(entries))*rowH
	x := b.x1 - w - pad
	y := b.y0 + pad

	if lg.Fancybox {
		dc.DrawRoundedRectangle(x, y, w, h, 0.2*size)
	} else {
		dc.DrawRectangle(x, y, w, h)
	}
	dc.SetColor(withAlpha(lg.Facecolor, lg.FrameAlpha))
	dc.FillPreserve()
	dc.SetColor(withAlpha(lg.Edgecolor, lg.FrameAlpha))
	dc.SetLineWidth(0.8 * r.scale)
	dc.Stroke()

	cy := y + pad
	if lg.Title != "" {
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(lg.Title, x+w/2, cy+titleH/2, 0.5, 0.5)
		cy += titleH
		dc.SetFontFace(face(ax.family, size))
	}
	for _, e := range entries {
		my := cy + rowH/2
		if e.line {
			dc.SetColor(e.color)
			dc.SetLineWidth(1.5 * r.scale)
			dc.DrawLine(x+pad, my, x+pad+handle, my)
			dc.Stroke()
		}
		if e.marker != MarkerNone {
			r.drawMarker(e.marker, x+pad+handle/2, my, 0.3*size, e.color)
		}
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(e.label, x+pad+handle+gap, my, 0, 0.5)
		cy += rowH
	}
}

// majorTicks returns the labelled ticks within [min, max].
func majorTicks(min, max float64) []plot.Tick {
	if !(max > min) || !isFinite(min) || !isFinite(max) {
		return nil
	}
	var out []plot.Tick
	eps := (max - min) * 1e-9
	for _, tk := range (plot.DefaultTicks{}).Ticks(min, max) {
		if tk.IsMinor() || tk.Value < min-eps || tk.Value > max+eps {
			continue
		}
		out = append(out, tk)
	}
	return out
}

func withAlpha(c color.Color, a float64) color.Color {
	if c == nil {
		return color.Transparent
	}
	if a >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * math.Max(0, a))
	return n
}
