package plotter

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/term"

	"vis-go/style"
)

func cleanup(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		CloseAll()
		style.Reset()
	})
}

func TestColorCycleWraps(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	c := NewColorCycle([]color.Color{red, blue})
	want := []color.Color{red, blue, red}
	for i, w := range want {
		if got := c.Next(); got != w {
			t.Errorf("Next() #%d = %v, want %v", i, got, w)
		}
	}
	if c.Index() != 1 {
		t.Errorf("Index() = %d, want 1", c.Index())
	}
	if got := NewColorCycle(nil).Next(); got != color.Black {
		t.Errorf("empty cycle Next() = %v, want black", got)
	}
}

func TestShareColorCycleFailsLoudly(t *testing.T) {
	err := ShareColorCycle(&Axes{}, &Axes{})
	if !errors.Is(err, ErrColorCycle) {
		t.Fatalf("ShareColorCycle on a bare axes returned %v", err)
	}
}

func TestShareColorCycleContinuesSequence(t *testing.T) {
	cleanup(t)

	_, axes := Subplots(1, 1)
	ax := axes[0]
	twin := ax.TwinX()
	if err := ShareColorCycle(twin, ax); err != nil {
		t.Fatal(err)
	}
	l1, _ := ax.Plot([]float64{0, 1}, []float64{0, 1}, LineOptions{})
	l2, _ := twin.Plot([]float64{0, 1}, []float64{1, 0}, LineOptions{})
	if l1.Color == l2.Color {
		t.Errorf("shared cycle repeated colour %v", l1.Color)
	}
}

func TestTwinWithoutSharingRepeatsColour(t *testing.T) {
	cleanup(t)

	_, axes := Subplots(1, 1)
	ax := axes[0]
	twin := ax.TwinX()
	l1, _ := ax.Plot([]float64{0, 1}, []float64{0, 1}, LineOptions{})
	l2, _ := twin.Plot([]float64{0, 1}, []float64{1, 0}, LineOptions{})
	if l1.Color != l2.Color {
		t.Errorf("independent cycles should both start at the first colour, got %v and %v", l1.Color, l2.Color)
	}
}

func TestPlotLengthMismatch(t *testing.T) {
	cleanup(t)

	_, axes := Subplots(1, 1)
	if _, err := axes[0].Plot([]float64{1, 2, 3}, []float64{1, 2}, LineOptions{}); err == nil {
		t.Error("Plot should reject mismatched lengths")
	}
	if _, err := axes[0].Scatter([]float64{1}, []float64{1, 2}, ScatterOptions{}); err == nil {
		t.Error("Scatter should reject mismatched lengths")
	}
	if n := len(axes[0].Lines()) + len(axes[0].Scatters()); n != 0 {
		t.Errorf("failed calls added %d series", n)
	}
}

func TestExplicitColourDoesNotAdvanceCycle(t *testing.T) {
	cleanup(t)

	_, axes := Subplots(1, 1)
	ax := axes[0]
	if _, err := ax.Plot([]float64{0}, []float64{0}, LineOptions{Color: color.White}); err != nil {
		t.Fatal(err)
	}
	if ax.ColorCycle().Index() != 0 {
		t.Errorf("cycle advanced to %d", ax.ColorCycle().Index())
	}
}

func TestStyleCapturedAtCreation(t *testing.T) {
	cleanup(t)

	var ax *Axes
	err := style.With(style.Config{"axes": {"grid": true}, "lines": {"linewidth": 4}}, func() error {
		_, axes := Subplots(1, 1)
		ax = axes[0]
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ax.Grid() {
		t.Error("axes created in scope should keep the grid")
	}
	l, _ := ax.Plot([]float64{0, 1}, []float64{0, 1}, LineOptions{})
	if l.Width != 1.5 {
		t.Errorf("line created after the scope has width %v, want default 1.5", l.Width)
	}
	if twin := ax.TwinX(); twin.Grid() {
		t.Error("twin created after the scope should use the default grid setting")
	}
}

func TestFigureNumbering(t *testing.T) {
	cleanup(t)
	CloseAll()

	f1 := NewFigure()
	f2 := NewFigure()
	if f1.Number != 1 || f2.Number != 2 {
		t.Errorf("numbers = %d, %d", f1.Number, f2.Number)
	}
	if f1.ID() != 1 {
		t.Errorf("ID() = %v", f1.ID())
	}
	f1.Label = "loss"
	if f1.ID() != "loss" {
		t.Errorf("ID() = %v", f1.ID())
	}
	Close(f1)
	if got := Figures(); len(got) != 1 || got[0] != f2 {
		t.Errorf("Figures() = %v", got)
	}
	if f3 := NewFigure(); f3.Number != 3 {
		t.Errorf("next number = %d, want 3", f3.Number)
	}
}

func TestSubplotRects(t *testing.T) {
	r := subplotRect(1, 1, 0)
	want := Rect{Left: subplotLeft, Bottom: subplotBottom, Width: subplotRight - subplotLeft, Height: subplotTop - subplotBottom}
	if diff := cmp.Diff(want, r, cmpFloat); diff != "" {
		t.Errorf("single subplot mismatch (-want +got):\n%s", diff)
	}
	topLeft := subplotRect(2, 2, 0)
	bottomRight := subplotRect(2, 2, 3)
	if !(topLeft.Left < bottomRight.Left && topLeft.Bottom > bottomRight.Bottom) {
		t.Errorf("grid order wrong: %+v vs %+v", topLeft, bottomRight)
	}
	if math.Abs(bottomRight.Left+bottomRight.Width-subplotRight) > 1e-9 {
		t.Errorf("last column ends at %v", bottomRight.Left+bottomRight.Width)
	}
}

var cmpFloat = cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-9 })

func TestSharedLimits(t *testing.T) {
	cleanup(t)

	_, axes := Subplots(1, 1)
	ax := axes[0]
	ax.xmargin, ax.ymargin = 0, 0
	twin := ax.TwinX()
	twin.xmargin, twin.ymargin = 0, 0
	ax.Plot([]float64{0, 10}, []float64{0, 1}, LineOptions{})
	twin.Plot([]float64{-5, 5}, []float64{100, 200}, LineOptions{})

	xmin, xmax, ymin, ymax := ax.viewLimits()
	if xmin != -5 || xmax != 10 {
		t.Errorf("primary x limits = %v..%v, want -5..10", xmin, xmax)
	}
	if ymin != 0 || ymax != 1 {
		t.Errorf("primary y limits = %v..%v, want 0..1", ymin, ymax)
	}
	txmin, txmax, tymin, tymax := twin.viewLimits()
	if txmin != xmin || txmax != xmax {
		t.Errorf("twin x limits = %v..%v, want shared %v..%v", txmin, txmax, xmin, xmax)
	}
	if tymin != 100 || tymax != 200 {
		t.Errorf("twin y limits = %v..%v", tymin, tymax)
	}

	ax.SetXLim(1, 2)
	if a, b, _, _ := twin.viewLimits(); a != 1 || b != 2 {
		t.Errorf("fixed limits not shared: %v..%v", a, b)
	}
}

func TestLimitsWithoutData(t *testing.T) {
	cleanup(t)

	_, axes := Subplots(1, 1)
	xmin, xmax, _, _ := axes[0].viewLimits()
	if xmin != 0 || xmax != 1 {
		t.Errorf("empty axes limits = %v..%v", xmin, xmax)
	}
	axes[0].Plot([]float64{2, 2}, []float64{math.NaN(), 3}, LineOptions{})
	xmin, xmax, _, _ = axes[0].viewLimits()
	if !(xmin < 2 && xmax > 2) {
		t.Errorf("single value limits = %v..%v", xmin, xmax)
	}
}

func TestMajorTicks(t *testing.T) {
	ticks := majorTicks(0, 10)
	if len(ticks) < 2 {
		t.Fatalf("majorTicks(0, 10) = %v", ticks)
	}
	for _, tk := range ticks {
		if tk.Label == "" || tk.Value < 0 || tk.Value > 10 {
			t.Errorf("unexpected tick %+v", tk)
		}
	}
	if got := majorTicks(1, 1); got != nil {
		t.Errorf("empty range ticks = %v", got)
	}
}

func TestParseMarker(t *testing.T) {
	for in, want := range map[string]Marker{"": MarkerNone, "o": MarkerCircle, "s": MarkerSquare, "^": MarkerTriangle, "D": MarkerDiamond} {
		got, err := ParseMarker(in)
		if err != nil || got != want {
			t.Errorf("ParseMarker(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMarker("*"); err == nil {
		t.Error("ParseMarker(*) should fail")
	}
}

func TestRenderDrawsSeries(t *testing.T) {
	cleanup(t)

	fig, axes := Subplots(1, 1)
	ax := axes[0]
	red := color.RGBA{R: 255, A: 255}
	ax.Plot([]float64{0, 1}, []float64{0.5, 0.5}, LineOptions{Color: red, Width: 6, Label: "flat"})
	ax.Scatter([]float64{0.9}, []float64{0.5}, ScatterOptions{Label: "dot"})
	ax.SetTitle("title")
	ax.SetXLabel("x")
	ax.SetYLabel("y")
	ax.Legend()
	twin := ax.TwinY()
	twin.SetXLabel("top")

	img := fig.Render(100, false)
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 480 {
		t.Fatalf("image is %dx%d", b.Dx(), b.Dy())
	}
	// Middle of the axes box lies on the horizontal red line.
	cx := int((subplotLeft + (subplotRight-subplotLeft)/2) * 640)
	midY := 1 - (subplotBottom + (subplotTop-subplotBottom)/2)
	cy := int(midY * 480)
	if got := img.RGBAAt(cx, cy); got.R < 200 || got.G > 60 {
		t.Errorf("pixel at line = %v, want red", got)
	}
	if got := img.RGBAAt(2, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner pixel = %v, want figure face", got)
	}
}

func TestEncodeFormats(t *testing.T) {
	cleanup(t)

	fig, axes := Subplots(1, 1)
	axes[0].Plot([]float64{0, 1}, []float64{0, 1}, LineOptions{})

	var buf bytes.Buffer
	if err := fig.Encode(&buf, "jpeg", SaveOptions{DPI: 50, Transparent: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := jpeg.Decode(&buf); err != nil {
		t.Errorf("jpeg output does not decode: %v", err)
	}
	if err := fig.Encode(&buf, "gif", SaveOptions{}); err == nil {
		t.Error("gif should be rejected")
	}
	s, err := fig.EncodeBase64PNG(SaveOptions{DPI: 50})
	if err != nil || s == "" {
		t.Errorf("EncodeBase64PNG = %q, %v", s, err)
	}
	data, err := fig.EncodePNG(SaveOptions{DPI: 50, BBoxTight: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("png output does not decode: %v", err)
	}
}

func TestCropToContent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	img.SetRGBA(5, 4, color.RGBA{A: 255})
	img.SetRGBA(8, 6, color.RGBA{A: 255})
	got := cropToContent(img, color.RGBA{}, 1).Bounds()
	if want := image.Rect(4, 3, 10, 8); got != want {
		t.Errorf("crop = %v, want %v", got, want)
	}
	empty := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if got := cropToContent(empty, color.RGBA{}, 1).Bounds(); got != empty.Bounds() {
		t.Errorf("empty image crop = %v", got)
	}
}

func TestShowWithoutFigures(t *testing.T) {
	cleanup(t)
	CloseAll()

	called := false
	old := Display
	Display = func([]string) error { called = true; return nil }
	t.Cleanup(func() { Display = old })

	if err := Show(); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("Show with no pending figures should not display anything")
	}
}

func TestShowClosesFiguresOnError(t *testing.T) {
	cleanup(t)
	CloseAll()
	t.Setenv("TMPDIR", filepath.Join(t.TempDir(), "missing"))

	called := false
	old := Display
	Display = func([]string) error { called = true; return nil }
	t.Cleanup(func() { Display = old })

	NewFigure()
	NewFigure()
	if err := Show(); err == nil {
		t.Fatal("Show succeeded without a usable temp dir")
	}
	if called {
		t.Error("Display called after a failed render")
	}
	if got := len(Figures()); got != 0 {
		t.Errorf("%d figures still pending after failed Show", got)
	}
}

func TestShowPrintsPathsWithoutTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	var buf bytes.Buffer
	old := pathOutput
	pathOutput = &buf
	t.Cleanup(func() { pathOutput = old })

	if err := openInViewer([]string{"figure-1.png", "figure-2.png"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "figure-1.png\nfigure-2.png\n"; got != want {
		t.Errorf("printed %q, want %q", got, want)
	}
}
