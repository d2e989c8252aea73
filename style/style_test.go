package style

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vis-go/colour"
)

func TestWithRestoresDefaults(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		cfg  Config
		fn   func() error
	}{
		{"house ok", nil, func() error { return nil }},
		{"custom ok", Config{"lines": {"linewidth": 7}}, func() error { return nil }},
		{"house error", nil, func() error { return errors.New("draw failed") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = With(tt.cfg, tt.fn)
			if diff := cmp.Diff(Defaults(), Snapshot()); diff != "" {
				t.Errorf("parameters after With differ from defaults (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithRestoresDefaultsOnPanic(t *testing.T) {
	t.Cleanup(Reset)

	func() {
		defer func() { _ = recover() }()
		_ = With(nil, func() error { panic("boom") })
	}()
	if diff := cmp.Diff(Defaults(), Snapshot()); diff != "" {
		t.Errorf("parameters after panic differ from defaults (-want +got):\n%s", diff)
	}
}

func TestWithAppliesInsideScope(t *testing.T) {
	t.Cleanup(Reset)

	err := With(nil, func() error {
		if got := Float("lines.linewidth"); got != 2.5 {
			t.Errorf("lines.linewidth = %v, want 2.5", got)
		}
		if !Bool("axes.grid") {
			t.Error("axes.grid should be on in the house style")
		}
		if got := String("font.family"); got != "serif" {
			t.Errorf("font.family = %q", got)
		}
		if got := FontSize("legend.fontsize"); got != 0.833*10 {
			t.Errorf("legend.fontsize = %v", got)
		}
		if got := len(Colors("axes.prop_cycle")); got != colour.Primary.Len() {
			t.Errorf("prop_cycle has %d colours", got)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestWithPassesThroughError(t *testing.T) {
	t.Cleanup(Reset)

	want := errors.New("draw failed")
	if err := With(nil, func() error { return want }); !errors.Is(err, want) {
		t.Errorf("With returned %v, want %v", err, want)
	}
}

func TestNestedWithRestoresEnclosingScope(t *testing.T) {
	t.Cleanup(Reset)

	err := With(Config{"lines": {"linewidth": 4}}, func() error {
		if err := With(Config{"lines": {"linewidth": 9}}, func() error { return nil }); err != nil {
			return err
		}
		if got := Float("lines.linewidth"); got != 4 {
			t.Errorf("after inner scope lines.linewidth = %v, want 4", got)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := Float("lines.linewidth"); got != 1.5 {
		t.Errorf("after outer scope lines.linewidth = %v, want 1.5", got)
	}
}

func TestWrap(t *testing.T) {
	t.Cleanup(Reset)

	var seen float64
	plot := Wrap(Config{"font": {"size": 14}}, func() error {
		seen = Float("font.size")
		return nil
	})
	if err := plot(); err != nil {
		t.Fatal(err)
	}
	if seen != 14 {
		t.Errorf("font.size inside wrapped call = %v, want 14", seen)
	}
	if got := Float("font.size"); got != 10 {
		t.Errorf("font.size after wrapped call = %v, want 10", got)
	}
}

func TestApplyRejectsBadParameters(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown group", Config{"nope": {"x": 1}}},
		{"unknown param", Config{"lines": {"thickness": 1}}},
		{"wrong kind", Config{"axes": {"grid": "yes"}}},
		{"bad colour", Config{"axes": {"facecolor": "#XYZXYZ"}}},
		{"bad size", Config{"legend": {"fontsize": "huge"}}},
		{"empty cycle", Config{"axes": {"prop_cycle": []string{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Apply(tt.cfg); err == nil {
				t.Error("Apply should fail")
			}
			if diff := cmp.Diff(Defaults(), Snapshot()); diff != "" {
				t.Errorf("failed Apply changed parameters (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInitAndReset(t *testing.T) {
	Init()
	if got := Float("grid.linewidth"); got != 0.6 {
		t.Errorf("grid.linewidth after Init = %v", got)
	}
	Reset()
	if diff := cmp.Diff(Defaults(), Snapshot()); diff != "" {
		t.Errorf("Reset did not restore defaults (-want +got):\n%s", diff)
	}
}

func TestLegendFacecolorInherits(t *testing.T) {
	t.Cleanup(Reset)

	if err := Apply(Config{"axes": {"facecolor": "#F8EFDD"}}); err != nil {
		t.Fatal(err)
	}
	if got := colour.Hex(Color("legend.facecolor")); got != "#F8EFDD" {
		t.Errorf("legend.facecolor = %s, want axes face colour", got)
	}
}

func TestLoadYAML(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "style.yaml")
	data := []byte(`
lines:
  linewidth: 3
axes:
  grid: true
  prop_cycle: ["#E64626", "#0148A4"]
figure:
  figsize: [8, 3]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Apply(cfg); err != nil {
		t.Fatal(err)
	}
	if got := Float("lines.linewidth"); got != 3 {
		t.Errorf("lines.linewidth = %v", got)
	}
	w, h := Pair("figure.figsize")
	if w != 8 || h != 3 {
		t.Errorf("figure.figsize = %v,%v", w, h)
	}
	if diff := cmp.Diff([]string{"#E64626", "#0148A4"}, Snapshot()["axes.prop_cycle"]); diff != "" {
		t.Errorf("prop_cycle mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("lines: [1, 2")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
}
