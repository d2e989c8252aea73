// Package style keeps the process-wide rendering parameters that the
// plotter reads when it creates figures, axes, lines and legends.
//
// Parameters are addressed as "group.name" (for example "lines.linewidth")
// and are applied in bulk through a Config. State is process-wide and
// meant for single-goroutine use; the mutex only keeps the maps intact.
package style

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"sync"

	"vis-go/colour"
)

type kind int

const (
	kindFloat  kind = iota
	kindBool        // true/false
	kindString      // free text, e.g. font family
	kindColor       // hex code, "none" or "inherit"
	kindColors      // ordered hex codes
	kindSize        // points or a named size relative to font.size
	kindPair        // two floats
)

func (k kind) String() string {
	switch k {
	case kindFloat:
		return "number"
	case kindBool:
		return "bool"
	case kindString:
		return "string"
	case kindColor:
		return "colour"
	case kindColors:
		return "colour list"
	case kindSize:
		return "font size"
	case kindPair:
		return "pair of numbers"
	}
	return "unknown"
}

type param struct {
	kind kind
	def  any
}

// tab10, the library's default colour cycle.
var defaultCycle = []string{
	"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD",
	"#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF",
}

var registry = map[string]param{
	"lines.linewidth":  {kindFloat, 1.5},
	"lines.markersize": {kindFloat, 6.0},

	"font.family": {kindString, "sans-serif"},
	"font.size":   {kindFloat, 10.0},

	"axes.linewidth":  {kindFloat, 0.8},
	"axes.titlesize":  {kindSize, "large"},
	"axes.labelsize":  {kindSize, "medium"},
	"axes.xmargin":    {kindFloat, 0.05},
	"axes.ymargin":    {kindFloat, 0.05},
	"axes.grid":       {kindBool, false},
	"axes.prop_cycle": {kindColors, defaultCycle},
	"axes.facecolor":  {kindColor, "#FFFFFF"},
	"axes.edgecolor":  {kindColor, "#000000"},
	"axes.labelcolor": {kindColor, "#000000"},

	"grid.linewidth": {kindFloat, 0.8},
	"grid.color":     {kindColor, "#B0B0B0"},
	"grid.alpha":     {kindFloat, 1.0},

	"legend.framealpha":     {kindFloat, 0.8},
	"legend.facecolor":      {kindColor, "inherit"},
	"legend.edgecolor":      {kindColor, "#CCCCCC"},
	"legend.fancybox":       {kindBool, true},
	"legend.fontsize":       {kindSize, "medium"},
	"legend.title_fontsize": {kindSize, "medium"},

	"xtick.labelsize":  {kindSize, "medium"},
	"xtick.color":      {kindColor, "#000000"},
	"xtick.major.size": {kindFloat, 3.5},
	"ytick.labelsize":  {kindSize, "medium"},
	"ytick.color":      {kindColor, "#000000"},
	"ytick.major.size": {kindFloat, 3.5},

	"figure.figsize":   {kindPair, [2]float64{6.4, 4.8}},
	"figure.dpi":       {kindFloat, 100.0},
	"figure.facecolor": {kindColor, "#FFFFFF"},
}

var namedSizes = map[string]float64{
	"xx-small": 0.579,
	"x-small":  0.694,
	"small":    0.833,
	"medium":   1.0,
	"large":    1.2,
	"x-large":  1.44,
	"xx-large": 1.728,
	"smaller":  0.833,
	"larger":   1.2,
}

var (
	mu      sync.Mutex
	current = defaults()
	depth   int
)

func defaults() map[string]any {
	out := make(map[string]any, len(registry))
	for k, p := range registry {
		out[k] = cloneValue(p.def)
	}
	return out
}

func cloneValue(v any) any {
	if s, ok := v.([]string); ok {
		return append([]string(nil), s...)
	}
	return v
}

// Keys returns every known parameter name, sorted.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Defaults returns a copy of the library default parameters.
func Defaults() map[string]any {
	return defaults()
}

// Snapshot returns a copy of the parameters currently in force.
func Snapshot() map[string]any {
	mu.Lock()
	defer mu.Unlock()
	return snapshotLocked()
}

func snapshotLocked() map[string]any {
	out := make(map[string]any, len(current))
	for k, v := range current {
		out[k] = cloneValue(v)
	}
	return out
}

func get(key string) any {
	mu.Lock()
	defer mu.Unlock()
	v, ok := current[key]
	if !ok {
		panic(fmt.Sprintf("style: unknown parameter %q", key))
	}
	return v
}

// Float returns a numeric parameter.
func Float(key string) float64 {
	return get(key).(float64)
}

// Bool returns a boolean parameter.
func Bool(key string) bool {
	return get(key).(bool)
}

// String returns a text parameter.
func String(key string) string {
	return get(key).(string)
}

// Pair returns a two-number parameter such as figure.figsize.
func Pair(key string) (float64, float64) {
	p := get(key).([2]float64)
	return p[0], p[1]
}

// Color returns a colour parameter. "none" is fully transparent and
// "inherit" resolves to axes.facecolor.
func Color(key string) color.Color {
	s := get(key).(string)
	if s == "inherit" {
		return Color("axes.facecolor")
	}
	c, err := colour.ParseHex(s)
	if err != nil {
		// Values are validated on Apply.
		return color.Black
	}
	return c
}

// Colors returns a colour list parameter such as axes.prop_cycle.
func Colors(key string) []color.Color {
	hexes := get(key).([]string)
	out := make([]color.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colour.ParseHex(h)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FontSize returns a size parameter in points, resolving named sizes
// ("small", "large", ...) against font.size.
func FontSize(key string) float64 {
	switch v := get(key).(type) {
	case float64:
		return v
	case string:
		return namedSizes[v] * Float("font.size")
	}
	return Float("font.size")
}

// normalize checks v against the parameter kind and converts it to the
// stored representation.
func normalize(key string, k kind, v any) (any, error) {
	bad := func() error {
		return fmt.Errorf("style parameter %q: want %s, got %T(%v)", key, k, v, v)
	}
	switch k {
	case kindFloat:
		f, ok := toFloat(v)
		if !ok {
			return nil, bad()
		}
		return f, nil
	case kindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, bad()
		}
		return b, nil
	case kindString:
		s, ok := v.(string)
		if !ok {
			return nil, bad()
		}
		return s, nil
	case kindColor:
		s, ok := toHex(v)
		if !ok {
			return nil, bad()
		}
		if s == "inherit" || s == "none" {
			return s, nil
		}
		if _, err := colour.ParseHex(s); err != nil {
			return nil, fmt.Errorf("style parameter %q: %w", key, err)
		}
		return s, nil
	case kindColors:
		hexes, ok := toHexes(v)
		if !ok {
			return nil, bad()
		}
		if len(hexes) == 0 {
			return nil, fmt.Errorf("style parameter %q: colour list is empty", key)
		}
		for _, h := range hexes {
			if _, err := colour.ParseHex(h); err != nil {
				return nil, fmt.Errorf("style parameter %q: %w", key, err)
			}
		}
		return hexes, nil
	case kindSize:
		if s, ok := v.(string); ok {
			if _, known := namedSizes[s]; !known {
				return nil, fmt.Errorf("style parameter %q: unknown font size %q", key, s)
			}
			return s, nil
		}
		f, ok := toFloat(v)
		if !ok {
			return nil, bad()
		}
		return f, nil
	case kindPair:
		switch p := v.(type) {
		case [2]float64:
			return p, nil
		case []float64:
			if len(p) == 2 {
				return [2]float64{p[0], p[1]}, nil
			}
		case []any:
			if len(p) == 2 {
				a, ok1 := toFloat(p[0])
				b, ok2 := toFloat(p[1])
				if ok1 && ok2 {
					return [2]float64{a, b}, nil
				}
			}
		}
		return nil, bad()
	}
	return nil, bad()
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func toHex(v any) (string, bool) {
	switch c := v.(type) {
	case string:
		return strings.TrimSpace(c), true
	case colour.Colour:
		return c.Hex(), true
	case color.Color:
		return colour.Hex(c), true
	}
	return "", false
}

func toHexes(v any) ([]string, bool) {
	switch l := v.(type) {
	case []string:
		return append([]string(nil), l...), true
	case colour.Scheme:
		return l.Hexes(), true
	case []colour.Colour:
		out := make([]string, len(l))
		for i, c := range l {
			out[i] = c.Hex()
		}
		return out, true
	case []color.Color:
		out := make([]string, len(l))
		for i, c := range l {
			out[i] = colour.Hex(c)
		}
		return out, true
	case []any:
		out := make([]string, 0, len(l))
		for _, e := range l {
			s, ok := toHex(e)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
