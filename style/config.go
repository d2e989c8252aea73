package style

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"vis-go/colour"
)

// Config maps a parameter group ("lines", "font", "axes", ...) to the
// parameters to set in that group.
type Config map[string]map[string]any

// House returns the house style: thick lines, serif 10pt text, grid on,
// and the Primary colour scheme as the colour cycle.
func House() Config {
	return Config{
		"lines": {
			"linewidth":  2.5,
			"markersize": 3,
		},
		"font": {
			"family": "serif",
			"size":   10,
		},
		"axes": {
			"linewidth":  1,
			"titlesize":  10,
			"labelsize":  10,
			"xmargin":    0,
			"grid":       true,
			"prop_cycle": colour.Primary.Hexes(),
		},
		"grid": {
			"linewidth": 0.6,
		},
		"legend": {
			"framealpha":     1,
			"facecolor":      "FFFFFF",
			"edgecolor":      "000000",
			"fancybox":       false,
			"title_fontsize": 10,
			"fontsize":       "small",
		},
	}
}

// Apply sets every parameter in cfg. The whole config is validated first;
// on error nothing is changed.
func Apply(cfg Config) error {
	groups := make([]string, 0, len(cfg))
	for g := range cfg {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	updates := make(map[string]any)
	for _, g := range groups {
		for name, v := range cfg[g] {
			key := g + "." + name
			p, ok := registry[key]
			if !ok {
				return fmt.Errorf("unknown style parameter %q", key)
			}
			nv, err := normalize(key, p.kind, v)
			if err != nil {
				return err
			}
			updates[key] = nv
		}
	}

	mu.Lock()
	defer mu.Unlock()
	for k, v := range updates {
		current[k] = v
	}
	return nil
}

// Reset restores the library defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = defaults()
}

// Init applies the house style until the next Reset.
func Init() {
	// The house style is a fixed, valid config.
	if err := Apply(House()); err != nil {
		panic(err)
	}
}

// With applies cfg (the house style when cfg is nil), runs fn and reverts
// the parameters however fn exits, including by panic. Inside another With
// the enclosing scope's parameters are restored; the outermost scope
// restores the library defaults.
func With(cfg Config, fn func() error) error {
	if cfg == nil {
		cfg = House()
	}

	mu.Lock()
	saved := snapshotLocked()
	depth++
	mu.Unlock()

	defer func() {
		mu.Lock()
		defer mu.Unlock()
		depth--
		if depth == 0 {
			current = defaults()
		} else {
			current = saved
		}
	}()

	if err := Apply(cfg); err != nil {
		return err
	}
	return fn()
}

// Wrap returns fn decorated so that every call runs inside With(cfg, ...).
func Wrap(cfg Config, fn func() error) func() error {
	return func() error {
		return With(cfg, fn)
	}
}

// Parse reads a Config from YAML:
//
//	lines:
//	  linewidth: 2
//	axes:
//	  prop_cycle: ["#E64626", "#0148A4"]
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse style config: %w", err)
	}
	if cfg == nil {
		cfg = Config{}
	}
	return cfg, nil
}

// Load reads a YAML Config from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style config: %w", err)
	}
	return Parse(data)
}
