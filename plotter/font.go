package plotter

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	family string
	size   float64
}

var (
	fontMu sync.Mutex
	fonts  = map[string]*truetype.Font{}
	faces  = map[faceKey]font.Face{}
)

// fontData maps a font family to an embedded Go font. Families without an
// embedded match ("serif", "sans-serif", ...) use Go Regular.
func fontData(family string) (string, []byte) {
	switch family {
	case "monospace", "mono":
		return "mono", gomono.TTF
	}
	return "regular", goregular.TTF
}

// face returns a cached face of family at size pixels.
func face(family string, size float64) font.Face {
	name, ttf := fontData(family)
	key := faceKey{name, size}

	fontMu.Lock()
	defer fontMu.Unlock()
	if f, ok := faces[key]; ok {
		return f
	}
	tf, ok := fonts[name]
	if !ok {
		var err error
		tf, err = truetype.Parse(ttf)
		if err != nil {
			// The embedded fonts always parse.
			panic(err)
		}
		fonts[name] = tf
	}
	f := truetype.NewFace(tf, &truetype.Options{Size: size, Hinting: font.HintingFull})
	faces[key] = f
	return f
}
