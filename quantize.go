package pixelanimator

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// reduceColors returns a copy of m using no more than n colors. Images that
// already have a small enough palette are returned unchanged.
func reduceColors(m image.Image, n int) image.Image {
	if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= n {
		return m
	}

	b := m.Bounds()
	if b.Empty() {
		return m
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}
