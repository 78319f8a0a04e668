package gifmanip

import (
	"image"

	"github.com/andybons/gogif"
)

// MaxColors is the largest palette a gif frame can carry.
const MaxColors = 256

// Quantize converts img to a paletted image with an adaptive palette of at
// most n colors chosen by median cut. Paletted images that already fit are
// returned as is.
func Quantize(img image.Image, n int) *image.Paletted {
	if n <= 0 || n > MaxColors {
		n = MaxColors
	}
	if pm, ok := img.(*image.Paletted); ok && len(pm.Palette) <= n {
		return pm
	}
	b := img.Bounds()
	pm := image.NewPaletted(b, nil)
	q := &gogif.MedianCutQuantizer{NumColor: n}
	q.Quantize(pm, b, img, b.Min)
	return pm
}
