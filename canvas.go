package gifmanip

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Canvas is the target frame size of an animation.
//
// Images that already fit within the canvas on either side are left alone.
// Larger images are scaled and center-cropped to exactly Width x Height, or,
// when Percent is set, scaled down to that fraction of their original size
// with the aspect ratio preserved.
type Canvas struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Percent float64 `yaml:"percent,omitempty"`
}

// Fit returns img resized to the canvas.
func (c Canvas) Fit(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= c.Width || b.Dy() <= c.Height {
		return img
	}
	if c.Percent > 0 {
		w := uint(c.Percent * float64(b.Dx()))
		h := uint(c.Percent * float64(b.Dy()))
		return resize.Resize(w, h, img, resize.Lanczos3)
	}
	return imaging.Fill(img, c.Width, c.Height, imaging.Center, imaging.Lanczos)
}
