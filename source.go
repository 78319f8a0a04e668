package gifmanip

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Source is a decoded still image along with the name of the format it was
// decoded from ("jpeg", "png", "gif", "bmp", "tiff" or "webp").
type Source struct {
	Image  image.Image
	Format string
}

// Load decodes a still image from r. Only the first frame of an animated
// gif is used.
func Load(r io.Reader) (*Source, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &Source{
		Image:  img,
		Format: format,
	}, nil
}

// Open decodes the image file at path.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return src, nil
}

// Small reports whether either side of the image is shorter than min pixels.
// Animating such an image still works but tends to look odd.
func (s *Source) Small(min int) bool {
	b := s.Image.Bounds()
	return b.Dx() < min || b.Dy() < min
}

// Flatten composites the image onto an opaque background so that transparent
// regions don't survive palette quantization as noise. Opaque images are
// returned unchanged.
func (s *Source) Flatten(bg color.Color) image.Image {
	if opaque(s.Image) {
		return s.Image
	}
	if bg == nil {
		bg = color.Black
	}
	b := s.Image.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), bg)
	return imaging.Overlay(canvas, s.Image, image.Pt(0, 0), 1.0)
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
