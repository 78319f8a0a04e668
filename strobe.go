package gifmanip

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
)

var ErrColor = errors.New("weird or unsupported color")

// StrobeColors are the named flash colors understood out of the box.
var StrobeColors = map[string]color.Color{
	"red":    color.NRGBA{R: 255, A: 255},
	"yellow": color.NRGBA{R: 255, G: 255, A: 255},
	"orange": color.NRGBA{R: 255, G: 140, A: 255},
}

// ParseColor resolves a color by name, first in extra and then in
// StrobeColors, or as a "#rrggbb" hex triplet. Names ignore case; when
// several extra names fold together the first in sorted order wins.
func ParseColor(s string, extra map[string]string) (color.Color, error) {
	name := colorName(s)
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if colorName(k) == name {
			return parseHex(extra[k])
		}
	}
	if c, ok := StrobeColors[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}
	return nil, fmt.Errorf("%q: %w", s, ErrColor)
}

func colorName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func parseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, ErrColor)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Solid paints a width x height frame entirely in c.
func Solid(width, height int, c color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetFillColor(c)
	draw2dkit.Rectangle(gc, 0, 0, float64(width), float64(height))
	gc.Fill()
	return dst
}
