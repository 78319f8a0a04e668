package gifmanip

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	"golang.org/x/text/cases"
)

var (
	ErrDirection = errors.New("direction must be c (clockwise) or cc (counterclockwise)")
	ErrStep      = errors.New("rotation step must be positive")
)

// Direction is the way a spin turns.
type Direction int

const (
	Clockwise Direction = iota
	Counterclockwise
)

// ParseDirection accepts "c", "cw" or "clockwise" and "cc", "ccw" or
// "counterclockwise", ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch cases.Fold().String(s) {
	case "c", "cw", "clockwise":
		return Clockwise, nil
	case "cc", "ccw", "counterclockwise":
		return Counterclockwise, nil
	}
	return Clockwise, ErrDirection
}

func (d Direction) String() string {
	if d == Counterclockwise {
		return "counterclockwise"
	}
	return "clockwise"
}

// Sequencer produces the ordered frames of an animation from a still image.
// Every frame has the same size as the first.
type Sequencer interface {
	Frames(src image.Image) ([]image.Image, error)
}

// Spin turns the image a quarter at a time: the original, then 90, 180 and
// 270 degrees in Direction.
type Spin struct {
	Direction  Direction
	Background color.Color // Fills the corners of non-square canvases. Defaults to black.
}

func (s Spin) Frames(src image.Image) ([]image.Image, error) {
	frames := make([]image.Image, 4)
	for i := range frames {
		frames[i] = quarterTurn(src, i, s.Direction, s.Background)
	}
	return frames, nil
}

// quarterTurn rotates img by turns * 90 degrees and centers the result on
// a canvas the size of img.
func quarterTurn(img image.Image, turns int, dir Direction, bg color.Color) image.Image {
	// imaging rotates counter-clockwise.
	ccw := turns % 4
	if dir == Clockwise {
		ccw = (4 - ccw) % 4
	}
	var rotated *image.NRGBA
	switch ccw {
	case 0:
		return imaging.Clone(img)
	case 1:
		rotated = imaging.Rotate90(img)
	case 2:
		return imaging.Rotate180(img)
	case 3:
		rotated = imaging.Rotate270(img)
	}
	b := img.Bounds()
	if rotated.Bounds().Dx() == b.Dx() && rotated.Bounds().Dy() == b.Dy() {
		return rotated
	}
	return imaging.PasteCenter(imaging.New(b.Dx(), b.Dy(), background(bg)), rotated)
}

// Flip shows the image flipped top to bottom, then mirrored left to right.
type Flip struct{}

func (Flip) Frames(src image.Image) ([]image.Image, error) {
	return []image.Image{
		imaging.FlipV(src),
		imaging.FlipH(src),
	}, nil
}

// FineSpin rotates the image by Start, Start+Step, ... degrees up to a full
// turn. Every frame keeps the source canvas; corners uncovered by the
// rotation are filled with Background.
type FineSpin struct {
	Direction  Direction
	Start      float64
	Step       float64
	Background color.Color
}

// NewFineSpin returns the eighteen frame spin: 1, 21, ..., 341 degrees.
func NewFineSpin(dir Direction) FineSpin {
	return FineSpin{
		Direction: dir,
		Start:     1,
		Step:      20,
	}
}

// Angles lists the rotation of each frame in degrees.
func (s FineSpin) Angles() ([]float64, error) {
	if s.Step <= 0 {
		return nil, ErrStep
	}
	var angles []float64
	for a := s.Start; a <= 360; a += s.Step {
		angles = append(angles, a)
	}
	return angles, nil
}

func (s FineSpin) Frames(src image.Image) ([]image.Image, error) {
	angles, err := s.Angles()
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	frames := make([]image.Image, 0, len(angles))
	for _, a := range angles {
		// gift rotates counter-clockwise.
		if s.Direction == Clockwise {
			a = -a
		}
		g := gift.New(
			gift.Rotate(float32(a), background(s.Background), gift.NearestNeighborInterpolation),
			gift.CropToSize(b.Dx(), b.Dy(), gift.CenterAnchor),
		)
		dst := image.NewNRGBA(g.Bounds(b))
		g.Draw(dst, src)
		// The crop only shrinks, so a short side of the rotated box still
		// needs padding back out to the source canvas.
		if dst.Bounds().Dx() != b.Dx() || dst.Bounds().Dy() != b.Dy() {
			dst = imaging.PasteCenter(imaging.New(b.Dx(), b.Dy(), background(s.Background)), dst)
		}
		frames = append(frames, dst)
	}
	return frames, nil
}

// Strobe is a quarter-turn Spin with a solid Color frame after every
// rotated frame: src, r1, C, r2, C, r3, C.
type Strobe struct {
	Direction  Direction
	Color      color.Color
	Background color.Color
}

func (s Strobe) Frames(src image.Image) ([]image.Image, error) {
	if s.Color == nil {
		return nil, ErrColor
	}
	spun, err := Spin{Direction: s.Direction, Background: s.Background}.Frames(src)
	if err != nil {
		return nil, err
	}
	b := spun[0].Bounds()
	flash := Solid(b.Dx(), b.Dy(), s.Color)

	frames := []image.Image{spun[0]}
	for _, f := range spun[1:] {
		frames = append(frames, f, flash)
	}
	return frames, nil
}

func background(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
