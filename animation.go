package gifmanip

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/setanarut/apng"
)

var (
	ErrNoFrames = errors.New("sequence produced no frames")
	ErrSpeed    = errors.New("frame delay must be positive")
)

// Animation is an ordered set of equally sized frames shown for Delay each.
// A LoopCount of 0 loops forever.
type Animation struct {
	Frames    []image.Image
	Delay     time.Duration
	LoopCount int
}

// Synthesize builds the looping animation of img under seq.
func Synthesize(img image.Image, seq Sequencer, delay time.Duration) (*Animation, error) {
	if delay <= 0 {
		return nil, ErrSpeed
	}
	frames, err := seq.Frames(img)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	size := frames[0].Bounds().Size()
	for i, f := range frames[1:] {
		if f.Bounds().Size() != size {
			return nil, fmt.Errorf("frame %d is %v, want %v", i+1, f.Bounds().Size(), size)
		}
	}
	return &Animation{
		Frames: frames,
		Delay:  delay,
	}, nil
}

// Speed converts a per-frame duration in milliseconds, as given on the
// command line, to a Duration.
func Speed(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// centiseconds is the delay in the unit gif and apng store, never below 1.
func (a *Animation) centiseconds() int {
	cs := int(a.Delay / (10 * time.Millisecond))
	if cs < 1 {
		return 1
	}
	return cs
}

// GIF quantizes every frame to its own adaptive palette.
func (a *Animation) GIF() *gif.GIF {
	g := &gif.GIF{
		Image:     make([]*image.Paletted, len(a.Frames)),
		Delay:     make([]int, len(a.Frames)),
		LoopCount: a.LoopCount,
	}
	for i, f := range a.Frames {
		g.Image[i] = Quantize(f, MaxColors)
		g.Delay[i] = a.centiseconds()
	}
	return g
}

func (a *Animation) EncodeGIF(w io.Writer) error {
	if len(a.Frames) == 0 {
		return ErrNoFrames
	}
	return gif.EncodeAll(w, a.GIF())
}

// EncodeAPNG writes the frames in full color as an animated png.
func (a *Animation) EncodeAPNG(w io.Writer) error {
	if len(a.Frames) == 0 {
		return ErrNoFrames
	}
	delays := make([]uint16, len(a.Frames))
	for i := range delays {
		delays[i] = uint16(a.centiseconds())
	}
	return apng.EncodeAll(w, &apng.APNG{
		Images:    a.Frames,
		Delays:    delays,
		LoopCount: uint32(a.LoopCount),
	})
}

// Save writes the animation to path, as an animated png when the extension
// is .png or .apng and as a gif otherwise.
func (a *Animation) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".apng":
		err = a.EncodeAPNG(f)
	default:
		err = a.EncodeGIF(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// OutputPath appends ".gif" to name unless it already ends in a supported
// animation extension.
func OutputPath(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gif", ".png", ".apng":
		return name
	}
	return name + ".gif"
}
