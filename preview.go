package gifmanip

import (
	"bufio"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/nfnt/resize"
)

// Braille represents an 8 dot braille pattern in x,y coordinate space:
//
//	+----------+
//	|(0,0)(1,0)|
//	|(0,1)(1,1)|
//	|(0,2)(1,2)|
//	|(0,3)(1,3)|
//	+----------+
type Braille [2][4]int

// Rune maps each dot to its braille number and returns the matching
// unicode symbol.
//
//	+------+
//	|(1)(4)|
//	|(2)(5)|
//	|(3)(6)|
//	|(7)(8)|
//	+------+
//
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering
func (b Braille) Rune() rune {
	lowEndian := [8]int{b[0][0], b[0][1], b[0][2], b[1][0], b[1][1], b[1][2], b[0][3], b[1][3]}
	var v int
	for i, x := range lowEndian {
		v += x << uint(i)
	}
	return rune(v) + '\u2800'
}

func (b Braille) String() string {
	return string(b.Rune())
}

var monochrome = color.Palette{color.Black, color.White}

// EncodeBraille dithers img to black and white with Floyd-Steinberg and
// writes every 2x4 pixel block as one braille symbol, line by line. It
// returns the number of lines written.
func EncodeBraille(w io.Writer, img image.Image) (int, error) {
	bounds := img.Bounds()
	pm := image.NewPaletted(bounds, monochrome)
	draw.FloydSteinberg.Draw(pm, bounds, img, bounds.Min)

	bw := bufio.NewWriter(w)
	var lines int
	for py := bounds.Min.Y; py < bounds.Max.Y; py += 4 {
		for px := bounds.Min.X; px < bounds.Max.X; px += 2 {
			var b Braille
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					if px+x >= bounds.Max.X || py+y >= bounds.Max.Y {
						continue
					}
					// Light pixels raise dots, so the picture reads on a dark terminal.
					if pm.ColorIndexAt(px+x, py+y) == 1 {
						b[x][y] = 1
					}
				}
			}
			if _, err := bw.WriteString(b.String()); err != nil {
				return lines, err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return lines, err
		}
		lines++
	}
	return lines, bw.Flush()
}

// ErrInterrupted is returned by Play when playback was stopped early.
var ErrInterrupted = errors.New("playback interrupted")

// PlayerOpt configures a Player.
type PlayerOpt func(p *Player)

// WithSize fixes the number of columns and lines frames are scaled to fit.
// Without it the size of the terminal is used.
func WithSize(cols, lines int) PlayerOpt {
	return func(p *Player) {
		p.cols, p.lines = cols, lines
	}
}

// WithTerminal replaces the default Xterm cursor control.
func WithTerminal(t Terminal) PlayerOpt {
	return func(p *Player) {
		p.t = t
	}
}

// Player draws an Animation in the terminal as braille, redrawing every
// frame in place. Only the goroutine running Play writes to the terminal.
type Player struct {
	w     io.Writer
	t     Terminal
	cols  int
	lines int

	stop     chan struct{}
	stopOnce sync.Once
}

func NewPlayer(w io.Writer, opts ...PlayerOpt) *Player {
	p := Player{
		w:    w,
		stop: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(&p)
	}
	if p.t == nil {
		p.t = &Xterm{Writer: w}
	}
	if p.cols <= 0 || p.lines <= 0 {
		var err error
		p.cols, p.lines, err = TerminalSize()
		if err != nil {
			p.cols, p.lines = 80, 25 // Small, but a pretty standard default
		}
	}
	return &p
}

// Stop ends a running Play after the frame on screen. It is safe to call
// from any goroutine, more than once.
func (p *Player) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

// Play shows the animation loops times, honoring its frame delay. It
// returns ErrInterrupted if Stop is called or SIGINT or SIGTERM arrives
// first; the cursor is restored either way.
func (p *Player) Play(a *Animation, loops int) error {
	if len(a.Frames) == 0 {
		return ErrNoFrames
	}
	p.t.ShowCursor(false)
	defer p.t.ShowCursor(true)
	stop := p.handleInterrupt()
	defer stop()

	// Each braille symbol covers 2x4 pixels; keep one line for the prompt.
	width, height := uint(p.cols*2), uint((p.lines-1)*4)
	frames := make([]image.Image, len(a.Frames))
	for i, f := range a.Frames {
		frames[i] = resize.Thumbnail(width, height, f, resize.NearestNeighbor)
	}

	for c := 0; c < loops; c++ {
		for i, f := range frames {
			delay := time.After(a.Delay)
			rows, err := EncodeBraille(p.w, f)
			if err != nil {
				return err
			}
			select {
			case <-delay:
			case <-p.stop:
				return ErrInterrupted
			}
			if c < loops-1 || i < len(frames)-1 {
				p.t.ResetCursor(rows)
			}
		}
	}
	return nil
}

// handleInterrupt stops playback on SIGINT or SIGTERM so that Play can
// restore the cursor itself. The returned func stops listening.
func (p *Player) handleInterrupt() func() {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-signals:
			p.Stop()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(signals)
		close(done)
	}
}
