package gifmanip

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

// Terminal moves the cursor around while frames are redrawn in place.
type Terminal interface {
	ResetCursor(rows int)
	ShowCursor(show bool)
}

type Xterm struct {
	Writer io.Writer
}

// Move the cursor to the beginning of the line and up rows
func (term *Xterm) ResetCursor(rows int) {
	term.Writer.Write([]byte(fmt.Sprintf("\033[999D\033[%dA", rows)))
}

func (term *Xterm) ShowCursor(show bool) {
	if show {
		term.Writer.Write([]byte("\033[?12l\033[?25h"))
	} else {
		term.Writer.Write([]byte("\033[?25l"))
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return terminal.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the columns and lines of the terminal on stderr.
// Stdin and stdout are often redirected, stderr rarely is.
func TerminalSize() (cols, lines int, err error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1, err
	}
	return int(ws.Col), int(ws.Row), nil
}
