// Package console provides raw-mode terminal handling for the step
// debugger: waiting for a single keypress between machine cycles without
// requiring the user to also press Enter.
package console

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNoTTY is returned when standard input is not a terminal, so step
// mode has nothing to wait on.
var ErrNoTTY error = errors.New("console: not a TTY")

// Console puts the controlling terminal into raw mode for the duration
// of a step-mode run, so a single keypress can be read without line
// buffering or echo.
type Console struct {
	in    *os.File
	fd    int
	state *term.State
}

// New puts in into raw mode and returns a Console that can wait for
// single keypresses on it. Callers must call Restore to return the
// terminal to its original state.
func New(in *os.File) (*Console, error) {
	fd := int(in.Fd())

	if !term.IsTerminal(fd) {
		return nil, ErrNoTTY
	}

	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoTTY, err)
	}

	cons := &Console{in: in, fd: fd, state: saved}

	if err := cons.setTerminalParams(1, 0); err != nil {
		_ = cons.Restore()
		return nil, err
	}

	return cons, nil
}

// setTerminalParams sets VMIN/VTIME directly via ioctl, so WaitKey reads
// return as soon as one byte is available instead of waiting on the
// line discipline's default timing.
func (c *Console) setTerminalParams(vmin, vtime byte) error {
	_ = syscall.SetNonblock(c.fd, true)

	termIO, err := unix.IoctlGetTermios(c.fd, getTermiosIoctl)
	if err != nil {
		return err
	}

	termIO.Cc[unix.VMIN] = vmin
	termIO.Cc[unix.VTIME] = vtime

	if err := unix.IoctlSetTermios(c.fd, setTermiosIoctl, termIO); err != nil {
		return err
	}

	return syscall.SetNonblock(c.fd, false)
}

// WaitKey blocks until a single byte is available on the console and
// returns it.
func (c *Console) WaitKey() (byte, error) {
	var buf [1]byte

	if _, err := c.in.Read(buf[:]); err != nil {
		return 0, err
	}

	return buf[0], nil
}

// Restore returns the terminal to the state it was in before New was
// called.
func (c *Console) Restore() error {
	return term.Restore(c.fd, c.state)
}
