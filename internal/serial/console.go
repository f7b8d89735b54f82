package serial

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"cryptodemo/internal/util/crlf"
)

const (
	keyInterrupt = 0x03 // Ctrl-C
	keyEOT       = 0x04 // Ctrl-D
)

// Console is a single-keypress terminal.
type Console struct {
	in      *bufio.Reader
	out     *crlf.Writer
	onError func(error)

	mu      sync.Mutex
	raw     bool
	closed  bool
	closers []func() error
}

// Option configures a Console.
type Option func(*Console)

// WithCRLF expands every bare "\n" written to the console into "\r\n", as
// raw terminals and serial lines expect.
func WithCRLF() Option {
	return func(c *Console) { c.out.SetEnabled(true) }
}

// New wraps an arbitrary reader and writer. onError receives every read or
// write failure other than end of input and may be nil.
func New(r io.Reader, w io.Writer, onError func(error), opts ...Option) *Console {
	if onError == nil {
		onError = func(error) {}
	}
	c := &Console{in: bufio.NewReader(r), out: crlf.NewWriter(w), onError: onError}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open returns a console on device, or on stdin/stdout when device is
// empty. A terminal is put into raw mode until Close.
func Open(device string, onError func(error)) (*Console, error) {
	if device == "" {
		c := New(os.Stdin, os.Stdout, onError)
		if err := c.makeRaw(os.Stdin); err != nil {
			return nil, err
		}
		return c, nil
	}

	f, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open console %s: %w", device, err)
	}
	c := New(f, f, onError)
	c.closers = append(c.closers, f.Close)
	if err := c.makeRaw(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return c, nil
}

func (c *Console) makeRaw(f *os.File) error {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode on %s: %w", f.Name(), err)
	}
	c.raw = true
	c.out.SetEnabled(true)
	c.closers = append([]func() error{func() error { return term.Restore(fd, state) }}, c.closers...)
	return nil
}

// Raw reports whether Open switched a terminal into raw mode. Other output
// sharing that terminal needs CRLF line endings until Close.
func (c *Console) Raw() bool { return c.raw }

// ReadSelection blocks until a byte other than CR or LF arrives. Ctrl-C and
// Ctrl-D end the input.
func (c *Console) ReadSelection() (byte, error) {
	for {
		b, err := c.in.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.onError(err)
			}
			return 0, err
		}
		switch b {
		case '\r', '\n':
			continue
		case keyInterrupt, keyEOT:
			return 0, io.EOF
		}
		return b, nil
	}
}

// Write sends p to the console. It always reports success; failures go to
// the error callback.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.out.Write(p); err != nil {
		c.onError(err)
	}
	return len(p), nil
}

// Close restores the terminal mode and closes any device file.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	var errs []error
	for _, fn := range c.closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
