// Package crlf expands bare line feeds for terminals in raw mode, where the
// tty no longer maps "\n" to "\r\n" on output.
package crlf

import (
	"io"
	"sync/atomic"
)

// Writer forwards to an underlying writer, inserting "\r" before every "\n"
// not already preceded by one while it is enabled. A "\r" ending one Write
// pairs with a "\n" starting the next. Callers serialise Write.
type Writer struct {
	w       io.Writer
	enabled atomic.Bool
	lastCR  bool
}

// NewWriter returns a disabled Writer over w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// SetEnabled switches line feed expansion on or off.
func (w *Writer) SetEnabled(on bool) { w.enabled.Store(on) }

// Enabled reports whether line feeds are being expanded.
func (w *Writer) Enabled() bool { return w.enabled.Load() }

// Write writes p and reports len(p) on success.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if !w.enabled.Load() {
		n, err := w.w.Write(p)
		if n > 0 {
			w.lastCR = p[n-1] == '\r'
		}
		return n, err
	}

	out := make([]byte, 0, len(p)+8)
	prevCR := w.lastCR
	for _, b := range p {
		if b == '\n' && !prevCR {
			out = append(out, '\r')
		}
		out = append(out, b)
		prevCR = b == '\r'
	}
	if _, err := w.w.Write(out); err != nil {
		return 0, err
	}
	w.lastCR = prevCR
	return len(p), nil
}
