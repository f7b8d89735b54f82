package serial_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"cryptodemo/internal/serial"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("tx fifo full") }

func TestReadSelection_SkipsLineEndings(t *testing.T) {
	c := serial.New(strings.NewReader("\r\nc\n\rtz"), io.Discard, nil)
	var got []byte
	for {
		b, err := c.ReadSelection()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSelection: %v", err)
		}
		got = append(got, b)
	}
	if string(got) != "ctz" {
		t.Fatalf("got %q, want %q", got, "ctz")
	}
}

func TestReadSelection_ControlKeysEndInput(t *testing.T) {
	for _, in := range []string{"\x03", "\x04"} {
		c := serial.New(strings.NewReader(in+"c"), io.Discard, nil)
		if _, err := c.ReadSelection(); err != io.EOF {
			t.Fatalf("%q: want io.EOF, got %v", in, err)
		}
	}
}

func TestReadSelection_ErrorCallback(t *testing.T) {
	var seen []error
	boom := errors.New("framing error")
	c := serial.New(iotest.ErrReader(boom), io.Discard, func(err error) { seen = append(seen, err) })
	if _, err := c.ReadSelection(); !errors.Is(err, boom) {
		t.Fatalf("want %v, got %v", boom, err)
	}
	if len(seen) != 1 {
		t.Fatalf("callback called %d times", len(seen))
	}

	seen = nil
	c = serial.New(strings.NewReader(""), io.Discard, func(err error) { seen = append(seen, err) })
	if _, err := c.ReadSelection(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
	if len(seen) != 0 {
		t.Fatal("callback called for end of input")
	}
}

func TestWrite_FireAndForget(t *testing.T) {
	var seen int
	c := serial.New(strings.NewReader(""), failingWriter{}, func(error) { seen++ })
	n, err := c.Write([]byte("hello\n"))
	if err != nil || n != 6 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if seen != 1 {
		t.Fatalf("callback called %d times", seen)
	}
}

func TestWrite_CRLF(t *testing.T) {
	var out bytes.Buffer
	c := serial.New(strings.NewReader(""), &out, nil, serial.WithCRLF())
	n, _ := c.Write([]byte("a\nb\n"))
	if n != 4 {
		t.Fatalf("Write reported %d bytes", n)
	}
	c.Write([]byte("c\r\n"))
	if out.String() != "a\r\nb\r\nc\r\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestOpen_DeviceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttyFAKE")
	if err := os.WriteFile(path, []byte("b\n"), 0o600); err != nil {
		t.Fatalf("write device: %v", err)
	}
	c, err := serial.Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.Raw() {
		t.Fatal("regular file reported as a raw terminal")
	}
	b, err := c.ReadSelection()
	if err != nil || b != 'b' {
		t.Fatalf("ReadSelection = %q, %v", b, err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if _, err := serial.Open(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Fatal("Open on a missing device succeeded")
	}
}
