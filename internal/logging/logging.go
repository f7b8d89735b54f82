package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"

	"cryptodemo/internal/util/crlf"
)

// Options selects the level and destinations of the logger.
type Options struct {
	Level   string    // debug, info, warn, error or crit; empty means info
	File    string    // optional log file path, rotated by size
	Console io.Writer // console stream; nil means stderr
}

// Logger is a log15 logger whose console stream can switch to CRLF line
// endings while it shares a terminal in raw mode.
type Logger struct {
	log15.Logger
	console *crlf.Writer
}

// SetCRLF turns "\r\n" line endings on the console stream on or off.
func (l *Logger) SetCRLF(on bool) { l.console.SetEnabled(on) }

// New returns a logger tagged with module=name whose records go to the
// destinations described by opts.
func New(name string, opts Options) (*Logger, error) {
	lvl, err := log15.LvlFromString(opts.Level)
	if err != nil {
		lvl = log15.LvlInfo
	}

	console, format := consoleStream(opts.Console)
	l := &Logger{Logger: log15.New("module", name), console: crlf.NewWriter(console)}
	handlers := []log15.Handler{log15.StreamHandler(l.console, format)}
	if opts.File != "" {
		w, err := fileWriter(opts.File)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, log15.StreamHandler(w, log15.LogfmtFormat()))
	}
	l.SetHandler(log15.LvlFilterHandler(lvl, log15.MultiHandler(handlers...)))
	return l, nil
}

// Discard returns a logger that drops every record. Tests use it.
func Discard() log15.Logger {
	l := log15.New()
	l.SetHandler(log15.DiscardHandler())
	return l
}

// consoleStream colours stderr when it is a terminal.
func consoleStream(w io.Writer) (io.Writer, log15.Format) {
	if w != nil {
		return w, log15.LogfmtFormat()
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return colorable.NewColorable(os.Stderr), log15.TerminalFormat()
	}
	return os.Stderr, log15.LogfmtFormat()
}

func fileWriter(path string) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("log file %s: %w", path, err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     14,
		Compress:   true,
		LocalTime:  true,
	}, nil
}
