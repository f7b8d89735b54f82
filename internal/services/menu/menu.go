package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/inconshreveable/log15"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
)

// State is the position of the loop.
type State int

const (
	AwaitingSelection State = iota
	RunningAlgorithmDemo
	RunningConformanceTests
	RunningBenchmarks
)

func (s State) String() string {
	switch s {
	case AwaitingSelection:
		return "awaiting-selection"
	case RunningAlgorithmDemo:
		return "running-algorithm-demo"
	case RunningConformanceTests:
		return "running-conformance-tests"
	case RunningBenchmarks:
		return "running-benchmarks"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Entry is one menu option. A nil Suite marks the option as disabled.
type Entry struct {
	Key    byte
	Label  string // menu line
	Title  string // prefix of the return code line
	Banner string // printed before the suite starts
	Suite  domain.Suite
	State  State
}

// DefaultEntries builds the c, t and b options. Pass nil for a suite that
// is disabled.
func DefaultEntries(demo, conformance, bench domain.Suite) []Entry {
	return []Entry{
		{'c', "Algorithm Example", "Algorithm Example", "Running Algorithm Example...", demo, RunningAlgorithmDemo},
		{'t', "Conformance Test", "Conformance Test", "Running Conformance Tests...", conformance, RunningConformanceTests},
		{'b', "Benchmark", "Benchmark Test", "Running Benchmarks...", bench, RunningBenchmarks},
	}
}

var (
	okText   = color.New(color.FgGreen).SprintFunc()
	failText = color.New(color.FgRed).SprintFunc()
)

// Loop is the interactive menu.
type Loop struct {
	term        domain.Terminal
	entries     []Entry
	errorString func(types.ErrorCode) string
	log         log15.Logger
	state       State
}

// New constructs a Loop. errorString maps return codes to their
// descriptions.
func New(term domain.Terminal, entries []Entry, errorString func(types.ErrorCode) string, log log15.Logger) *Loop {
	return &Loop{term: term, entries: entries, errorString: errorString, log: log}
}

// State reports what the loop is doing.
func (l *Loop) State() State { return l.state }

// Run shows the menu until the input ends or ctx is cancelled, both of
// which return nil. Any other read error is returned.
func (l *Loop) Run(ctx context.Context) error {
	for {
		err := l.Step(ctx)
		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF), ctx.Err() != nil:
			l.log.Info("Menu closed", "reason", err)
			return nil
		default:
			l.log.Error("Console read failed", "err", err)
			return err
		}
	}
}

// Step prints the banner, reads one selection and handles it.
func (l *Loop) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.state = AwaitingSelection
	l.printBanner()

	sel, err := l.term.ReadSelection()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e, ok := l.lookup(sel)
	if !ok {
		l.log.Debug("Selection out of range", "key", string(rune(sel)))
		fmt.Fprintf(l.term, "\nSelection out of range\n")
		return nil
	}
	l.dispatch(ctx, e)
	return nil
}

func (l *Loop) dispatch(ctx context.Context, e Entry) {
	if e.Suite == nil {
		fmt.Fprintf(l.term, "%s: NOT_COMPILED_IN. Enable it in the configuration\n", e.Title)
		return
	}
	l.state = e.State
	defer func() { l.state = AwaitingSelection }()

	fmt.Fprintln(l.term, e.Banner)
	l.log.Info("Suite started", "suite", e.Title, "state", e.State)
	code := types.CodeOf(e.Suite.Run(ctx))
	l.log.Info("Suite finished", "suite", e.Title, "code", code)

	text := ""
	if code != types.CodeOK {
		text = failText(l.errorString(code))
	}
	fmt.Fprintf(l.term, "%s: Return code %s (%s)\n", e.Title, text, codeText(code))
}

func codeText(code types.ErrorCode) string {
	if code == types.CodeOK {
		return okText(code.Int())
	}
	return failText(code.Int())
}

func (l *Loop) printBanner() {
	fmt.Fprintf(l.term, "\n\t\t\t\tMENU\n\n")
	for _, e := range l.entries {
		fmt.Fprintf(l.term, "\t%c. %s\n", e.Key, e.Label)
	}
	fmt.Fprintf(l.term, "Please select one of the above options:\n")
}

func (l *Loop) lookup(sel byte) (Entry, bool) {
	for _, e := range l.entries {
		if e.Key == sel {
			return e, true
		}
	}
	return Entry{}, false
}
