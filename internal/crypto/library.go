package crypto

import (
	"crypto/rand"
	"io"
	"sync"
	"sync/atomic"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
)

// Library is the process-wide cryptography context. It must be initialised
// before use and cleaned up once at shutdown; every handle it hands out is
// counted until freed.
type Library struct {
	mu      sync.Mutex
	refs    int
	entropy io.Reader

	open atomic.Int64
}

// Option configures a Library.
type Option func(*Library)

// WithEntropy replaces the seed source of every RNG context. It defaults to
// crypto/rand.Reader.
func WithEntropy(r io.Reader) Option {
	return func(l *Library) { l.entropy = r }
}

// New returns an uninitialised library.
func New(opts ...Option) *Library {
	l := &Library{entropy: rand.Reader}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Init takes a reference on the library. It may be called more than once;
// each call must be paired with Cleanup.
func (l *Library) Init() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.entropy == nil {
		return types.NewError(types.ErrRNGFailure, "no entropy source")
	}
	l.refs++
	return nil
}

// Cleanup releases a reference taken by Init. Once the last reference is
// gone every operation fails with BAD_STATE_E.
func (l *Library) Cleanup() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.refs == 0 {
		return types.NewError(types.ErrBadState, "cleanup without init")
	}
	l.refs--
	return nil
}

// OpenHandles returns the number of handles not yet freed.
func (l *Library) OpenHandles() int64 { return l.open.Load() }

// ErrorString returns the description of code.
func (l *Library) ErrorString(code types.ErrorCode) string { return types.ErrorString(code) }

func (l *Library) ready() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.refs == 0 {
		return types.NewError(types.ErrBadState, "library not initialised")
	}
	return nil
}

func (l *Library) acquire() { l.open.Add(1) }

func (l *Library) release() { l.open.Add(-1) }

// Compile-time assertion that Library implements domain.Library.
var _ domain.Library = (*Library)(nil)
