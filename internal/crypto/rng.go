package crypto

import (
	"io"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
)

type rng struct {
	lib   *Library
	src   io.Reader
	freed bool
}

// NewRNG opens a random generator context over the library's entropy source.
func (l *Library) NewRNG() (domain.RNG, error) {
	if err := l.ready(); err != nil {
		return nil, err
	}
	l.acquire()
	return &rng{lib: l, src: l.entropy}, nil
}

// GenerateBlock fills b with random bytes.
func (r *rng) GenerateBlock(b []byte) error {
	if r.freed {
		return types.NewError(types.ErrBadState, "rng used after free")
	}
	if len(b) == 0 {
		return nil
	}
	if _, err := io.ReadFull(r.src, b); err != nil {
		return types.NewError(types.ErrRNGFailure, "generate block of %d bytes: %v", len(b), err)
	}
	return nil
}

// Read lets the context serve as the randomness source of key generation
// and signing.
func (r *rng) Read(p []byte) (int, error) {
	if err := r.GenerateBlock(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (r *rng) Free() {
	if r.freed {
		return
	}
	r.freed = true
	r.lib.release()
}
