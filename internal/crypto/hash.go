package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
)

type hashHandle struct {
	hash.Hash
	lib   *Library
	freed bool
}

func newHashFunc(h types.HashType) (func() hash.Hash, error) {
	switch h {
	case types.HashSHA224:
		return sha256.New224, nil
	case types.HashSHA256:
		return sha256.New, nil
	case types.HashSHA384:
		return sha512.New384, nil
	case types.HashSHA512:
		return sha512.New, nil
	}
	return nil, types.NewError(types.ErrHashType, "hash type %v not available", h)
}

// NewHash opens a hash context of type h.
func (l *Library) NewHash(h types.HashType) (domain.Hash, error) {
	if err := l.ready(); err != nil {
		return nil, err
	}
	fn, err := newHashFunc(h)
	if err != nil {
		return nil, err
	}
	l.acquire()
	return &hashHandle{Hash: fn(), lib: l}, nil
}

func (h *hashHandle) Free() {
	if h.freed {
		return
	}
	h.freed = true
	h.Reset()
	h.lib.release()
}
