package crypto

import (
	"encoding/binary"
	"io"
	"math"

	"golang.org/x/crypto/hkdf"

	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/util/memzero"
)

// KDF derives len(out) bytes from secret. info is the X9.63 SharedInfo or
// the HKDF info string and may be empty.
func (l *Library) KDF(kdf types.KDFType, h types.HashType, secret, info, out []byte) error {
	if err := l.ready(); err != nil {
		return err
	}
	if len(secret) == 0 || len(out) == 0 {
		return types.NewError(types.ErrBadFuncArg, "kdf needs a secret and an output buffer")
	}
	switch kdf {
	case types.KDFX963:
		return l.x963(h, secret, info, out)
	case types.KDFHKDF:
		fn, err := newHashFunc(h)
		if err != nil {
			return err
		}
		if _, err := io.ReadFull(hkdf.New(fn, secret, nil, info), out); err != nil {
			return types.NewError(types.ErrBuffer, "hkdf: %v", err)
		}
		return nil
	}
	return types.NewError(types.ErrNotCompiledIn, "kdf %q not available", kdf)
}

// x963 is the ANSI X9.63 KDF (SEC 1 §3.6.1):
// K_i = Hash(Z || counter_i || SharedInfo), counter starting at 1.
func (l *Library) x963(h types.HashType, secret, info, out []byte) error {
	hh, err := l.NewHash(h)
	if err != nil {
		return err
	}
	defer hh.Free()

	size := hh.Size()
	if uint64(len(out)) > uint64(size)*uint64(math.MaxUint32-1) {
		return types.NewError(types.ErrBadFuncArg, "kdf output of %d bytes is too long", len(out))
	}

	var counter [4]byte
	block := make([]byte, 0, size)
	defer func() { memzero.Zero(block[:cap(block)]) }()
	for i, off := uint32(1), 0; off < len(out); i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		hh.Reset()
		hh.Write(secret)
		hh.Write(counter[:])
		hh.Write(info)
		block = hh.Sum(block[:0])
		off += copy(out[off:], block)
	}
	return nil
}
