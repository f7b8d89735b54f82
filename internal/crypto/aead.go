package crypto

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/params"
)

type aeadHandle struct {
	lib   *Library
	aead  cipher.AEAD
	freed bool
}

// NewAEAD keys an authenticated cipher of the given suite.
func (l *Library) NewAEAD(suite types.CipherSuite, key []byte) (domain.AEAD, error) {
	if err := l.ready(); err != nil {
		return nil, err
	}
	if want := params.KeySize(suite); want == 0 {
		return nil, types.NewError(types.ErrNotCompiledIn, "cipher %q not available", suite)
	} else if len(key) != want {
		return nil, types.NewError(types.ErrBadFuncArg, "%s key is %d bytes, want %d", suite, len(key), want)
	}

	var (
		a   cipher.AEAD
		err error
	)
	switch suite {
	case types.CipherAES128GCM:
		var block cipher.Block
		block, err = aes.NewCipher(key)
		if err == nil {
			a, err = cipher.NewGCM(block)
		}
	case types.CipherChaCha20Poly1305:
		a, err = chacha20poly1305.New(key)
	}
	if err != nil {
		return nil, types.NewError(types.ErrBadFuncArg, "%s setkey: %v", suite, err)
	}
	l.acquire()
	return &aeadHandle{lib: l, aead: a}, nil
}

func (a *aeadHandle) NonceSize() int { return a.aead.NonceSize() }

func (a *aeadHandle) TagSize() int { return a.aead.Overhead() }

// Encrypt writes len(plaintext) bytes of ciphertext and a full-width tag.
func (a *aeadHandle) Encrypt(ciphertext, tag, plaintext, nonce, aad []byte) error {
	if err := a.check(ciphertext, tag, plaintext, nonce); err != nil {
		return err
	}
	sealed := a.aead.Seal(nil, nonce, plaintext, aad)
	copy(ciphertext, sealed[:len(plaintext)])
	copy(tag, sealed[len(plaintext):])
	return nil
}

// Decrypt verifies tag before writing any plaintext.
func (a *aeadHandle) Decrypt(plaintext, ciphertext, tag, nonce, aad []byte) error {
	if err := a.check(plaintext, tag, ciphertext, nonce); err != nil {
		return err
	}
	sealed := make([]byte, 0, len(ciphertext)+a.TagSize())
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag[:a.TagSize()]...)
	opened, err := a.aead.Open(nil, nonce, sealed, aad)
	if err != nil {
		return types.NewError(types.ErrAESGCMAuth, "authentication failed")
	}
	copy(plaintext, opened)
	return nil
}

func (a *aeadHandle) check(out, tag, in, nonce []byte) error {
	if a.freed {
		return types.NewError(types.ErrBadState, "cipher used after free")
	}
	if len(out) < len(in) {
		return types.NewError(types.ErrBuffer, "output is %d bytes, want %d", len(out), len(in))
	}
	if len(tag) < a.TagSize() {
		return types.NewError(types.ErrBadFuncArg, "tag is %d bytes, want %d", len(tag), a.TagSize())
	}
	if len(nonce) != a.NonceSize() {
		return types.NewError(types.ErrBadFuncArg, "nonce is %d bytes, want %d", len(nonce), a.NonceSize())
	}
	return nil
}

func (a *aeadHandle) Free() {
	if a.freed {
		return
	}
	a.freed = true
	a.aead = nil
	a.lib.release()
}
