package benchmark

import (
	"fmt"

	"cryptodemo/internal/domain"
	"cryptodemo/internal/domain/types"
	"cryptodemo/internal/protocol/ecc"
)

// fixture holds the inputs shared by the timed loops.
type fixture struct {
	block  []byte
	out    []byte
	tag    []byte
	digest []byte
	sig    []byte
	secret []byte
	kek    []byte
	aead   domain.AEAD
}

func (s *Service) newFixture(rng domain.RNG) (*fixture, error) {
	p := s.params
	fx := &fixture{
		block:  make([]byte, blockSize),
		out:    make([]byte, blockSize),
		tag:    make([]byte, p.TagSize()),
		sig:    make([]byte, p.SignatureSize()),
		secret: make([]byte, p.CoordSize),
		kek:    make([]byte, p.KeySize()),
	}
	if err := rng.GenerateBlock(fx.block); err != nil {
		return nil, err
	}
	if err := rng.GenerateBlock(fx.secret); err != nil {
		return nil, err
	}
	if err := rng.GenerateBlock(fx.kek); err != nil {
		return nil, err
	}

	h, err := s.lib.NewHash(p.Hash)
	if err != nil {
		return nil, err
	}
	h.Write(fx.block)
	fx.digest = h.Sum(nil)
	h.Free()

	if _, err := ecc.Sign(s.lib, p.PrivateKey, fx.digest, fx.sig, p.CoordSize, p.Curve, rng); err != nil {
		return nil, err
	}
	if fx.aead, err = s.lib.NewAEAD(p.Cipher, fx.kek); err != nil {
		return nil, err
	}
	return fx, nil
}

func (fx *fixture) free() {
	if fx.aead != nil {
		fx.aead.Free()
	}
}

func (s *Service) benches(rng domain.RNG, fx *fixture) []bench {
	p := s.params
	curve := fmt.Sprintf("SECP%dR1", p.CoordSize*8)
	return []bench{
		{"RNG", blockSize, func() error {
			return rng.GenerateBlock(fx.out)
		}},
		{"SHA-256", blockSize, func() error {
			h, err := s.lib.NewHash(p.Hash)
			if err != nil {
				return err
			}
			defer h.Free()
			h.Write(fx.block)
			h.Sum(fx.out[:0])
			return nil
		}},
		{cipherName(p.Cipher) + " enc", blockSize, func() error {
			return fx.aead.Encrypt(fx.out, fx.tag, fx.block, p.Nonce, p.AAD)
		}},
		{fmt.Sprintf("KDF %v", p.KDF), 0, func() error {
			return s.lib.KDF(p.KDF, p.Hash, fx.secret, nil, fx.kek)
		}},
		{"ECDHE " + curve, 0, func() error {
			_, err := ecc.ECDHE(s.lib, rng, p.CoordSize, p.Curve, fx.secret)
			return err
		}},
		{"ECDSA sign " + curve, 0, func() error {
			_, err := ecc.Sign(s.lib, p.PrivateKey, fx.digest, fx.sig, p.CoordSize, p.Curve, rng)
			return err
		}},
		{"ECDSA verify " + curve, 0, func() error {
			return ecc.Verify(s.lib, p.PublicKey, fx.digest, fx.sig, p.CoordSize, p.Curve)
		}},
	}
}

func cipherName(c types.CipherSuite) string {
	if c == types.CipherChaCha20Poly1305 {
		return "ChaCha20-Poly1305"
	}
	return "AES-128-GCM"
}
