package crypto_test

import (
	"errors"
	mrand "math/rand/v2"
	"testing"

	"cryptodemo/internal/crypto"
	"cryptodemo/internal/domain/types"
)

// newLibrary returns an initialised library seeded deterministically and
// checks for leaked handles when the test ends.
func newLibrary(t *testing.T) *crypto.Library {
	t.Helper()
	lib := crypto.New(crypto.WithEntropy(mrand.NewChaCha8([32]byte{1, 2, 3})))
	if err := lib.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() {
		if n := lib.OpenHandles(); n != 0 {
			t.Errorf("%d handles leaked", n)
		}
		if err := lib.Cleanup(); err != nil {
			t.Errorf("Cleanup: %v", err)
		}
	})
	return lib
}

func TestLibrary_UseBeforeInit(t *testing.T) {
	lib := crypto.New()
	if _, err := lib.NewRNG(); !errors.Is(err, types.ErrBadState) {
		t.Fatalf("want BAD_STATE_E before Init, got %v", err)
	}
	if err := lib.Cleanup(); !errors.Is(err, types.ErrBadState) {
		t.Fatalf("want BAD_STATE_E on unbalanced Cleanup, got %v", err)
	}
}

func TestLibrary_InitIsCounted(t *testing.T) {
	lib := crypto.New()
	for i := 0; i < 2; i++ {
		if err := lib.Init(); err != nil {
			t.Fatalf("Init #%d: %v", i, err)
		}
	}
	if err := lib.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	rng, err := lib.NewRNG()
	if err != nil {
		t.Fatalf("NewRNG with one reference left: %v", err)
	}
	rng.Free()
	if err := lib.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if _, err := lib.NewHash(types.HashSHA256); !errors.Is(err, types.ErrBadState) {
		t.Fatalf("want BAD_STATE_E after last Cleanup, got %v", err)
	}
}

func TestRNG_GenerateBlockAndFree(t *testing.T) {
	lib := newLibrary(t)
	rng, err := lib.NewRNG()
	if err != nil {
		t.Fatalf("NewRNG: %v", err)
	}
	if lib.OpenHandles() != 1 {
		t.Fatalf("want 1 open handle, got %d", lib.OpenHandles())
	}
	buf := make([]byte, 64)
	if err := rng.GenerateBlock(buf); err != nil {
		t.Fatalf("GenerateBlock: %v", err)
	}
	var zero [64]byte
	if string(buf) == string(zero[:]) {
		t.Fatal("GenerateBlock left the buffer zeroed")
	}
	rng.Free()
	rng.Free() // idempotent
	if err := rng.GenerateBlock(buf); !errors.Is(err, types.ErrBadState) {
		t.Fatalf("want BAD_STATE_E after Free, got %v", err)
	}
}

func TestHash_SHA256KnownAnswer(t *testing.T) {
	lib := newLibrary(t)
	h, err := lib.NewHash(types.HashSHA256)
	if err != nil {
		t.Fatalf("NewHash: %v", err)
	}
	defer h.Free()
	h.Write([]byte("abc"))
	got := mustHex(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	if sum := h.Sum(nil); string(sum) != string(got) {
		t.Fatalf("sha256(abc) = %x", sum)
	}
	if _, err := lib.NewHash(types.HashNone); !errors.Is(err, types.ErrHashType) {
		t.Fatalf("want HASH_TYPE_E, got %v", err)
	}
}
