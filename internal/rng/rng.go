// Package rng provides the injected randomness the serializer and device
// layer need for ID/nonce generation, so tests can supply a deterministic
// source instead of depending on real entropy (design note 9: RNG as an
// injected dependency, not a hidden global).
package rng

import "math/rand/v2"

// Source produces the random values the codec and device packages need.
// A *rand.Rand satisfies this interface directly.
type Source interface {
	Uint64() uint64
	IntN(n int) int
}

// Default returns a non-deterministic Source backed by math/rand/v2's
// PCG generator, seeded from the runtime's own entropy source.
func Default() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Fixed returns a deterministic Source seeded from the given value, for
// reproducible tests.
func Fixed(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Nonzero63 returns a random value in [1, 2^63) — used when the codec
// needs to synthesize a nonzero 63-bit database or library-persistent ID.
func Nonzero63(s Source) uint64 {
	v := s.Uint64() &^ (1 << 63)
	if v == 0 {
		v = 1
	}
	return v
}

const filenameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Filename4 returns a random 4-character uppercase-alphanumeric string,
// the on-device filename stem (36^4 = 1,679,616 possibilities).
func Filename4(s Source) string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = filenameAlphabet[s.IntN(len(filenameAlphabet))]
	}
	return string(b)
}
