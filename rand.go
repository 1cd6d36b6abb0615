package skipset

import (
	"math/bits"

	"github.com/valyala/fastrand"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

// newRandomSeed derives a per-container seed from the process-seeded
// fastrand source. Containers constructed back to back therefore do not
// share correlated height sequences.
func newRandomSeed() uint64 {
	seed := uint64(fastrand.Uint32())<<32 | uint64(fastrand.Uint32())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// rng is a container-owned xorshift generator. The container is
// single-threaded, so the state needs no synchronization.
type rng struct {
	state uint64
}

func newRNG(seed uint64) rng {
	if seed == 0 {
		seed = newRandomSeed()
	}
	return rng{state: seed}
}

func (r *rng) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.state = x
	return x * 2685821657736338717
}

// drawHeight draws a tower height with P(h) = 2^-h, capped at max. The
// trailing-zero count of a uniform word is exactly the length of a run of
// successful coin flips.
func (r *rng) drawHeight(max int) int {
	h := bits.TrailingZeros64(r.next()) + 1
	if h > max {
		return max
	}
	return h
}
