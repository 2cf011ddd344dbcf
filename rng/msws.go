// Package rng implements the Middle Square Weyl Sequence generator.
//
// MSWS squares its state like the classic middle-square method and adds a
// Weyl sequence each step, which keeps it out of the short cycles plain
// middle-square falls into. It is fast and deterministic. It is not
// cryptographically secure.
package rng

import "math"

// WeylConstant is the odd increment mixed into every seed.
const WeylConstant uint64 = 0xb5ad4eceda1ce2a9

// MSWS is a Middle Square Weyl Sequence generator. The zero value is not
// usable; construct with New.
//
// An MSWS must not be shared between goroutines without external locking.
type MSWS struct {
	x, w, s uint64
}

// New returns a generator seeded with seed. The state is advanced once before
// it is returned.
func New(seed uint64) MSWS {
	r := MSWS{s: seed<<1 + WeylConstant}
	r.tick()
	return r
}

func (r *MSWS) tick() {
	r.w += r.s
	r.x = r.x*r.x + r.w
	r.x = r.x>>32 | r.x<<32
}

// Uint32 returns the next 32-bit value.
func (r *MSWS) Uint32() uint32 {
	r.tick()
	return uint32(r.x)
}

// Uint64 returns two consecutive Uint32 draws, the first in the low half.
func (r *MSWS) Uint64() uint64 {
	lo := uint64(r.Uint32())
	hi := uint64(r.Uint32())
	return lo | hi<<32
}

// Float32 returns a value in [0.0, 1.0], both ends inclusive.
func (r *MSWS) Float32() float32 {
	return float32(r.Uint32()) / float32(math.MaxUint32)
}

// Float32Range returns a value in [lo, hi].
func (r *MSWS) Float32Range(lo, hi float32) float32 {
	return lo + (hi-lo)*r.Float32()
}

// NewSeeded returns an independent generator seeded from r.Uint64().
func (r *MSWS) NewSeeded() MSWS {
	return New(r.Uint64())
}
