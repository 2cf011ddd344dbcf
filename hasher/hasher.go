// Package hasher provides non-cryptographic hashes of single fixed-width
// integer keys.
//
// Three families are offered: XX32 (xxHash32), XX64 (xxHash64) and Murmur2A
// (MurmurHash2A). Each hashes 8, 16, 32 and 64-bit keys and returns exactly
// what the family's reference byte-stream algorithm returns for the
// little-endian encoding of the key. Byte slices are not accepted.
package hasher

import "math/bits"

// Hasher hashes a fixed-width key under a seed of type S into an output of
// type H.
type Hasher[S, H any] interface {
	Hash8(seed S, v uint8) H
	Hash16(seed S, v uint16) H
	Hash32(seed S, v uint32) H
	Hash64(seed S, v uint64) H
}

// Hasher32 is implemented by the families with 32-bit seeds and outputs.
type Hasher32 = Hasher[uint32, uint32]

// Hasher64 is implemented by the families with 64-bit seeds and outputs.
type Hasher64 = Hasher[uint64, uint64]

var (
	_ Hasher32 = XX32{}
	_ Hasher64 = XX64{}
	_ Hasher32 = Murmur2A{}
)

// Default is the family used when nothing else is asked for.
type Default = XX32

// Key is an unsigned key type the hashers accept.
type Key interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the bit width of K: 8, 16, 32 or 64.
func Width[K Key]() int {
	var zero K
	return bits.Len64(uint64(^zero))
}

// Hash routes k to the entry point of h that matches its width, so call sites
// can be written once for every key type.
func Hash[S, H any, K Key](h Hasher[S, H], seed S, k K) H {
	switch Width[K]() {
	case 8:
		return h.Hash8(seed, uint8(k))
	case 16:
		return h.Hash16(seed, uint16(k))
	case 32:
		return h.Hash32(seed, uint32(k))
	default:
		return h.Hash64(seed, uint64(k))
	}
}
