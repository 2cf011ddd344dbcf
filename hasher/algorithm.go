package hasher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognised names.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Algorithm names a hash family for runtime selection.
type Algorithm uint8

const (
	AlgXX32 Algorithm = iota
	AlgXX64
	AlgMurmur2A
)

// Algorithms lists every family in declaration order.
var Algorithms = [...]Algorithm{AlgXX32, AlgXX64, AlgMurmur2A}

func (a Algorithm) String() string {
	switch a {
	case AlgXX32:
		return "xxhash32"
	case AlgXX64:
		return "xxhash64"
	case AlgMurmur2A:
		return "murmur2a"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a name as produced by String back to its Algorithm.
// Matching is case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(name, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// OutputBits is the native output width of the family.
func (a Algorithm) OutputBits() int {
	if a == AlgXX64 {
		return 64
	}
	return 32
}

// Hasher returns the family behind a 64-bit interface. 32-bit families see
// the low 32 bits of the seed and their output is zero-extended.
func (a Algorithm) Hasher() Hasher64 {
	switch a {
	case AlgXX64:
		return XX64{}
	case AlgMurmur2A:
		return widened{Murmur2A{}}
	default:
		return widened{XX32{}}
	}
}

// widened adapts a 32-bit family to Hasher64.
type widened struct {
	h Hasher32
}

func (w widened) Hash8(seed uint64, v uint8) uint64 {
	return uint64(w.h.Hash8(uint32(seed), v))
}

func (w widened) Hash16(seed uint64, v uint16) uint64 {
	return uint64(w.h.Hash16(uint32(seed), v))
}

func (w widened) Hash32(seed uint64, v uint32) uint64 {
	return uint64(w.h.Hash32(uint32(seed), v))
}

func (w widened) Hash64(seed uint64, v uint64) uint64 {
	return uint64(w.h.Hash64(uint32(seed), v))
}
