package hasher

import "math/bits"

const (
	xx64Prime1 uint64 = 0x9E3779B185EBCA87
	xx64Prime2 uint64 = 0xC2B2AE3D27D4EB4F
	xx64Prime3 uint64 = 0x165667B19E3779F9
	xx64Prime4 uint64 = 0x85EBCA77C2B2AE63
	xx64Prime5 uint64 = 0x27D4EB2F165667C5
)

// XX64 is xxHash64 specialised for single keys. Keys are shorter than one
// 32-byte stripe, so only the 8, 4 and 1-byte tail rounds and the avalanche
// run.
type XX64 struct{}

func xx64Avalanche(h uint64) uint64 {
	h ^= h >> 33
	h *= xx64Prime2
	h ^= h >> 29
	h *= xx64Prime3
	h ^= h >> 32
	return h
}

func xx64Byte(h uint64, b uint8) uint64 {
	return bits.RotateLeft64(h^uint64(b)*xx64Prime5, 11) * xx64Prime1
}

func (XX64) Hash8(seed uint64, v uint8) uint64 {
	h := seed + xx64Prime5 + 1
	h = xx64Byte(h, v)
	return xx64Avalanche(h)
}

func (XX64) Hash16(seed uint64, v uint16) uint64 {
	h := seed + xx64Prime5 + 2
	h = xx64Byte(h, uint8(v))
	h = xx64Byte(h, uint8(v>>8))
	return xx64Avalanche(h)
}

func (XX64) Hash32(seed uint64, v uint32) uint64 {
	h := seed + xx64Prime5 + 4
	h = bits.RotateLeft64(h^uint64(v)*xx64Prime1, 23)*xx64Prime2 + xx64Prime3
	return xx64Avalanche(h)
}

func (XX64) Hash64(seed uint64, v uint64) uint64 {
	h := seed + xx64Prime5 + 8
	k := bits.RotateLeft64(v*xx64Prime2, 31) * xx64Prime1
	h = bits.RotateLeft64(h^k, 27)*xx64Prime1 + xx64Prime4
	return xx64Avalanche(h)
}
