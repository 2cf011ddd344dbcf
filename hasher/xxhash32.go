package hasher

import "math/bits"

const (
	xx32Prime1 uint32 = 0x9E3779B1
	xx32Prime2 uint32 = 0x85EBCA77
	xx32Prime3 uint32 = 0xC2B2AE3D
	xx32Prime4 uint32 = 0x27D4EB2F
	xx32Prime5 uint32 = 0x165667B1
)

// XX32 is xxHash32 specialised for single keys. Keys are shorter than one
// 16-byte stripe, so only the tail rounds and the avalanche run.
type XX32 struct{}

func xx32Word(h, v uint32) uint32 {
	return bits.RotateLeft32(h+v*xx32Prime3, 17) * xx32Prime4
}

func xx32Byte(h uint32, b uint8) uint32 {
	return bits.RotateLeft32(h+uint32(b)*xx32Prime5, 11) * xx32Prime1
}

func xx32Avalanche(h uint32) uint32 {
	h ^= h >> 15
	h *= xx32Prime2
	h ^= h >> 13
	h *= xx32Prime3
	h ^= h >> 16
	return h
}

func (XX32) Hash8(seed uint32, v uint8) uint32 {
	h := seed + xx32Prime5 + 1
	h = xx32Byte(h, v)
	return xx32Avalanche(h)
}

func (XX32) Hash16(seed uint32, v uint16) uint32 {
	h := seed + xx32Prime5 + 2
	h = xx32Byte(h, uint8(v))
	h = xx32Byte(h, uint8(v>>8))
	return xx32Avalanche(h)
}

func (XX32) Hash32(seed uint32, v uint32) uint32 {
	h := seed + xx32Prime5 + 4
	h = xx32Word(h, v)
	return xx32Avalanche(h)
}

func (XX32) Hash64(seed uint32, v uint64) uint32 {
	h := seed + xx32Prime5 + 8
	h = xx32Word(h, uint32(v))
	h = xx32Word(h, uint32(v>>32))
	return xx32Avalanche(h)
}
