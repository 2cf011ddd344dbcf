package hasher

import (
	"encoding/binary"
	"math/bits"
)

// Streaming reference definitions of the three families over byte slices,
// transcribed from the canonical C implementations. Used only to check that
// the fixed-width entry points agree with them.

func refXXH32(data []byte, seed uint32) uint32 {
	n := len(data)
	var h uint32
	i := 0
	if n >= 16 {
		v1 := seed + xx32Prime1 + xx32Prime2
		v2 := seed + xx32Prime2
		v3 := seed
		v4 := seed - xx32Prime1
		round := func(acc, in uint32) uint32 {
			return bits.RotateLeft32(acc+in*xx32Prime2, 13) * xx32Prime1
		}
		for ; i+16 <= n; i += 16 {
			v1 = round(v1, binary.LittleEndian.Uint32(data[i:]))
			v2 = round(v2, binary.LittleEndian.Uint32(data[i+4:]))
			v3 = round(v3, binary.LittleEndian.Uint32(data[i+8:]))
			v4 = round(v4, binary.LittleEndian.Uint32(data[i+12:]))
		}
		h = bits.RotateLeft32(v1, 1) + bits.RotateLeft32(v2, 7) +
			bits.RotateLeft32(v3, 12) + bits.RotateLeft32(v4, 18)
	} else {
		h = seed + xx32Prime5
	}
	h += uint32(n)
	for ; i+4 <= n; i += 4 {
		h = xx32Word(h, binary.LittleEndian.Uint32(data[i:]))
	}
	for ; i < n; i++ {
		h = xx32Byte(h, data[i])
	}
	return xx32Avalanche(h)
}

func refXXH64(data []byte, seed uint64) uint64 {
	round := func(acc, in uint64) uint64 {
		return bits.RotateLeft64(acc+in*xx64Prime2, 31) * xx64Prime1
	}
	merge := func(h, v uint64) uint64 {
		h ^= round(0, v)
		return h*xx64Prime1 + xx64Prime4
	}

	n := len(data)
	var h uint64
	i := 0
	if n >= 32 {
		v1 := seed + xx64Prime1 + xx64Prime2
		v2 := seed + xx64Prime2
		v3 := seed
		v4 := seed - xx64Prime1
		for ; i+32 <= n; i += 32 {
			v1 = round(v1, binary.LittleEndian.Uint64(data[i:]))
			v2 = round(v2, binary.LittleEndian.Uint64(data[i+8:]))
			v3 = round(v3, binary.LittleEndian.Uint64(data[i+16:]))
			v4 = round(v4, binary.LittleEndian.Uint64(data[i+24:]))
		}
		h = bits.RotateLeft64(v1, 1) + bits.RotateLeft64(v2, 7) +
			bits.RotateLeft64(v3, 12) + bits.RotateLeft64(v4, 18)
		h = merge(h, v1)
		h = merge(h, v2)
		h = merge(h, v3)
		h = merge(h, v4)
	} else {
		h = seed + xx64Prime5
	}
	h += uint64(n)
	for ; i+8 <= n; i += 8 {
		h ^= round(0, binary.LittleEndian.Uint64(data[i:]))
		h = bits.RotateLeft64(h, 27)*xx64Prime1 + xx64Prime4
	}
	if i+4 <= n {
		h ^= uint64(binary.LittleEndian.Uint32(data[i:])) * xx64Prime1
		h = bits.RotateLeft64(h, 23)*xx64Prime2 + xx64Prime3
		i += 4
	}
	for ; i < n; i++ {
		h = xx64Byte(h, data[i])
	}
	return xx64Avalanche(h)
}

func refMurmur2A(data []byte, seed uint32) uint32 {
	l := uint32(len(data))
	h := seed
	i := 0
	for ; len(data)-i >= 4; i += 4 {
		h = mmix(h, binary.LittleEndian.Uint32(data[i:]))
	}
	var t uint32
	switch len(data) - i {
	case 3:
		t ^= uint32(data[i+2]) << 16
		fallthrough
	case 2:
		t ^= uint32(data[i+1]) << 8
		fallthrough
	case 1:
		t ^= uint32(data[i])
	}
	h = mmix(h, t)
	h = mmix(h, l)
	return murmurAvalanche(h)
}
