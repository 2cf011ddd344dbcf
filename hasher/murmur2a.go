package hasher

const (
	murmurM uint32 = 0x5bd1e995
	murmurR        = 24
)

// Murmur2A is MurmurHash2A (the Merkle-Damgård variant of MurmurHash2)
// specialised for single keys.
//
// The reference always mixes the zero-padded tail word, then the key length.
// For 4 and 8-byte keys the tail is empty and a zero word is mixed; this is
// required for bit compatibility.
type Murmur2A struct{}

func mmix(h, k uint32) uint32 {
	k *= murmurM
	k ^= k >> murmurR
	k *= murmurM
	h *= murmurM
	h ^= k
	return h
}

func murmurAvalanche(h uint32) uint32 {
	h ^= h >> 13
	h *= murmurM
	h ^= h >> 15
	return h
}

func (Murmur2A) Hash8(seed uint32, v uint8) uint32 {
	h := mmix(seed, uint32(v))
	h = mmix(h, 1)
	return murmurAvalanche(h)
}

func (Murmur2A) Hash16(seed uint32, v uint16) uint32 {
	h := mmix(seed, uint32(v))
	h = mmix(h, 2)
	return murmurAvalanche(h)
}

func (Murmur2A) Hash32(seed uint32, v uint32) uint32 {
	h := mmix(seed, v)
	h = mmix(h, 0)
	h = mmix(h, 4)
	return murmurAvalanche(h)
}

func (Murmur2A) Hash64(seed uint32, v uint64) uint32 {
	h := mmix(seed, uint32(v))
	h = mmix(h, uint32(v>>32))
	h = mmix(h, 0)
	h = mmix(h, 8)
	return murmurAvalanche(h)
}
