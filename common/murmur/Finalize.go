package murmur


//============================================= Finalization


// Finalize32
//	Inject the total length (truncated to 32 bits) into h1 and avalanche.
func Finalize32(h1 uint32, length uint64) uint32 {
	h1 ^= uint32(length)
	return Fmix32(h1)
}

// Finalize128x86
//	Inject the total length (truncated to 32 bits) into every lane, then add-mix the lanes around the avalanche of each lane.
//
// Parameters:
//	h: the lanes after tail mixing, passed by value so the caller's state is untouched
//	length: total number of bytes consumed
//
// Returns:
//	The finalized lanes
func Finalize128x86(h [4]uint32, length uint64) [4]uint32 {
	l := uint32(length)
	h1, h2, h3, h4 := h[0] ^ l, h[1] ^ l, h[2] ^ l, h[3] ^ l

	h1 += h2
	h1 += h3
	h1 += h4
	h2 += h1
	h3 += h1
	h4 += h1

	h1 = Fmix32(h1)
	h2 = Fmix32(h2)
	h3 = Fmix32(h3)
	h4 = Fmix32(h4)

	h1 += h2
	h1 += h3
	h1 += h4
	h2 += h1
	h3 += h1
	h4 += h1

	return [4]uint32{ h1, h2, h3, h4 }
}

// Finalize128x64
//	Inject the total length into both lanes, then add-mix the lanes around the avalanche of each lane.
func Finalize128x64(h [2]uint64, length uint64) [2]uint64 {
	h1, h2 := h[0] ^ length, h[1] ^ length

	h1 += h2
	h2 += h1

	h1 = Fmix64(h1)
	h2 = Fmix64(h2)

	h1 += h2
	h2 += h1

	return [2]uint64{ h1, h2 }
}

// Fmix32
//	Force all bits of a 32 bit lane to avalanche.
func Fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= fmix32_1
	h ^= h >> 13
	h *= fmix32_2
	h ^= h >> 16

	return h
}

// Fmix64
//	Force all bits of a 64 bit lane to avalanche.
func Fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= fmix64_1
	k ^= k >> 33
	k *= fmix64_2
	k ^= k >> 33

	return k
}
