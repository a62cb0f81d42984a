package murmur

import "encoding/binary"
import "math/bits"


//============================================= Murmur128 x64


// Murmur128x64
//	The MurmurHash3_x64_128 hash function, tuned for 64 bit architectures.
//
// Returns:
//	The two finalized 64 bit lanes, h1 first
func Murmur128x64(data []byte, seed uint32) [2]uint64 {
	h := [2]uint64{ uint64(seed), uint64(seed) }
	fullBlocks := len(data) - len(data) % Block128

	Blocks128x64(&h, data[:fullBlocks])
	Tail128x64(&h, data[fullBlocks:])

	return Finalize128x64(h, uint64(len(data)))
}

// Blocks128x64
//	Mix every 16-byte block of data into h1 and h2.
//	Each block is read as two little endian 8-byte words k1 and k2.
func Blocks128x64(h *[2]uint64, data []byte) {
	h1, h2 := h[0], h[1]

	for len(data) >= Block128 {
		k1 := binary.LittleEndian.Uint64(data[0:8])
		k2 := binary.LittleEndian.Uint64(data[8:16])

		h1 ^= mixK1x64(k1)
		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1 * 5 + n128x64_1

		h2 ^= mixK2x64(k2)
		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2 * 5 + n128x64_2

		data = data[Block128:]
	}

	h[0], h[1] = h1, h2
}

// Tail128x64
//	Mix the 0-15 remaining bytes into h1 and h2. Offsets 8-14 fill k2, offsets 0-7 fill k1.
func Tail128x64(h *[2]uint64, tail []byte) {
	var k1, k2 uint64

	switch len(tail) & 15 {
		case 15:
			k2 ^= uint64(tail[14]) << 48
			fallthrough
		case 14:
			k2 ^= uint64(tail[13]) << 40
			fallthrough
		case 13:
			k2 ^= uint64(tail[12]) << 32
			fallthrough
		case 12:
			k2 ^= uint64(tail[11]) << 24
			fallthrough
		case 11:
			k2 ^= uint64(tail[10]) << 16
			fallthrough
		case 10:
			k2 ^= uint64(tail[9]) << 8
			fallthrough
		case 9:
			k2 ^= uint64(tail[8])
			h[1] ^= mixK2x64(k2)
			fallthrough
		case 8:
			k1 ^= uint64(tail[7]) << 56
			fallthrough
		case 7:
			k1 ^= uint64(tail[6]) << 48
			fallthrough
		case 6:
			k1 ^= uint64(tail[5]) << 40
			fallthrough
		case 5:
			k1 ^= uint64(tail[4]) << 32
			fallthrough
		case 4:
			k1 ^= uint64(tail[3]) << 24
			fallthrough
		case 3:
			k1 ^= uint64(tail[2]) << 16
			fallthrough
		case 2:
			k1 ^= uint64(tail[1]) << 8
			fallthrough
		case 1:
			k1 ^= uint64(tail[0])
			h[0] ^= mixK1x64(k1)
	}
}

func mixK1x64(k1 uint64) uint64 {
	k1 *= c128x64_1
	k1 = bits.RotateLeft64(k1, 31)
	return k1 * c128x64_2
}

// mixK2x64 uses the multiplier pair in swapped order.
func mixK2x64(k2 uint64) uint64 {
	k2 *= c128x64_2
	k2 = bits.RotateLeft64(k2, 33)
	return k2 * c128x64_1
}
