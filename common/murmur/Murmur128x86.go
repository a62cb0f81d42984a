package murmur

import "encoding/binary"
import "math/bits"


//============================================= Murmur128 x86


// Murmur128x86
//	The MurmurHash3_x86_128 hash function, tuned for 32 bit architectures.
//
// Returns:
//	The four finalized 32 bit lanes, h1 first
func Murmur128x86(data []byte, seed uint32) [4]uint32 {
	h := [4]uint32{ seed, seed, seed, seed }
	fullBlocks := len(data) - len(data) % Block128

	Blocks128x86(&h, data[:fullBlocks])
	Tail128x86(&h, data[fullBlocks:])

	return Finalize128x86(h, uint64(len(data)))
}

// Blocks128x86
//	Mix every 16-byte block of data into the four lanes.
//	Each block is read as four little endian words k1..k4, every k lane is mixed with its own multiplier pair and rotation,
//	then each h lane is rotated and combined with the next lane.
func Blocks128x86(h *[4]uint32, data []byte) {
	h1, h2, h3, h4 := h[0], h[1], h[2], h[3]

	for len(data) >= Block128 {
		k1 := binary.LittleEndian.Uint32(data[0:4])
		k2 := binary.LittleEndian.Uint32(data[4:8])
		k3 := binary.LittleEndian.Uint32(data[8:12])
		k4 := binary.LittleEndian.Uint32(data[12:16])

		h1 ^= mixK1x86(k1)
		h1 = bits.RotateLeft32(h1, 19)
		h1 += h2
		h1 = h1 * 5 + n128x86_1

		h2 ^= mixK2x86(k2)
		h2 = bits.RotateLeft32(h2, 17)
		h2 += h3
		h2 = h2 * 5 + n128x86_2

		h3 ^= mixK3x86(k3)
		h3 = bits.RotateLeft32(h3, 15)
		h3 += h4
		h3 = h3 * 5 + n128x86_3

		h4 ^= mixK4x86(k4)
		h4 = bits.RotateLeft32(h4, 13)
		h4 += h1
		h4 = h4 * 5 + n128x86_4

		data = data[Block128:]
	}

	h[0], h[1], h[2], h[3] = h1, h2, h3, h4
}

// Tail128x86
//	Mix the 0-15 remaining bytes into the lanes.
//	Bytes 12-14 fill k4, 8-11 fill k3, 4-7 fill k2 and 0-3 fill k1, lowest offset first within each lane.
//	Lanes are xored into h without the cross combine.
func Tail128x86(h *[4]uint32, tail []byte) {
	var k1, k2, k3, k4 uint32

	switch len(tail) & 15 {
		case 15:
			k4 ^= uint32(tail[14]) << 16
			fallthrough
		case 14:
			k4 ^= uint32(tail[13]) << 8
			fallthrough
		case 13:
			k4 ^= uint32(tail[12])
			h[3] ^= mixK4x86(k4)
			fallthrough
		case 12:
			k3 ^= uint32(tail[11]) << 24
			fallthrough
		case 11:
			k3 ^= uint32(tail[10]) << 16
			fallthrough
		case 10:
			k3 ^= uint32(tail[9]) << 8
			fallthrough
		case 9:
			k3 ^= uint32(tail[8])
			h[2] ^= mixK3x86(k3)
			fallthrough
		case 8:
			k2 ^= uint32(tail[7]) << 24
			fallthrough
		case 7:
			k2 ^= uint32(tail[6]) << 16
			fallthrough
		case 6:
			k2 ^= uint32(tail[5]) << 8
			fallthrough
		case 5:
			k2 ^= uint32(tail[4])
			h[1] ^= mixK2x86(k2)
			fallthrough
		case 4:
			k1 ^= uint32(tail[3]) << 24
			fallthrough
		case 3:
			k1 ^= uint32(tail[2]) << 16
			fallthrough
		case 2:
			k1 ^= uint32(tail[1]) << 8
			fallthrough
		case 1:
			k1 ^= uint32(tail[0])
			h[0] ^= mixK1x86(k1)
	}
}

func mixK1x86(k1 uint32) uint32 {
	k1 *= c128x86_1
	k1 = bits.RotateLeft32(k1, 15)
	return k1 * c128x86_2
}

func mixK2x86(k2 uint32) uint32 {
	k2 *= c128x86_2
	k2 = bits.RotateLeft32(k2, 16)
	return k2 * c128x86_3
}

func mixK3x86(k3 uint32) uint32 {
	k3 *= c128x86_3
	k3 = bits.RotateLeft32(k3, 17)
	return k3 * c128x86_4
}

func mixK4x86(k4 uint32) uint32 {
	k4 *= c128x86_4
	k4 = bits.RotateLeft32(k4, 18)
	return k4 * c128x86_1
}
