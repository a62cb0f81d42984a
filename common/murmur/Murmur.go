package murmur

import "encoding/binary"
import "math/bits"


//============================================= Murmur32


// Murmur32
//	The MurmurHash3_x86_32 non-cryptographic hash function.
//
// Parameters:
//	data: the bytes to hash
//	seed: initial value of the single lane
//
// Returns:
//	The finalized 32 bit hash
func Murmur32(data []byte, seed uint32) uint32 {
	fullBlocks := len(data) - len(data) % Block32

	hash := Blocks32(seed, data[:fullBlocks])
	hash = Tail32(hash, data[fullBlocks:])

	return Finalize32(hash, uint64(len(data)))
}

// Blocks32
//	Mix every 4-byte little endian block of data into h1.
//	len(data) must be a multiple of 4, any trailing bytes are ignored.
func Blocks32(h1 uint32, data []byte) uint32 {
	for len(data) >= Block32 {
		k1 := binary.LittleEndian.Uint32(data)
		h1 = mixH32(h1, mixK32(k1))
		data = data[Block32:]
	}

	return h1
}

// Tail32
//	If there are any remaining bytes that are not a chunk of 4, pack them little endian into k1 and xor the mixed k1 into h1.
//	The rotate and add step of a full block is skipped.
func Tail32(h1 uint32, tail []byte) uint32 {
	var k1 uint32

	switch len(tail) & 3 {
		case 3:
			k1 ^= uint32(tail[2]) << 16
			fallthrough
		case 2:
			k1 ^= uint32(tail[1]) << 8
			fallthrough
		case 1:
			k1 ^= uint32(tail[0])
			h1 ^= mixK32(k1)
	}

	return h1
}

// mixK32
//	For each 4-byte chunk: multiply, rotate left by 15, multiply.
func mixK32(k1 uint32) uint32 {
	k1 *= c32_1
	k1 = bits.RotateLeft32(k1, 15)
	k1 *= c32_2

	return k1
}

// mixH32
func mixH32(h1, k1 uint32) uint32 {
	h1 ^= k1
	h1 = bits.RotateLeft32(h1, 13)
	return h1 * 5 + n32_1
}
