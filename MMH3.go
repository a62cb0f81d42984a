package mmh3

import "math/big"


//============================================= One-shot Hashing


// Sum
//	Hash a complete input in one call: validate, view as bytes, write once into a fresh hasher, finalize.
//	The result is identical to streaming the same bytes in any number of chunks.
//
// Parameters:
//	variant: the algorithm
//	input: anything ToBytes accepts, nil is rejected
//	seed: must fit an unsigned 32 bit integer
//
// Returns:
//	The digest, or an error wrapping ErrInvalidArgument or ErrTypeMismatch
func Sum(variant Variant, input any, seed int64) (Digest, error) {
	data, convErr := ToBytes(input)
	if convErr != nil { return Digest{}, convErr }

	h, newErr := NewHasher(HasherOpts{ Variant: variant, Seed: seed })
	if newErr != nil { return Digest{}, newErr }

	h.Write(data)
	return h.Digest(), nil
}

// SumBytes
//	Unchecked one-shot digest of data.
func SumBytes(variant Variant, data []byte, seed uint32) Digest {
	h := New(variant, seed)
	h.Write(data)

	return h.Digest()
}

// Hash32
//	MurmurHash3_x86_32 of data as an unsigned integer.
func Hash32(data []byte, seed uint32) uint32 {
	return SumBytes(Variant32, data, seed).Uint32()
}

// HashSigned32
//	MurmurHash3_x86_32 of data as a signed integer.
func HashSigned32(data []byte, seed uint32) int32 {
	return SumBytes(Variant32, data, seed).Int32()
}

// HashString32 hashes the UTF-8 bytes of s with MurmurHash3_x86_32.
func HashString32(s string, seed uint32) uint32 {
	return Hash32([]byte(s), seed)
}

// Hash64
//	A 128 bit hash of data as two unsigned 64 bit halves, x64_128 when x64 is set, x86_128 otherwise.
func Hash64(data []byte, seed uint32, x64 bool) (uint64, uint64) {
	low, high, _ := SumBytes(variant128(x64), data, seed).Uint64Pair()
	return low, high
}

// HashSigned64
//	Same as Hash64 with both halves read as two's complement.
func HashSigned64(data []byte, seed uint32, x64 bool) (int64, int64) {
	low, high := Hash64(data, seed, x64)
	return int64(low), int64(high)
}

// Hash128
//	A 128 bit hash of data as one unsigned integer, x64_128 when x64 is set, x86_128 otherwise.
func Hash128(data []byte, seed uint32, x64 bool) *big.Int {
	return SumBytes(variant128(x64), data, seed).Uint()
}

// HashSigned128
//	Same as Hash128 read as a two's complement 128 bit integer.
func HashSigned128(data []byte, seed uint32, x64 bool) *big.Int {
	return SumBytes(variant128(x64), data, seed).Int()
}

// HashBytes
//	A 128 bit hash of data as its 16 little endian digest bytes.
func HashBytes(data []byte, seed uint32, x64 bool) []byte {
	return SumBytes(variant128(x64), data, seed).Bytes()
}

func variant128(x64 bool) Variant {
	if x64 { return Variant128x64 }
	return Variant128x86
}
