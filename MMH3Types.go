package mmh3


// HasherOpts initialize a Hasher through NewHasher
type HasherOpts struct {
	// Variant: the algorithm, Variant32 when left zero
	Variant Variant
	// Seed: initial value of every lane, must fit an unsigned 32 bit integer
	Seed int64
	// Initial: optional first chunk, anything ToBytes accepts
	Initial any
}

// Hasher is the running state of a streaming MurmurHash3 computation.
//	It is a plain value: copying it (Clone) yields an independent computation.
//	A Hasher is not safe for concurrent use, clone it to fan out.
type Hasher struct {
	// variant: which mixer and finalizer to apply
	variant Variant
	// seed: the value every lane started from, kept for Reset
	seed uint32
	// h32: lanes of the 32 bit and x86_128 variants, h32[0] only for the 32 bit variant
	h32 [4]uint32
	// h64: lanes of the x64_128 variant
	h64 [2]uint64
	// pending: bytes not yet forming a full block
	pending [16]byte
	// npending: count of valid bytes in pending, always below the block size
	npending int
	// length: total bytes written since construction or the last Reset
	length uint64
}

// Digest is a finalized hash value. It does not alias the Hasher it came from.
type Digest struct {
	variant Variant
	// sum: little endian lanes in ascending order, only the first DigestSize bytes are used
	sum [16]byte
}

// Format names a representation of a Digest.
type Format uint8

const (
	// FormatBytes is the little endian digest bytes, []byte
	FormatBytes Format = iota
	// FormatUnsigned is the digest read as one little endian unsigned integer, uint32 or *big.Int
	FormatUnsigned
	// FormatSigned is the two's complement reading of FormatUnsigned, int32 or *big.Int
	FormatSigned
	// FormatTupleUnsigned is the two little endian 64 bit halves, [2]uint64, 128 bit variants only
	FormatTupleUnsigned
	// FormatTupleSigned is the two halves as [2]int64, 128 bit variants only
	FormatTupleSigned
	// FormatHex is the digest bytes as lower case hex, string
	FormatHex
)

// HashFilesOpts configure HashFiles
type HashFilesOpts struct {
	Variant Variant
	Seed uint32
	// Workers: maximum number of files hashed at once, GOMAXPROCS when zero or below
	Workers int
}

// FileDigest pairs a path with the digest of its contents
type FileDigest struct {
	Path string
	Size int64
	Digest Digest
}

// readChunkSize is the buffer size HashReader reads with
const readChunkSize = 64 * 1024
