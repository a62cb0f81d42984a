package mmh3

import "encoding/binary"
import "fmt"
import "hash"

import "github.com/sirgallo/utils"

import "github.com/sirgallo/mmh3/common/murmur"


//============================================= Streaming Hasher


var (
	_ hash.Hash = (*Hasher)(nil)
	_ hash.Hash32 = (*Hasher)(nil)
	_ hash.Hash64 = (*Hasher)(nil)
)


// New
//	Create a streaming hasher for variant with every lane set to seed.
//	variant must be one of the Variant constants, use NewHasher to validate untrusted input.
func New(variant Variant, seed uint32) *Hasher {
	if ! variant.Valid() { panic(fmt.Sprintf("mmh3: unknown variant %d", uint8(variant))) }

	h := &Hasher{ variant: variant, seed: seed }
	h.Reset()

	return h
}

// New32 creates a MurmurHash3_x86_32 hasher.
func New32(seed uint32) *Hasher { return New(Variant32, seed) }

// New128x86 creates a MurmurHash3_x86_128 hasher.
func New128x86(seed uint32) *Hasher { return New(Variant128x86, seed) }

// New128x64 creates a MurmurHash3_x64_128 hasher.
func New128x64(seed uint32) *Hasher { return New(Variant128x64, seed) }

// NewHasher
//	Create a hasher from options, validating them at the boundary.
//	When Initial is set it is written before returning, as if Update had been called.
//
// Parameters:
//	opts: variant, seed and optional first chunk
//
// Returns:
//	The hasher, or an error wrapping ErrInvalidArgument or ErrTypeMismatch
func NewHasher(opts HasherOpts) (*Hasher, error) {
	if ! opts.Variant.Valid() { return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidArgument, uint8(opts.Variant)) }

	seed, seedErr := ValidateSeed(opts.Seed)
	if seedErr != nil { return nil, seedErr }

	h := New(opts.Variant, seed)
	if opts.Initial == nil { return h, nil }

	updateErr := h.Update(opts.Initial)
	if updateErr != nil { return nil, updateErr }

	return h, nil
}

// Write
//	Feed p into the running hash. Whole blocks are mixed right away, the remainder is buffered until the next write or Digest.
//	It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	h.length += uint64(n)
	blockSize := h.blockSize()

	if h.npending > 0 {
		filled := copy(h.pending[h.npending:blockSize], p)
		h.npending += filled
		p = p[filled:]

		if h.npending < blockSize { return n, nil }

		h.mixBlocks(h.pending[:blockSize])
		h.npending = 0
	}

	fullBlocks := len(p) - len(p) % blockSize
	h.mixBlocks(p[:fullBlocks])
	h.npending = copy(h.pending[:], p[fullBlocks:])

	return n, nil
}

// WriteString feeds the UTF-8 bytes of s into the running hash.
func (h *Hasher) WriteString(s string) (int, error) {
	return h.Write([]byte(s))
}

// Update
//	Feed any input ToBytes accepts into the running hash.
//	The only failure is an input that cannot be viewed as bytes, in which case the state is unchanged.
func (h *Hasher) Update(input any) error {
	data, convErr := ToBytes(input)
	if convErr != nil { return convErr }

	h.Write(data)
	return nil
}

// Clone
//	Returns an independent copy of the running state. Writes to either hasher never affect the other.
func (h *Hasher) Clone() *Hasher {
	clone := *h
	return &clone
}

// Digest
//	Finalize a copy of the lanes: mix the pending tail, inject the length and avalanche.
//	The hasher itself is not modified, so writing may continue afterwards.
func (h *Hasher) Digest() Digest {
	digest := Digest{ variant: h.variant }
	tail := h.pending[:h.npending]

	switch h.variant {
		case Variant128x86:
			lanes := h.h32
			murmur.Tail128x86(&lanes, tail)

			for idx, lane := range murmur.Finalize128x86(lanes, h.length) {
				binary.LittleEndian.PutUint32(digest.sum[idx * 4:], lane)
			}
		case Variant128x64:
			lanes := h.h64
			murmur.Tail128x64(&lanes, tail)

			for idx, lane := range murmur.Finalize128x64(lanes, h.length) {
				binary.LittleEndian.PutUint64(digest.sum[idx * 8:], lane)
			}
		default:
			h1 := murmur.Tail32(h.h32[0], tail)
			binary.LittleEndian.PutUint32(digest.sum[:], murmur.Finalize32(h1, h.length))
	}

	return digest
}

// Sum appends the digest bytes to b, it does not change the running state.
func (h *Hasher) Sum(b []byte) []byte {
	digest := h.Digest()
	return append(b, digest.Bytes()...)
}

// Sum32 returns the first 4 digest bytes read little endian, the whole digest of the 32 bit variant.
func (h *Hasher) Sum32() uint32 {
	return h.Digest().Uint32()
}

// Sum64 returns the first 64 bit half of a 128 bit digest, or the zero extended 32 bit digest.
func (h *Hasher) Sum64() uint64 {
	digest := h.Digest()
	if h.variant == Variant32 { return uint64(digest.Uint32()) }

	return binary.LittleEndian.Uint64(digest.sum[:8])
}

// Reset
//	Return to the freshly constructed state, keeping variant and seed.
func (h *Hasher) Reset() {
	h.h32 = [4]uint32{ h.seed, h.seed, h.seed, h.seed }
	h.h64 = [2]uint64{ uint64(h.seed), uint64(h.seed) }
	h.pending = utils.GetZero[[16]byte]()
	h.npending = 0
	h.length = 0
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return h.variant.DigestSize() }

// BlockSize returns the mixing block size of the variant.
func (h *Hasher) BlockSize() int { return h.blockSize() }

// Len returns the number of bytes written so far.
func (h *Hasher) Len() uint64 { return h.length }

func (h *Hasher) Seed() uint32 { return h.seed }

func (h *Hasher) Variant() Variant { return h.variant }

// blockSize
func (h *Hasher) blockSize() int {
	if h.variant == Variant32 { return murmur.Block32 }
	return murmur.Block128
}

// mixBlocks
//	Advance the lanes over data, which holds whole blocks only.
func (h *Hasher) mixBlocks(data []byte) {
	if len(data) == 0 { return }

	switch h.variant {
		case Variant128x86:
			murmur.Blocks128x86(&h.h32, data)
		case Variant128x64:
			murmur.Blocks128x64(&h.h64, data)
		default:
			h.h32[0] = murmur.Blocks32(h.h32[0], data)
	}
}
