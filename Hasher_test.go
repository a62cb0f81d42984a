package mmh3

import "bytes"
import "math/rand"
import "sync"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"


var allVariants = []Variant{ Variant32, Variant128x86, Variant128x64 }


func generateInput(length int, seed int64) []byte {
	rnd := rand.New(rand.NewSource(seed))
	input := make([]byte, length)
	rnd.Read(input)

	return input
}

func TestHasherStreamingEquivalence(t *testing.T) {
	input := generateInput(257, 1)

	for _, variant := range allVariants {
		t.Run(variant.String(), func(t *testing.T) {
			for length := 0; length <= len(input); length++ {
				expected := SumBytes(variant, input[:length], 0x9747B28C)

				for chunkSize := 1; chunkSize <= 33; chunkSize++ {
					h := New(variant, 0x9747B28C)
					for start := 0; start < length; start += chunkSize {
						end := min(start + chunkSize, length)
						h.Write(input[start:end])
						h.Write(nil)
					}

					require.Truef(t, expected.Equal(h.Digest()), "length %d chunk size %d", length, chunkSize)
				}
			}
		})
	}

	t.Run("Test Random Partitions", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(7))
		data := generateInput(4096, 2)

		for _, variant := range allVariants {
			expected := SumBytes(variant, data, 3)

			for trial := 0; trial < 50; trial++ {
				h := New(variant, 3)
				remaining := data

				for len(remaining) > 0 {
					n := rnd.Intn(min(len(remaining), 40) + 1)
					h.Write(remaining[:n])
					remaining = remaining[n:]
				}

				require.Truef(t, expected.Equal(h.Digest()), "%s trial %d", variant, trial)
			}
		}
	})
}

func TestHasherVectors(t *testing.T) {
	t.Run("Test mmh3_32 Digest", func(t *testing.T) {
		h := New32(0)
		h.Write([]byte(""))
		assert.Equal(t, []byte{ 0, 0, 0, 0 }, h.Digest().Bytes())

		h = New32(0x9747B28C)
		h.Write([]byte("Hello,"))
		h.Write([]byte(" world!"))
		assert.Equal(t, []byte{ 0xBA, 0x4C, 0x88, 0x24 }, h.Digest().Bytes())
	})

	t.Run("Test mmh3_32 Split Updates", func(t *testing.T) {
		h := New32(0)
		h.Write([]byte{ 0x21, 0x43 })
		h.Write([]byte{ 0x65 })
		assert.Equal(t, uint32(0x7E4A8634), h.Sum32())

		h = New32(0)
		h.Write([]byte{ 0x21, 0x43 })
		h.Write([]byte{ 0x65, 0x87 })
		assert.Equal(t, uint32(0xF55B516B), h.Sum32())

		h = New32(0x9747B28C)
		h.WriteString("The quick brown fo")
		h.WriteString("x jumps over the lazy dog")
		assert.Equal(t, uint32(0x2FA826CD), h.Sum32())

		h = New32(0)
		h.WriteString("foo")
		assert.Equal(t, int32(-156908512), h.Digest().Int32())
	})

	t.Run("Test mmh3_x64_128 Unsigned Digests", func(t *testing.T) {
		vectors := []struct {
			seed uint32
			chunks []string
			expected string
		}{
			{ 0, []string{ "" }, "0" },
			{ 1, []string{ "" }, "108177238965372658051732455265379769525" },
			{ 0, []string{ "fo", "o" }, "168394135621993849475852668931176482145" },
			{ 0, []string{ "fooo" }, "93757880664175803030724836966881520758" },
			{ 0, []string{ "fooo", "fooo" }, "211983152696995059280678248292944636041" },
			{ 0, []string{ "fooo", "foooo" }, "338423359992422647011971677127905553798" },
			{ 0x9747B28C, []string{ "T", "he quick brown fox jumps over the lazy dog" }, "331338380982025235147197912083035533601" },
			{ 0x9747B28C, []string{ "The quic", "k brown fox jumps over the lazy dog" }, "331338380982025235147197912083035533601" },
			{ 0x9747B28C, []string{ "The quick", " brown fox jumps over the lazy dog" }, "331338380982025235147197912083035533601" },
		}

		for _, v := range vectors {
			h := New128x64(v.seed)
			for _, chunk := range v.chunks { h.WriteString(chunk) }

			assert.Equalf(t, v.expected, h.Digest().Uint().String(), "chunks %q", v.chunks)
		}
	})

	t.Run("Test mmh3_x64_128 Signed Digests", func(t *testing.T) {
		h := New128x64(0x9747B28C)
		h.WriteString("The quick brown fox j")
		h.WriteString("umps over the lazy dog")
		assert.Equal(t, "-8943985938913228316176695348732677855", h.Digest().Int().String())

		low, high, pairErr := h.Digest().Int64Pair()
		require.NoError(t, pairErr)
		assert.Equal(t, int64(8325606756057297185), low)
		assert.Equal(t, int64(-484854449282476315), high)
	})
}

func TestHasherClone(t *testing.T) {
	for _, variant := range allVariants {
		original := New(variant, 11)
		original.WriteString("shared prefix, longer than one block")

		clone := original.Clone()
		original.WriteString(" then the original")
		clone.WriteString(" then the clone")

		assert.True(t, SumBytes(variant, []byte("shared prefix, longer than one block then the original"), 11).Equal(original.Digest()))
		assert.True(t, SumBytes(variant, []byte("shared prefix, longer than one block then the clone"), 11).Equal(clone.Digest()))
		assert.False(t, original.Digest().Equal(clone.Digest()))

		converged := original.Clone()
		again := original.Clone()
		converged.WriteString("!")
		again.WriteString("!")
		assert.True(t, converged.Digest().Equal(again.Digest()))
	}
}

func TestHasherDigestIsPure(t *testing.T) {
	for _, variant := range allVariants {
		h := New(variant, 5)
		h.WriteString("abc")

		first := h.Digest()
		second := h.Digest()
		assert.True(t, first.Equal(second))
		assert.Equal(t, uint64(3), h.Len())

		h.WriteString("defghijklmnopqrstuvwxyz")
		assert.True(t, SumBytes(variant, []byte("abcdefghijklmnopqrstuvwxyz"), 5).Equal(h.Digest()))

		sum := h.Sum([]byte("prefix"))
		assert.True(t, bytes.HasPrefix(sum, []byte("prefix")))
		assert.Equal(t, h.Digest().Bytes(), sum[len("prefix"):])
	}
}

func TestHasherReset(t *testing.T) {
	h := New128x86(99)
	h.WriteString("some data that will be discarded")
	h.Reset()

	assert.Zero(t, h.Len())
	assert.True(t, New128x86(99).Digest().Equal(h.Digest()))
	assert.Equal(t, uint32(99), h.Seed())
	assert.Equal(t, Variant128x86, h.Variant())
}

func TestHasherInterfaces(t *testing.T) {
	h32 := New32(0)
	assert.Equal(t, 4, h32.Size())
	assert.Equal(t, 4, h32.BlockSize())

	h128 := New128x64(0)
	assert.Equal(t, 16, h128.Size())
	assert.Equal(t, 16, h128.BlockSize())

	h128.WriteString("foo")
	assert.Equal(t, uint64(16316970633193145697), h128.Sum64())

	h32.WriteString("foo")
	assert.Equal(t, uint64(4138058784), h32.Sum64())
}

func TestNewHasher(t *testing.T) {
	t.Run("Test Initial Chunk", func(t *testing.T) {
		h, newErr := NewHasher(HasherOpts{ Variant: Variant128x64, Seed: 0x9747B28C, Initial: "The quick brown fox jumps over the lazy dog" })
		require.NoError(t, newErr)

		low, high, pairErr := h.Digest().Uint64Pair()
		require.NoError(t, pairErr)
		assert.Equal(t, uint64(8325606756057297185), low)
		assert.Equal(t, uint64(17961889624427075301), high)
	})

	t.Run("Test Seed Out Of Range", func(t *testing.T) {
		_, negErr := NewHasher(HasherOpts{ Seed: -1 })
		assert.ErrorIs(t, negErr, ErrInvalidArgument)

		_, bigErr := NewHasher(HasherOpts{ Seed: 1 << 32 })
		assert.ErrorIs(t, bigErr, ErrInvalidArgument)

		h, maxErr := NewHasher(HasherOpts{ Seed: 0xFFFFFFFF })
		require.NoError(t, maxErr)
		assert.Equal(t, uint32(0x81F16F39), h.Sum32())
	})

	t.Run("Test Unknown Variant", func(t *testing.T) {
		_, variantErr := NewHasher(HasherOpts{ Variant: Variant(9) })
		assert.ErrorIs(t, variantErr, ErrInvalidArgument)

		assert.Panics(t, func() { New(Variant(9), 0) })
	})

	t.Run("Test Initial Type Mismatch", func(t *testing.T) {
		_, typeErr := NewHasher(HasherOpts{ Initial: 42 })
		assert.ErrorIs(t, typeErr, ErrTypeMismatch)
	})

	t.Run("Test Update Type Mismatch Leaves State", func(t *testing.T) {
		h := New32(0)
		h.WriteString("foo")

		updateErr := h.Update([]int{ 1, 2, 3 })
		assert.ErrorIs(t, updateErr, ErrTypeMismatch)
		assert.Equal(t, uint32(4138058784), h.Sum32())
	})
}

func TestHasherCloneFanOut(t *testing.T) {
	prefix := generateInput(1000, 3)
	prototype := New128x64(0)
	prototype.Write(prefix)

	var wg sync.WaitGroup
	digests := make([]Digest, 8)

	for idx := range digests {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			h := prototype.Clone()
			for i := 0; i < 1000; i++ { h.Write([]byte{ byte(idx) }) }
			digests[idx] = h.Digest()
		}(idx)
	}

	wg.Wait()

	for idx, digest := range digests {
		expected := append(append([]byte{}, prefix...), bytes.Repeat([]byte{ byte(idx) }, 1000)...)
		assert.Truef(t, SumBytes(Variant128x64, expected, 0).Equal(digest), "worker %d", idx)
	}
}

func TestHasherLengthTruncation(t *testing.T) {
	if testing.Short() { t.Skip("streams 4 GiB of zeros") }

	zeros := make([]byte, 1 << 20)
	h32 := New32(0)
	h64 := New128x64(0)

	for i := 0; i < 1 << 12; i++ {
		h32.Write(zeros)
		h64.Write(zeros)
	}

	h32.Write([]byte{ 0 })
	h64.Write([]byte{ 0 })

	assert.Equal(t, int32(-1710109261), h32.Digest().Int32())
	assert.Equal(
		t,
		[]byte{ 0x82, 0x31, 0x93, 0x0c, 0xe7, 0xa8, 0x02, 0x9d, 0xe5, 0x20, 0xa6, 0xf9, 0xeb, 0x38, 0xd6, 0x0e },
		h64.Digest().Bytes(),
	)
}
