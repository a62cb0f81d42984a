package mmh3

import "fmt"
import "strings"

import "github.com/sirgallo/mmh3/common/murmur"


// Variant selects one of the MurmurHash3 algorithms.
type Variant uint8

const (
	// Variant32 is MurmurHash3_x86_32, a 4 byte digest
	Variant32 Variant = Variant(murmur.Kind32)
	// Variant128x86 is MurmurHash3_x86_128, a 16 byte digest tuned for 32 bit hosts
	Variant128x86 Variant = Variant(murmur.Kind128x86)
	// Variant128x64 is MurmurHash3_x64_128, a 16 byte digest tuned for 64 bit hosts
	Variant128x64 Variant = Variant(murmur.Kind128x64)
)

var variantNames = map[string]Variant{
	"32": Variant32,
	"x86_32": Variant32,
	"mmh3_32": Variant32,
	"x86_128": Variant128x86,
	"mmh3_x86_128": Variant128x86,
	"128": Variant128x64,
	"x64_128": Variant128x64,
	"mmh3_x64_128": Variant128x64,
}


// ParseVariant
//	Resolve a variant from its short or published name, case insensitive.
func ParseVariant(name string) (Variant, error) {
	variant, ok := variantNames[strings.ToLower(strings.TrimSpace(name))]
	if ! ok { return 0, fmt.Errorf("%w: unknown variant %q", ErrInvalidArgument, name) }

	return variant, nil
}

// Valid reports whether v is one of the three known variants.
func (v Variant) Valid() bool {
	return int(v) < len(murmur.Descriptors)
}

// Descriptor returns the static configuration of the variant.
func (v Variant) Descriptor() murmur.Descriptor {
	return murmur.Descriptors[v]
}

func (v Variant) String() string {
	if ! v.Valid() { return fmt.Sprintf("Variant(%d)", uint8(v)) }
	return v.Descriptor().Name
}

// DigestSize is the digest length in bytes, 4 or 16.
func (v Variant) DigestSize() int { return v.Descriptor().DigestSize }

// BlockSize is the number of bytes consumed by one full mixing step, 4 or 16.
func (v Variant) BlockSize() int { return v.Descriptor().BlockSize }
