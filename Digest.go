package mmh3

import "bytes"
import "encoding/binary"
import "encoding/hex"
import "fmt"
import "math/big"
import "strings"


//============================================= Digest Formatting


var formatNames = map[string]Format{
	"bytes": FormatBytes,
	"unsigned": FormatUnsigned,
	"uint": FormatUnsigned,
	"signed": FormatSigned,
	"int": FormatSigned,
	"tuple_unsigned": FormatTupleUnsigned,
	"utuple": FormatTupleUnsigned,
	"tuple_signed": FormatTupleSigned,
	"stuple": FormatTupleSigned,
	"hex": FormatHex,
}


// ParseFormat
//	Resolve a Format from its name, case insensitive.
func ParseFormat(name string) (Format, error) {
	format, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]
	if ! ok { return 0, fmt.Errorf("%w: unknown format %q", ErrInvalidArgument, name) }

	return format, nil
}

// Variant returns the variant that produced the digest.
func (d Digest) Variant() Variant { return d.variant }

// Size returns the digest length in bytes.
func (d Digest) Size() int { return d.variant.DigestSize() }

// Bytes
//	Little endian encoding of each lane, lanes concatenated in ascending order.
//	The returned slice is a fresh copy.
func (d Digest) Bytes() []byte {
	out := make([]byte, d.Size())
	copy(out, d.sum[:])

	return out
}

// Uint32 returns the first 4 bytes read little endian, the full value for the 32 bit variant.
func (d Digest) Uint32() uint32 {
	return binary.LittleEndian.Uint32(d.sum[:4])
}

// Int32 is the two's complement reading of Uint32.
func (d Digest) Int32() int32 {
	return int32(d.Uint32())
}

// Uint
//	The whole digest read as one little endian unsigned integer of DigestSize * 8 bits.
func (d Digest) Uint() *big.Int {
	size := d.Size()
	bigEndian := make([]byte, size)
	for idx := 0; idx < size; idx++ { bigEndian[idx] = d.sum[size - 1 - idx] }

	return new(big.Int).SetBytes(bigEndian)
}

// Int
//	Two's complement reading of Uint: Uint - 2^width when the most significant bit is set.
func (d Digest) Int() *big.Int {
	size := d.Size()
	value := d.Uint()
	if d.sum[size - 1] & 0x80 == 0 { return value }

	modulus := new(big.Int).Lsh(big.NewInt(1), uint(size * 8))
	return value.Sub(value, modulus)
}

// Uint64Pair
//	The digest viewed as two little endian 64 bit halves. For x64_128 these are the lanes h1 and h2.
//
// Returns:
//	The low and high halves, or an error wrapping ErrInvalidArgument for the 32 bit variant
func (d Digest) Uint64Pair() (uint64, uint64, error) {
	if d.variant == Variant32 { return 0, 0, fmt.Errorf("%w: %s digest has no 64 bit halves", ErrInvalidArgument, d.variant) }
	return binary.LittleEndian.Uint64(d.sum[:8]), binary.LittleEndian.Uint64(d.sum[8:16]), nil
}

// Int64Pair is the two's complement reading of Uint64Pair.
func (d Digest) Int64Pair() (int64, int64, error) {
	low, high, pairErr := d.Uint64Pair()
	if pairErr != nil { return 0, 0, pairErr }

	return int64(low), int64(high), nil
}

// Hex returns the digest bytes as lower case hex.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.sum[:d.Size()])
}

func (d Digest) String() string { return d.Hex() }

// Equal reports whether both digests come from the same variant and hold the same bytes.
func (d Digest) Equal(other Digest) bool {
	return d.variant == other.variant && bytes.Equal(d.sum[:], other.sum[:])
}

// Format
//	Convert d into the requested representation:
//	FormatBytes []byte, FormatHex string,
//	FormatUnsigned / FormatSigned uint32 / int32 for the 32 bit variant and *big.Int otherwise,
//	FormatTupleUnsigned [2]uint64, FormatTupleSigned [2]int64.
//
// Returns:
//	The representation, or an error wrapping ErrInvalidArgument for an unknown format or a tuple of a 32 bit digest
func (d Digest) Format(as Format) (any, error) {
	switch as {
		case FormatBytes:
			return d.Bytes(), nil
		case FormatHex:
			return d.Hex(), nil
		case FormatUnsigned:
			if d.variant == Variant32 { return d.Uint32(), nil }
			return d.Uint(), nil
		case FormatSigned:
			if d.variant == Variant32 { return d.Int32(), nil }
			return d.Int(), nil
		case FormatTupleUnsigned:
			low, high, pairErr := d.Uint64Pair()
			if pairErr != nil { return nil, pairErr }

			return [2]uint64{ low, high }, nil
		case FormatTupleSigned:
			low, high, pairErr := d.Int64Pair()
			if pairErr != nil { return nil, pairErr }

			return [2]int64{ low, high }, nil
		default:
			return nil, fmt.Errorf("%w: unknown format %d", ErrInvalidArgument, uint8(as))
	}
}

// FormatString
//	Render d as text in the requested representation, used by the command line tool.
func (d Digest) FormatString(as Format) (string, error) {
	value, formatErr := d.Format(as)
	if formatErr != nil { return "", formatErr }

	switch v := value.(type) {
		case []byte:
			return hex.EncodeToString(v), nil
		case [2]uint64:
			return fmt.Sprintf("%d %d", v[0], v[1]), nil
		case [2]int64:
			return fmt.Sprintf("%d %d", v[0], v[1]), nil
		default:
			return fmt.Sprint(v), nil
	}
}
