package mmh3

import "bytes"
import "fmt"


//============================================= Byte Sources


// ByteSource is anything with a known length and zero-copy byte access, a memory mapped file for example.
type ByteSource interface {
	Len() int
	Bytes() []byte
}


// ToBytes
//	Normalize an input to a read-only byte sequence before it reaches the hasher.
//	[]byte, *bytes.Buffer and ByteSource inputs are viewed without copying.
//	string is used as its UTF-8 bytes, []rune is UTF-8 encoded.
//
// Parameters:
//	input: the value to view as bytes
//
// Returns:
//	The bytes of input, or an error wrapping ErrTypeMismatch
func ToBytes(input any) ([]byte, error) {
	switch data := input.(type) {
		case []byte:
			return data, nil
		case string:
			return []byte(data), nil
		case []rune:
			return []byte(string(data)), nil
		case *bytes.Buffer:
			if data == nil { break }
			return data.Bytes(), nil
		case ByteSource:
			return data.Bytes(), nil
	}

	return nil, fmt.Errorf("%w: cannot hash %T, expected []byte, string, []rune, *bytes.Buffer or ByteSource", ErrTypeMismatch, input)
}
