package mmh3

import "errors"
import "fmt"
import "math"


//============================================= MMH3 Errors


var (
	// ErrInvalidArgument is returned for a seed outside [0, 2^32 - 1], an unknown variant or format name, or a tuple requested from a 32 bit digest
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTypeMismatch is returned when an input cannot be viewed as a byte sequence
	ErrTypeMismatch = errors.New("type mismatch")
)


// ValidateSeed
//	Checks that seed fits an unsigned 32 bit integer.
//
// Returns:
//	The seed as uint32, or an error wrapping ErrInvalidArgument
func ValidateSeed(seed int64) (uint32, error) {
	if seed < 0 || seed > math.MaxUint32 {
		return 0, fmt.Errorf("%w: seed %d is outside [0, %d]", ErrInvalidArgument, seed, uint32(math.MaxUint32))
	}

	return uint32(seed), nil
}
