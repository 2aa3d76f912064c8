package buf

import (
	"fmt"

	"github.com/joshuapare/bufkit/internal/bounds"
)

// Concat returns an owning buffer of exactly total bytes holding the
// windows of srcs copied in order. The source lengths must sum to total
// exactly; anything else returns ErrLengthMismatch. A negative total
// returns ErrNegativeLength.
func Concat(total int, srcs ...*Buffer) (*Buffer, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, total)
	}
	sum := 0
	for _, s := range srcs {
		next, ok := bounds.AddOverflowSafe(sum, s.Len())
		if !ok {
			return nil, fmt.Errorf("%w: source lengths overflow", ErrLengthMismatch)
		}
		sum = next
	}
	if sum != total {
		return nil, fmt.Errorf("%w: declared %d, sources sum to %d", ErrLengthMismatch, total, sum)
	}
	data := make([]byte, total)
	off := 0
	for _, s := range srcs {
		off += copy(data[off:], s.Bytes())
	}
	return &Buffer{alloc: newAlloc(data, nil), view: data}, nil
}
