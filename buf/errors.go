package buf

import "errors"

var (
	// ErrBorrowed indicates an owning-only operation on a buffer that merely
	// wraps caller-managed memory.
	ErrBorrowed = errors.New("buf: buffer does not own its allocation")

	// ErrShared indicates a detach attempt while other buffers still share
	// the allocation.
	ErrShared = errors.New("buf: allocation is shared")

	// ErrDetached indicates the allocation was already detached and holds
	// nothing.
	ErrDetached = errors.New("buf: allocation already detached")

	// ErrOutOfRange indicates an element access outside the current window.
	ErrOutOfRange = errors.New("buf: index out of range")

	// ErrLengthMismatch indicates the declared concat length does not match
	// the sum of the source lengths.
	ErrLengthMismatch = errors.New("buf: concat length mismatch")

	// ErrNegativeLength indicates a negative length was requested.
	ErrNegativeLength = errors.New("buf: negative length")
)
