package buf

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/joshuapare/bufkit/internal/bounds"
)

// Buffer is a pointer-and-length window over byte memory. It is in exactly
// one of two states for its whole life:
//
//   - Owning: the window lies inside a shared, reference-counted
//     allocation. Cloning shares the allocation instead of copying bytes;
//     Reset, Detach and Unique are meaningful.
//   - Borrowing: the window wraps caller-managed memory directly. There is
//     no lifecycle bookkeeping; Reset and Detach return ErrBorrowed and
//     Unique is always false.
//
// The zero value is an empty borrowing buffer.
//
// Plain struct copies of a Buffer do not touch the refcount; use Clone,
// View or Assign to take additional references and Release to drop them.
type Buffer struct {
	alloc *alloc
	view  []byte
}

// New returns an owning buffer over a fresh allocation of n bytes. The
// block is zero-filled.
func New(n int) *Buffer {
	data := make([]byte, n)
	return &Buffer{alloc: newAlloc(data, nil), view: data}
}

// NewFill returns an owning buffer of n bytes with every byte set to fill.
func NewFill(n int, fill byte) *Buffer {
	b := New(n)
	for i := range b.view {
		b.view[i] = fill
	}
	return b
}

// NewCopy returns an owning buffer holding a copy of p. Use this when the
// lifetime of p cannot be guaranteed for as long as the buffer is in use.
func NewCopy(p []byte) *Buffer {
	a := duplicateAlloc(p)
	return &Buffer{alloc: a, view: a.data}
}

// NewFromPool returns an owning buffer over a block obtained from p. The
// last Release returns the block to the pool. Pool blocks are recycled,
// not zeroed: the window may contain stale bytes until written.
func NewFromPool(p Pool, n int) *Buffer {
	data := p.Get(n)
	return &Buffer{alloc: newAlloc(data, p.Put), view: data}
}

// Wrap returns a borrowing buffer over p without copying. The caller
// keeps ownership of p and must keep it valid for as long as the buffer
// (and any buffer assigned from it) is in use.
func Wrap(p []byte) *Buffer {
	return &Buffer{view: p}
}

// WrapString returns a borrowing buffer over the bytes of s without
// copying. Strings are immutable: writing through the returned buffer is
// undefined behavior, exactly as for any other read-only memory handed to
// Wrap.
func WrapString(s string) *Buffer {
	if len(s) == 0 {
		return &Buffer{}
	}
	return &Buffer{view: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Clone returns a new buffer sharing this buffer's allocation (one more
// reference) with the same window. Cloning a borrowing buffer yields
// another borrowing buffer over the same memory.
func (b *Buffer) Clone() *Buffer {
	if b.alloc != nil {
		b.alloc.ref()
	}
	return &Buffer{alloc: b.alloc, view: b.view}
}

// View returns a Clone narrowed to [off, off+n) with the usual clamping.
func (b *Buffer) View(off, n int) *Buffer {
	v := b.Clone()
	v.Slice(off, n)
	return v
}

// Assign replaces this buffer's state with a reference-sharing copy of
// other, releasing whatever this buffer held before. Safe for
// self-assignment.
func (b *Buffer) Assign(other *Buffer) {
	if other.alloc != nil {
		other.alloc.ref()
	}
	if b.alloc != nil {
		b.alloc.release()
	}
	b.alloc = other.alloc
	b.view = other.view
}

// Release drops this buffer's reference and empties the window. The last
// release of an allocation frees it (or returns it to its pool). No-op
// beyond emptying the window for borrowing buffers.
func (b *Buffer) Release() {
	if b.alloc != nil {
		b.alloc.release()
		b.alloc = nil
	}
	b.view = nil
}

// Bytes returns the current window. The slice aliases the underlying
// memory: writes through it are visible to every buffer sharing the
// allocation, and no copy is made.
func (b *Buffer) Bytes() []byte {
	return b.view
}

// String returns a copy of the current window as a string.
func (b *Buffer) String() string {
	return string(b.view)
}

// Len returns the current window length.
func (b *Buffer) Len() int {
	return len(b.view)
}

// Owning reports whether the buffer holds a shared allocation, as opposed
// to wrapping caller-managed memory.
func (b *Buffer) Owning() bool {
	return b.alloc != nil
}

// At returns the byte at offset i within the current window.
func (b *Buffer) At(i int) (byte, error) {
	if i < 0 || i >= len(b.view) {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(b.view))
	}
	return b.view[i], nil
}

// SetAt stores v at offset i within the current window.
func (b *Buffer) SetAt(i int, v byte) error {
	if i < 0 || i >= len(b.view) {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(b.view))
	}
	b.view[i] = v
	return nil
}

// Slice narrows the window in place to [off, off+n). Out-of-range inputs
// are silently clamped rather than reported: off is clamped into
// [0, Len()], then n into [0, remaining]. Slice never fails. Consumers
// rely on this policy; a stricter variant belongs in the caller, not here.
func (b *Buffer) Slice(off, n int) {
	off = bounds.Clamp(off, 0, len(b.view))
	rest := b.view[off:]
	b.view = rest[:bounds.Clamp(n, 0, len(rest))]
}

// Reset restores the window to the full current extent of the shared
// allocation. After a successful Detach the restored window is empty.
// Returns ErrBorrowed for borrowing buffers, which have no allocation to
// reset to.
func (b *Buffer) Reset() error {
	if b.alloc == nil {
		return ErrBorrowed
	}
	b.view = b.alloc.bytes()
	return nil
}

// Detach transfers ownership of the full underlying block (not just the
// current window) to the caller and empties the allocation, which stays
// alive but inert. Detach is atomic with the uniqueness check: it returns
// ErrShared while any other buffer holds a reference, ErrDetached after a
// previous detach, and ErrBorrowed for borrowing buffers. On success the
// pool hook, if any, is disarmed; freeing the block becomes the caller's
// problem.
//
// This buffer's window still aliases the detached block afterwards; call
// Release or Reset to drop it.
func (b *Buffer) Detach() ([]byte, error) {
	if b.alloc == nil {
		return nil, ErrBorrowed
	}
	return b.alloc.detach()
}

// Unique reports whether this buffer is the sole holder of its
// allocation. Always false for borrowing buffers. Advisory only: prefer
// Detach, which checks and takes atomically.
func (b *Buffer) Unique() bool {
	return b.alloc != nil && b.alloc.unique()
}

// Same reports whether both windows have equal length and equal bytes.
func (b *Buffer) Same(other *Buffer) bool {
	return bytes.Equal(b.view, other.view)
}
