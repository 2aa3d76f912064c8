// Package buf provides a reference-counted, sliceable byte-buffer view.
//
// # Overview
//
// A Buffer is a lightweight window (pointer + length) over byte memory.
// Owning buffers share one underlying allocation through a refcount, so
// clones and sub-range views cost nothing and never copy bytes. Borrowing
// buffers wrap caller-managed memory with no lifecycle tracking at all,
// for zero-copy interop with memory the caller already owns (a mapped
// file, a block handed across a language boundary).
//
// # Construction
//
//   - New / NewFill / NewCopy / NewFromPool: owning, fresh allocation
//   - Wrap / WrapString: borrowing, zero-copy
//   - Clone / View / Assign: share an existing allocation
//   - Concat: owning, copies several windows into one block
//
// # Slicing
//
// Slice narrows the window in place and never fails: out-of-range offsets
// and lengths are silently clamped to the nearest valid range. Reset
// restores the window to the allocation's full extent.
//
// # Ownership transfer
//
// Detach hands the raw block back to the caller and empties the
// allocation without freeing it. It is atomic with the uniqueness check:
// detaching while another buffer still shares the allocation fails with
// ErrShared instead of silently dangling the other views.
//
// # Thread Safety
//
// Lifecycle bookkeeping (Clone, Release, Detach, Unique) is safe for
// concurrent use from multiple goroutines. The byte contents are not:
// two buffers sharing an allocation may be read and written concurrently
// with no ordering guarantee and no data-race protection. Callers that
// share mutable windows across goroutines must synchronize externally.
//
// # Errors
//
// Contract violations are reported as sentinel errors (ErrBorrowed,
// ErrShared, ErrOutOfRange, ...) rather than panics; see errors.go.
// Slicing is the deliberate exception and never reports anything.
package buf
