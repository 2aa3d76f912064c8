package buf

import (
	"sync"
	"sync/atomic"
)

// alloc is the reference-counted backing block behind owning buffers.
// The refcount is atomic so buffers can be cloned and released from
// multiple goroutines; data transitions (detach, final release) happen
// under mu so detach-if-unique has no check/act window.
type alloc struct {
	refs atomic.Int64

	mu   sync.Mutex
	data []byte       // nil once detached or fully released
	free func([]byte) // release hook, nil for plain make-backed blocks
}

// newAlloc takes ownership of data with an initial refcount of one.
// free, when non-nil, receives the block after the last release.
func newAlloc(data []byte, free func([]byte)) *alloc {
	a := &alloc{data: data, free: free}
	a.refs.Store(1)
	return a
}

// duplicateAlloc copies src into a fresh owning block. The copy owns its
// memory regardless of where src came from.
func duplicateAlloc(src []byte) *alloc {
	dup := make([]byte, len(src))
	copy(dup, src)
	return newAlloc(dup, nil)
}

func (a *alloc) ref() {
	a.refs.Add(1)
}

// release drops one reference. The last release hands the block to the
// free hook (if any) and empties the alloc. A detached alloc has nothing
// left to hand over, so the hook is skipped.
func (a *alloc) release() {
	if a.refs.Add(-1) != 0 {
		return
	}
	a.mu.Lock()
	data, free := a.data, a.free
	a.data, a.free = nil, nil
	a.mu.Unlock()
	if data != nil && free != nil {
		free(data)
	}
}

// detach empties the alloc and returns the full block without running the
// free hook: responsibility for the memory moves to the caller. The
// uniqueness check and the take share one critical section, so a release
// racing from another holder either makes the alloc unique in time or
// fails the detach with ErrShared; no interleaving hands out a block that
// another buffer still references.
func (a *alloc) detach() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.data == nil {
		return nil, ErrDetached
	}
	if a.refs.Load() != 1 {
		return nil, ErrShared
	}
	data := a.data
	a.data, a.free = nil, nil
	return data, nil
}

// bytes returns the full current extent of the block, nil after detach.
func (a *alloc) bytes() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.data
}

func (a *alloc) unique() bool {
	return a.refs.Load() == 1
}
