package buf

import (
	"math/bits"
	"sync"
)

// Pool hands out and takes back byte blocks. NewFromPool wires a Pool
// into an owning buffer so the last Release recycles the block instead of
// leaving it to the garbage collector.
type Pool interface {
	// Get returns a block of length n.
	Get(n int) []byte
	// Put takes back a block that is no longer in use.
	Put(p []byte)
}

const (
	slabMinBits = 6  // smallest class: 64 B
	slabMaxBits = 20 // largest class: 1 MiB
	slabClasses = slabMaxBits - slabMinBits + 1
)

// SlabPool recycles blocks in power-of-two size classes backed by
// sync.Pool. Get returns a block of length n with capacity rounded up to
// the class size; requests above the largest class fall through to plain
// allocation. Recycled blocks are not zeroed.
//
// The zero value is ready to use and safe for concurrent use.
type SlabPool struct {
	classes [slabClasses]sync.Pool
}

func (p *SlabPool) Get(n int) []byte {
	if n > 1<<slabMaxBits {
		return make([]byte, n)
	}
	idx := classFor(n)
	if v := p.classes[idx].Get(); v != nil {
		return (*v.(*[]byte))[:n]
	}
	blk := make([]byte, 1<<(slabMinBits+idx))
	return blk[:n]
}

// Put files the block back by capacity class. Blocks whose capacity is
// not an exact class size (including anything that never came from the
// pool) are dropped to the GC.
func (p *SlabPool) Put(b []byte) {
	c := cap(b)
	if c < 1<<slabMinBits || c > 1<<slabMaxBits || c&(c-1) != 0 {
		return
	}
	blk := b[:c]
	p.classes[bits.TrailingZeros(uint(c))-slabMinBits].Put(&blk)
}

// classFor maps a length in (0, 1<<slabMaxBits] to its size class index.
func classFor(n int) int {
	if n <= 1<<slabMinBits {
		return 0
	}
	return bits.Len(uint(n-1)) - slabMinBits
}
