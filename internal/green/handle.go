package green

import (
	"fmt"
	"sync/atomic"
)

// refCeiling plays the role of the isize::MAX ceiling used by the thin
// reference-counted handles this type is modeled on, set at 2^62-1 (half
// the int64 maximum) so the post-increment check fires well before the
// counter could wrap: past this point a runaway clone loop is a bug, not a
// workload, and it is safer to panic than to risk wraparound and a
// use-after-free-shaped double free of the logical reference count.
const refCeiling = 1<<62 - 1

// box is the single heap allocation backing a Handle: one atomic refcount
// plus the immutable value. A *box[T] is exactly one machine word on the
// stack wherever it is held, which is the property the thin-handle contract
// in the core specification cares about — Go already gives this for free
// via ordinary pointer semantics, so box carries only the refcount on top.
type box[T any] struct {
	refs  atomic.Int64
	value T
}

func newBox[T any](v T) *box[T] {
	b := &box[T]{value: v}
	b.refs.Store(1)
	return b
}

// clone records a new strong reference to b and returns b unchanged, in the
// manner of an Arc::clone: no data is copied, only the counter moves.
func (b *box[T]) clone() *box[T] {
	n := b.refs.Add(1)
	if n > refCeiling {
		panic(fmt.Sprintf("green: refcount overflow (%d)", n))
	}
	return b
}

// release drops one strong reference. It reports whether this was the last
// outstanding reference (the previous count was 1). Go's garbage collector,
// not this method, is what actually reclaims b's memory once nothing
// reachable still holds the pointer; the counter exists so reference
// bookkeeping stays independently verifiable (see the refcount-safety
// property in the top-level tests), not to drive manual deallocation.
func (b *box[T]) release() (last bool) {
	n := b.refs.Add(-1)
	if n < 0 {
		panic("green: released a handle more times than it was cloned")
	}
	return n == 0
}

func (b *box[T]) refCount() int64 {
	return b.refs.Load()
}

// tryMut returns a mutable pointer to the value iff b has exactly one
// strong reference. No type in this package currently exercises this once a
// leaf or node has been handed to a cache — everything here is immutable
// post-construction — but the accessor is part of the handle contract this
// type implements and is exercised directly in handle_test.go.
func (b *box[T]) tryMut() (*T, bool) {
	if b.refs.Load() == 1 {
		return &b.value, true
	}
	return nil, false
}
