package small

import "sync/atomic"

// Record is one pool-issued storage cell: a payload constructed once,
// plus the count of live Shared handles referencing it. The count is
// touched only by lone atomic operations, never under the pool lock, so
// cloning and releasing handles does not contend on slot traffic.
type Record[T any] struct {
	value T
	uses  atomic.Int64
}

// Value returns the stored payload.
func (r *Record[T]) Value() T { return r.value }

// Uses returns the current live-handle count. Diagnostic only; it may be
// stale by the time the caller reads it.
func (r *Record[T]) Uses() int64 { return r.uses.Load() }

// retain accounts for one more live handle. Called before the new handle
// escapes, so the count never trails the number of handles in existence.
func (r *Record[T]) retain() { r.uses.Add(1) }

// release drops one live handle and reports the remaining count. The
// decrement-and-test is a single atomic Add: however many handles are
// released concurrently, exactly one caller observes zero, and that
// caller owns returning the record to its pool.
func (r *Record[T]) release() int64 {
	n := r.uses.Add(-1)
	if n < 0 {
		panic("smallobj: record released more times than retained")
	}
	return n
}
