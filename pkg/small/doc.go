// Package small implements adaptive value containers backed by
// per-processor record pools.
//
// # Storage strategies
//
// Every type classifies, once, as inline or pooled (see Inlined):
//
//   - Inline[T] holds the value directly. Small trivially copyable
//     values and types that are already shared handles gain nothing
//     from pooling; copying them is cheaper than a lock plus an atomic.
//   - Shared[T] constructs the value once inside a Record issued by a
//     Pool and shares it between handles via an atomic use count.
//
// # Pools and the registry
//
// A Pool serializes all slot allocation and reclamation for one value
// type behind a single mutex. Use counting happens outside that lock:
// Clone and Release touch only the record's atomic counter, and the
// one Release that observes zero returns the slot.
//
// GetPool hands out pools sharded per scheduler processor, so
// concurrent constructors rarely contend on a single free list. Records
// cross goroutines freely; each handle carries the issuing pool, so the
// slot comes home no matter where the last handle dies.
//
// # Failure modes
//
// Capacity-bounded pools refuse allocation with a structured capacity
// error. Nothing else fails; misuse of the handle contract (release
// after release) panics.
package small
