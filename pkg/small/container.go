package small

// Inline is the container variant for types the classifier stores
// directly: the value lives in the container, copying the container
// copies the value, and there is nothing to release. It never touches
// a pool.
type Inline[T any] struct {
	value T
}

// NewInline wraps value in an inline container.
func NewInline[T any](value T) Inline[T] {
	return Inline[T]{value: value}
}

// Value returns the held value.
func (c Inline[T]) Value() T { return c.value }

// Inlined reports the storage strategy of this container kind.
func (Inline[T]) Inlined() bool { return true }

// Shared is the pooled container variant: the value is constructed once
// inside a pool-issued record and any number of handles alias it. The
// handle whose Release drops the use count to zero destroys the record
// and returns its slot to the issuing pool.
//
// Handles are duplicated with Clone and retired with Release. Copying
// the struct itself aliases the record without accounting for the extra
// handle; don't.
type Shared[T any] struct {
	owner *Pool[T]
	rec   *Record[T]
}

// NewShared stores value in a record from the calling processor's
// registry pool and returns the first handle to it.
func NewShared[T any](value T) (*Shared[T], error) {
	return NewSharedIn(GetPool[T](), value)
}

// NewSharedIn is NewShared with an explicit pool, for callers that want
// a capacity bound or a closed accounting domain.
func NewSharedIn[T any](p *Pool[T], value T) (*Shared[T], error) {
	rec, err := p.Construct(value)
	if err != nil {
		return nil, err
	}
	return &Shared[T]{owner: p, rec: rec}, nil
}

// Clone returns a new handle aliasing the same record. The use count is
// bumped before the new handle exists, so the count never trails the
// number of live handles.
func (s *Shared[T]) Clone() *Shared[T] {
	s.rec.retain()
	return &Shared[T]{owner: s.owner, rec: s.rec}
}

// Value returns the shared value. The record is immutable after
// construction; there is no mutation API.
func (s *Shared[T]) Value() T { return s.rec.Value() }

// Uses returns the record's current live-handle count.
func (s *Shared[T]) Uses() int64 { return s.rec.Uses() }

// Pool returns the pool that issued this handle's record.
func (s *Shared[T]) Pool() *Pool[T] { return s.owner }

// Release retires this handle. The releaser that drops the record's use
// count to zero destroys the record and returns its slot to the issuing
// pool; the single atomic decrement guarantees exactly one releaser does
// so, however many run concurrently. Using a handle after releasing it
// is a contract violation; releasing the same handle twice panics.
func (s *Shared[T]) Release() {
	rec := s.rec
	if rec == nil {
		panic("smallobj: shared handle released twice")
	}
	s.rec = nil
	if rec.release() == 0 {
		s.owner.Destroy(rec)
	}
}

// Inlined reports the storage strategy of this container kind.
func (*Shared[T]) Inlined() bool { return false }
