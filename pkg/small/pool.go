package small

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/zhelenskiy/smallobj/pkg/errors"
)

// Option configures a Pool.
type Option func(*poolOptions)

type poolOptions struct {
	capacity int
	logger   *zap.Logger
}

// WithCapacity bounds the number of records the pool may have live at
// once. Alloc and Construct fail with a capacity error when the bound is
// reached; freeing a slot makes room again. Zero, the default, means
// unbounded.
func WithCapacity(n int) Option {
	return func(o *poolOptions) { o.capacity = n }
}

// WithLogger sets the logger used for pool-level events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *poolOptions) { o.logger = logger }
}

// Stats is a snapshot of a pool's counters.
type Stats struct {
	// Constructed is the number of records built, whether the slot was
	// fresh or reused.
	Constructed int64
	// Reused is the number of allocations served from the free list.
	Reused int64
	// Destroyed is the number of records destroyed when their last
	// handle was released.
	Destroyed int64
	// Freed is the number of slots returned with the payload already
	// consumed by the caller.
	Freed int64
	// Live is the number of records issued and not yet returned.
	Live int64
}

// Pool issues and reclaims Record storage for one value type. All four
// slot operations are serialized by a single mutex; the use counts on
// issued records deliberately live outside it (see Record), so the lock
// is only contended by allocation and reclamation traffic.
//
// Pools are obtained from the registry via GetPool, or built standalone
// with NewPool when the caller wants a capacity bound or an isolated
// accounting domain.
type Pool[T any] struct {
	mu   sync.Mutex
	free []*Record[T]

	capacity int
	logger   *zap.Logger

	stats struct {
		constructed atomic.Int64
		reused      atomic.Int64
		destroyed   atomic.Int64
		freed       atomic.Int64
		live        atomic.Int64
	}
}

// NewPool creates an empty pool.
func NewPool[T any](opts ...Option) *Pool[T] {
	o := poolOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return &Pool[T]{
		capacity: o.capacity,
		logger:   o.logger,
	}
}

// Alloc takes a raw slot from the pool: the payload is whatever the slot
// last held and the use count is unset. Callers almost always want
// Construct; Alloc exists for the symmetric raw path alongside Free.
func (p *Pool[T]) Alloc() (*Record[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allocLocked()
}

// Construct allocates a slot, stores value in it and hands the record
// out with exactly one live handle accounted for.
//
// Storage exhaustion on a capacity-bounded pool is the only failure
// mode. It is returned, not retried: the caller decides whether to shed
// load or abort.
func (p *Pool[T]) Construct(value T) (*Record[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	rec, err := p.allocLocked()
	if err != nil {
		return nil, err
	}
	rec.value = value
	rec.uses.Store(1)
	p.stats.constructed.Add(1)
	return rec, nil
}

func (p *Pool[T]) allocLocked() (*Record[T], error) {
	if p.capacity > 0 && p.stats.live.Load() >= int64(p.capacity) {
		p.logger.Warn("record pool exhausted", zap.Int("capacity", p.capacity))
		return nil, errors.New(errors.ErrorTypeCapacity, "record pool exhausted").
			WithDetail("capacity", p.capacity)
	}
	var rec *Record[T]
	if n := len(p.free); n > 0 {
		rec = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		p.stats.reused.Add(1)
	} else {
		rec = new(Record[T])
	}
	p.stats.live.Add(1)
	return rec, nil
}

// Free returns a slot whose payload the caller has already consumed.
// Nothing is cleared; the slot's contents are overwritten by the next
// Construct.
func (p *Pool[T]) Free(rec *Record[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, rec)
	p.stats.freed.Add(1)
	p.stats.live.Add(-1)
}

// Destroy zeroes the slot's payload, so the reclaimed slot does not pin
// whatever the value referenced, then returns the slot to the free list.
// This is the path taken when a record's last handle is released.
func (p *Pool[T]) Destroy(rec *Record[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var zero T
	rec.value = zero
	p.free = append(p.free, rec)
	p.stats.destroyed.Add(1)
	p.stats.live.Add(-1)
}

// Stats returns a snapshot of the pool's counters. The counters are
// read without the pool lock and may be mutually inconsistent for an
// instant during concurrent traffic.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Constructed: p.stats.constructed.Load(),
		Reused:      p.stats.reused.Load(),
		Destroyed:   p.stats.destroyed.Load(),
		Freed:       p.stats.freed.Load(),
		Live:        p.stats.live.Load(),
	}
}

// FreeSlots reports the current free-list length.
func (p *Pool[T]) FreeSlots() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
