package small

import (
	"reflect"
	"runtime"
	"sync"
	_ "unsafe"

	"go.uber.org/zap"

	"github.com/zhelenskiy/smallobj/pkg/logger"
)

//go:linkname procPin runtime.procPin
func procPin() int

//go:linkname procUnpin runtime.procUnpin
func procUnpin()

// registry holds one poolSet per value type, created lazily on the first
// GetPool call for that type and never removed: pool identity is stable
// process state.
var registry sync.Map // reflect.Type -> *poolSet[T]

// poolSet is the per-type shard table: one pool per scheduler processor,
// all built together so shard selection never allocates.
type poolSet[T any] struct {
	pools []*Pool[T]
}

func newPoolSet[T any]() *poolSet[T] {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	s := &poolSet[T]{pools: make([]*Pool[T], n)}
	for i := range s.pools {
		s.pools[i] = NewPool[T]()
	}
	return s
}

func (s *poolSet[T]) current() *Pool[T] {
	id := procPin()
	procUnpin()
	if id >= len(s.pools) {
		// GOMAXPROCS grew after the table was built.
		id %= len(s.pools)
	}
	return s.pools[id]
}

// PoolInfo describes one registry pool for diagnostics.
type PoolInfo struct {
	Type      string
	Shard     int
	Stats     Stats
	FreeSlots int
}

// snapshotter lets the registry walk its type-erased entries.
type snapshotter interface {
	infos() []PoolInfo
}

func (s *poolSet[T]) infos() []PoolInfo {
	name := reflect.TypeOf((*T)(nil)).Elem().String()
	out := make([]PoolInfo, len(s.pools))
	for i, p := range s.pools {
		out[i] = PoolInfo{
			Type:      name,
			Shard:     i,
			Stats:     p.Stats(),
			FreeSlots: p.FreeSlots(),
		}
	}
	return out
}

// GetPool returns the calling processor's record pool for type T,
// creating the type's pool table on first use. Two consecutive calls
// from the same processor return the identical pool; goroutines running
// on different processors may see distinct pools.
//
// A record always returns to the pool that issued it, whichever
// goroutine releases the last handle: every handle carries its issuing
// pool pointer, so the pool stays reachable for as long as any record
// it issued is live, even after the constructing goroutine has exited.
func GetPool[T any]() *Pool[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	v, ok := registry.Load(t)
	if !ok {
		set := newPoolSet[T]()
		var loaded bool
		v, loaded = registry.LoadOrStore(t, set)
		if !loaded {
			logger.Get().Debug("created record pools",
				zap.String("type", t.String()),
				zap.Int("shards", len(set.pools)))
		}
	}
	return v.(*poolSet[T]).current()
}

// Pools returns a snapshot of every registry pool's identity and
// counters. This is the diagnostic surface used by tests and the
// metrics collector; pools built directly with NewPool are not included.
func Pools() []PoolInfo {
	var out []PoolInfo
	registry.Range(func(_, v any) bool {
		out = append(out, v.(snapshotter).infos()...)
		return true
	})
	return out
}
