// Package smallobj provides adaptive value containers that choose, per
// type, between storing a value inline and storing it once in a shared,
// reference-counted pool record.
//
// Small trivially copyable values are cheaper to copy than to share:
// for those the container is the value, with no indirection and no
// synchronization. Everything else is constructed once inside a record
// issued by a per-processor pool and shared between any number of
// handles; the handle whose release drops the record's use count to
// zero returns the slot to the pool that issued it, whichever goroutine
// that happens on.
//
// # Key Packages
//
//	pkg/small    - container variants, record pools and the pool registry
//	pkg/errors   - structured error handling
//	pkg/logger   - structured logging
//	pkg/metrics  - Prometheus collector over the pool registry
//	pkg/strings  - low-allocation string building
//	pkg/testutil - test helpers
//
// # Quick Start
//
//	s, err := small.NewShared("kek")
//	if err != nil {
//	    return err
//	}
//	s1 := s.Clone()
//	fmt.Println(s.Value(), s1.Value()) // "kek kek"
//	s.Release()
//	fmt.Println(s1.Value()) // still "kek"
//	s1.Release()            // record returns to its pool
//
// Types that pass the inline predicate skip all of that:
//
//	c := small.NewInline[int32](3) // plain value, copy at will
package smallobj
