package small

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineContainer(t *testing.T) {
	c := NewInline[int32](3)
	assert.True(t, c.Inlined())
	assert.Equal(t, int32(3), c.Value())

	// Plain struct copy is the copy operation.
	cp := c
	assert.Equal(t, int32(3), cp.Value())
}

type inlineProbe struct {
	A, B int32
}

func TestInlineNeverTouchesPools(t *testing.T) {
	require.True(t, Inlined[inlineProbe]())

	c := NewInline(inlineProbe{A: 1, B: 2})
	cp := c
	_ = cp.Value()

	for _, info := range Pools() {
		assert.False(t, strings.Contains(info.Type, "inlineProbe"),
			"inline containers must not create or touch pools")
	}
}

func TestSharedStringScenario(t *testing.T) {
	s, err := NewShared("kek")
	require.NoError(t, err)
	assert.False(t, s.Inlined())

	s1 := s.Clone()
	assert.Equal(t, "kek", s.Value())
	assert.Equal(t, "kek", s1.Value())

	// Releasing one handle must not invalidate the other.
	s.Release()
	assert.Equal(t, "kek", s1.Value())
	s1.Release()
}

func TestSharedCloneReleaseAccounting(t *testing.T) {
	p := NewPool[string]()
	s, err := NewSharedIn(p, "value")
	require.NoError(t, err)

	handles := []*Shared[string]{s}
	for i := 0; i < 7; i++ {
		handles = append(handles, s.Clone())
	}
	assert.Equal(t, int64(8), s.Uses())

	for _, h := range handles[:7] {
		h.Release()
	}

	last := handles[7]
	assert.Equal(t, int64(1), last.Uses())
	assert.Equal(t, "value", last.Value())
	assert.Equal(t, int64(0), p.Stats().Destroyed, "record must survive until the last handle goes")

	last.Release()
	st := p.Stats()
	assert.Equal(t, int64(1), st.Destroyed)
	assert.Equal(t, int64(0), st.Live)
}

func TestSharedSlotReturnsToIssuingPool(t *testing.T) {
	p := NewPool[string]()
	s, err := NewSharedIn(p, "first")
	require.NoError(t, err)
	rec := s.rec
	s.Release()

	s2, err := NewSharedIn(p, "second")
	require.NoError(t, err)
	assert.Same(t, rec, s2.rec, "the released slot should be reused by its pool")
	assert.Equal(t, "second", s2.Value())
	s2.Release()
}

func TestSharedPoolIdentity(t *testing.T) {
	p := NewPool[string]()
	s, err := NewSharedIn(p, "x")
	require.NoError(t, err)
	assert.Same(t, p, s.Pool())

	c := s.Clone()
	assert.Same(t, p, c.Pool(), "clones share the issuing pool")
	c.Release()
	s.Release()
}

func TestSharedDoubleReleasePanics(t *testing.T) {
	s, err := NewShared("boom")
	require.NoError(t, err)
	s.Release()
	assert.Panics(t, func() { s.Release() })
}

func TestSharedCapacityErrorSurfacesToConstructor(t *testing.T) {
	p := NewPool[string](WithCapacity(1))

	a, err := NewSharedIn(p, "a")
	require.NoError(t, err)

	_, err = NewSharedIn(p, "b")
	require.Error(t, err)

	a.Release()
	b, err := NewSharedIn(p, "b")
	require.NoError(t, err)
	b.Release()
}
