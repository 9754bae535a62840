package small

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type coords struct {
	X, Y, Z float64
}

type fullWidth [8]int64 // exactly MaxInlineSize bytes

type overWidth [9]int64 // one word past the threshold

type ownedBuffer struct {
	Name  string
	Items []int
}

func TestInlinedTrivialSmallTypes(t *testing.T) {
	assert.True(t, Inlined[int32]())
	assert.True(t, Inlined[bool]())
	assert.True(t, Inlined[complex128]())
	assert.True(t, Inlined[coords]())
	assert.True(t, Inlined[fullWidth]())
	assert.True(t, Inlined[[4]uint16]())
}

func TestInlinedRejectsLargeTypes(t *testing.T) {
	assert.False(t, Inlined[overWidth]())
	assert.False(t, Inlined[[100]byte]())
}

func TestInlinedRejectsIndirection(t *testing.T) {
	assert.False(t, Inlined[string]())
	assert.False(t, Inlined[[]byte]())
	assert.False(t, Inlined[ownedBuffer]())
	assert.False(t, Inlined[[2]string]())
	assert.False(t, Inlined[struct{ P *int }]())
}

func TestInlinedSharedHandleKinds(t *testing.T) {
	// These already share their referent on copy; re-pooling them
	// would be pure overhead.
	assert.True(t, Inlined[*ownedBuffer]())
	assert.True(t, Inlined[chan int]())
	assert.True(t, Inlined[map[string]int]())
	assert.True(t, Inlined[func()]())
}

func TestInlinedDeterministic(t *testing.T) {
	first := Inlined[ownedBuffer]()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Inlined[ownedBuffer]())
	}
}
