package strings

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesStringRoundTrip(t *testing.T) {
	b := []byte("hello")
	s := BytesToString(b)
	assert.Equal(t, "hello", s)
	assert.Equal(t, b, StringToBytes(s))

	assert.Equal(t, "", BytesToString(nil))
	assert.Nil(t, StringToBytes(""))
}

func TestClone(t *testing.T) {
	src := []byte("owned")
	s := BytesToString(src)
	c := Clone(s)
	src[0] = 'X'

	assert.Equal(t, "owned", c, "clone must not share memory with the source")
	assert.Equal(t, "", Clone(""))
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(8)
	b.WriteString("foo")
	n, err := b.Write([]byte("bar"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "foobar", b.String())
	assert.Equal(t, 6, b.Len())

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())
}

func TestSprintfMatchesFmt(t *testing.T) {
	cases := []struct {
		format string
		args   []interface{}
	}{
		{"no args", nil},
		{"%s: %s", []interface{}{"capacity", "record pool exhausted"}},
		{"%d/%d live", []interface{}{3, 8}},
		{"%v", []interface{}{[]int{1, 2, 3}}},
	}
	for _, tc := range cases {
		assert.Equal(t, fmt.Sprintf(tc.format, tc.args...), Sprintf(tc.format, tc.args...))
	}
}

func TestSprintfResultSurvivesBuilderReuse(t *testing.T) {
	first := Sprintf("%s-%d", "value", 1)
	// Churn the pool; the earlier result must not be overwritten.
	for i := 0; i < 100; i++ {
		_ = Sprintf("%s-%d", "other", i)
	}
	assert.Equal(t, "value-1", first)
}
