package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesTypeAndStack(t *testing.T) {
	err := New(ErrorTypeCapacity, "record pool exhausted")
	assert.Equal(t, ErrorTypeCapacity, err.Type)
	assert.Equal(t, "capacity: record pool exhausted", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestNewfFormats(t *testing.T) {
	err := Newf(ErrorTypeValidation, "got %d, want at most %d", 65, 64)
	assert.Equal(t, "validation: got 65, want at most 64", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, ErrorTypeInternal, "constructing record")
	require.NotNil(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal: constructing record: boom", err.Error())

	assert.Nil(t, Wrap(nil, ErrorTypeInternal, "ignored"))
}

func TestWrapKeepsOriginalStack(t *testing.T) {
	inner := New(ErrorTypeCapacity, "exhausted")
	outer := Wrap(inner, ErrorTypeInternal, "construct failed")
	assert.Equal(t, inner.Stack, outer.Stack)
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeCapacity, "exhausted").WithDetail("capacity", 8)
	assert.Equal(t, 8, err.Details["capacity"])
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeCapacity, "exhausted")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, IsType(wrapped, ErrorTypeCapacity))
	assert.True(t, IsCapacity(wrapped))
	assert.False(t, IsType(wrapped, ErrorTypeValidation))
	assert.False(t, IsCapacity(stderrors.New("plain")))
}
