package small

import (
	"reflect"
	"sync"
)

// MaxInlineSize is the largest footprint, in bytes, a trivially copyable
// type may have and still be stored inline.
const MaxInlineSize = 64

// inlineCache memoizes classify per reflect.Type. The decision is a pure
// function of the type, so the first answer is the only answer.
var inlineCache sync.Map // reflect.Type -> bool

// Inlined reports whether values of type T use the inline storage
// strategy rather than a pool-backed shared record.
//
// A type is inlined when duplicating it is a plain bitwise copy of at
// most MaxInlineSize bytes, or when it is already a shared-handle kind
// (pointer, channel, map, func): copying such a header shares the
// referent, so wrapping it in a reference-counted record would only add
// a lock and an allocation on top of the sharing the type provides.
func Inlined[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := inlineCache.Load(t); ok {
		return v.(bool)
	}
	v := classify(t)
	inlineCache.Store(t, v)
	return v
}

func classify(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func:
		return true
	}
	return triviallyCopyable(t) && t.Size() <= MaxInlineSize
}

// triviallyCopyable reports whether a value of t can be duplicated by
// copying its bytes alone: no indirection anywhere in its layout.
func triviallyCopyable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return triviallyCopyable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !triviallyCopyable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
