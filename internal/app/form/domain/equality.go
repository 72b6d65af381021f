package domain

import (
	"time"

	"github.com/google/go-cmp/cmp"
)

// valuesEqual compares a field's current value against its snapshot using
// the value's natural equality: time.Time by instant, primitives and
// strings by ==, everything structured by cmp.Equal rather than reference
// identity. Structured field values must either expose only exported
// fields or carry an Equal method for cmp to use.
func valuesEqual(a, b any) bool {
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	}
	switch a.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return a == b
	}
	return cmp.Equal(a, b)
}
