package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValuesEqual(t *testing.T) {
	t.Run("primitives compare by value", func(t *testing.T) {
		assert.True(t, valuesEqual("Freezing", "Freezing"))
		assert.False(t, valuesEqual("Freezing", "Hot"))
		assert.True(t, valuesEqual(int64(21), int64(21)))
		assert.False(t, valuesEqual(int64(21), int64(22)))
		assert.True(t, valuesEqual(nil, nil))
	})

	t.Run("times compare by instant", func(t *testing.T) {
		utc := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
		shifted := utc.In(time.FixedZone("plus2", 2*60*60))
		assert.True(t, valuesEqual(utc, shifted))
		assert.False(t, valuesEqual(utc, utc.Add(time.Second)))
		assert.False(t, valuesEqual(utc, "2026-08-25"))
	})

	t.Run("structured values compare by content", func(t *testing.T) {
		type span struct{ Lo, Hi int }
		assert.True(t, valuesEqual(span{1, 2}, span{1, 2}))
		assert.False(t, valuesEqual(span{1, 2}, span{1, 3}))
		assert.True(t, valuesEqual([]string{"a", "b"}, []string{"a", "b"}))
		assert.False(t, valuesEqual([]string{"a"}, []string{"b"}))
	})
}
