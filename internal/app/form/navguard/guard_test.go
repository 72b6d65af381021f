package navguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDirtyState struct{ dirty bool }

func (f *fakeDirtyState) HasChanges() bool        { return f.dirty }
func (f *fakeDirtyState) Dirty(field string) bool { return f.dirty }

func TestGuard_Confirm(t *testing.T) {
	t.Run("clean form allows navigation", func(t *testing.T) {
		g := New(&fakeDirtyState{dirty: false})
		d := g.Confirm("/counter")
		assert.True(t, d.Allowed)
		assert.False(t, d.Forced)
		assert.Equal(t, "/counter", d.Target)
	})

	t.Run("dirty form blocks navigation", func(t *testing.T) {
		g := New(&fakeDirtyState{dirty: true})
		d := g.Confirm("/counter")
		assert.False(t, d.Allowed)
	})

	t.Run("force allows exactly one navigation", func(t *testing.T) {
		g := New(&fakeDirtyState{dirty: true})
		g.Force()
		assert.True(t, g.ForceArmed())

		first := g.Confirm("/counter")
		assert.True(t, first.Allowed)
		assert.True(t, first.Forced)
		assert.False(t, g.ForceArmed())

		second := g.Confirm("/counter")
		assert.False(t, second.Allowed)
	})

	t.Run("force is consumed even when not needed", func(t *testing.T) {
		state := &fakeDirtyState{dirty: false}
		g := New(state)
		g.Force()

		d := g.Confirm("/home")
		assert.True(t, d.Allowed)
		assert.True(t, d.Forced)

		state.dirty = true
		assert.False(t, g.Confirm("/home").Allowed)
	})
}
