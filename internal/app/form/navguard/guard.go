// Package navguard blocks navigation away from a form while unsaved edits
// exist. The bypass for "leave anyway" is a one-shot token armed by Force
// and consumed inside the very Confirm call that honors it, so rapid
// repeated navigation attempts can never observe a stale bypass flag.
package navguard

import "github.com/light-bringer/formedit/internal/app/form/contracts"

// Decision is the outcome of a navigation attempt.
type Decision struct {
	// Target is the destination the caller asked about.
	Target string
	// Allowed reports whether navigation may proceed.
	Allowed bool
	// Forced is true when an armed bypass was consumed to allow it.
	Forced bool
}

// Guard gates navigation on a form's dirty state.
type Guard struct {
	state contracts.DirtyState
	force bool
}

// New creates a Guard over the given dirty state.
func New(state contracts.DirtyState) *Guard {
	return &Guard{state: state}
}

// Force arms a one-shot bypass for the next Confirm call.
func (g *Guard) Force() {
	g.force = true
}

// ForceArmed reports whether a bypass is currently armed.
func (g *Guard) ForceArmed() bool {
	return g.force
}

// Confirm decides a navigation attempt toward target. An armed bypass is
// consumed here, in the same call, whether or not it was needed.
func (g *Guard) Confirm(target string) Decision {
	if g.force {
		g.force = false
		return Decision{Target: target, Allowed: true, Forced: true}
	}
	if g.state.HasChanges() {
		return Decision{Target: target, Allowed: false}
	}
	return Decision{Target: target, Allowed: true}
}
