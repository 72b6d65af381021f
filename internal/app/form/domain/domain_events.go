package domain

// EventDirtyStateChanged is the observable event the tracker triggers when
// a field's dirty flag transitions.
const EventDirtyStateChanged = "dirty_state_changed"

// DirtyStateChange describes a single dirty-flag transition.
type DirtyStateChange struct {
	// Field is the tracked field whose flag transitioned.
	Field string
	// FieldDirty is the field's flag after the transition.
	FieldDirty bool
	// Dirty is the aggregate state after the transition.
	Dirty bool
}
