package contracts

// FieldBinding joins a stable field name with accessors for its current
// value. The tracker only ever calls Get; Set exists for the edit context
// and session layer (revert writes the snapshot value back through it).
type FieldBinding struct {
	Name string
	Get  func() any
	Set  func(value any) error
}

// ChangeSource is the field-changed notification stream a tracker listens
// on. The returned release func unregisters the callback; callers must
// invoke it exactly once when the listening scope ends.
type ChangeSource interface {
	OnFieldChanged(fn func(field string)) (release func())
}

// DirtyState is the read side of a tracker, consumed by components that
// only need to ask whether edits are pending (the navigation guard).
type DirtyState interface {
	HasChanges() bool
	Dirty(field string) bool
}
