package domain

import (
	"fmt"

	"github.com/GianlucaGuarini/go-observable"
	"github.com/google/uuid"

	"github.com/light-bringer/formedit/internal/app/form/contracts"
)

// EditStateTracker maintains per-field dirty state for a record under edit.
// At attach time it snapshots every tracked field's value; on each
// field-changed notification it re-reads the field and diffs against the
// snapshot. The surrounding edit context owns the record and is its sole
// mutator; the tracker only reads through the bindings' getters.
//
// The tracker moves unattached -> attached -> detached exactly once per
// instance. Re-attachment to a new record means a new tracker, so a
// snapshot is never reused across record instances.
type EditStateTracker struct {
	fields   map[string]contracts.FieldBinding
	snapshot map[string]any
	dirty    map[string]bool

	// dirtyCount keeps HasChanges O(1); consistent after every transition.
	dirtyCount int

	attached bool
	detached bool

	ob   *observable.Observable
	subs map[uuid.UUID]func(args ...interface{})
}

// NewEditStateTracker creates an unattached tracker.
func NewEditStateTracker() *EditStateTracker {
	return &EditStateTracker{
		ob:   observable.New(),
		subs: make(map[uuid.UUID]func(args ...interface{})),
	}
}

// Attach captures the baseline snapshot from the given bindings and
// initializes every dirty flag to false. It must be called exactly once;
// a second call returns ErrAlreadyAttached and a call after Detach
// returns ErrTrackerDetached.
func (t *EditStateTracker) Attach(fields []contracts.FieldBinding) error {
	if t.detached {
		return ErrTrackerDetached
	}
	if t.attached {
		return ErrAlreadyAttached
	}
	if len(fields) == 0 {
		return ErrNoFields
	}

	t.fields = make(map[string]contracts.FieldBinding, len(fields))
	t.snapshot = make(map[string]any, len(fields))
	t.dirty = make(map[string]bool, len(fields))

	for _, f := range fields {
		if f.Get == nil {
			return fmt.Errorf("%w: %q", ErrNilGetter, f.Name)
		}
		t.fields[f.Name] = f
		t.snapshot[f.Name] = f.Get()
		t.dirty[f.Name] = false
	}

	t.attached = true
	return nil
}

// HandleFieldChanged reacts to a field-changed notification. Untracked
// field names are ignored; for tracked names the current value is diffed
// against the snapshot and the dirty flag updated. A DirtyStateChange
// event fires only when the flag actually transitions, so repeated
// notifications with no value change stay silent.
func (t *EditStateTracker) HandleFieldChanged(name string) error {
	if err := t.requireAttached(); err != nil {
		return err
	}
	f, ok := t.fields[name]
	if !ok {
		return nil
	}
	t.setDirty(name, !valuesEqual(f.Get(), t.snapshot[name]))
	return nil
}

// HasChanges reports whether any tracked field differs from its snapshot.
func (t *EditStateTracker) HasChanges() bool {
	return t.dirtyCount > 0
}

// Dirty reports whether the named field differs from its snapshot.
// Untracked names are never dirty.
func (t *EditStateTracker) Dirty(field string) bool {
	return t.dirty[field]
}

// DirtyFields returns the names of all currently dirty fields.
func (t *EditStateTracker) DirtyFields() []string {
	fields := make([]string, 0, t.dirtyCount)
	for field, d := range t.dirty {
		if d {
			fields = append(fields, field)
		}
	}
	return fields
}

// Original returns the snapshot value for a tracked field. The second
// return is false for untracked names.
func (t *EditStateTracker) Original(field string) (any, bool) {
	v, ok := t.snapshot[field]
	return v, ok
}

// MarkClean accepts the field's current value as its new baseline: the
// snapshot is refreshed and the dirty flag cleared. Untracked names are
// ignored.
func (t *EditStateTracker) MarkClean(field string) error {
	if err := t.requireAttached(); err != nil {
		return err
	}
	f, ok := t.fields[field]
	if !ok {
		return nil
	}
	t.snapshot[field] = f.Get()
	t.setDirty(field, false)
	return nil
}

// MarkAllClean moves the baseline of every tracked field to its current
// value and clears all dirty flags. Called after a successful save so the
// form reads clean without discarding the in-memory record.
func (t *EditStateTracker) MarkAllClean() error {
	if err := t.requireAttached(); err != nil {
		return err
	}
	for name, f := range t.fields {
		t.snapshot[name] = f.Get()
		t.setDirty(name, false)
	}
	return nil
}

// Subscribe registers fn for DirtyStateChange events. The returned release
// func unregisters it and is safe to call more than once.
func (t *EditStateTracker) Subscribe(fn func(DirtyStateChange)) (release func()) {
	if t.detached {
		return func() {}
	}
	id := uuid.New()
	cb := func(args ...interface{}) {
		if len(args) == 0 {
			return
		}
		if ev, ok := args[0].(DirtyStateChange); ok {
			fn(ev)
		}
	}
	t.subs[id] = cb
	t.ob.On(EventDirtyStateChanged, cb)
	return func() {
		if cb, ok := t.subs[id]; ok {
			t.ob.Off(EventDirtyStateChanged, cb)
			delete(t.subs, id)
		}
	}
}

// Detach releases every subscription and moves the tracker to its terminal
// state. Queries keep answering from the last observed state; mutating
// calls return ErrTrackerDetached.
func (t *EditStateTracker) Detach() error {
	if t.detached {
		return ErrTrackerDetached
	}
	if !t.attached {
		return ErrNotAttached
	}
	for id, cb := range t.subs {
		t.ob.Off(EventDirtyStateChanged, cb)
		delete(t.subs, id)
	}
	t.attached = false
	t.detached = true
	return nil
}

func (t *EditStateTracker) requireAttached() error {
	if t.detached {
		return ErrTrackerDetached
	}
	if !t.attached {
		return ErrNotAttached
	}
	return nil
}

// setDirty records a flag transition and triggers the change event. A
// no-op when the flag already holds the target value, which is what keeps
// redundant notifications from fanning out to the UI layer.
func (t *EditStateTracker) setDirty(field string, dirty bool) {
	if t.dirty[field] == dirty {
		return
	}
	t.dirty[field] = dirty
	if dirty {
		t.dirtyCount++
	} else {
		t.dirtyCount--
	}
	t.ob.Trigger(EventDirtyStateChanged, DirtyStateChange{
		Field:      field,
		FieldDirty: dirty,
		Dirty:      t.dirtyCount > 0,
	})
}
