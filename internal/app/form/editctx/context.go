package editctx

import (
	"time"

	"github.com/GianlucaGuarini/go-observable"
	"github.com/google/uuid"

	"github.com/light-bringer/formedit/internal/app/form/contracts"
	"github.com/light-bringer/formedit/internal/pkg/clock"
)

// Observable event names.
const (
	EventFieldChanged           = "field_changed"
	EventValidationStateChanged = "validation_state_changed"
)

// EditContext is the form-side collaborator of the edit-state tracker. It
// owns the record under edit, resolves its tracked fields, fans out
// field-changed notifications to listeners, and routes validation
// messages to fields. The context is the record's sole mutator: every
// write goes through a binding's setter followed by NotifyFieldChanged.
//
// All methods are meant to be called from a single goroutine, mirroring a
// serial UI event queue.
type EditContext struct {
	record   any
	bindings []contracts.FieldBinding
	byName   map[string]contracts.FieldBinding

	clk         clock.Clock
	lastChanged map[string]time.Time

	rules    []Rule
	messages *MessageStore

	ob     *observable.Observable
	subs   map[uuid.UUID]subscription
	closed bool
}

type subscription struct {
	event string
	cb    func(args ...interface{})
}

// New builds an EditContext for the given record, discovering tracked
// fields from its struct tags.
func New(record any, clk clock.Clock) (*EditContext, error) {
	bindings, err := DiscoverFields(record)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]contracts.FieldBinding, len(bindings))
	for _, b := range bindings {
		byName[b.Name] = b
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &EditContext{
		record:      record,
		bindings:    bindings,
		byName:      byName,
		clk:         clk,
		lastChanged: make(map[string]time.Time),
		messages:    NewMessageStore(),
		ob:          observable.New(),
		subs:        make(map[uuid.UUID]subscription),
	}, nil
}

// Record returns the record under edit.
func (c *EditContext) Record() any {
	return c.record
}

// Bindings returns the resolved tracked-field bindings in declaration
// order.
func (c *EditContext) Bindings() []contracts.FieldBinding {
	return c.bindings
}

// Binding looks up a tracked field by name.
func (c *EditContext) Binding(name string) (contracts.FieldBinding, bool) {
	b, ok := c.byName[name]
	return b, ok
}

// NotifyFieldChanged broadcasts that a field's value changed. Names
// outside the tracked set are still broadcast; listeners that don't know
// them ignore them.
func (c *EditContext) NotifyFieldChanged(name string) error {
	if c.closed {
		return ErrContextClosed
	}
	c.lastChanged[name] = c.clk.Now()
	c.ob.Trigger(EventFieldChanged, name)
	return nil
}

// OnFieldChanged registers fn for field-changed broadcasts. The returned
// release func unregisters it and is safe to call more than once.
func (c *EditContext) OnFieldChanged(fn func(field string)) (release func()) {
	return c.on(EventFieldChanged, func(args ...interface{}) {
		if len(args) == 0 {
			return
		}
		if name, ok := args[0].(string); ok {
			fn(name)
		}
	})
}

// OnValidationStateChanged registers fn for validation runs; fn receives
// whether the record passed.
func (c *EditContext) OnValidationStateChanged(fn func(valid bool)) (release func()) {
	return c.on(EventValidationStateChanged, func(args ...interface{}) {
		if len(args) == 0 {
			return
		}
		if valid, ok := args[0].(bool); ok {
			fn(valid)
		}
	})
}

// LastChanged returns when a field was last reported changed.
func (c *EditContext) LastChanged(name string) (time.Time, bool) {
	t, ok := c.lastChanged[name]
	return t, ok
}

// AddRule registers a single-field validation rule.
func (c *EditContext) AddRule(r Rule) {
	c.rules = append(c.rules, r)
}

// Validate runs every rule, rewrites the message store, and broadcasts
// the outcome. It returns true when no messages were produced.
func (c *EditContext) Validate() bool {
	if c.closed {
		return false
	}
	c.runRules()
	valid := c.messages.Count() == 0
	c.ob.Trigger(EventValidationStateChanged, valid)
	return valid
}

// Messages returns the validation message store.
func (c *EditContext) Messages() *MessageStore {
	return c.messages
}

// Close releases every registration. Further notifications error and
// further registrations hand back inert release funcs.
func (c *EditContext) Close() {
	if c.closed {
		return
	}
	for id, sub := range c.subs {
		c.ob.Off(sub.event, sub.cb)
		delete(c.subs, id)
	}
	c.closed = true
}

func (c *EditContext) on(event string, cb func(args ...interface{})) (release func()) {
	if c.closed {
		return func() {}
	}
	id := uuid.New()
	c.subs[id] = subscription{event: event, cb: cb}
	c.ob.On(event, cb)
	return func() {
		if sub, ok := c.subs[id]; ok {
			c.ob.Off(sub.event, sub.cb)
			delete(c.subs, id)
		}
	}
}
