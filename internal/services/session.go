package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/formedit/internal/app/form/contracts"
	"github.com/light-bringer/formedit/internal/app/form/domain"
	"github.com/light-bringer/formedit/internal/app/form/editctx"
	"github.com/light-bringer/formedit/internal/app/form/navguard"
	"github.com/light-bringer/formedit/internal/pkg/clock"
)

var (
	ErrSessionClosed    = errors.New("edit session is closed")
	ErrUnknownField     = errors.New("unknown field")
	ErrValidationFailed = errors.New("validation failed")
)

// EditSession wires one record through the whole form stack: an
// EditContext that owns the record, a freshly attached EditStateTracker
// listening on its field-changed stream, and a NavigationGuard over the
// tracker's dirty state. A session is built per record instance and torn
// down with Close, which releases the tracker's registration so no
// listener outlives the form — the session owns the whole lifecycle, so
// the registration cannot dangle.
type EditSession struct {
	id      uuid.UUID
	ctx     *editctx.EditContext
	tracker *domain.EditStateTracker
	guard   *navguard.Guard

	releaseFieldChanged func()
	closed              bool
}

// NewEditSession builds the context, tracker and guard for a record. The
// rules are single-field validation rules evaluated on Save.
func NewEditSession(record any, clk clock.Clock, rules []editctx.Rule) (*EditSession, error) {
	ctx, err := editctx.New(record, clk)
	if err != nil {
		return nil, fmt.Errorf("failed to build edit context: %w", err)
	}
	for _, r := range rules {
		ctx.AddRule(r)
	}

	tracker := domain.NewEditStateTracker()
	if err := tracker.Attach(ctx.Bindings()); err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to attach tracker: %w", err)
	}

	// The tracker listens on the context's field-changed stream; the
	// release func is kept so Close can unregister deterministically.
	var stream contracts.ChangeSource = ctx
	release := stream.OnFieldChanged(func(name string) {
		if err := tracker.HandleFieldChanged(name); err != nil {
			log.Warn("field change dropped", "field", name, "error", err)
		}
	})

	s := &EditSession{
		id:                  uuid.New(),
		ctx:                 ctx,
		tracker:             tracker,
		guard:               navguard.New(tracker),
		releaseFieldChanged: release,
	}
	log.Debug("edit session opened", "session", s.id)
	return s, nil
}

// ID returns the session identifier.
func (s *EditSession) ID() uuid.UUID { return s.id }

// Context returns the session's edit context.
func (s *EditSession) Context() *editctx.EditContext { return s.ctx }

// Tracker returns the session's edit-state tracker.
func (s *EditSession) Tracker() *domain.EditStateTracker { return s.tracker }

// Guard returns the session's navigation guard.
func (s *EditSession) Guard() *navguard.Guard { return s.guard }

// SetField writes a tracked field and broadcasts the change in one step.
// The context is the record's sole mutator, so every write notifies.
func (s *EditSession) SetField(name string, value any) error {
	if s.closed {
		return ErrSessionClosed
	}
	b, ok := s.ctx.Binding(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if err := b.Set(value); err != nil {
		return err
	}
	return s.ctx.NotifyFieldChanged(name)
}

// Save validates the record and, when it passes, accepts the current
// values as the new clean baseline. The in-memory record is untouched.
func (s *EditSession) Save() error {
	if s.closed {
		return ErrSessionClosed
	}
	if !s.ctx.Validate() {
		return fmt.Errorf("%w: %d message(s)", ErrValidationFailed, s.ctx.Messages().Count())
	}
	if err := s.tracker.MarkAllClean(); err != nil {
		return err
	}
	log.Debug("session saved", "session", s.id)
	return nil
}

// Revert writes every dirty field's snapshot value back through its
// setter and re-notifies, leaving the tracker clean by its own diff.
func (s *EditSession) Revert() error {
	if s.closed {
		return ErrSessionClosed
	}
	for _, name := range s.tracker.DirtyFields() {
		orig, ok := s.tracker.Original(name)
		if !ok {
			continue
		}
		b, _ := s.ctx.Binding(name)
		if err := b.Set(orig); err != nil {
			return fmt.Errorf("failed to revert %q: %w", name, err)
		}
		if err := s.ctx.NotifyFieldChanged(name); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the tracker's registration, detaches it, and closes the
// context. It must be called exactly once; later calls error.
func (s *EditSession) Close() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true
	s.releaseFieldChanged()
	if err := s.tracker.Detach(); err != nil {
		return err
	}
	s.ctx.Close()
	log.Debug("edit session closed", "session", s.id)
	return nil
}
