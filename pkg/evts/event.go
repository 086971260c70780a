package evts

import "time"

// Event is a named dispatch point holding two ordered handler lists.
// Priority handlers run before normal handlers; both run in insertion
// order. An Event may be locked, after which firing and priority-handler
// mutation require the issued key.
//
// Events are not safe for concurrent use; see the package documentation
// for the single-goroutine ownership rule.
type Event struct {
	name       string
	priority   []*Handler
	handlers   []*Handler
	key        *Key
	inProgress bool
}

// New creates an event with the given display name.
func New(name string) *Event {
	return &Event{name: name}
}

// Name returns the event's display name.
func (e *Event) Name() string {
	return e.name
}

// Lock locks the event and returns the newly issued key. Returns nil if
// the event is already locked; the existing lock is untouched.
func (e *Event) Lock() *Key {
	if e.key != nil {
		return nil
	}
	e.key = newKey()
	return e.key
}

// Unlock clears the lock if key is the exact key issued by Lock, returning
// it. Returns nil and leaves the lock in place on mismatch.
func (e *Event) Unlock(key *Key) *Key {
	if e.key == nil || key != e.key {
		return nil
	}
	e.key = nil
	return key
}

// Locked reports whether the event currently holds a lock.
func (e *Event) Locked() bool {
	return e.key != nil
}

// validate reports whether key grants access: always true while unlocked,
// otherwise only for the exact issued key.
func (e *Event) validate(key *Key) bool {
	return e.key == nil || key == e.key
}

// AddHandler appends h to the normal handler list. Adding a handle already
// present is a no-op. Normal handler mutation is never key-gated.
func (e *Event) AddHandler(h *Handler) {
	e.handlers = appendHandler(e.handlers, h)
}

// AddHandlers appends each handle in order, skipping duplicates.
func (e *Event) AddHandlers(hs ...*Handler) {
	for _, h := range hs {
		e.handlers = appendHandler(e.handlers, h)
	}
}

// RemoveHandler removes h from the normal handler list. Removing a handle
// that is not present is a no-op.
func (e *Event) RemoveHandler(h *Handler) {
	e.handlers = removeHandler(e.handlers, h)
}

// RemoveHandlers removes each handle, ignoring those not present.
func (e *Event) RemoveHandlers(hs ...*Handler) {
	for _, h := range hs {
		e.handlers = removeHandler(e.handlers, h)
	}
}

// ClearHandlers removes all normal handlers.
func (e *Event) ClearHandlers() {
	e.handlers = nil
}

// NumHandlers returns the normal handler count.
func (e *Event) NumHandlers() int {
	return len(e.handlers)
}

// AddPriorityHandler appends h to the priority handler list. While the
// event is locked the issued key must be presented; pass nil while
// unlocked. Key mismatch and duplicate handles are silent no-ops.
func (e *Event) AddPriorityHandler(key *Key, h *Handler) {
	if !e.validate(key) {
		return
	}
	e.priority = appendHandler(e.priority, h)
}

// AddPriorityHandlers appends each handle in order under the same key rule
// as AddPriorityHandler.
func (e *Event) AddPriorityHandlers(key *Key, hs ...*Handler) {
	if !e.validate(key) {
		return
	}
	for _, h := range hs {
		e.priority = appendHandler(e.priority, h)
	}
}

// RemovePriorityHandler removes h from the priority handler list, subject
// to the same key rule as AddPriorityHandler.
func (e *Event) RemovePriorityHandler(key *Key, h *Handler) {
	if !e.validate(key) {
		return
	}
	e.priority = removeHandler(e.priority, h)
}

// RemovePriorityHandlers removes each handle, ignoring those not present.
func (e *Event) RemovePriorityHandlers(key *Key, hs ...*Handler) {
	if !e.validate(key) {
		return
	}
	for _, h := range hs {
		e.priority = removeHandler(e.priority, h)
	}
}

// ClearPriorityHandlers removes all priority handlers, subject to the key
// rule.
func (e *Event) ClearPriorityHandlers(key *Key) {
	if !e.validate(key) {
		return
	}
	e.priority = nil
}

// NumPriorityHandlers returns the priority handler count.
func (e *Event) NumPriorityHandlers() int {
	return len(e.priority)
}

// Fire dispatches the event: priority handlers in insertion order, then
// normal handlers in insertion order, stopping after the handler that
// cancels the firing. The firing record is returned whether or not it was
// cancelled.
//
// Fire returns nil, invoking no handlers, when the key fails to validate
// or when the event is already mid-fire (a handler re-firing its own event
// is rejected; firing a different event is fine).
func (e *Event) Fire(key *Key, opts ...FireOption) *Firing {
	if !e.validate(key) {
		return nil
	}
	return e.fire(opts)
}

// fire is the key-less dispatch path shared by Fire and compound relays.
func (e *Event) fire(opts []FireOption) *Firing {
	if e.inProgress {
		return nil
	}

	cfg := fireConfig{time: time.Now()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.evt == nil {
		cfg.evt = e
	}

	f := &Firing{
		caller: cfg.caller,
		evt:    cfg.evt,
		data:   cfg.data,
		time:   cfg.time,
	}

	e.inProgress = true
	defer func() { e.inProgress = false }()

	// Cancellation is checked after each invocation so the cancelling
	// handler's own side effects are always observed.
	for _, h := range e.priority {
		h.call(f, e)
		if f.cancelled {
			return f
		}
	}
	for _, h := range e.handlers {
		h.call(f, e)
		if f.cancelled {
			return f
		}
	}
	return f
}
