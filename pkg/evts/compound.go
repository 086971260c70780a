package evts

// Compound is an event that aggregates firings from bound source events.
// Binding a source installs a relay in the source's priority list that
// re-fires the compound with the source firing's caller, data, identity,
// and timestamp.
//
// A Compound carries its own lock, independent of the embedded Event's key
// state, scoped to Bind, Unbind, and Fire. Handler management on the
// compound goes through the embedded Event and is not gated by the
// compound key.
//
// Bindings hold plain references: a source is never released automatically.
// Unbind a source before discarding either side of the relationship.
type Compound struct {
	Event

	key      *Key
	bindings []*binding
}

// binding records one bound source: the key presented for the source at
// bind time and the relay handle installed in its priority list, so Unbind
// can remove exactly that installation.
type binding struct {
	source    *Event
	sourceKey *Key
	relay     *Handler
}

// NewCompound creates a compound event with the given display name.
func NewCompound(name string) *Compound {
	return &Compound{Event: Event{name: name}}
}

// Lock locks the compound and returns the newly issued key. Returns nil if
// the compound is already locked. The compound key gates Bind, Unbind, and
// Fire; it does not touch the embedded Event's lock.
func (c *Compound) Lock() *Key {
	if c.key != nil {
		return nil
	}
	c.key = newKey()
	return c.key
}

// Unlock clears the compound lock if key matches exactly, returning it.
// Returns nil on mismatch.
func (c *Compound) Unlock(key *Key) *Key {
	if c.key == nil || key != c.key {
		return nil
	}
	c.key = nil
	return key
}

// Locked reports whether the compound currently holds its own lock.
func (c *Compound) Locked() bool {
	return c.key != nil
}

func (c *Compound) validateCompound(key *Key) bool {
	return c.key == nil || key == c.key
}

// Fire dispatches the compound under its own key. The dispatch itself
// (handler ordering, cancellation, the in-progress guard, the returned
// firing record) follows the Event contract.
func (c *Compound) Fire(key *Key, opts ...FireOption) *Firing {
	if !c.validateCompound(key) {
		return nil
	}
	return c.Event.fire(opts)
}

// Bind binds src as a source of the compound: every firing of src re-fires
// the compound, reporting the source's identity and timestamp. key must
// validate against the compound's lock and srcKey against the source's;
// pass nil for either side that is unlocked.
//
// Binding the compound to itself fails. Binding a source that is already
// bound is an idempotent success: the compound is returned and no second
// relay is installed. Returns nil on any validation failure.
//
// The relay joins the source's priority list at bind time, so source
// priority handlers added before the bind run before the compound's entire
// dispatch, and those added after run after it.
func (c *Compound) Bind(key *Key, src *Event, srcKey *Key) *Compound {
	if src == nil || src == &c.Event {
		return nil
	}
	if !c.validateCompound(key) || !src.validate(srcKey) {
		return nil
	}
	if c.bindingFor(src) != nil {
		return c
	}

	relay := NewHandler(func(f *Firing, _ *Event) {
		c.Event.fire([]FireOption{
			WithCaller(f.Caller()),
			WithData(f.Data()),
			WithEvent(f.Evt()),
			WithTime(f.Time()),
		})
	})
	src.AddPriorityHandler(srcKey, relay)

	c.bindings = append(c.bindings, &binding{
		source:    src,
		sourceKey: srcKey,
		relay:     relay,
	})
	return c
}

// Unbind removes the binding for src, deleting exactly the relay handle
// installed by Bind from the source's priority list. key must validate
// against the compound's lock, and the key recorded at bind time must
// still validate against the source's. Returns nil if src is not bound or
// either key fails.
func (c *Compound) Unbind(key *Key, src *Event) *Compound {
	b := c.bindingFor(src)
	if b == nil {
		return nil
	}
	if !c.validateCompound(key) || !src.validate(b.sourceKey) {
		return nil
	}

	src.RemovePriorityHandler(b.sourceKey, b.relay)
	for i, rec := range c.bindings {
		if rec == b {
			c.bindings = append(c.bindings[:i], c.bindings[i+1:]...)
			break
		}
	}
	return c
}

// Bound reports whether src is currently bound to the compound.
func (c *Compound) Bound(src *Event) bool {
	return c.bindingFor(src) != nil
}

// Sources returns the bound source events in bind order. The returned
// slice is a copy.
func (c *Compound) Sources() []*Event {
	srcs := make([]*Event, len(c.bindings))
	for i, b := range c.bindings {
		srcs[i] = b.source
	}
	return srcs
}

func (c *Compound) bindingFor(src *Event) *binding {
	for _, b := range c.bindings {
		if b.source == src {
			return b
		}
	}
	return nil
}
