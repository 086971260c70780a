// Package evts provides in-process event dispatch primitives: named events
// that hold ordered handler lists, an optional key-based locking mechanism
// restricting who may mutate or fire them, and a compound event type that
// aggregates firings from multiple source events into a single downstream
// notification.
//
// # Events and Handlers
//
// An Event owns two ordered handler lists. Priority handlers run first, in
// insertion order, then normal handlers, in insertion order. Handlers are
// registered as *Handler handles created with NewHandler; a handle is
// identified by pointer, so adding the same handle twice is a no-op and
// removal targets exactly the handle that was added. The same handle may be
// registered in both lists.
//
//	ping := evts.New("ping")
//	h := evts.NewHandler(func(f *evts.Firing, _ *evts.Event) {
//	    fmt.Println("ping from", f.Caller())
//	})
//	ping.AddHandler(h)
//	ping.Fire(nil, evts.WithCaller("main"))
//
// # Locking
//
// Lock returns an unforgeable *Key; while an event is locked, firing and
// priority-handler mutation require presenting that exact key. Normal
// handler registration is never key-gated. Passing a nil key is the
// unlocked shorthand: it validates only while no lock is held.
//
// # Cancellation
//
// Each Fire call produces an immutable Firing record carrying the caller,
// the reporting event, an opaque data value, and a timestamp. Any handler
// may call Cancel on the record; the cancellation flag is checked after
// every handler invocation, so the cancelling handler's own side effects
// are always observed before dispatch stops. Fire returns the record
// whether or not it was cancelled.
//
// # Compound Events
//
// A Compound is an event that additionally binds source events: binding
// installs a relay in the source's priority list that re-fires the compound
// with the source firing's caller, data, identity, and timestamp, so
// downstream handlers see the originating event, not the compound. The
// compound carries its own lock, independent of the embedded event's,
// scoped to Bind, Unbind, and Fire. Bindings are not cleaned up
// automatically: unbind a source explicitly before discarding it.
//
// # Concurrency
//
// Dispatch is single-threaded, synchronous, and cooperative. Fire invokes
// handlers in-line on the calling goroutine, and an in-progress guard
// rejects re-entrant fires of the same event (a handler firing a different
// event, including a bound compound, is the designed indirect path). All
// mutation of handler lists and lock state must happen on the goroutine
// that owns the event.
//
// Failure in this package is communicated by absent return values (a nil
// *Firing, *Key, or *Compound) or by silent no-op for handler-list
// mutation; no operation here returns an error. Logging, metrics, and
// persistence live in the observability and journal subpackages.
package evts
