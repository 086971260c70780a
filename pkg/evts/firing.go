package evts

import "time"

// Firing is the immutable record of a single Fire call. It is passed to
// every handler the dispatch reaches and returned to the caller of Fire.
// All fields are read-only; the only mutation a handler may perform is
// Cancel, which stops dispatch after the current handler returns.
type Firing struct {
	caller    any
	evt       *Event
	data      any
	time      time.Time
	cancelled bool
}

// Caller reports who initiated the firing, as passed via WithCaller.
// Nil when no caller was supplied.
func (f *Firing) Caller() any {
	return f.caller
}

// Evt reports the event this firing is attributed to. This is normally the
// fired event itself, but a compound relay overrides it so that handlers on
// the compound see the originating source event.
func (f *Firing) Evt() *Event {
	return f.evt
}

// Data reports the opaque payload passed via WithData. Nil when no data
// was supplied.
func (f *Firing) Data() any {
	return f.data
}

// Time reports when the firing occurred. Defaults to the moment Fire was
// called; a compound relay overrides it with the source firing's time.
func (f *Firing) Time() time.Time {
	return f.time
}

// Cancel stops dispatch of this firing: remaining handlers are skipped once
// the current handler returns. Handlers that already ran are unaffected.
// Cancelling a compound's firing has no effect on the source firing that
// triggered it.
func (f *Firing) Cancel() {
	f.cancelled = true
}

// Cancelled reports whether Cancel has been called on this firing.
func (f *Firing) Cancelled() bool {
	return f.cancelled
}
