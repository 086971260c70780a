package evts

import "time"

// FireOption configures a single Fire call.
type FireOption func(*fireConfig)

type fireConfig struct {
	caller any
	data   any
	evt    *Event
	time   time.Time
}

// WithCaller attaches an identity for whoever initiated the firing.
func WithCaller(caller any) FireOption {
	return func(cfg *fireConfig) {
		cfg.caller = caller
	}
}

// WithData attaches an opaque payload to the firing.
func WithData(data any) FireOption {
	return func(cfg *fireConfig) {
		cfg.data = data
	}
}

// WithEvent overrides the event identity the firing record reports.
// Used by compound relays to preserve the originating source event.
func WithEvent(evt *Event) FireOption {
	return func(cfg *fireConfig) {
		cfg.evt = evt
	}
}

// WithTime overrides the firing timestamp (default: time.Now()).
func WithTime(t time.Time) FireOption {
	return func(cfg *fireConfig) {
		cfg.time = t
	}
}
