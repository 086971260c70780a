package journal

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/paulkanja/evts/pkg/evts"
)

// Recorder appends an Entry to a Store for every firing its handler
// observes. Attach the handler wherever the audit point should sit: as the
// last normal handler it records only firings that complete dispatch; as
// an early priority handler it records everything that starts, but before
// any later cancellation is known.
type Recorder struct {
	store  Store
	logger *slog.Logger
}

// NewRecorder creates a recorder writing to store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{
		store:  store,
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used to report append failures. The handler
// has no way to surface an error to the dispatch loop, so failures are
// logged and dropped.
func (r *Recorder) WithLogger(logger *slog.Logger) *Recorder {
	r.logger = logger
	return r
}

// Handler returns the handle to register on the events to be journalled.
// The same handle may be registered on any number of events.
func (r *Recorder) Handler() *evts.Handler {
	return evts.NewHandler(func(f *evts.Firing, _ *evts.Event) {
		entry := &Entry{
			EventName: f.Evt().Name(),
			Time:      f.Time(),
			Cancelled: f.Cancelled(),
		}
		if caller := f.Caller(); caller != nil {
			entry.Caller = fmt.Sprint(caller)
		}
		if data := f.Data(); data != nil {
			// Best effort - unserializable payloads are journalled without data
			entry.Data, _ = json.Marshal(data)
		}

		if err := r.store.Append(entry); err != nil && r.logger != nil {
			r.logger.Error("journal append failed",
				"event", entry.EventName,
				"error", err,
			)
		}
	})
}
