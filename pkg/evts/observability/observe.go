package observability

import (
	"context"
	"log/slog"
	"time"

	"github.com/paulkanja/evts/pkg/evts"
)

// Observe returns a handler that logs and records metrics for every firing
// it sees. Register it on any event, typically as the last normal handler,
// where it observes completed dispatches and the final cancellation state
// of anything cancelled in the normal list before it.
//
// Either argument may be nil (or NoopMetrics{}) to disable that output.
func Observe(logger *slog.Logger, metrics MetricsRecorder) *evts.Handler {
	return evts.NewHandler(func(f *evts.Firing, _ *evts.Event) {
		name := f.Evt().Name()
		LogFire(logger, name, f.Caller(), f.Cancelled())
		if metrics != nil {
			metrics.RecordFiring(context.Background(), name, time.Since(f.Time()), f.Cancelled())
		}
	})
}

// ObserveRelays returns a handler for a compound that counts re-fires per
// originating source. Register it on the compound itself; direct fires of
// the compound are not counted as relays.
func ObserveRelays(compound *evts.Compound, metrics MetricsRecorder) *evts.Handler {
	return evts.NewHandler(func(f *evts.Firing, _ *evts.Event) {
		if metrics == nil || f.Evt() == &compound.Event {
			return
		}
		metrics.RecordRelay(context.Background(), compound.Name(), f.Evt().Name())
	})
}
