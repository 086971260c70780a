package benchmarks

import (
	"fmt"
	"testing"

	"github.com/paulkanja/evts/pkg/evts"
)

// noop measures framework overhead without handler work.
func noop(_ *evts.Firing, _ *evts.Event) {}

// BenchmarkFire_NoHandlers measures bare dispatch overhead.
func BenchmarkFire_NoHandlers(b *testing.B) {
	e := evts.New("bench")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Fire(nil)
	}
}

// BenchmarkFire_Handlers measures dispatch across handler list sizes.
func BenchmarkFire_Handlers(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("handlers_%d", n), func(b *testing.B) {
			e := evts.New("bench")
			for j := 0; j < n; j++ {
				e.AddHandler(evts.NewHandler(noop))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.Fire(nil)
			}
		})
	}
}

// BenchmarkFire_Locked measures the key validation cost.
func BenchmarkFire_Locked(b *testing.B) {
	e := evts.New("bench")
	e.AddHandler(evts.NewHandler(noop))
	key := e.Lock()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Fire(key)
	}
}

// BenchmarkCompoundRelay measures an indirect fire through one binding.
func BenchmarkCompoundRelay(b *testing.B) {
	src := evts.New("source")
	c := evts.NewCompound("compound")
	c.AddHandler(evts.NewHandler(noop))
	c.Bind(nil, src, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Fire(nil)
	}
}

// BenchmarkAddRemoveHandler measures handler list churn.
func BenchmarkAddRemoveHandler(b *testing.B) {
	e := evts.New("bench")
	h := evts.NewHandler(noop)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.AddHandler(h)
		e.RemoveHandler(h)
	}
}
