package journal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulkanja/evts/pkg/evts"
	"github.com/paulkanja/evts/pkg/evts/journal"
)

func TestRecorder_RecordsFirings(t *testing.T) {
	store := journal.NewMemoryStore()
	defer store.Close()

	e := evts.New("buffer.saved")
	e.AddHandler(journal.NewRecorder(store).Handler())

	at := time.Date(2026, 5, 6, 10, 0, 0, 0, time.UTC)
	e.Fire(nil, evts.WithCaller("editor"), evts.WithData(map[string]any{"path": "a.txt"}), evts.WithTime(at))
	e.Fire(nil)

	entries, err := store.List("buffer.saved")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "editor", entries[0].Caller)
	assert.JSONEq(t, `{"path":"a.txt"}`, string(entries[0].Data))
	assert.True(t, entries[0].Time.Equal(at))
	assert.False(t, entries[0].Cancelled)

	assert.Empty(t, entries[1].Caller)
	assert.Nil(t, entries[1].Data)
}

func TestRecorder_SharedAcrossEvents(t *testing.T) {
	store := journal.NewMemoryStore()
	defer store.Close()

	h := journal.NewRecorder(store).Handler()

	ping := evts.New("ping")
	pong := evts.New("pong")
	ping.AddHandler(h)
	pong.AddHandler(h)

	ping.Fire(nil)
	pong.Fire(nil)
	ping.Fire(nil)

	counts, err := store.CountByEvent()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ping": 2, "pong": 1}, counts)
}

func TestRecorder_AttributesCompoundFiringToSource(t *testing.T) {
	store := journal.NewMemoryStore()
	defer store.Close()

	src := evts.New("source")
	c := evts.NewCompound("compound")
	c.AddHandler(journal.NewRecorder(store).Handler())
	require.NotNil(t, c.Bind(nil, src, nil))

	src.Fire(nil)

	entries, err := store.List("source")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "compound firing should be journalled under the source's name")
}

func TestRecorder_SkippedWhenCancelledEarlier(t *testing.T) {
	store := journal.NewMemoryStore()
	defer store.Close()

	e := evts.New("cancelled")
	e.AddPriorityHandler(nil, evts.NewHandler(func(f *evts.Firing, _ *evts.Event) {
		f.Cancel()
	}))
	e.AddHandler(journal.NewRecorder(store).Handler())

	e.Fire(nil)

	entries, err := store.List("cancelled")
	require.NoError(t, err)
	assert.Empty(t, entries, "a normal-list recorder never sees firings cancelled before it")
}
