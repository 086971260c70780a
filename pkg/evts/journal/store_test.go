package journal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulkanja/evts/pkg/evts/journal"
)

// storeFactories lets every contract test run against both implementations.
var storeFactories = map[string]func(t *testing.T) journal.Store{
	"memory": func(_ *testing.T) journal.Store {
		return journal.NewMemoryStore()
	},
	"sqlite": func(t *testing.T) journal.Store {
		store, err := journal.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return store
	},
}

func entry(eventName, caller string) *journal.Entry {
	return &journal.Entry{
		EventName: eventName,
		Caller:    caller,
		Data:      []byte(`{"n":1}`),
		Time:      time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC),
	}
}

func TestStore_AppendAssignsIdentity(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			defer store.Close()

			first := entry("ping", "main")
			require.NoError(t, store.Append(first))
			assert.NotEmpty(t, first.ID)
			assert.Equal(t, 1, first.Sequence)

			second := entry("ping", "main")
			require.NoError(t, store.Append(second))
			assert.Equal(t, 2, second.Sequence)
			assert.NotEqual(t, first.ID, second.ID)
		})
	}
}

func TestStore_Get(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			defer store.Close()

			e := entry("ping", "main")
			e.Cancelled = true
			require.NoError(t, store.Append(e))

			got, err := store.Get(e.ID)
			require.NoError(t, err)
			assert.Equal(t, "ping", got.EventName)
			assert.Equal(t, "main", got.Caller)
			assert.JSONEq(t, `{"n":1}`, string(got.Data))
			assert.True(t, got.Cancelled)
			assert.True(t, got.Time.Equal(e.Time))

			_, err = store.Get("missing")
			assert.ErrorIs(t, err, journal.ErrNotFound)
		})
	}
}

func TestStore_ListByEvent(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			defer store.Close()

			require.NoError(t, store.Append(entry("ping", "a")))
			require.NoError(t, store.Append(entry("pong", "b")))
			require.NoError(t, store.Append(entry("ping", "c")))

			entries, err := store.List("ping")
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, "a", entries[0].Caller)
			assert.Equal(t, "c", entries[1].Caller)
			assert.Less(t, entries[0].Sequence, entries[1].Sequence)

			empty, err := store.List("unknown")
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestStore_ListAll(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			defer store.Close()

			for i := 0; i < 5; i++ {
				require.NoError(t, store.Append(entry("ping", "main")))
			}

			all, err := store.ListAll(0)
			require.NoError(t, err)
			assert.Len(t, all, 5)

			limited, err := store.ListAll(3)
			require.NoError(t, err)
			require.Len(t, limited, 3)
			assert.Equal(t, 1, limited[0].Sequence)
			assert.Equal(t, 3, limited[2].Sequence)
		})
	}
}

func TestStore_CountByEvent(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			defer store.Close()

			require.NoError(t, store.Append(entry("ping", "a")))
			require.NoError(t, store.Append(entry("ping", "b")))
			require.NoError(t, store.Append(entry("pong", "c")))

			counts, err := store.CountByEvent()
			require.NoError(t, err)
			assert.Equal(t, map[string]int{"ping": 2, "pong": 1}, counts)
		})
	}
}

func TestStore_Purge(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			defer store.Close()

			require.NoError(t, store.Append(entry("ping", "a")))
			require.NoError(t, store.Append(entry("pong", "b")))

			require.NoError(t, store.Purge("ping"))

			entries, err := store.List("ping")
			require.NoError(t, err)
			assert.Empty(t, entries)

			remaining, err := store.List("pong")
			require.NoError(t, err)
			assert.Len(t, remaining, 1)

			// Unknown name is a no-op.
			require.NoError(t, store.Purge("never-there"))
		})
	}
}

func TestStore_Closed(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			require.NoError(t, store.Close())

			assert.ErrorIs(t, store.Append(entry("ping", "a")), journal.ErrStoreClosed)
			_, err := store.List("ping")
			assert.ErrorIs(t, err, journal.ErrStoreClosed)
			_, err = store.ListAll(0)
			assert.ErrorIs(t, err, journal.ErrStoreClosed)
			_, err = store.CountByEvent()
			assert.ErrorIs(t, err, journal.ErrStoreClosed)
			assert.ErrorIs(t, store.Purge("ping"), journal.ErrStoreClosed)

			// Closing twice is fine.
			assert.NoError(t, store.Close())
		})
	}
}

func TestMemoryStore_CopiesEntries(t *testing.T) {
	store := journal.NewMemoryStore()
	defer store.Close()

	e := entry("ping", "main")
	require.NoError(t, store.Append(e))

	// Mutating the appended entry must not reach the store.
	e.Caller = "tampered"
	e.Data[0] = 'X'

	got, err := store.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "main", got.Caller)
	assert.JSONEq(t, `{"n":1}`, string(got.Data))
}
