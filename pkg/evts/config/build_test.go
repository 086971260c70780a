package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulkanja/evts/pkg/evts"
	"github.com/paulkanja/evts/pkg/evts/config"
)

func TestBuild(t *testing.T) {
	topo, err := config.FromYAML([]byte(topologyYAML))
	require.NoError(t, err)

	w, err := config.Build(topo)
	require.NoError(t, err)

	saved, ok := w.Events.Get("buffer.saved")
	require.True(t, ok)
	closed := w.Events.MustGet("buffer.closed")
	changes := w.Compounds.MustGet("buffer.changes")

	// Lock state and keys as declared.
	assert.False(t, saved.Locked())
	assert.True(t, closed.Locked())
	require.Contains(t, w.Keys, "buffer.closed")
	assert.NotContains(t, w.Keys, "buffer.saved")

	// Bindings live: both sources relay into the compound.
	var reported []string
	changes.AddHandler(evts.NewHandler(func(f *evts.Firing, _ *evts.Event) {
		reported = append(reported, f.Evt().Name())
	}))

	saved.Fire(nil)
	closed.Fire(w.Keys["buffer.closed"])

	assert.Equal(t, []string{"buffer.saved", "buffer.closed"}, reported)
}

func TestBuild_LockedCompound(t *testing.T) {
	w, err := config.Build(config.Topology{
		Events: []config.EventSpec{{Name: "src"}},
		Compounds: []config.CompoundSpec{
			{Name: "agg", Locked: true, Sources: []string{"src"}},
		},
	})
	require.NoError(t, err)

	agg := w.Compounds.MustGet("agg")
	key := w.Keys["agg"]
	require.NotNil(t, key)

	assert.True(t, agg.Locked())
	assert.Nil(t, agg.Fire(nil))
	assert.NotNil(t, agg.Fire(key))
}

func TestBuild_CompoundAsSource(t *testing.T) {
	w, err := config.Build(config.Topology{
		Events: []config.EventSpec{{Name: "leaf"}},
		Compounds: []config.CompoundSpec{
			{Name: "inner", Sources: []string{"leaf"}},
			{Name: "outer", Sources: []string{"inner"}},
		},
	})
	require.NoError(t, err)

	outer := w.Compounds.MustGet("outer")
	count := 0
	outer.AddHandler(evts.NewHandler(func(_ *evts.Firing, _ *evts.Event) {
		count++
	}))

	// leaf relays into inner, whose firing relays into outer.
	w.Events.MustGet("leaf").Fire(nil)
	assert.Equal(t, 1, count)
}

func TestBuild_Errors(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		_, err := config.Build(config.Topology{
			Events: []config.EventSpec{{Name: ""}},
		})
		assert.ErrorIs(t, err, config.ErrMissingName)
	})

	t.Run("duplicate name across kinds", func(t *testing.T) {
		_, err := config.Build(config.Topology{
			Events:    []config.EventSpec{{Name: "x"}},
			Compounds: []config.CompoundSpec{{Name: "x"}},
		})
		assert.ErrorIs(t, err, config.ErrDuplicateName)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := config.Build(config.Topology{
			Compounds: []config.CompoundSpec{
				{Name: "agg", Sources: []string{"ghost"}},
			},
		})
		assert.ErrorIs(t, err, config.ErrUnknownSource)
	})

	t.Run("self source", func(t *testing.T) {
		_, err := config.Build(config.Topology{
			Compounds: []config.CompoundSpec{
				{Name: "agg", Sources: []string{"agg"}},
			},
		})
		assert.ErrorIs(t, err, config.ErrSelfSource)
	})
}
