// Package config wires event topologies from declarative YAML or JSON:
// named events, compounds, lock state, and compound-to-source bindings.
//
// A minimal topology:
//
//	events:
//	  - name: buffer.saved
//	  - name: buffer.closed
//	    locked: true
//	compounds:
//	  - name: buffer.changes
//	    sources: [buffer.saved, buffer.closed]
//
// Build constructs the events, applies the locks, performs the binds, and
// returns the issued keys to the caller. The topology owner is the only
// party holding them.
package config

import "errors"

// Topology declares the events and compounds to construct.
type Topology struct {
	Events    []EventSpec    `yaml:"events" json:"events"`
	Compounds []CompoundSpec `yaml:"compounds" json:"compounds"`
}

// EventSpec declares one plain event.
type EventSpec struct {
	// Name is the event's display name, unique across the topology.
	Name string `yaml:"name" json:"name"`

	// Locked locks the event at build time; the issued key is returned in
	// the Wiring.
	Locked bool `yaml:"locked" json:"locked"`
}

// CompoundSpec declares one compound event and its bound sources.
type CompoundSpec struct {
	// Name is the compound's display name, unique across the topology.
	Name string `yaml:"name" json:"name"`

	// Locked locks the compound (its own key, not the embedded event's)
	// at build time.
	Locked bool `yaml:"locked" json:"locked"`

	// Sources names the events (or other compounds) to bind, in order.
	Sources []string `yaml:"sources" json:"sources"`
}

// Sentinel errors for topology validation.
var (
	// ErrMissingName indicates a spec without a name.
	ErrMissingName = errors.New("event name is required")

	// ErrDuplicateName indicates two specs sharing a name.
	ErrDuplicateName = errors.New("duplicate event name")

	// ErrUnknownSource indicates a compound source that names nothing in
	// the topology.
	ErrUnknownSource = errors.New("unknown source event")

	// ErrSelfSource indicates a compound listing itself as a source.
	ErrSelfSource = errors.New("compound cannot source itself")
)
