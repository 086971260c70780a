package config

import (
	"fmt"

	"github.com/paulkanja/evts/pkg/evts"
	"github.com/paulkanja/evts/pkg/evts/registry"
)

// Wiring is the constructed topology: the live events and compounds plus
// the keys issued for everything declared locked. Whoever holds the Wiring
// holds the keys; hand them out deliberately.
type Wiring struct {
	Events    *registry.Registry[*evts.Event]
	Compounds *registry.Registry[*evts.Compound]

	// Keys maps the name of each locked event or compound to its issued
	// key. Names absent from the map were built unlocked.
	Keys map[string]*evts.Key
}

// Build constructs the declared topology: events first, then compounds,
// locks applied, sources bound in declaration order. A source name may
// refer to a plain event or to another compound.
func Build(t Topology) (*Wiring, error) {
	w := &Wiring{
		Events:    registry.New[*evts.Event](),
		Compounds: registry.New[*evts.Compound](),
		Keys:      make(map[string]*evts.Key),
	}

	seen := make(map[string]bool)
	claim := func(name string) error {
		if name == "" {
			return ErrMissingName
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = true
		return nil
	}

	for _, spec := range t.Events {
		if err := claim(spec.Name); err != nil {
			return nil, err
		}
		e := evts.New(spec.Name)
		if spec.Locked {
			w.Keys[spec.Name] = e.Lock()
		}
		w.Events.Register(spec.Name, e)
	}

	for _, spec := range t.Compounds {
		if err := claim(spec.Name); err != nil {
			return nil, err
		}
		c := evts.NewCompound(spec.Name)
		if spec.Locked {
			w.Keys[spec.Name] = c.Lock()
		}
		w.Compounds.Register(spec.Name, c)
	}

	for _, spec := range t.Compounds {
		c := w.Compounds.MustGet(spec.Name)
		for _, sourceName := range spec.Sources {
			if sourceName == spec.Name {
				return nil, fmt.Errorf("compound %q: %w", spec.Name, ErrSelfSource)
			}

			src, srcKey, err := w.resolveSource(sourceName)
			if err != nil {
				return nil, fmt.Errorf("compound %q: %w", spec.Name, err)
			}

			if c.Bind(w.Keys[spec.Name], src, srcKey) == nil {
				return nil, fmt.Errorf("compound %q: bind %q rejected", spec.Name, sourceName)
			}
		}
	}

	return w, nil
}

// resolveSource finds the event a source name refers to, along with the
// key needed to install the relay. A compound used as a source exposes its
// embedded event, whose handler lists are not gated by the compound key.
func (w *Wiring) resolveSource(name string) (*evts.Event, *evts.Key, error) {
	if e, ok := w.Events.Get(name); ok {
		return e, w.Keys[name], nil
	}
	if c, ok := w.Compounds.Get(name); ok {
		return &c.Event, nil, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}
