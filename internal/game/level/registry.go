package level

import "fmt"

// Registry indexes levels by ID and remembers their play order.
type Registry struct {
	byID  map[string]*Level
	order []*Level
}

// NewRegistry builds a Registry from levels.
//
// Postcondition: returns an error on duplicate IDs.
func NewRegistry(levels []*Level) (*Registry, error) {
	reg := &Registry{byID: make(map[string]*Level, len(levels))}
	for _, l := range levels {
		if _, dup := reg.byID[l.ID]; dup {
			return nil, fmt.Errorf("level: duplicate level id %q", l.ID)
		}
		reg.byID[l.ID] = l
		reg.order = append(reg.order, l)
	}
	return reg, nil
}

// Level returns the level with the given ID.
func (r *Registry) Level(id string) (*Level, bool) {
	l, ok := r.byID[id]
	return l, ok
}

// All returns every level in play order.
func (r *Registry) All() []*Level {
	out := make([]*Level, len(r.order))
	copy(out, r.order)
	return out
}
