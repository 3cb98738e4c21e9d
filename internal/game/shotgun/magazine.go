package shotgun

import (
	"errors"

	"github.com/cory-johannsen/buckshot/internal/game/rng"
)

// ErrEmptyMagazine is returned when a charge is requested from an empty magazine.
var ErrEmptyMagazine = errors.New("shotgun: magazine is empty")

// Magazine holds charges in firing order: index 0 is the next to fire.
// Invariant: order only changes through Shuffle.
type Magazine struct {
	charges []Charge
}

// NewMagazine returns a Magazine holding a copy of charges in firing order.
//
// Postcondition: Len() == len(charges).
func NewMagazine(charges ...Charge) *Magazine {
	m := &Magazine{}
	m.Fill(charges)
	return m
}

// Fill replaces the contents with a copy of charges.
//
// Postcondition: Len() == len(charges); the caller's slice is not retained.
func (m *Magazine) Fill(charges []Charge) {
	m.charges = make([]Charge, len(charges))
	copy(m.charges, charges)
}

// Len returns the number of charges remaining.
func (m *Magazine) Len() int { return len(m.charges) }

// IsEmpty reports whether no charges remain.
func (m *Magazine) IsEmpty() bool { return len(m.charges) == 0 }

// Peek returns the next charge to fire without removing it.
//
// Postcondition: Len() is unchanged; returns ErrEmptyMagazine when empty.
func (m *Magazine) Peek() (Charge, error) {
	if len(m.charges) == 0 {
		return Blank, ErrEmptyMagazine
	}
	return m.charges[0], nil
}

// Next removes and returns the next charge to fire.
//
// Postcondition: on success Len() decreases by exactly 1; returns
// ErrEmptyMagazine and leaves the magazine untouched when empty.
func (m *Magazine) Next() (Charge, error) {
	if len(m.charges) == 0 {
		return Blank, ErrEmptyMagazine
	}
	c := m.charges[0]
	m.charges = m.charges[1:]
	return c, nil
}

// Shuffle uniformly permutes the remaining charges using src.
//
// Precondition: src must be non-nil.
func (m *Magazine) Shuffle(src rng.Source) {
	rng.Shuffle(src, len(m.charges), func(i, j int) {
		m.charges[i], m.charges[j] = m.charges[j], m.charges[i]
	})
}

// Counts returns how many live and blank charges remain.
//
// Postcondition: live + blank == Len().
func (m *Magazine) Counts() (live, blank int) {
	for _, c := range m.charges {
		if c == Live {
			live++
		} else {
			blank++
		}
	}
	return live, blank
}

// Charges returns a snapshot copy of the remaining charges in firing order.
func (m *Magazine) Charges() []Charge {
	out := make([]Charge, len(m.charges))
	copy(out, m.charges)
	return out
}
