// Package player holds per-player state (lives, restraint, inventory) and
// resolves item effects against the shared shotgun.
package player

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/cory-johannsen/buckshot/internal/game/shotgun"
)

var (
	// ErrItemNotHeld is returned when the acting player lacks the requested item.
	ErrItemNotHeld = errors.New("player: item not held")
	// ErrInvalidTarget is returned when an item needs a living opponent and none was given.
	ErrInvalidTarget = errors.New("player: invalid target")
	// ErrUnknownItem is returned for ItemUnknown or out-of-range item kinds.
	ErrUnknownItem = errors.New("player: unknown item")
)

// ItemOutcome is the observable result of applying an item.
type ItemOutcome struct {
	Item Item
	// Charge is the charge revealed by a Magnifier or ejected by a Beer.
	// Only meaningful when HasCharge is true.
	Charge    shotgun.Charge
	HasCharge bool
}

// Player is one participant: identity, lives, restraint and inventory.
// Invariant: lives never underflows.
type Player struct {
	ID         string
	Name       string
	lives      uint8
	restrained bool
	inventory  *Inventory
}

// New creates a Player with a fresh ID.
//
// Precondition: every item must be Valid.
// Postcondition: Lives() == startingLives; IsRestrained() is false.
func New(name string, startingLives uint8, items ...Item) *Player {
	return &Player{
		ID:        uuid.New().String(),
		Name:      name,
		lives:     startingLives,
		inventory: NewInventory(items...),
	}
}

// Lives returns the remaining life count.
func (p *Player) Lives() uint8 { return p.lives }

// IsEliminated reports whether the player has no life left.
func (p *Player) IsEliminated() bool { return p.lives == 0 }

// IsRestrained reports whether the player will skip their next turn.
func (p *Player) IsRestrained() bool { return p.restrained }

// Restrain marks the player to skip their next turn.
func (p *Player) Restrain() { p.restrained = true }

// ClearRestraint consumes the restraint after the skipped turn.
func (p *Player) ClearRestraint() { p.restrained = false }

// Inventory returns the player's item multiset.
func (p *Player) Inventory() *Inventory { return p.inventory }

// Give adds items to the player's inventory.
//
// Precondition: every item must be Valid.
func (p *Player) Give(items ...Item) { p.inventory.Add(items...) }

// TakeDamage removes up to amount lives, flooring at zero, and returns the
// number actually removed. It satisfies shotgun.Target.
//
// Postcondition: Lives() == max(0, before-amount).
func (p *Player) TakeDamage(amount uint8) uint8 {
	if amount > p.lives {
		amount = p.lives
	}
	p.lives -= amount
	return amount
}

// CapLives lowers lives to limit when it is exceeded. A limit of 0 means no cap.
func (p *Player) CapLives(limit uint8) {
	if limit > 0 && p.lives > limit {
		p.lives = limit
	}
}

// String returns "name (lives)".
func (p *Player) String() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.lives)
}

// ApplyItem consumes one item of kind and resolves its effect. target is
// only used by Handcuffs and may be nil otherwise.
//
// Precondition: gun must be non-nil.
// Postcondition: on error no state is mutated (inventory, lives, restraint
// and gun are unchanged). On success exactly one item of kind is removed.
func (p *Player) ApplyItem(kind Item, gun *shotgun.Shotgun, target *Player) (ItemOutcome, error) {
	if err := p.checkItem(kind, gun, target); err != nil {
		return ItemOutcome{}, err
	}
	p.inventory.Remove(kind)

	out := ItemOutcome{Item: kind}
	switch kind {
	case Saw:
		gun.Saw()
	case Magnifier:
		// checkItem guarantees the magazine is not empty.
		c, _ := gun.Peek()
		out.Charge, out.HasCharge = c, true
	case Beer:
		c, _ := gun.Eject()
		out.Charge, out.HasCharge = c, true
	case Handcuffs:
		target.Restrain()
	case Cigarette:
		if p.lives < math.MaxUint8 {
			p.lives++
		}
	}
	return out, nil
}

func (p *Player) checkItem(kind Item, gun *shotgun.Shotgun, target *Player) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownItem, int(kind))
	}
	if !p.inventory.Has(kind) {
		return fmt.Errorf("%s: %w: %s", p.Name, ErrItemNotHeld, kind)
	}
	switch kind {
	case Handcuffs:
		if target == nil || target == p || target.IsEliminated() {
			return fmt.Errorf("%s: %w for %s", p.Name, ErrInvalidTarget, kind)
		}
	case Magnifier, Beer:
		if gun.IsEmpty() {
			return fmt.Errorf("%s: %s: %w", p.Name, kind, shotgun.ErrEmptyMagazine)
		}
	}
	return nil
}
