package round

import (
	"github.com/cory-johannsen/buckshot/internal/game/player"
	"github.com/cory-johannsen/buckshot/internal/game/shotgun"
)

// Target selects who the acting player aims at.
// The zero value (TargetUnknown) is intentionally invalid.
type Target int

const (
	TargetUnknown  Target = iota // zero value; intentionally invalid
	TargetSelf                   // the acting player
	TargetOpponent               // the other player
)

// String returns "self", "opponent", or "unknown".
func (t Target) String() string {
	switch t {
	case TargetSelf:
		return "self"
	case TargetOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// EventKind identifies what a recorded Event describes.
type EventKind int

const (
	EventLoad EventKind = iota
	EventDeal
	EventFire
	EventItem
	EventSkip
)

// String returns the event kind label.
func (k EventKind) String() string {
	switch k {
	case EventLoad:
		return "load"
	case EventDeal:
		return "deal"
	case EventFire:
		return "fire"
	case EventItem:
		return "item"
	case EventSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Event records one resolved step of the round.
type Event struct {
	Kind       EventKind
	ActorID    string
	ActorName  string
	TargetName string
	// Charge is the fired, revealed or ejected charge when HasCharge is set.
	Charge    shotgun.Charge
	HasCharge bool
	// Damage is the life actually lost by the target of a discharge.
	Damage uint8
	Item   player.Item
	// Private marks events whose Charge must only be shown to the actor.
	Private   bool
	Narrative string
}
