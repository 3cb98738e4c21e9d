package player

import (
	"fmt"
	"strings"
)

// Item is a single-use consumable held in a player's inventory.
// The zero value (ItemUnknown) is intentionally invalid.
type Item int

const (
	ItemUnknown Item = iota // zero value; intentionally invalid
	Saw                     // arms the sawed-off modifier
	Magnifier               // reveals the next charge
	Beer                    // ejects the next charge
	Handcuffs               // the opponent skips their next turn
	Cigarette               // restores one life
)

// AllItems lists every valid item kind in declaration order.
var AllItems = []Item{Saw, Magnifier, Beer, Handcuffs, Cigarette}

// String returns the lower-case item name, or "unknown".
func (i Item) String() string {
	switch i {
	case Saw:
		return "saw"
	case Magnifier:
		return "magnifier"
	case Beer:
		return "beer"
	case Handcuffs:
		return "handcuffs"
	case Cigarette:
		return "cigarette"
	default:
		return "unknown"
	}
}

// Valid reports whether i is one of AllItems.
func (i Item) Valid() bool {
	return i >= Saw && i <= Cigarette
}

// RequiresTarget reports whether applying i acts on another player.
func (i Item) RequiresTarget() bool {
	return i == Handcuffs
}

// ParseItem converts an item name (case-insensitive) into an Item.
// "cuffs" is accepted as an alias for handcuffs.
//
// Postcondition: returns ItemUnknown and an error for unrecognised names.
func ParseItem(s string) (Item, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "saw":
		return Saw, nil
	case "magnifier", "glass":
		return Magnifier, nil
	case "beer":
		return Beer, nil
	case "handcuffs", "cuffs":
		return Handcuffs, nil
	case "cigarette", "cig":
		return Cigarette, nil
	default:
		return ItemUnknown, fmt.Errorf("player: unknown item %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (i Item) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("player: cannot marshal item %d", int(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Item) UnmarshalText(text []byte) error {
	parsed, err := ParseItem(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
