package player

import "fmt"

// Inventory is a multiset of items. Order is irrelevant; duplicates are allowed.
// Invariant: every stored count is > 0.
type Inventory struct {
	counts map[Item]int
}

// NewInventory returns an Inventory holding items.
//
// Precondition: every item must be Valid (panics otherwise).
func NewInventory(items ...Item) *Inventory {
	inv := &Inventory{counts: make(map[Item]int)}
	inv.Add(items...)
	return inv
}

// Add places items into the inventory.
//
// Precondition: every item must be Valid (panics otherwise).
// Postcondition: Len() increases by len(items).
func (inv *Inventory) Add(items ...Item) {
	for _, it := range items {
		if !it.Valid() {
			panic(fmt.Sprintf("player: Inventory.Add: invalid item %d", int(it)))
		}
		inv.counts[it]++
	}
}

// Remove takes one unit of item out of the inventory.
//
// Postcondition: returns true and decrements Count(item) when held;
// returns false and leaves the inventory unchanged otherwise.
func (inv *Inventory) Remove(item Item) bool {
	n := inv.counts[item]
	if n == 0 {
		return false
	}
	if n == 1 {
		delete(inv.counts, item)
	} else {
		inv.counts[item] = n - 1
	}
	return true
}

// Has reports whether at least one unit of item is held.
func (inv *Inventory) Has(item Item) bool { return inv.counts[item] > 0 }

// Count returns how many units of item are held.
func (inv *Inventory) Count(item Item) int { return inv.counts[item] }

// Len returns the total number of items held.
func (inv *Inventory) Len() int {
	total := 0
	for _, n := range inv.counts {
		total += n
	}
	return total
}

// Items returns a snapshot of held items grouped in AllItems order.
//
// Postcondition: len(result) == Len(); the slice is a copy.
func (inv *Inventory) Items() []Item {
	out := make([]Item, 0, inv.Len())
	for _, it := range AllItems {
		for n := inv.counts[it]; n > 0; n-- {
			out = append(out, it)
		}
	}
	return out
}
