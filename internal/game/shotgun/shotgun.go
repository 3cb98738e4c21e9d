package shotgun

import "github.com/cory-johannsen/buckshot/internal/game/rng"

const (
	// BaseDamage is the life removed by a live charge.
	BaseDamage uint8 = 1
	// SawedDamage is the life removed by a live charge fired from a sawed barrel.
	SawedDamage uint8 = 2
)

// Target is anything that can be shot.
type Target interface {
	// TakeDamage removes up to amount life and returns how much was actually lost.
	//
	// Postcondition: remaining life never underflows.
	TakeDamage(amount uint8) uint8
}

// DischargeOutcome describes one trigger pull.
type DischargeOutcome struct {
	// Charge is the shell that was fired.
	Charge Charge
	// Damage is the nominal damage of the shot: 0 for a blank, 1 or 2 for a live.
	Damage uint8
	// Lost is the life actually removed from the target after flooring at zero.
	Lost uint8
	// Sawed reports whether the sawed-off modifier was active for this shot.
	Sawed bool
}

// Shotgun is the weapon shared by both players.
// Invariant: sawed is false after every Discharge.
type Shotgun struct {
	magazine Magazine
	sawed    bool
}

// New returns an empty, unsawed Shotgun.
func New() *Shotgun {
	return &Shotgun{}
}

// Load replaces the magazine with a copy of charges, given in firing order.
// The sawed modifier is left as is.
//
// Postcondition: Remaining() == len(charges).
func (g *Shotgun) Load(charges []Charge) {
	g.magazine.Fill(charges)
}

// Randomize uniformly permutes the loaded charges. Call once per Load,
// before the first discharge.
//
// Precondition: src must be non-nil.
func (g *Shotgun) Randomize(src rng.Source) {
	g.magazine.Shuffle(src)
}

// Discharge fires the next charge at target.
//
// Precondition: target must be non-nil.
// Postcondition: on success Remaining() decreases by 1 and IsSawed() is false.
// Returns ErrEmptyMagazine without any state change when nothing is loaded.
func (g *Shotgun) Discharge(target Target) (DischargeOutcome, error) {
	c, err := g.magazine.Next()
	if err != nil {
		return DischargeOutcome{}, err
	}
	out := DischargeOutcome{Charge: c, Sawed: g.sawed}
	if c == Live {
		out.Damage = BaseDamage
		if g.sawed {
			out.Damage = SawedDamage
		}
		out.Lost = target.TakeDamage(out.Damage)
	}
	g.sawed = false
	return out, nil
}

// Peek reveals the next charge to fire without consuming it.
func (g *Shotgun) Peek() (Charge, error) {
	return g.magazine.Peek()
}

// Eject removes the next charge without firing it.
//
// Postcondition: on success Remaining() decreases by 1; no damage is applied.
func (g *Shotgun) Eject() (Charge, error) {
	return g.magazine.Next()
}

// Saw arms the sawed-off modifier for the next discharge.
func (g *Shotgun) Saw() {
	g.sawed = true
}

// IsSawed reports whether the next live discharge deals SawedDamage.
func (g *Shotgun) IsSawed() bool { return g.sawed }

// Remaining returns the number of charges left in the magazine.
func (g *Shotgun) Remaining() int { return g.magazine.Len() }

// IsEmpty reports whether the magazine is exhausted.
func (g *Shotgun) IsEmpty() bool { return g.magazine.IsEmpty() }

// Counts returns the live and blank charges left in the magazine.
func (g *Shotgun) Counts() (live, blank int) { return g.magazine.Counts() }

// Charges returns a snapshot of the remaining charges in firing order.
func (g *Shotgun) Charges() []Charge { return g.magazine.Charges() }
