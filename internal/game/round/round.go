// Package round drives a two-player game over a shared shotgun: turn order,
// restraint skips, item dealing and termination.
package round

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/buckshot/internal/game/player"
	"github.com/cory-johannsen/buckshot/internal/game/rng"
	"github.com/cory-johannsen/buckshot/internal/game/shotgun"
)

var (
	// ErrRoundOver is returned when an action is attempted after a player has been eliminated.
	ErrRoundOver = errors.New("round: round is over")
	// ErrEmptyLoad is returned when Load is called without charges.
	ErrEmptyLoad = errors.New("round: load must contain at least one charge")
)

// Config holds the rules the driver enforces on top of the engine.
type Config struct {
	// MaxLives caps lives restored by cigarettes. 0 disables the cap.
	MaxLives uint8
	// MaxItems bounds inventory size when dealing. 0 disables the bound.
	MaxItems int
	// KeepTurnOnBlankSelfShot lets a player who fires a blank at themselves act again.
	KeepTurnOnBlankSelfShot bool
}

// Round is the live state of one two-player game.
// Invariant: turn is 0 or 1 and indexes the acting player.
type Round struct {
	players [2]*player.Player
	gun     *shotgun.Shotgun
	src     rng.Source
	cfg     Config
	logger  *zap.Logger
	turn    int
	events  []Event
}

// New creates a Round with players[0] acting first.
//
// Precondition: gun, src and logger must be non-nil.
// Postcondition: returns an error unless exactly two distinct non-nil players are given.
func New(players []*player.Player, gun *shotgun.Shotgun, src rng.Source, cfg Config, logger *zap.Logger) (*Round, error) {
	if len(players) != 2 {
		return nil, fmt.Errorf("round: need exactly 2 players, got %d", len(players))
	}
	if players[0] == nil || players[1] == nil || players[0] == players[1] {
		return nil, errors.New("round: players must be two distinct non-nil players")
	}
	if cfg.MaxItems < 0 {
		return nil, fmt.Errorf("round: max items must be >= 0, got %d", cfg.MaxItems)
	}
	return &Round{
		players: [2]*player.Player{players[0], players[1]},
		gun:     gun,
		src:     src,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Current returns the player whose turn it is.
func (r *Round) Current() *player.Player { return r.players[r.turn] }

// Opponent returns the player who is not acting.
func (r *Round) Opponent() *player.Player { return r.players[1-r.turn] }

// Players returns both players in seating order.
func (r *Round) Players() []*player.Player {
	return []*player.Player{r.players[0], r.players[1]}
}

// Gun returns the shared shotgun.
func (r *Round) Gun() *shotgun.Shotgun { return r.gun }

// Remaining returns the number of charges left in the gun.
func (r *Round) Remaining() int { return r.gun.Remaining() }

// Events returns a copy of every event recorded so far.
func (r *Round) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Living returns the players with life left.
func (r *Round) Living() []*player.Player {
	var alive []*player.Player
	for _, p := range r.players {
		if !p.IsEliminated() {
			alive = append(alive, p)
		}
	}
	return alive
}

// Decided reports whether at most one player is still alive.
func (r *Round) Decided() bool { return len(r.Living()) <= 1 }

// Over reports whether the round has ended: the magazine is empty or at
// most one player is alive.
func (r *Round) Over() bool { return r.gun.IsEmpty() || r.Decided() }

// NeedsReload reports whether the magazine ran dry with both players alive.
func (r *Round) NeedsReload() bool { return r.gun.IsEmpty() && !r.Decided() }

// Winner returns the sole surviving player.
//
// Postcondition: returns (p, true) iff exactly one player is alive.
func (r *Round) Winner() (*player.Player, bool) {
	alive := r.Living()
	if len(alive) != 1 {
		return nil, false
	}
	return alive[0], true
}

// Load replaces the magazine with charges and shuffles it once.
//
// Postcondition: Remaining() == len(charges); returns ErrRoundOver when a
// player has already been eliminated.
func (r *Round) Load(charges []shotgun.Charge) error {
	return r.load(charges, true)
}

// LoadInOrder replaces the magazine with charges and keeps their order, for
// scripted levels whose firing order is fixed.
//
// Postcondition: charges fire in the order given.
func (r *Round) LoadInOrder(charges []shotgun.Charge) error {
	return r.load(charges, false)
}

func (r *Round) load(charges []shotgun.Charge, shuffle bool) error {
	if r.Decided() {
		return ErrRoundOver
	}
	if len(charges) == 0 {
		return ErrEmptyLoad
	}
	r.gun.Load(charges)
	if shuffle {
		r.gun.Randomize(r.src)
	}
	live, blank := r.gun.Counts()
	r.record(Event{
		Kind:      EventLoad,
		Narrative: fmt.Sprintf("The shotgun is loaded with %d live and %d blank.", live, blank),
	})
	r.logger.Info("magazine loaded",
		zap.Int("live", live),
		zap.Int("blank", blank),
		zap.Bool("shuffled", shuffle),
	)
	r.logger.Debug("magazine order", zap.Stringers("charges", r.gun.Charges()))
	return nil
}

// LoadCounts loads live live charges and blank blank charges, then shuffles.
//
// Precondition: live >= 0 and blank >= 0.
func (r *Round) LoadCounts(live, blank int) error {
	return r.Load(shotgun.Build(live, blank))
}

// Deal gives each living player up to n randomly drawn items, stopping
// early for a player whose inventory reaches Config.MaxItems.
//
// Precondition: n >= 0.
// Postcondition: returns the number of items handed out per seat.
func (r *Round) Deal(n int) ([2]int, error) {
	var dealt [2]int
	if n < 0 {
		return dealt, fmt.Errorf("round: deal count must be >= 0, got %d", n)
	}
	if r.Decided() {
		return dealt, ErrRoundOver
	}
	for seat, p := range r.players {
		if p.IsEliminated() {
			continue
		}
		for i := 0; i < n; i++ {
			if r.cfg.MaxItems > 0 && p.Inventory().Len() >= r.cfg.MaxItems {
				break
			}
			it := player.AllItems[r.src.Intn(len(player.AllItems))]
			p.Give(it)
			dealt[seat]++
			r.record(Event{
				Kind:      EventDeal,
				ActorID:   p.ID,
				ActorName: p.Name,
				Item:      it,
				Narrative: fmt.Sprintf("%s receives a %s.", p.Name, it),
			})
		}
	}
	r.logger.Debug("items dealt", zap.Int("requested", n), zap.Ints("dealt", dealt[:]))
	return dealt, nil
}

// Fire discharges the shotgun at target on behalf of the current player and
// advances the turn.
//
// Postcondition: on success Remaining() decreases by 1. Returns ErrRoundOver
// once a player is eliminated, shotgun.ErrEmptyMagazine when the gun needs a
// reload, and player.ErrInvalidTarget for TargetUnknown.
func (r *Round) Fire(target Target) (Event, error) {
	if r.Decided() {
		return Event{}, ErrRoundOver
	}
	actor := r.Current()
	var victim *player.Player
	switch target {
	case TargetSelf:
		victim = actor
	case TargetOpponent:
		victim = r.Opponent()
	default:
		return Event{}, fmt.Errorf("round: target %s: %w", target, player.ErrInvalidTarget)
	}

	out, err := r.gun.Discharge(victim)
	if err != nil {
		r.logger.Debug("discharge rejected", zap.String("player", actor.Name), zap.Error(err))
		return Event{}, err
	}

	ev := Event{
		Kind:       EventFire,
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		TargetName: victim.Name,
		Charge:     out.Charge,
		HasCharge:  true,
		Damage:     out.Lost,
		Narrative:  fireNarrative(actor, victim, out),
	}
	r.record(ev)
	r.logger.Info("discharge",
		zap.String("player", actor.Name),
		zap.String("target", victim.Name),
		zap.Stringer("charge", out.Charge),
		zap.Bool("sawed", out.Sawed),
		zap.Uint8("damage", out.Lost),
		zap.Uint8("target_lives", victim.Lives()),
		zap.Int("remaining", r.gun.Remaining()),
	)

	keepTurn := r.cfg.KeepTurnOnBlankSelfShot && target == TargetSelf && out.Charge == shotgun.Blank
	if !keepTurn && !r.Decided() {
		r.advance()
	}
	return ev, nil
}

// UseItem applies item for the current player. Handcuffs target the
// opponent. Using an item does not end the turn.
//
// Postcondition: on error no state is mutated. Cigarettes never raise lives
// above Config.MaxLives when it is set.
func (r *Round) UseItem(item player.Item) (Event, error) {
	if r.Decided() {
		return Event{}, ErrRoundOver
	}
	actor := r.Current()
	var target *player.Player
	if item.RequiresTarget() {
		target = r.Opponent()
	}

	out, err := actor.ApplyItem(item, r.gun, target)
	if err != nil {
		r.logger.Debug("item rejected",
			zap.String("player", actor.Name),
			zap.Stringer("item", item),
			zap.Error(err),
		)
		return Event{}, err
	}
	if item == player.Cigarette {
		actor.CapLives(r.cfg.MaxLives)
	}

	ev := Event{
		Kind:      EventItem,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Item:      item,
		Charge:    out.Charge,
		HasCharge: out.HasCharge,
		Private:   item == player.Magnifier,
		Narrative: itemNarrative(actor, target, out),
	}
	if target != nil {
		ev.TargetName = target.Name
	}
	r.record(ev)

	fields := []zap.Field{
		zap.String("player", actor.Name),
		zap.Stringer("item", item),
		zap.Uint8("lives", actor.Lives()),
		zap.Int("remaining", r.gun.Remaining()),
	}
	if out.HasCharge {
		fields = append(fields, zap.Stringer("charge", out.Charge))
	}
	r.logger.Info("item used", fields...)
	return ev, nil
}

// advance hands the turn to the other player unless they are restrained,
// in which case the restraint is consumed and the current player goes again.
func (r *Round) advance() {
	next := 1 - r.turn
	p := r.players[next]
	if p.IsRestrained() {
		p.ClearRestraint()
		r.record(Event{
			Kind:      EventSkip,
			ActorID:   p.ID,
			ActorName: p.Name,
			Narrative: fmt.Sprintf("%s is cuffed and skips a turn.", p.Name),
		})
		r.logger.Info("turn skipped", zap.String("player", p.Name))
		return
	}
	r.turn = next
}

func (r *Round) record(ev Event) {
	r.events = append(r.events, ev)
}

func fireNarrative(actor, victim *player.Player, out shotgun.DischargeOutcome) string {
	aim := victim.Name
	if actor == victim {
		aim = "themselves"
	}
	if out.Charge == shotgun.Blank {
		return fmt.Sprintf("%s fires at %s: click, blank.", actor.Name, aim)
	}
	if victim.IsEliminated() {
		return fmt.Sprintf("%s fires at %s: live! %s is out.", actor.Name, aim, victim.Name)
	}
	return fmt.Sprintf("%s fires at %s: live! %s loses %d.", actor.Name, aim, victim.Name, out.Lost)
}

func itemNarrative(actor, target *player.Player, out player.ItemOutcome) string {
	switch out.Item {
	case player.Saw:
		return fmt.Sprintf("%s saws off the barrel.", actor.Name)
	case player.Magnifier:
		return fmt.Sprintf("%s checks the chamber.", actor.Name)
	case player.Beer:
		return fmt.Sprintf("%s racks the shotgun: a %s shell drops out.", actor.Name, out.Charge)
	case player.Handcuffs:
		return fmt.Sprintf("%s cuffs %s.", actor.Name, target.Name)
	case player.Cigarette:
		return fmt.Sprintf("%s smokes a cigarette (%d lives).", actor.Name, actor.Lives())
	default:
		return fmt.Sprintf("%s uses %s.", actor.Name, out.Item)
	}
}
