// Package session runs a game at the table: it owns the round, feeds it
// loads from a level (or random counts), and turns text commands into
// engine calls.
package session

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/buckshot/internal/game/command"
	"github.com/cory-johannsen/buckshot/internal/game/level"
	"github.com/cory-johannsen/buckshot/internal/game/player"
	"github.com/cory-johannsen/buckshot/internal/game/rng"
	"github.com/cory-johannsen/buckshot/internal/game/round"
	"github.com/cory-johannsen/buckshot/internal/game/shotgun"
)

const (
	// randomMaxLive and randomMaxBlank bound the counts drawn for unscripted loads.
	randomMaxLive  = 4
	randomMaxBlank = 4
)

// ErrUnknownCommand is returned for input that matches no registered command.
var ErrUnknownCommand = errors.New("session: unknown command")

// Options configures a Session.
type Options struct {
	// Players names the two seats; the first acts first.
	Players []string
	// StartingLives applies when Level is nil.
	StartingLives uint8
	// MaxLives caps cigarette healing when Level is nil. 0 = uncapped.
	MaxLives uint8
	// MaxItems bounds each inventory when dealing. 0 = unbounded.
	MaxItems int
	// ItemsPerLoad is dealt to each player before every load when Level is nil.
	ItemsPerLoad int
	// KeepTurnOnBlankSelfShot is passed through to the round.
	KeepTurnOnBlankSelfShot bool
	// Level scripts the loads; nil draws random counts.
	Level *level.Level
}

// Reply is what a handled command produced for the table.
type Reply struct {
	Lines []string
	Quit  bool
}

// Session is a single game in progress.
type Session struct {
	round    *round.Round
	level    *level.Level
	opts     Options
	src      rng.Source
	commands *command.Registry
	logger   *zap.Logger
	loads    int
	seen     int
}

// New seats the players and performs the first load.
//
// Precondition: src and logger must be non-nil.
// Postcondition: returns a Session whose round is loaded, or an error.
func New(opts Options, src rng.Source, logger *zap.Logger) (*Session, error) {
	if len(opts.Players) != 2 {
		return nil, fmt.Errorf("session: need exactly 2 player names, got %d", len(opts.Players))
	}
	lives, maxLives := opts.StartingLives, opts.MaxLives
	var items []player.Item
	if opts.Level != nil {
		lives, maxLives = opts.Level.StartingLives, opts.Level.MaxLives
		items = opts.Level.StartingItems
	}
	if lives == 0 {
		return nil, errors.New("session: starting lives must be >= 1")
	}

	seats := []*player.Player{
		player.New(opts.Players[0], lives, items...),
		player.New(opts.Players[1], lives, items...),
	}
	cfg := round.Config{
		MaxLives:                maxLives,
		MaxItems:                opts.MaxItems,
		KeepTurnOnBlankSelfShot: opts.KeepTurnOnBlankSelfShot,
	}
	r, err := round.New(seats, shotgun.New(), src, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		round:    r,
		level:    opts.Level,
		opts:     opts,
		src:      src,
		commands: command.DefaultRegistry(),
		logger:   logger,
	}
	if err := s.nextLoad(); err != nil {
		return nil, err
	}
	fields := []zap.Field{
		zap.Strings("players", opts.Players),
		zap.Uint8("lives", lives),
	}
	if s.level != nil {
		fields = append(fields, zap.String("level", s.level.ID))
	}
	logger.Info("session started", fields...)
	return s, nil
}

// Round exposes the underlying round.
func (s *Session) Round() *round.Round { return s.round }

// Done reports whether a player has been eliminated.
func (s *Session) Done() bool { return s.round.Decided() }

// Loads returns how many magazine loads have been performed.
func (s *Session) Loads() int { return s.loads }

// Handle parses line and executes it for the current player.
//
// Postcondition: engine errors (empty magazine, item not held, invalid
// target, round over) are returned unchanged for the shell to print.
func (s *Session) Handle(line string) (Reply, error) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return Reply{}, nil
	}
	cmd, ok := s.commands.Resolve(parsed.Command)
	if !ok {
		return Reply{}, fmt.Errorf("%w: %q (try \"help\")", ErrUnknownCommand, parsed.Command)
	}

	switch cmd.Handler {
	case command.HandlerShootSelf:
		return s.fire(round.TargetSelf)
	case command.HandlerShootOpponent:
		return s.fire(round.TargetOpponent)
	case command.HandlerUse:
		return s.use(parsed.Args)
	case command.HandlerStatus:
		return Reply{Lines: s.Status()}, nil
	case command.HandlerInventory:
		return Reply{Lines: []string{s.inventoryLine(s.round.Current())}}, nil
	case command.HandlerHelp:
		return Reply{Lines: append([]string{"commands:"}, s.commands.HelpLines()...)}, nil
	case command.HandlerQuit:
		return Reply{Lines: []string{"You leave the table."}, Quit: true}, nil
	default:
		return Reply{}, fmt.Errorf("session: no handler for %q", cmd.Handler)
	}
}

// Status returns the banner: each player's lives, the remaining shells and
// whose turn it is.
func (s *Session) Status() []string {
	var lines []string
	for _, p := range s.round.Players() {
		line := fmt.Sprintf("%s: %d", p.Name, p.Lives())
		if p.IsRestrained() {
			line += " (cuffed)"
		}
		lines = append(lines, line)
	}
	live, blank := s.round.Gun().Counts()
	lines = append(lines, fmt.Sprintf("shells: %d (%d live, %d blank)", live+blank, live, blank))
	if w, ok := s.round.Winner(); ok {
		lines = append(lines, fmt.Sprintf("winner: %s", w.Name))
	} else {
		lines = append(lines, fmt.Sprintf("current: %s", s.round.Current().Name))
	}
	return lines
}

func (s *Session) fire(target round.Target) (Reply, error) {
	if _, err := s.round.Fire(target); err != nil {
		return Reply{}, err
	}
	lines := s.drain()
	if w, ok := s.round.Winner(); ok {
		lines = append(lines, fmt.Sprintf("%s wins.", w.Name))
		return Reply{Lines: lines}, nil
	}
	if s.round.NeedsReload() {
		if err := s.nextLoad(); err != nil {
			return Reply{Lines: lines}, err
		}
		lines = append(lines, s.drain()...)
	}
	return Reply{Lines: lines}, nil
}

func (s *Session) use(args []string) (Reply, error) {
	if len(args) != 1 {
		return Reply{}, fmt.Errorf("session: usage: use <item>")
	}
	it, err := player.ParseItem(args[0])
	if err != nil {
		return Reply{}, err
	}
	ev, err := s.round.UseItem(it)
	if err != nil {
		return Reply{}, err
	}
	lines := s.drain()
	if ev.Private && ev.HasCharge {
		lines = append(lines, fmt.Sprintf("(%s sees a %s shell)", ev.ActorName, ev.Charge))
	}
	return Reply{Lines: lines}, nil
}

// nextLoad deals and loads the next magazine. Scripted levels repeat their
// last load once exhausted.
func (s *Session) nextLoad() error {
	var (
		charges []shotgun.Charge
		items   = s.opts.ItemsPerLoad
		shuffle = true
	)
	if s.level != nil {
		idx := s.loads
		if idx >= len(s.level.Loads) {
			idx = len(s.level.Loads) - 1
		}
		ld := s.level.Loads[idx]
		charges, items, shuffle = ld.Expand(), ld.Items, ld.Shuffled()
	} else {
		live := 1 + s.src.Intn(randomMaxLive)
		blank := 1 + s.src.Intn(randomMaxBlank)
		charges = shotgun.Build(live, blank)
	}

	if items > 0 {
		if _, err := s.round.Deal(items); err != nil {
			return fmt.Errorf("session: dealing: %w", err)
		}
	}
	load := s.round.Load
	if !shuffle {
		load = s.round.LoadInOrder
	}
	if err := load(charges); err != nil {
		return fmt.Errorf("session: loading: %w", err)
	}
	s.loads++
	return nil
}

// drain returns the narratives of events recorded since the last call.
func (s *Session) drain() []string {
	events := s.round.Events()
	var lines []string
	for _, ev := range events[s.seen:] {
		lines = append(lines, ev.Narrative)
	}
	s.seen = len(events)
	return lines
}

func (s *Session) inventoryLine(p *player.Player) string {
	items := p.Inventory().Items()
	if len(items) == 0 {
		return fmt.Sprintf("%s has no items.", p.Name)
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.String()
	}
	return fmt.Sprintf("%s has: %s", p.Name, strings.Join(names, ", "))
}

// Intro returns the narratives produced while setting up the table.
func (s *Session) Intro() []string {
	return s.drain()
}
