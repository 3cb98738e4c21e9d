// Package level provides definitions and loaders for the scripted levels a
// game is played through.
package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/buckshot/internal/game/player"
	"github.com/cory-johannsen/buckshot/internal/game/shotgun"
)

// Load describes one magazine load within a level. Either Charges lists the
// shells explicitly or Live/Blank give counts; Items is how many random items
// each player is dealt before the load.
type Load struct {
	Live    int              `yaml:"live"`
	Blank   int              `yaml:"blank"`
	Charges []shotgun.Charge `yaml:"charges"`
	Items   int              `yaml:"items"`
	// Shuffle is nil when unset; explicit charge lists default to their given
	// order and counted loads are always shuffled.
	Shuffle *bool `yaml:"shuffle"`
}

// Expand returns the charges for this load.
//
// Postcondition: explicit Charges are copied; otherwise Live live charges
// followed by Blank blank charges.
func (l Load) Expand() []shotgun.Charge {
	if len(l.Charges) > 0 {
		out := make([]shotgun.Charge, len(l.Charges))
		copy(out, l.Charges)
		return out
	}
	return shotgun.Build(l.Live, l.Blank)
}

// Shuffled reports whether the load should be randomized when placed in the gun.
func (l Load) Shuffled() bool {
	if l.Shuffle != nil {
		return *l.Shuffle
	}
	return len(l.Charges) == 0
}

// Level defines the static properties of a level loaded from YAML.
type Level struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Order         int    `yaml:"order"`
	StartingLives uint8  `yaml:"starting_lives"`
	MaxLives      uint8  `yaml:"max_lives"` // 0 = uncapped
	// StartingItems are placed in every player's inventory before the first load.
	StartingItems []player.Item `yaml:"starting_items"`
	Loads         []Load        `yaml:"loads"`
}

// Validate checks that the Level satisfies its invariants.
// Precondition: l is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (l *Level) Validate() error {
	var errs []error
	if l.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if l.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if l.StartingLives < 1 {
		errs = append(errs, errors.New("StartingLives must be >= 1"))
	}
	if l.MaxLives != 0 && l.MaxLives < l.StartingLives {
		errs = append(errs, fmt.Errorf("MaxLives must be 0 or >= StartingLives (%d), got %d", l.StartingLives, l.MaxLives))
	}
	if len(l.Loads) == 0 {
		errs = append(errs, errors.New("at least one load is required"))
	}
	for i, ld := range l.Loads {
		if ld.Live < 0 || ld.Blank < 0 {
			errs = append(errs, fmt.Errorf("load %d: counts must be >= 0", i))
			continue
		}
		if len(ld.Charges) > 0 && (ld.Live > 0 || ld.Blank > 0) {
			errs = append(errs, fmt.Errorf("load %d: use either charges or live/blank counts", i))
		}
		if len(ld.Expand()) == 0 {
			errs = append(errs, fmt.Errorf("load %d: must contain at least one charge", i))
		}
		if ld.Items < 0 {
			errs = append(errs, fmt.Errorf("load %d: items must be >= 0", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("level validation failed: %v", errs)
	}
	return nil
}

// LoadLevels reads all *.yaml files from dir, parses each as a Level,
// validates it, and returns them sorted by Order then ID.
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Levels or the first encountered error.
func LoadLevels(dir string) ([]*Level, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadLevels: cannot read directory %q: %w", dir, err)
	}

	var levels []*Level
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadLevels: cannot read file %q: %w", path, err)
		}
		var l Level
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("LoadLevels: cannot parse file %q: %w", path, err)
		}
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("LoadLevels: invalid level in %q: %w", path, err)
		}
		levels = append(levels, &l)
	}
	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].Order != levels[j].Order {
			return levels[i].Order < levels[j].Order
		}
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}
