package player_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/buckshot/internal/game/player"
	"github.com/cory-johannsen/buckshot/internal/game/shotgun"
)

func loadedGun(charges ...shotgun.Charge) *shotgun.Shotgun {
	g := shotgun.New()
	g.Load(charges)
	return g
}

// TestPlayer_New verifies the initial state and a non-empty ID.
func TestPlayer_New(t *testing.T) {
	p := player.New("dealer", 4, player.Saw)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "dealer", p.Name)
	assert.Equal(t, uint8(4), p.Lives())
	assert.False(t, p.IsRestrained())
	assert.False(t, p.IsEliminated())
	assert.True(t, p.Inventory().Has(player.Saw))
}

// TestPlayer_TakeDamage_Saturates verifies life floors at zero.
func TestPlayer_TakeDamage_Saturates(t *testing.T) {
	p := player.New("a", 1)
	assert.Equal(t, uint8(1), p.TakeDamage(2))
	assert.Equal(t, uint8(0), p.Lives())
	assert.True(t, p.IsEliminated())
	assert.Equal(t, uint8(0), p.TakeDamage(1))
	assert.Equal(t, uint8(0), p.Lives())
}

// TestPlayer_ApplyItem_Saw verifies the saw arms the gun and is consumed.
func TestPlayer_ApplyItem_Saw(t *testing.T) {
	p := player.New("a", 2, player.Saw)
	g := loadedGun(shotgun.Live)
	out, err := p.ApplyItem(player.Saw, g, nil)
	require.NoError(t, err)
	assert.Equal(t, player.Saw, out.Item)
	assert.False(t, out.HasCharge)
	assert.True(t, g.IsSawed())
	assert.False(t, p.Inventory().Has(player.Saw))
}

// TestPlayer_ApplyItem_Magnifier verifies the magnifier reveals without consuming a charge.
func TestPlayer_ApplyItem_Magnifier(t *testing.T) {
	p := player.New("a", 2, player.Magnifier)
	g := loadedGun(shotgun.Blank, shotgun.Live)
	out, err := p.ApplyItem(player.Magnifier, g, nil)
	require.NoError(t, err)
	assert.True(t, out.HasCharge)
	assert.Equal(t, shotgun.Blank, out.Charge)
	assert.Equal(t, 2, g.Remaining())
}

// TestPlayer_ApplyItem_Beer verifies beer ejects the next charge without damage.
func TestPlayer_ApplyItem_Beer(t *testing.T) {
	p := player.New("a", 2, player.Beer)
	g := loadedGun(shotgun.Live, shotgun.Blank)
	out, err := p.ApplyItem(player.Beer, g, nil)
	require.NoError(t, err)
	assert.Equal(t, shotgun.Live, out.Charge)
	assert.Equal(t, 1, g.Remaining())
	assert.Equal(t, uint8(2), p.Lives())
	next, err := g.Peek()
	require.NoError(t, err)
	assert.Equal(t, shotgun.Blank, next)
}

// TestPlayer_ApplyItem_Handcuffs verifies the target is restrained and the cuffs consumed.
func TestPlayer_ApplyItem_Handcuffs(t *testing.T) {
	p := player.New("a", 2, player.Handcuffs)
	o := player.New("b", 2)
	_, err := p.ApplyItem(player.Handcuffs, shotgun.New(), o)
	require.NoError(t, err)
	assert.True(t, o.IsRestrained())
	assert.False(t, p.IsRestrained())
	assert.False(t, p.Inventory().Has(player.Handcuffs))

	o.ClearRestraint()
	assert.False(t, o.IsRestrained())
}

// TestPlayer_ApplyItem_Handcuffs_InvalidTargets verifies nil, self and
// eliminated targets are rejected without consuming the cuffs.
func TestPlayer_ApplyItem_Handcuffs_InvalidTargets(t *testing.T) {
	p := player.New("a", 2, player.Handcuffs)
	dead := player.New("b", 0)
	for name, target := range map[string]*player.Player{"nil": nil, "self": p, "eliminated": dead} {
		_, err := p.ApplyItem(player.Handcuffs, shotgun.New(), target)
		assert.True(t, errors.Is(err, player.ErrInvalidTarget), name)
		assert.Equal(t, 1, p.Inventory().Count(player.Handcuffs), name)
	}
	assert.False(t, dead.IsRestrained())
}

// TestPlayer_ApplyItem_Cigarette verifies a cigarette adds one life with no item cap.
func TestPlayer_ApplyItem_Cigarette(t *testing.T) {
	p := player.New("a", 6, player.Cigarette, player.Cigarette)
	_, err := p.ApplyItem(player.Cigarette, shotgun.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), p.Lives())
	assert.Equal(t, 1, p.Inventory().Count(player.Cigarette))
}

// TestPlayer_ApplyItem_EmptyMagazine verifies Magnifier and Beer fail on an
// empty gun and keep the item.
func TestPlayer_ApplyItem_EmptyMagazine(t *testing.T) {
	p := player.New("a", 2, player.Magnifier, player.Beer)
	g := shotgun.New()
	for _, it := range []player.Item{player.Magnifier, player.Beer} {
		_, err := p.ApplyItem(it, g, nil)
		assert.True(t, errors.Is(err, shotgun.ErrEmptyMagazine), it.String())
		assert.True(t, p.Inventory().Has(it), it.String())
	}
}

// TestPlayer_ApplyItem_Unknown verifies the zero item is rejected.
func TestPlayer_ApplyItem_Unknown(t *testing.T) {
	p := player.New("a", 2)
	_, err := p.ApplyItem(player.ItemUnknown, shotgun.New(), nil)
	assert.True(t, errors.Is(err, player.ErrUnknownItem))
}

// TestProperty_Player_FailedApplyLeavesStateUnchanged verifies a failed
// ApplyItem (item not held) mutates neither player, inventory nor gun.
func TestProperty_Player_FailedApplyLeavesStateUnchanged(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		held := rapid.SliceOfN(rapid.SampledFrom(player.AllItems), 0, 8).Draw(rt, "held")
		want := rapid.SampledFrom(player.AllItems).Draw(rt, "want")
		lives := rapid.Uint8Range(1, 10).Draw(rt, "lives")
		sawed := rapid.Bool().Draw(rt, "sawed")

		p := player.New("a", lives, held...)
		o := player.New("b", 3)
		for p.Inventory().Remove(want) {
		}
		g := loadedGun(shotgun.Live, shotgun.Blank, shotgun.Live)
		if sawed {
			g.Saw()
		}
		itemsBefore := p.Inventory().Items()
		chargesBefore := g.Charges()

		_, err := p.ApplyItem(want, g, o)
		if !errors.Is(err, player.ErrItemNotHeld) {
			rt.Fatalf("expected ErrItemNotHeld, got %v", err)
		}
		assert.Equal(rt, itemsBefore, p.Inventory().Items())
		assert.Equal(rt, chargesBefore, g.Charges())
		assert.Equal(rt, lives, p.Lives())
		assert.Equal(rt, sawed, g.IsSawed())
		assert.False(rt, o.IsRestrained())
	})
}

// TestProperty_Player_RemainingCountLaw verifies Beer removes exactly one
// charge and Magnifier removes none.
func TestProperty_Player_RemainingCountLaw(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "n")
		it := rapid.SampledFrom([]player.Item{player.Beer, player.Magnifier}).Draw(rt, "item")
		g := loadedGun(shotgun.Build(n, 1)...)
		p := player.New("a", 2, it)
		before := g.Remaining()
		if _, err := p.ApplyItem(it, g, nil); err != nil {
			rt.Fatalf("apply: %v", err)
		}
		want := before
		if it == player.Beer {
			want--
		}
		if g.Remaining() != want {
			rt.Fatalf("%s: remaining=%d, want %d", it, g.Remaining(), want)
		}
	})
}
