package shotgun_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/buckshot/internal/game/rng"
	"github.com/cory-johannsen/buckshot/internal/game/shotgun"
)

func chargeGen() *rapid.Generator[shotgun.Charge] {
	return rapid.SampledFrom([]shotgun.Charge{shotgun.Live, shotgun.Blank})
}

// TestMagazine_Next_FiresInOrder verifies charges come out in the order they were loaded.
func TestMagazine_Next_FiresInOrder(t *testing.T) {
	m := shotgun.NewMagazine(shotgun.Blank, shotgun.Live, shotgun.Live)
	for _, want := range []shotgun.Charge{shotgun.Blank, shotgun.Live, shotgun.Live} {
		got, err := m.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, m.IsEmpty())
}

// TestMagazine_Next_EmptyReturnsSentinel verifies ErrEmptyMagazine on an empty magazine.
func TestMagazine_Next_EmptyReturnsSentinel(t *testing.T) {
	m := shotgun.NewMagazine()
	_, err := m.Next()
	assert.True(t, errors.Is(err, shotgun.ErrEmptyMagazine))
	_, err = m.Peek()
	assert.True(t, errors.Is(err, shotgun.ErrEmptyMagazine))
}

// TestMagazine_Fill_CopiesInput verifies later mutation of the caller's slice has no effect.
func TestMagazine_Fill_CopiesInput(t *testing.T) {
	in := []shotgun.Charge{shotgun.Live, shotgun.Blank}
	m := shotgun.NewMagazine(in...)
	in[0] = shotgun.Blank
	got, err := m.Peek()
	require.NoError(t, err)
	assert.Equal(t, shotgun.Live, got)
}

// TestMagazine_Counts verifies live and blank tallies.
func TestMagazine_Counts(t *testing.T) {
	m := shotgun.NewMagazine(shotgun.Build(3, 2)...)
	live, blank := m.Counts()
	assert.Equal(t, 3, live)
	assert.Equal(t, 2, blank)
}

// TestProperty_Magazine_ShuffleIsPermutation verifies Shuffle preserves length
// and live/blank counts for arbitrary contents and seeds.
func TestProperty_Magazine_ShuffleIsPermutation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		charges := rapid.SliceOfN(chargeGen(), 0, 12).Draw(rt, "charges")
		seed := rapid.Uint64().Draw(rt, "seed")

		m := shotgun.NewMagazine(charges...)
		wantLive, wantBlank := m.Counts()
		m.Shuffle(rng.NewSeededSource(seed))

		live, blank := m.Counts()
		if m.Len() != len(charges) || live != wantLive || blank != wantBlank {
			rt.Fatalf("shuffle changed contents: len=%d live=%d blank=%d, want len=%d live=%d blank=%d",
				m.Len(), live, blank, len(charges), wantLive, wantBlank)
		}
	})
}

// TestMagazine_Shuffle_DeterministicForSeed verifies the same seed yields the same order.
func TestMagazine_Shuffle_DeterministicForSeed(t *testing.T) {
	a := shotgun.NewMagazine(shotgun.Build(4, 4)...)
	b := shotgun.NewMagazine(shotgun.Build(4, 4)...)
	a.Shuffle(rng.NewSeededSource(42))
	b.Shuffle(rng.NewSeededSource(42))
	assert.Equal(t, a.Charges(), b.Charges())
}

// TestProperty_Magazine_NextDecrementsByOne verifies every successful Next
// removes exactly one charge.
func TestProperty_Magazine_NextDecrementsByOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		charges := rapid.SliceOfN(chargeGen(), 1, 12).Draw(rt, "charges")
		m := shotgun.NewMagazine(charges...)
		for i := len(charges); i > 0; i-- {
			before := m.Len()
			if _, err := m.Next(); err != nil {
				rt.Fatalf("unexpected error: %v", err)
			}
			if m.Len() != before-1 {
				rt.Fatalf("Len went %d -> %d", before, m.Len())
			}
		}
		if !m.IsEmpty() {
			rt.Fatal("magazine should be empty")
		}
	})
}

// TestCharge_TextRoundTrip verifies text parsing of charge names, including case.
func TestCharge_TextRoundTrip(t *testing.T) {
	var c shotgun.Charge
	require.NoError(t, c.UnmarshalText([]byte("LIVE")))
	assert.Equal(t, shotgun.Live, c)
	b, err := shotgun.Blank.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "blank", string(b))
	assert.Error(t, c.UnmarshalText([]byte("slug")))
}

// TestBuild_PanicsOnNegative verifies Build rejects negative counts.
func TestBuild_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { shotgun.Build(-1, 0) })
}
