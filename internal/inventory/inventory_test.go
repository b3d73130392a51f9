package inventory_test

import (
	"testing"

	"github.com/faideww/koga-fishing/internal/fish"
	"github.com/faideww/koga-fishing/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var (
	bass  = fish.Fish{Id: 1, Name: "Small Bass", Rarity: 1, Bait: "Worm", Environment: 1, Price: 20}
	trout = fish.Fish{Id: 4, Name: "Small Trout", Rarity: 1, Bait: "Corn", Environment: 1, Price: 25}
	worm  = fish.Bait{Id: 1, Name: "Worm", Price: 10}
	corn  = fish.Bait{Id: 3, Name: "Corn", Price: 15}
	reed  = fish.Rod{Id: 1, Name: "Reed Rod", MaxRarity: 1, Price: 50, MaxDurability: 3, Durability: 3}
)

func TestNew_StartsAtLevelOne(t *testing.T) {
	inv := inventory.New()
	assert.Equal(t, 1, inv.Level())
	assert.Equal(t, 10, inv.MaxCapacity())
	assert.Equal(t, 0, inv.Total())
}

func TestNewAtLevel(t *testing.T) {
	inv, err := inventory.NewAtLevel(3)
	require.NoError(t, err)
	assert.Equal(t, 30, inv.MaxCapacity())

	for _, bad := range []int{0, 6, -1} {
		_, err := inventory.NewAtLevel(bad)
		assert.ErrorIs(t, err, inventory.ErrInvalidLevel, "level %d", bad)
	}
}

// TestAdd_DispatchesByItemKind verifies that each item lands in its own
// collection and that rods take the template's durability.
func TestAdd_DispatchesByItemKind(t *testing.T) {
	inv := inventory.New()
	require.NoError(t, inv.Add(bass))
	require.NoError(t, inv.Add(worm))
	require.NoError(t, inv.Add(reed))

	assert.Equal(t, []fish.Fish{bass}, inv.Fish())
	assert.Equal(t, []fish.Bait{worm}, inv.Baits())
	assert.Equal(t, []inventory.OwnedRod{{Rod: reed, Durability: 3}}, inv.Rods())
	assert.Equal(t, 3, inv.Total())
}

func TestAdd_FailsWhenFull(t *testing.T) {
	inv := inventory.New()
	for i := 0; i < 10; i++ {
		require.NoError(t, inv.Add(worm))
	}

	err := inv.Add(bass)
	assert.ErrorIs(t, err, inventory.ErrCapacityExceeded)
	err = inv.AddRod(reed, 1)
	assert.ErrorIs(t, err, inventory.ErrCapacityExceeded)

	assert.Equal(t, 10, inv.Total())
	assert.Equal(t, 0, inv.CountFish(bass.Id))
	assert.Empty(t, inv.Rods())
}

// TestRemove_TakesExactlyOne verifies that stacked duplicates survive a
// single removal.
func TestRemove_TakesExactlyOne(t *testing.T) {
	inv := inventory.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, inv.Add(worm))
	}
	require.NoError(t, inv.Add(corn))

	assert.True(t, inv.Remove(worm))
	assert.Equal(t, 2, inv.CountBait(worm.Id))
	assert.Equal(t, 1, inv.CountBait(corn.Id))

	assert.False(t, inv.Remove(bass))
	assert.Equal(t, 3, inv.Total())
}

func TestRemoveN_IsAllOrNothing(t *testing.T) {
	inv := inventory.New()
	require.NoError(t, inv.Add(bass))
	require.NoError(t, inv.Add(trout))
	require.NoError(t, inv.Add(bass))

	err := inv.RemoveN(bass, 3)
	assert.ErrorIs(t, err, inventory.ErrNotEnough)
	assert.Equal(t, 2, inv.CountFish(bass.Id))

	require.NoError(t, inv.RemoveN(bass, 2))
	assert.Equal(t, 0, inv.CountFish(bass.Id))
	assert.Equal(t, []fish.Fish{trout}, inv.Fish())
}

func TestRemoveAll(t *testing.T) {
	inv := inventory.New()
	for i := 0; i < 4; i++ {
		require.NoError(t, inv.Add(worm))
	}
	require.NoError(t, inv.Add(reed))

	assert.Equal(t, 4, inv.RemoveAll(worm))
	assert.Equal(t, 1, inv.Total())
	assert.Equal(t, 1, inv.RemoveAll(reed))
	assert.Equal(t, 0, inv.RemoveAll(reed))
}

func TestLevelUp_StopsAtFive(t *testing.T) {
	inv := inventory.New()
	for i := 0; i < 4; i++ {
		require.NoError(t, inv.LevelUp())
	}
	assert.Equal(t, 5, inv.Level())
	assert.Equal(t, 50, inv.MaxCapacity())

	err := inv.LevelUp()
	assert.ErrorIs(t, err, inventory.ErrMaxLevelReached)
	assert.Equal(t, 5, inv.Level())
	assert.Equal(t, 50, inv.MaxCapacity())
}

func TestWearRod(t *testing.T) {
	inv := inventory.New()
	require.NoError(t, inv.Add(reed))

	rod, broken, ok := inv.WearRod(reed.Id)
	require.True(t, ok)
	assert.False(t, broken)
	assert.Equal(t, 2, rod.Durability)
	assert.Equal(t, 3, rod.Rod.Durability, "template must not change")

	_, broken, _ = inv.WearRod(reed.Id)
	assert.False(t, broken)
	rod, broken, ok = inv.WearRod(reed.Id)
	require.True(t, ok)
	assert.True(t, broken)
	assert.Equal(t, 0, rod.Durability)
	assert.Empty(t, inv.Rods())

	_, _, ok = inv.WearRod(reed.Id)
	assert.False(t, ok)
}

// TestWearRod_SkipsSpentInstances verifies that a zero-durability rod is
// treated as not owned and that a second, working instance is used instead.
func TestWearRod_SkipsSpentInstances(t *testing.T) {
	inv := inventory.New()
	require.NoError(t, inv.AddRod(reed, 0))
	assert.False(t, inv.HasUsableRod(reed.Id))

	_, _, ok := inv.WearRod(reed.Id)
	assert.False(t, ok)
	assert.Equal(t, 0, inv.Rods()[0].Durability)

	require.NoError(t, inv.AddRod(reed, 5))
	rod, broken, ok := inv.WearRod(reed.Id)
	require.True(t, ok)
	assert.False(t, broken)
	assert.Equal(t, 4, rod.Durability)
	assert.Equal(t, []inventory.OwnedRod{{Rod: reed, Durability: 0}, {Rod: reed, Durability: 4}}, inv.Rods())
}

func TestAccessorsReturnCopies(t *testing.T) {
	inv := inventory.New()
	require.NoError(t, inv.Add(reed))

	rods := inv.Rods()
	rods[0].Durability = 99
	assert.Equal(t, 3, inv.Rods()[0].Durability)
}

// TestInventory_CapacityInvariant drives random operations and checks that
// the item count never exceeds capacity and that failed adds change nothing.
func TestInventory_CapacityInvariant(t *testing.T) {
	items := []fish.Item{bass, trout, worm, corn, reed}

	rapid.Check(t, func(rt *rapid.T) {
		inv := inventory.New()
		steps := rapid.IntRange(1, 200).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			item := rapid.SampledFrom(items).Draw(rt, "item")
			before := inv.Total()

			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				err := inv.Add(item)
				if before >= inv.MaxCapacity() {
					if err == nil {
						rt.Fatalf("add succeeded at %d/%d", before, inv.MaxCapacity())
					}
					if inv.Total() != before {
						rt.Fatalf("failed add changed total %d -> %d", before, inv.Total())
					}
				} else if err != nil {
					rt.Fatalf("add failed with room: %v", err)
				}
			case 1:
				had := inv.Count(item)
				removed := inv.Remove(item)
				if removed != (had > 0) || inv.Count(item) != had-boolInt(removed) {
					rt.Fatalf("remove of %v: had %d, removed %v, now %d", item.Ref(), had, removed, inv.Count(item))
				}
			case 2:
				_ = inv.LevelUp()
			case 3:
				n := rapid.IntRange(0, 3).Draw(rt, "n")
				had := inv.Count(item)
				err := inv.RemoveN(item, n)
				if (err == nil) != (had >= n) {
					rt.Fatalf("RemoveN(%d) with %d held: %v", n, had, err)
				}
				if err != nil && inv.Count(item) != had {
					rt.Fatalf("failed RemoveN changed count %d -> %d", had, inv.Count(item))
				}
			}

			if inv.Total() > inv.MaxCapacity() {
				rt.Fatalf("total %d exceeds capacity %d", inv.Total(), inv.MaxCapacity())
			}
			if inv.Level() < inventory.MinLevel || inv.Level() > inventory.MaxLevel {
				rt.Fatalf("level %d out of range", inv.Level())
			}
		}
	})
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
