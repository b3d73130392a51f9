package fish_test

import (
	"math"
	mrand "math/rand"
	"testing"

	"github.com/faideww/koga-fishing/internal/fish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always yields the same Int63, pinning rng.Float64 to
// v / 2^63.
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }
func (fixedSource) Seed(int64)     {}

func pondCatalog(t *testing.T, rarities ...int) *fish.Catalog {
	t.Helper()
	var (
		fishes []fish.Fish
		ids    []fish.FishId
	)
	for i, r := range rarities {
		id := fish.FishId(i + 1)
		fishes = append(fishes, fish.Fish{Id: id, Name: "F" + string(rune('A'+i)), Rarity: r, Bait: "Worm", Environment: 1, Price: 10 * r})
		ids = append(ids, id)
	}
	cat, err := fish.NewCatalog(
		fishes,
		[]fish.Bait{{Id: 1, Name: "Worm", Price: 1}, {Id: 2, Name: "Corn", Price: 1}},
		[]fish.Rod{{Id: 1, Name: "Strong", MaxRarity: 9, MaxDurability: 100}},
		[]fish.Environment{{Id: 1, Name: "Pond", Fish: ids}, {Id: 2, Name: "Desert"}},
	)
	require.NoError(t, err)
	return cat
}

func mustCast(t *testing.T, cat *fish.Catalog, baitId fish.BaitId, rodId fish.RodId, envId fish.EnvironmentId) (fish.Bait, fish.Rod, fish.Environment) {
	t.Helper()
	b, err := cat.Bait(baitId)
	require.NoError(t, err)
	r, err := cat.Rod(rodId)
	require.NoError(t, err)
	e, err := cat.Environment(envId)
	require.NoError(t, err)
	return b, r, e
}

// TestResolver_Candidates_DefaultLake verifies the bait, environment and
// rarity filters against the built-in tables.
func TestResolver_Candidates_DefaultLake(t *testing.T) {
	cat := fish.DefaultCatalog()
	res := fish.NewResolver(cat, mrand.New(mrand.NewSource(1)))

	worm, bamboo, lake := mustCast(t, cat, 1, 1, 1)
	got := res.Candidates(worm, bamboo, lake)
	require.Len(t, got, 1)
	assert.Equal(t, "Small Bass", got[0].Name)

	// Minnow in the lake: Medium Trout (2), Bass (1), Crappie (1)
	minnow, _ := cat.Bait(4)
	pro, _ := cat.Rod(8)
	got = res.Candidates(minnow, pro, lake)
	names := make([]string, len(got))
	for i, f := range got {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Medium Trout", "Bass", "Crappie"}, names)

	got = res.Candidates(minnow, bamboo, lake)
	for _, f := range got {
		assert.LessOrEqual(t, f.Rarity, bamboo.MaxRarity)
	}
	assert.Len(t, got, 2)
}

func TestResolver_NoCandidatesNeverDraws(t *testing.T) {
	cat := pondCatalog(t, 1, 2)
	// a source that would panic if Float64 were called
	res := fish.NewResolver(cat, mrand.New(panicSource{}))

	corn, rod, pond := mustCast(t, cat, 2, 1, 1)
	_, ok := res.Resolve(corn, rod, pond)
	assert.False(t, ok)

	worm, _, desert := mustCast(t, cat, 1, 1, 2)
	_, ok = res.Resolve(worm, rod, desert)
	assert.False(t, ok)
}

type panicSource struct{}

func (panicSource) Int63() int64 { panic("random source used") }
func (panicSource) Seed(int64)   {}

// TestResolver_BoundaryIsInclusive verifies that a remainder of exactly
// zero selects the current candidate.
func TestResolver_BoundaryIsInclusive(t *testing.T) {
	cat := pondCatalog(t, 2, 2)
	worm, rod, pond := mustCast(t, cat, 1, 1, 1)

	// Float64 = 0 -> roll 0 -> first candidate
	res := fish.NewResolver(cat, mrand.New(fixedSource(0)))
	got, ok := res.Resolve(worm, rod, pond)
	require.True(t, ok)
	assert.Equal(t, fish.FishId(1), got.Id)

	// Float64 = 0.5 -> roll 2 of 4 -> 2-2 == 0 lands on the first
	res = fish.NewResolver(cat, mrand.New(fixedSource(1<<62)))
	got, ok = res.Resolve(worm, rod, pond)
	require.True(t, ok)
	assert.Equal(t, fish.FishId(1), got.Id)
}

func TestResolver_HigherRarityTakesLargerShare(t *testing.T) {
	cat := pondCatalog(t, 1, 3)
	worm, rod, pond := mustCast(t, cat, 1, 1, 1)

	// roll 2 of 4: 2-1 = 1 > 0, 1-3 < 0 -> second fish
	res := fish.NewResolver(cat, mrand.New(fixedSource(1<<62)))
	got, ok := res.Resolve(worm, rod, pond)
	require.True(t, ok)
	assert.Equal(t, fish.FishId(2), got.Id)
}

// TestResolver_DistributionFollowsRarity draws many times from a seeded
// source and compares observed frequencies with rarity/totalWeight.
func TestResolver_DistributionFollowsRarity(t *testing.T) {
	rarities := []int{1, 2, 3, 4}
	cat := pondCatalog(t, rarities...)
	worm, rod, pond := mustCast(t, cat, 1, 1, 1)
	res := fish.NewResolver(cat, mrand.New(mrand.NewSource(42)))

	const trials = 200000
	counts := map[fish.FishId]int{}
	for i := 0; i < trials; i++ {
		f, ok := res.Resolve(worm, rod, pond)
		require.True(t, ok)
		counts[f.Id]++
	}

	total := 0
	for _, r := range rarities {
		total += r
	}
	for i, r := range rarities {
		id := fish.FishId(i + 1)
		want := float64(r) / float64(total)
		got := float64(counts[id]) / trials
		assert.Greater(t, counts[id], 0, "fish %d never caught", id)
		assert.InDelta(t, want, got, 0.01, "fish %d share", id)
	}
}

func TestResolver_Odds(t *testing.T) {
	cat := pondCatalog(t, 1, 3)
	worm, rod, pond := mustCast(t, cat, 1, 1, 1)
	res := fish.NewResolver(cat, nil)

	odds := res.Odds(worm, rod, pond)
	require.Len(t, odds, 2)
	assert.InDelta(t, 0.25, odds[0].Probability, 1e-9)
	assert.InDelta(t, 0.75, odds[1].Probability, 1e-9)

	sum := 0.0
	for _, c := range odds {
		sum += c.Probability
	}
	assert.True(t, math.Abs(sum-1) < 1e-9)

	corn, _, _ := mustCast(t, cat, 2, 1, 1)
	assert.Empty(t, res.Odds(corn, rod, pond))
}
