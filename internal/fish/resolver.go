package fish

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"time"
)

// Resolver decides what, if anything, bites for a given bait, rod and
// environment. It is not safe for concurrent use because it owns its random
// source.
type Resolver struct {
	cat *Catalog
	rng *mrand.Rand
}

func NewResolver(cat *Catalog, rng *mrand.Rand) *Resolver {
	if rng == nil {
		rng = NewRand()
	}
	return &Resolver{cat: cat, rng: rng}
}

// NewRand returns a math/rand source seeded from crypto/rand, falling back to
// the clock if the system source is unavailable.
func NewRand() *mrand.Rand {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}
	return mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// Candidates lists, in catalog order, the fish that bite on bait in env and
// that rod is strong enough to land.
func (r *Resolver) Candidates(bait Bait, rod Rod, env Environment) []Fish {
	var out []Fish
	for _, f := range r.cat.fish {
		if f.Bait != bait.Name || !env.Has(f.Id) {
			continue
		}
		if f.Rarity > rod.MaxRarity {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Resolve draws one fish from the candidates, weighting each by its rarity.
// Higher rarity means a larger share of the draw. With no candidates nothing
// is drawn and the result is always a miss.
func (r *Resolver) Resolve(bait Bait, rod Rod, env Environment) (Fish, bool) {
	candidates := r.Candidates(bait, rod, env)
	if len(candidates) == 0 {
		return Fish{}, false
	}

	totalWeight := 0
	for _, f := range candidates {
		totalWeight += f.Rarity
	}

	roll := r.rng.Float64() * float64(totalWeight) // [0,totalWeight)
	for _, f := range candidates {
		roll -= float64(f.Rarity)
		if roll <= 0 {
			return f, true
		}
	}

	// unreachable for positive weights; float rounding lands on the last one
	return candidates[len(candidates)-1], true
}

type Chance struct {
	Fish        Fish
	Probability float64
}

// Odds reports the probability of each candidate being the one that bites.
func (r *Resolver) Odds(bait Bait, rod Rod, env Environment) []Chance {
	candidates := r.Candidates(bait, rod, env)
	totalWeight := 0
	for _, f := range candidates {
		totalWeight += f.Rarity
	}

	out := make([]Chance, len(candidates))
	for i, f := range candidates {
		out[i] = Chance{Fish: f, Probability: float64(f.Rarity) / float64(totalWeight)}
	}
	return out
}
