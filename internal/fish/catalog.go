package fish

import (
	"fmt"
	"sort"
)

// Catalog is an immutable set of fish, bait, rod and environment
// definitions. It is safe to share between sessions.
type Catalog struct {
	fish  []Fish // ascending id
	baits []Bait
	rods  []Rod
	envs  []Environment

	fishById  map[FishId]int
	baitById  map[BaitId]int
	rodById   map[RodId]int
	envById   map[EnvironmentId]int
	baitNames map[string]BaitId
}

func NewCatalog(fish []Fish, baits []Bait, rods []Rod, envs []Environment) (*Catalog, error) {
	c := &Catalog{
		fish:      append([]Fish(nil), fish...),
		baits:     append([]Bait(nil), baits...),
		rods:      append([]Rod(nil), rods...),
		envs:      make([]Environment, len(envs)),
		fishById:  make(map[FishId]int, len(fish)),
		baitById:  make(map[BaitId]int, len(baits)),
		rodById:   make(map[RodId]int, len(rods)),
		envById:   make(map[EnvironmentId]int, len(envs)),
		baitNames: make(map[string]BaitId, len(baits)),
	}
	for i, e := range envs {
		e.Fish = append([]FishId(nil), e.Fish...)
		c.envs[i] = e
	}

	sort.Slice(c.fish, func(i, j int) bool { return c.fish[i].Id < c.fish[j].Id })
	sort.Slice(c.baits, func(i, j int) bool { return c.baits[i].Id < c.baits[j].Id })
	sort.Slice(c.rods, func(i, j int) bool { return c.rods[i].Id < c.rods[j].Id })
	sort.Slice(c.envs, func(i, j int) bool { return c.envs[i].Id < c.envs[j].Id })

	for i, b := range c.baits {
		if b.Id <= 0 {
			return nil, fmt.Errorf("bait %q: id must be positive", b.Name)
		}
		if _, dup := c.baitById[b.Id]; dup {
			return nil, fmt.Errorf("duplicate bait id %d", b.Id)
		}
		if b.Name == "" {
			return nil, fmt.Errorf("missing name at bait id %d", b.Id)
		}
		if _, dup := c.baitNames[b.Name]; dup {
			return nil, fmt.Errorf("duplicate bait name %q", b.Name)
		}
		if b.Price < 0 {
			return nil, fmt.Errorf("bait %d: negative price", b.Id)
		}
		c.baitById[b.Id] = i
		c.baitNames[b.Name] = b.Id
	}

	for i, f := range c.fish {
		if f.Id <= 0 {
			return nil, fmt.Errorf("fish %q: id must be positive", f.Name)
		}
		if _, dup := c.fishById[f.Id]; dup {
			return nil, fmt.Errorf("duplicate fish id %d", f.Id)
		}
		if f.Name == "" {
			return nil, fmt.Errorf("missing name at fish id %d", f.Id)
		}
		if f.Rarity < 1 {
			return nil, fmt.Errorf("fish %d: rarity must be at least 1", f.Id)
		}
		if f.Price < 0 {
			return nil, fmt.Errorf("fish %d: negative price", f.Id)
		}
		if _, ok := c.baitNames[f.Bait]; !ok {
			return nil, fmt.Errorf("fish %d: unknown bait %q", f.Id, f.Bait)
		}
		c.fishById[f.Id] = i
	}

	for i := range c.rods {
		r := &c.rods[i]
		if r.Id <= 0 {
			return nil, fmt.Errorf("rod %q: id must be positive", r.Name)
		}
		if _, dup := c.rodById[r.Id]; dup {
			return nil, fmt.Errorf("duplicate rod id %d", r.Id)
		}
		if r.Name == "" {
			return nil, fmt.Errorf("missing name at rod id %d", r.Id)
		}
		if r.MaxRarity < 1 {
			return nil, fmt.Errorf("rod %d: max rarity must be at least 1", r.Id)
		}
		if r.Price < 0 {
			return nil, fmt.Errorf("rod %d: negative price", r.Id)
		}
		if r.MaxDurability < 1 {
			return nil, fmt.Errorf("rod %d: max durability must be at least 1", r.Id)
		}
		if r.Durability == 0 {
			r.Durability = r.MaxDurability
		}
		if r.Durability < 0 || r.Durability > r.MaxDurability {
			return nil, fmt.Errorf("rod %d: durability %d outside 1..%d", r.Id, r.Durability, r.MaxDurability)
		}
		c.rodById[r.Id] = i
	}

	for i, e := range c.envs {
		if e.Id <= 0 {
			return nil, fmt.Errorf("environment %q: id must be positive", e.Name)
		}
		if _, dup := c.envById[e.Id]; dup {
			return nil, fmt.Errorf("duplicate environment id %d", e.Id)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("missing name at environment id %d", e.Id)
		}
		for _, fid := range e.Fish {
			if _, ok := c.fishById[fid]; !ok {
				return nil, fmt.Errorf("environment %d: unknown fish id %d", e.Id, fid)
			}
		}
		c.envById[e.Id] = i
	}

	return c, nil
}

func (c *Catalog) Fish(id FishId) (Fish, error) {
	i, ok := c.fishById[id]
	if !ok {
		return Fish{}, notFound(KindFish, int(id))
	}
	return c.fish[i], nil
}

func (c *Catalog) Bait(id BaitId) (Bait, error) {
	i, ok := c.baitById[id]
	if !ok {
		return Bait{}, notFound(KindBait, int(id))
	}
	return c.baits[i], nil
}

func (c *Catalog) Rod(id RodId) (Rod, error) {
	i, ok := c.rodById[id]
	if !ok {
		return Rod{}, notFound(KindRod, int(id))
	}
	return c.rods[i], nil
}

func (c *Catalog) Environment(id EnvironmentId) (Environment, error) {
	i, ok := c.envById[id]
	if !ok {
		return Environment{}, notFound(KindEnvironment, int(id))
	}
	e := c.envs[i]
	e.Fish = append([]FishId(nil), e.Fish...)
	return e, nil
}

// Lookup resolves ref against the namespace of its kind.
func (c *Catalog) Lookup(ref Ref) (Definition, error) {
	var (
		def Definition
		err error
	)
	switch ref.Kind {
	case KindFish:
		def, err = c.Fish(FishId(ref.Id))
	case KindBait:
		def, err = c.Bait(BaitId(ref.Id))
	case KindRod:
		def, err = c.Rod(RodId(ref.Id))
	case KindEnvironment:
		def, err = c.Environment(EnvironmentId(ref.Id))
	default:
		err = notFound(ref.Kind, ref.Id)
	}
	if err != nil {
		return nil, err
	}
	return def, nil
}

func (c *Catalog) NameOf(ref Ref) string {
	switch ref.Kind {
	case KindFish:
		if f, err := c.Fish(FishId(ref.Id)); err == nil {
			return f.Name
		}
	case KindBait:
		if b, err := c.Bait(BaitId(ref.Id)); err == nil {
			return b.Name
		}
	case KindRod:
		if r, err := c.Rod(RodId(ref.Id)); err == nil {
			return r.Name
		}
	case KindEnvironment:
		if e, err := c.Environment(EnvironmentId(ref.Id)); err == nil {
			return e.Name
		}
	}
	return "Unknown"
}

func (c *Catalog) AllFish() []Fish {
	out := make([]Fish, len(c.fish))
	copy(out, c.fish)
	return out
}

func (c *Catalog) AllBaits() []Bait {
	out := make([]Bait, len(c.baits))
	copy(out, c.baits)
	return out
}

func (c *Catalog) AllRods() []Rod {
	out := make([]Rod, len(c.rods))
	copy(out, c.rods)
	return out
}

func (c *Catalog) AllEnvironments() []Environment {
	out := make([]Environment, len(c.envs))
	for i, e := range c.envs {
		e.Fish = append([]FishId(nil), e.Fish...)
		out[i] = e
	}
	return out
}

func (c *Catalog) Count(k Kind) int {
	switch k {
	case KindFish:
		return len(c.fish)
	case KindBait:
		return len(c.baits)
	case KindRod:
		return len(c.rods)
	case KindEnvironment:
		return len(c.envs)
	}
	return 0
}
