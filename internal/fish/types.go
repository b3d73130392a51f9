package fish

import "fmt"

type (
	FishId        int
	BaitId        int
	RodId         int
	EnvironmentId int
)

type Kind int

const (
	KindFish Kind = iota
	KindBait
	KindRod
	KindEnvironment
)

func (k Kind) String() string {
	switch k {
	case KindFish:
		return "fish"
	case KindBait:
		return "bait"
	case KindRod:
		return "rod"
	case KindEnvironment:
		return "environment"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Ref names a catalog definition. Ids are only unique within a kind.
type Ref struct {
	Kind Kind
	Id   int
}

func (r Ref) String() string { return fmt.Sprintf("%s %d", r.Kind, r.Id) }

// Definition is any catalog entry.
type Definition interface {
	Ref() Ref
}

// Item is a definition that can be held in an inventory. The set of
// implementations is closed: Fish, Bait and Rod.
type Item interface {
	Definition
	item()
}

type Fish struct {
	Id          FishId
	Name        string
	Rarity      int    // ordinal tier, higher = rarer; also the catch weight
	Bait        string // name of the bait this fish bites on
	Environment EnvironmentId
	Price       int
}

type Bait struct {
	Id    BaitId
	Name  string
	Price int
}

// Rod is a catalog template. Owned rods carry their own durability in the
// inventory; gameplay never writes to the template.
type Rod struct {
	Id            RodId
	Name          string
	MaxRarity     int
	Price         int
	MaxDurability int
	Durability    int
}

type Environment struct {
	Id   EnvironmentId
	Name string
	Fish []FishId
}

func (f Fish) Ref() Ref        { return Ref{Kind: KindFish, Id: int(f.Id)} }
func (b Bait) Ref() Ref        { return Ref{Kind: KindBait, Id: int(b.Id)} }
func (r Rod) Ref() Ref         { return Ref{Kind: KindRod, Id: int(r.Id)} }
func (e Environment) Ref() Ref { return Ref{Kind: KindEnvironment, Id: int(e.Id)} }

func (Fish) item() {}
func (Bait) item() {}
func (Rod) item()  {}

// Has reports whether id is one of the fish obtainable in e.
func (e Environment) Has(id FishId) bool {
	for _, f := range e.Fish {
		if f == id {
			return true
		}
	}
	return false
}
