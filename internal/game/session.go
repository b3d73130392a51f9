package game

import (
	"fmt"
	mrand "math/rand"

	"github.com/faideww/koga-fishing/internal/fish"
	"github.com/faideww/koga-fishing/internal/inventory"
	"github.com/google/uuid"
)

// Session is one player's game: a purse, an inventory and the catalog they
// fish against. Each public operation either applies fully or returns an
// error with the session unchanged; the one exception is a cast that breaks
// the rod, which keeps the durability loss. A Session is not safe for
// concurrent use. Catalogs may be shared between sessions.
type Session struct {
	id       uuid.UUID
	player   string
	money    int
	inv      *inventory.Inventory
	cat      *fish.Catalog
	resolver *fish.Resolver
}

// NewSession starts a game. A nil inventory starts empty at level 1, a nil
// catalog uses the built-in tables and a nil rng is seeded from crypto/rand.
func NewSession(player string, startingMoney int, inv *inventory.Inventory, cat *fish.Catalog, rng *mrand.Rand) (*Session, error) {
	if startingMoney < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeMoney, startingMoney)
	}
	if inv == nil {
		inv = inventory.New()
	}
	if cat == nil {
		cat = fish.DefaultCatalog()
	}

	return &Session{
		id:       uuid.New(),
		player:   player,
		money:    startingMoney,
		inv:      inv,
		cat:      cat,
		resolver: fish.NewResolver(cat, rng),
	}, nil
}

func (s *Session) Id() uuid.UUID                   { return s.id }
func (s *Session) PlayerName() string              { return s.player }
func (s *Session) Money() int                      { return s.money }
func (s *Session) Inventory() *inventory.Inventory { return s.inv }
func (s *Session) Catalog() *fish.Catalog          { return s.cat }
func (s *Session) Resolver() *fish.Resolver        { return s.resolver }

func (s *Session) Fish(id fish.FishId) (fish.Fish, error) { return s.cat.Fish(id) }
func (s *Session) Bait(id fish.BaitId) (fish.Bait, error) { return s.cat.Bait(id) }
func (s *Session) Rod(id fish.RodId) (fish.Rod, error)    { return s.cat.Rod(id) }

func (s *Session) Environment(id fish.EnvironmentId) (fish.Environment, error) {
	return s.cat.Environment(id)
}

// CatchFish casts once. Every cast costs the rod one durability, spent
// before anything bites. If that breaks the rod it is removed and a
// *RodBrokenError is returned without fishing. A catch consumes one bait
// and adds the fish to the inventory; a miss keeps the bait.
func (s *Session) CatchFish(baitId fish.BaitId, rodId fish.RodId, envId fish.EnvironmentId) (fish.Fish, bool, error) {
	bait, err := s.cat.Bait(baitId)
	if err != nil {
		return fish.Fish{}, false, err
	}
	rod, err := s.cat.Rod(rodId)
	if err != nil {
		return fish.Fish{}, false, err
	}
	env, err := s.cat.Environment(envId)
	if err != nil {
		return fish.Fish{}, false, err
	}

	if s.inv.CountBait(bait.Id) == 0 {
		return fish.Fish{}, false, fmt.Errorf("%w: no %s in inventory", ErrBaitInsufficient, bait.Name)
	}
	if !s.inv.HasUsableRod(rod.Id) {
		return fish.Fish{}, false, fmt.Errorf("%w: %s", ErrRodNotFound, rod.Name)
	}

	if _, broken, _ := s.inv.WearRod(rod.Id); broken {
		return fish.Fish{}, false, &RodBrokenError{Rod: rod.Name}
	}

	caught, ok := s.resolver.Resolve(bait, rod, env)
	if !ok {
		return fish.Fish{}, false, nil
	}

	// the spent bait frees the slot the fish goes into
	s.inv.Remove(bait)
	if err := s.inv.Add(caught); err != nil {
		_ = s.inv.Add(bait)
		return fish.Fish{}, false, err
	}
	return caught, true, nil
}

func (s *Session) BuyFishingRod(rodId fish.RodId) error {
	rod, err := s.cat.Rod(rodId)
	if err != nil {
		return err
	}
	return s.buy(rod, rod.Name, rod.Price)
}

func (s *Session) BuyBait(baitId fish.BaitId) error {
	bait, err := s.cat.Bait(baitId)
	if err != nil {
		return err
	}
	return s.buy(bait, bait.Name, bait.Price)
}

// buy debits the price and stores the item, refunding if the inventory
// refuses it.
func (s *Session) buy(item fish.Item, name string, price int) error {
	if s.money < price {
		return &InsufficientFundsError{Item: name, Price: price, Money: s.money}
	}

	s.money -= price
	if err := s.inv.Add(item); err != nil {
		s.money += price
		return fmt.Errorf("failed to buy %s: %w", name, err)
	}
	return nil
}

// SellFish sells quantity fish of one species and returns the money
// credited. Either all of them are sold or none are.
func (s *Session) SellFish(fishId fish.FishId, quantity int) (int, error) {
	f, err := s.cat.Fish(fishId)
	if err != nil {
		return 0, err
	}
	if quantity < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	have := s.inv.CountFish(f.Id)
	if have < quantity {
		return 0, &InsufficientInventoryError{Fish: f.Id, Have: have, Want: quantity}
	}
	if err := s.inv.RemoveN(f, quantity); err != nil {
		return 0, err
	}

	total := f.Price * quantity
	s.money += total
	return total, nil
}

func (s *Session) LevelUpInventory() error {
	return s.inv.LevelUp()
}

func (s *Session) AddItem(item fish.Item) error {
	return s.inv.Add(item)
}

func (s *Session) RemoveItem(item fish.Item) bool {
	return s.inv.Remove(item)
}

// Odds previews the bite chances for a cast without spending anything.
func (s *Session) Odds(baitId fish.BaitId, rodId fish.RodId, envId fish.EnvironmentId) ([]fish.Chance, error) {
	bait, err := s.cat.Bait(baitId)
	if err != nil {
		return nil, err
	}
	rod, err := s.cat.Rod(rodId)
	if err != nil {
		return nil, err
	}
	env, err := s.cat.Environment(envId)
	if err != nil {
		return nil, err
	}
	return s.resolver.Odds(bait, rod, env), nil
}
