package inventory

import (
	"errors"
	"fmt"

	"github.com/faideww/koga-fishing/internal/fish"
)

const (
	MinLevel         = 1
	MaxLevel         = 5
	capacityPerLevel = 10
)

var (
	ErrCapacityExceeded = errors.New("inventory is full")
	ErrMaxLevelReached  = errors.New("maximum inventory level reached")
	ErrInvalidLevel     = errors.New("invalid inventory level")
	ErrNotEnough        = errors.New("not enough items in inventory")
)

// OwnedRod is a rod instance held by a player. Durability counts the casts
// left before it breaks.
type OwnedRod struct {
	Rod        fish.Rod
	Durability int
}

// Inventory holds a player's fish, bait and rods. The total item count never
// exceeds MaxCapacity; a mutation that would exceed it fails before changing
// anything. It is not safe for concurrent use.
type Inventory struct {
	level int
	fish  []fish.Fish
	baits []fish.Bait
	rods  []OwnedRod
}

func New() *Inventory {
	return &Inventory{level: MinLevel}
}

func NewAtLevel(level int) (*Inventory, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidLevel, level, MinLevel, MaxLevel)
	}
	return &Inventory{level: level}, nil
}

func (inv *Inventory) Level() int { return inv.level }

func (inv *Inventory) MaxCapacity() int { return capacityFor(inv.level) }

func capacityFor(level int) int { return level * capacityPerLevel }

func (inv *Inventory) Total() int {
	return len(inv.fish) + len(inv.baits) + len(inv.rods)
}

func (inv *Inventory) Free() int { return inv.MaxCapacity() - inv.Total() }

func (inv *Inventory) checkSpace(n int) error {
	if inv.Total()+n > inv.MaxCapacity() {
		return fmt.Errorf("%w: %d/%d", ErrCapacityExceeded, inv.Total(), inv.MaxCapacity())
	}
	return nil
}

// Add stores one item. Rods are wrapped with the template's durability.
func (inv *Inventory) Add(item fish.Item) error {
	if err := inv.checkSpace(1); err != nil {
		return err
	}

	switch it := item.(type) {
	case fish.Fish:
		inv.fish = append(inv.fish, it)
	case fish.Bait:
		inv.baits = append(inv.baits, it)
	case fish.Rod:
		inv.rods = append(inv.rods, OwnedRod{Rod: it, Durability: it.Durability})
	default:
		panic(fmt.Sprintf("inventory: unhandled item type %T", item))
	}
	return nil
}

// AddRod stores a rod instance with an explicit durability.
func (inv *Inventory) AddRod(rod fish.Rod, durability int) error {
	if err := inv.checkSpace(1); err != nil {
		return err
	}
	inv.rods = append(inv.rods, OwnedRod{Rod: rod, Durability: durability})
	return nil
}

// Remove drops exactly one entry with the item's catalog id, the first one
// held. It reports whether anything was removed.
func (inv *Inventory) Remove(item fish.Item) bool {
	i := inv.index(item)
	if i < 0 {
		return false
	}
	inv.removeAt(item, i)
	return true
}

// RemoveN drops exactly n entries with the item's catalog id, or none at all
// if fewer than n are held.
func (inv *Inventory) RemoveN(item fish.Item, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: cannot remove %d", ErrNotEnough, n)
	}
	if have := inv.Count(item); have < n {
		return fmt.Errorf("%w: have %d, want %d", ErrNotEnough, have, n)
	}
	for ; n > 0; n-- {
		inv.removeAt(item, inv.index(item))
	}
	return nil
}

// RemoveAll drops every entry with the item's catalog id and returns how
// many were removed.
func (inv *Inventory) RemoveAll(item fish.Item) int {
	removed := 0
	for inv.Remove(item) {
		removed++
	}
	return removed
}

func (inv *Inventory) index(item fish.Item) int {
	switch it := item.(type) {
	case fish.Fish:
		for i, f := range inv.fish {
			if f.Id == it.Id {
				return i
			}
		}
	case fish.Bait:
		for i, b := range inv.baits {
			if b.Id == it.Id {
				return i
			}
		}
	case fish.Rod:
		for i, r := range inv.rods {
			if r.Rod.Id == it.Id {
				return i
			}
		}
	default:
		panic(fmt.Sprintf("inventory: unhandled item type %T", item))
	}
	return -1
}

func (inv *Inventory) removeAt(item fish.Item, i int) {
	switch item.(type) {
	case fish.Fish:
		inv.fish = append(inv.fish[:i], inv.fish[i+1:]...)
	case fish.Bait:
		inv.baits = append(inv.baits[:i], inv.baits[i+1:]...)
	case fish.Rod:
		inv.rods = append(inv.rods[:i], inv.rods[i+1:]...)
	default:
		panic(fmt.Sprintf("inventory: unhandled item type %T", item))
	}
}

// Count returns how many entries share the item's catalog id.
func (inv *Inventory) Count(item fish.Item) int {
	n := 0
	switch it := item.(type) {
	case fish.Fish:
		n = inv.CountFish(it.Id)
	case fish.Bait:
		n = inv.CountBait(it.Id)
	case fish.Rod:
		for _, r := range inv.rods {
			if r.Rod.Id == it.Id {
				n++
			}
		}
	default:
		panic(fmt.Sprintf("inventory: unhandled item type %T", item))
	}
	return n
}

func (inv *Inventory) CountFish(id fish.FishId) int {
	n := 0
	for _, f := range inv.fish {
		if f.Id == id {
			n++
		}
	}
	return n
}

func (inv *Inventory) CountBait(id fish.BaitId) int {
	n := 0
	for _, b := range inv.baits {
		if b.Id == id {
			n++
		}
	}
	return n
}

// HasUsableRod reports whether some instance of the rod has durability left.
func (inv *Inventory) HasUsableRod(id fish.RodId) bool {
	return inv.usableRod(id) >= 0
}

func (inv *Inventory) usableRod(id fish.RodId) int {
	for i, r := range inv.rods {
		if r.Rod.Id == id && r.Durability > 0 {
			return i
		}
	}
	return -1
}

// WearRod spends one cast of durability on the first usable instance of the
// rod. When that brings it to zero the instance is removed and broken is
// true. ok is false, and nothing changes, if no usable instance is held.
func (inv *Inventory) WearRod(id fish.RodId) (rod OwnedRod, broken bool, ok bool) {
	i := inv.usableRod(id)
	if i < 0 {
		return OwnedRod{}, false, false
	}

	inv.rods[i].Durability--
	rod = inv.rods[i]
	if rod.Durability <= 0 {
		inv.rods = append(inv.rods[:i], inv.rods[i+1:]...)
		return rod, true, true
	}
	return rod, false, true
}

// LevelUp raises the level by one, growing capacity. Capacity never shrinks.
func (inv *Inventory) LevelUp() error {
	if inv.level >= MaxLevel {
		return fmt.Errorf("%w: level %d", ErrMaxLevelReached, inv.level)
	}
	inv.level++
	return nil
}

func (inv *Inventory) Fish() []fish.Fish {
	out := make([]fish.Fish, len(inv.fish))
	copy(out, inv.fish)
	return out
}

func (inv *Inventory) Baits() []fish.Bait {
	out := make([]fish.Bait, len(inv.baits))
	copy(out, inv.baits)
	return out
}

func (inv *Inventory) Rods() []OwnedRod {
	out := make([]OwnedRod, len(inv.rods))
	copy(out, inv.rods)
	return out
}
