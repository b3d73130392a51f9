package game

import (
	"errors"
	"fmt"

	"github.com/faideww/koga-fishing/internal/fish"
)

var (
	ErrBaitInsufficient = errors.New("insufficient bait")
	ErrRodNotFound      = errors.New("fishing rod not found in inventory or has no durability")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrNegativeMoney    = errors.New("starting money must not be negative")
)

// RodBrokenError reports that a cast used up the last of a rod's
// durability. The rod has already been removed from the inventory.
type RodBrokenError struct {
	Rod string
}

func (e *RodBrokenError) Error() string {
	return fmt.Sprintf("your %s broke", e.Rod)
}

type InsufficientFundsError struct {
	Item  string
	Price int
	Money int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds to buy %s: costs %d, have %d", e.Item, e.Price, e.Money)
}

type InsufficientInventoryError struct {
	Fish fish.FishId
	Have int
	Want int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("not enough fish %d in inventory to sell: have %d, want %d", e.Fish, e.Have, e.Want)
}
