package fish

type RarityTier int

const (
	TierCommon RarityTier = iota
	TierUncommon
	TierRare
	TierLegendary
	TierMythic
)

func (t RarityTier) String() string {
	switch t {
	case TierMythic:
		return "Mythic"
	case TierLegendary:
		return "Legendary"
	case TierRare:
		return "Rare"
	case TierUncommon:
		return "Uncommon"
	default:
		return "Common"
	}
}

// TierFor maps a rarity ordinal onto its display tier. The built-in tables
// use rarities 1 through 4; anything above is Mythic.
func TierFor(rarity int) RarityTier {
	switch {
	case rarity >= 5:
		return TierMythic
	case rarity == 4:
		return TierLegendary
	case rarity == 3:
		return TierRare
	case rarity == 2:
		return TierUncommon
	default:
		return TierCommon
	}
}

func (f Fish) Tier() RarityTier { return TierFor(f.Rarity) }

// ColorForTier returns the ANSI SGR foreground code used to print a tier.
func ColorForTier(t RarityTier) int {
	switch t {
	case TierMythic:
		return 31 // red
	case TierLegendary:
		return 33 // gold
	case TierRare:
		return 34 // blue
	case TierUncommon:
		return 32 // green
	default:
		return 37 // gray
	}
}
