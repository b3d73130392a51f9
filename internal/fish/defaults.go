package fish

import "sync"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// DefaultCatalog returns the built-in tables. It is built on first use and
// shared by every caller.
func DefaultCatalog() *Catalog {
	defaultOnce.Do(func() {
		cat, err := NewCatalog(defaultFish, defaultBaits, defaultRods, defaultEnvironments)
		if err != nil {
			panic("fish: built-in catalog is invalid: " + err.Error())
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}

var defaultFish = []Fish{
	{Id: 1, Name: "Small Bass", Rarity: 1, Bait: "Worm", Environment: 1, Price: 20},
	{Id: 2, Name: "Medium Bass", Rarity: 2, Bait: "Shrimp", Environment: 1, Price: 40},
	{Id: 3, Name: "Large Bass", Rarity: 3, Bait: "Live Bait", Environment: 1, Price: 80},
	{Id: 4, Name: "Small Trout", Rarity: 1, Bait: "Corn", Environment: 1, Price: 25},
	{Id: 5, Name: "Medium Trout", Rarity: 2, Bait: "Minnow", Environment: 1, Price: 50},
	{Id: 6, Name: "Small Salmon", Rarity: 1, Bait: "Worm", Environment: 2, Price: 30},
	{Id: 7, Name: "Medium Salmon", Rarity: 2, Bait: "Shrimp", Environment: 2, Price: 60},
	{Id: 8, Name: "Large Salmon", Rarity: 3, Bait: "Live Bait", Environment: 2, Price: 100},
	{Id: 9, Name: "Small Catfish", Rarity: 1, Bait: "Corn", Environment: 2, Price: 15},
	{Id: 10, Name: "Medium Catfish", Rarity: 2, Bait: "Minnow", Environment: 2, Price: 35},
	{Id: 11, Name: "Small Tuna", Rarity: 1, Bait: "Plankton", Environment: 3, Price: 40},
	{Id: 12, Name: "Medium Tuna", Rarity: 2, Bait: "Fly", Environment: 3, Price: 70},
	{Id: 13, Name: "Large Tuna", Rarity: 3, Bait: "Large Fish", Environment: 3, Price: 120},
	{Id: 14, Name: "Small Mackerel", Rarity: 1, Bait: "Flakes", Environment: 3, Price: 10},
	{Id: 15, Name: "Medium Mackerel", Rarity: 2, Bait: "Meat", Environment: 3, Price: 20},
	{Id: 16, Name: "Rare Fish", Rarity: 4, Bait: "Krill", Environment: 3, Price: 200},
	{Id: 17, Name: "Swordfish", Rarity: 4, Bait: "Small Fish", Environment: 3, Price: 250},
	{Id: 18, Name: "Marlin", Rarity: 4, Bait: "Squid", Environment: 3, Price: 300},
	{Id: 19, Name: "Stingray", Rarity: 3, Bait: "Shrimp", Environment: 3, Price: 90},
	{Id: 20, Name: "Clownfish", Rarity: 1, Bait: "Plankton", Environment: 3, Price: 15},
	{Id: 21, Name: "Octopus", Rarity: 2, Bait: "Crab", Environment: 3, Price: 45},
	{Id: 22, Name: "Lobster", Rarity: 3, Bait: "Small Fish", Environment: 3, Price: 110},
	{Id: 23, Name: "Crab", Rarity: 1, Bait: "Worm", Environment: 3, Price: 10},
	{Id: 24, Name: "Shrimp", Rarity: 1, Bait: "Plankton", Environment: 3, Price: 5},
	{Id: 25, Name: "Squid", Rarity: 2, Bait: "Small Fish", Environment: 3, Price: 30},
	{Id: 26, Name: "Jellyfish", Rarity: 1, Bait: "Plankton", Environment: 3, Price: 8},
	{Id: 27, Name: "Pufferfish", Rarity: 2, Bait: "Shrimp", Environment: 3, Price: 35},
	{Id: 28, Name: "Sea Turtle", Rarity: 3, Bait: "Algae", Environment: 3, Price: 100},
	{Id: 29, Name: "Starfish", Rarity: 1, Bait: "Plankton", Environment: 3, Price: 7},
	{Id: 30, Name: "Sea Cucumber", Rarity: 1, Bait: "Algae", Environment: 3, Price: 6},
	{Id: 31, Name: "Sea Urchin", Rarity: 2, Bait: "Algae", Environment: 3, Price: 25},
	{Id: 32, Name: "Whale", Rarity: 4, Bait: "Krill", Environment: 3, Price: 500},
	{Id: 33, Name: "Dolphin", Rarity: 3, Bait: "Small Fish", Environment: 3, Price: 150},
	{Id: 34, Name: "Barracuda", Rarity: 2, Bait: "Small Fish", Environment: 3, Price: 60},
	{Id: 35, Name: "Mackerel", Rarity: 1, Bait: "Shrimp", Environment: 3, Price: 12},
	{Id: 36, Name: "Herring", Rarity: 1, Bait: "Plankton", Environment: 3, Price: 9},
	{Id: 37, Name: "Cod", Rarity: 1, Bait: "Small Fish", Environment: 3, Price: 18},
	{Id: 38, Name: "Halibut", Rarity: 2, Bait: "Squid", Environment: 3, Price: 40},
	{Id: 39, Name: "Flounder", Rarity: 1, Bait: "Worm", Environment: 3, Price: 14},
	{Id: 40, Name: "Ray", Rarity: 2, Bait: "Shrimp", Environment: 3, Price: 30},
	{Id: 41, Name: "Trout", Rarity: 1, Bait: "Fly", Environment: 2, Price: 22},
	{Id: 42, Name: "Bass", Rarity: 1, Bait: "Minnow", Environment: 1, Price: 28},
	{Id: 43, Name: "Pike", Rarity: 2, Bait: "Small Fish", Environment: 1, Price: 55},
	{Id: 44, Name: "Muskellunge", Rarity: 3, Bait: "Large Fish", Environment: 1, Price: 130},
	{Id: 45, Name: "Gar", Rarity: 2, Bait: "Meat", Environment: 2, Price: 45},
	{Id: 46, Name: "Paddlefish", Rarity: 3, Bait: "Plankton", Environment: 2, Price: 110},
	{Id: 47, Name: "Catfish", Rarity: 1, Bait: "Worm", Environment: 2, Price: 17},
	{Id: 48, Name: "Crappie", Rarity: 1, Bait: "Minnow", Environment: 1, Price: 20},
	{Id: 49, Name: "Sunfish", Rarity: 1, Bait: "Worm", Environment: 4, Price: 13},
	{Id: 50, Name: "Bluegill", Rarity: 1, Bait: "Worm", Environment: 4, Price: 11},
}

var defaultBaits = []Bait{
	{Id: 1, Name: "Worm", Price: 10},
	{Id: 2, Name: "Shrimp", Price: 20},
	{Id: 3, Name: "Corn", Price: 15},
	{Id: 4, Name: "Minnow", Price: 25},
	{Id: 5, Name: "Plankton", Price: 30},
	{Id: 6, Name: "Fly", Price: 35},
	{Id: 7, Name: "Live Bait", Price: 40},
	{Id: 8, Name: "Large Fish", Price: 50},
	{Id: 9, Name: "Flakes", Price: 5},
	{Id: 10, Name: "Meat", Price: 45},
	{Id: 11, Name: "Krill", Price: 55},
	{Id: 12, Name: "Squid", Price: 60},
	{Id: 13, Name: "Crab", Price: 65},
	{Id: 14, Name: "Algae", Price: 70},
	{Id: 15, Name: "Small Fish", Price: 75},
}

var defaultRods = []Rod{
	{Id: 1, Name: "Bamboo Fishing Rod", MaxRarity: 1, Price: 100, MaxDurability: 100, Durability: 100},
	{Id: 2, Name: "Composite Fishing Rod", MaxRarity: 2, Price: 150, MaxDurability: 150, Durability: 150},
	{Id: 3, Name: "Carbon Fiber Fishing Rod", MaxRarity: 2, Price: 200, MaxDurability: 200, Durability: 200},
	{Id: 4, Name: "Graphite Fishing Rod", MaxRarity: 3, Price: 300, MaxDurability: 300, Durability: 300},
	{Id: 5, Name: "Ultralight Fishing Rod", MaxRarity: 1, Price: 50, MaxDurability: 50, Durability: 50},
	{Id: 6, Name: "Medium Fishing Rod", MaxRarity: 2, Price: 120, MaxDurability: 120, Durability: 120},
	{Id: 7, Name: "Heavy Fishing Rod", MaxRarity: 3, Price: 250, MaxDurability: 250, Durability: 250},
	{Id: 8, Name: "Professional Fishing Rod", MaxRarity: 4, Price: 500, MaxDurability: 500, Durability: 500},
	{Id: 9, Name: "Mini Fishing Rod", MaxRarity: 1, Price: 30, MaxDurability: 30, Durability: 30},
	{Id: 10, Name: "Telescopic Fishing Rod", MaxRarity: 2, Price: 100, MaxDurability: 100, Durability: 100},
	{Id: 11, Name: "Spinning Rod", MaxRarity: 2, Price: 180, MaxDurability: 180, Durability: 180},
	{Id: 12, Name: "Casting Rod", MaxRarity: 3, Price: 280, MaxDurability: 280, Durability: 280},
	{Id: 13, Name: "Jigging Rod", MaxRarity: 3, Price: 350, MaxDurability: 350, Durability: 350},
	{Id: 14, Name: "Surf Casting Rod", MaxRarity: 2, Price: 220, MaxDurability: 220, Durability: 220},
	{Id: 15, Name: "Bottom Fishing Rod", MaxRarity: 1, Price: 100, MaxDurability: 100, Durability: 100},
	{Id: 16, Name: "Float Fishing Rod", MaxRarity: 1, Price: 70, MaxDurability: 70, Durability: 70},
	{Id: 17, Name: "Hand Fishing Rod", MaxRarity: 1, Price: 60, MaxDurability: 60, Durability: 60},
	{Id: 18, Name: "Algae Fishing Rod", MaxRarity: 1, Price: 40, MaxDurability: 40, Durability: 40},
	{Id: 19, Name: "Eel Fishing Rod", MaxRarity: 1, Price: 50, MaxDurability: 50, Durability: 50},
	{Id: 20, Name: "Perch Fishing Rod", MaxRarity: 1, Price: 60, MaxDurability: 60, Durability: 60},
	{Id: 21, Name: "Carp Fishing Rod", MaxRarity: 2, Price: 100, MaxDurability: 100, Durability: 100},
	{Id: 22, Name: "Pangasius Fishing Rod", MaxRarity: 1, Price: 80, MaxDurability: 80, Durability: 80},
	{Id: 23, Name: "Salmon Fishing Rod", MaxRarity: 2, Price: 150, MaxDurability: 150, Durability: 150},
	{Id: 24, Name: "Deep Sea Fishing Rod", MaxRarity: 3, Price: 300, MaxDurability: 300, Durability: 300},
	{Id: 25, Name: "Grouper Fishing Rod", MaxRarity: 2, Price: 180, MaxDurability: 180, Durability: 180},
	{Id: 26, Name: "Tuna Fishing Rod", MaxRarity: 3, Price: 250, MaxDurability: 250, Durability: 250},
	{Id: 27, Name: "Shark Fishing Rod", MaxRarity: 4, Price: 400, MaxDurability: 400, Durability: 400},
	{Id: 28, Name: "Alligator Fishing Rod", MaxRarity: 4, Price: 450, MaxDurability: 450, Durability: 450},
	{Id: 29, Name: "Whale Fishing Rod", MaxRarity: 4, Price: 500, MaxDurability: 500, Durability: 500},
}

var defaultEnvironments = []Environment{
	{Id: 1, Name: "Lake", Fish: []FishId{1, 2, 3, 4, 5, 42, 43, 44, 48}},
	{Id: 2, Name: "River", Fish: []FishId{6, 7, 8, 9, 10, 41, 45, 46, 47}},
	{Id: 3, Name: "Ocean", Fish: []FishId{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40}},
	{Id: 4, Name: "Pond", Fish: []FishId{49, 50, 1, 3, 5, 7, 9}},
	{Id: 5, Name: "Swamp", Fish: []FishId{2, 4, 6, 8, 10}},
	{Id: 6, Name: "Coral Reef", Fish: []FishId{20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 35, 36, 37, 38, 39, 40}},
	{Id: 7, Name: "Deep Sea", Fish: []FishId{11, 12, 13, 16, 17, 18, 32, 33, 34}},
	{Id: 8, Name: "Mountain Stream", Fish: []FishId{41, 42, 43, 44, 45, 46, 47, 48}},
	{Id: 9, Name: "Mangrove", Fish: []FishId{1, 2, 3, 6, 7, 8, 49, 50}},
	{Id: 10, Name: "Arctic", Fish: []FishId{32, 33, 34, 35, 36, 37, 38, 39, 40}},
}
