package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PlayerName     string
	StartingMoney  int
	InventoryLevel int
	CatalogPath    string // empty means the built-in catalog
	JournalDBPath  string // empty disables the catch journal
	Seed           int64
	HasSeed        bool
	StarterKit     bool
	Color          bool
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	playerName := os.Getenv("PLAYER_NAME")
	if playerName == "" {
		playerName = "angler"
	}

	startingMoney, err := loadInt("STARTING_MONEY", 500)
	if err != nil {
		return nil, err
	}
	if startingMoney < 0 {
		return nil, fmt.Errorf("STARTING_MONEY must not be negative, got %d", startingMoney)
	}

	inventoryLevel, err := loadInt("INVENTORY_LEVEL", 1)
	if err != nil {
		return nil, err
	}

	starterKit, err := loadInt("STARTER_KIT", 1)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		PlayerName:     playerName,
		StartingMoney:  startingMoney,
		InventoryLevel: inventoryLevel,
		CatalogPath:    os.Getenv("CATALOG_PATH"),
		JournalDBPath:  os.Getenv("JOURNAL_DB_PATH"),
		StarterKit:     starterKit != 0,
		Color:          os.Getenv("NO_COLOR") == "",
	}

	if v := os.Getenv("RNG_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RNG_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

func loadInt(key string, defValue int) (int, error) {
	value := os.Getenv(key)
	if value != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		return n, nil
	}

	return defValue, nil
}
