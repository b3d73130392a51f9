package main

import (
	"context"
	"log"
	mrand "math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/faideww/koga-fishing/internal/fish"
	"github.com/faideww/koga-fishing/internal/game"
	"github.com/faideww/koga-fishing/internal/inventory"
	"github.com/faideww/koga-fishing/internal/shell"
	"github.com/faideww/koga-fishing/internal/store"
)

func main() {
	config, err := LoadConfig()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	cat := fish.DefaultCatalog()
	if config.CatalogPath != "" {
		cat, err = fish.LoadCatalog(config.CatalogPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	var journal store.Journal
	if config.JournalDBPath != "" {
		st, err := store.OpenSQLite(config.JournalDBPath)
		if err != nil {
			log.Fatal("failed to open journal: ", err)
		}
		defer st.Close()
		journal = st
	}

	inv, err := inventory.NewAtLevel(config.InventoryLevel)
	if err != nil {
		log.Fatal(err)
	}
	if config.StarterKit {
		if err := packStarterKit(inv, cat); err != nil {
			log.Fatal("failed to pack starter kit: ", err)
		}
	}

	var rng *mrand.Rand
	if config.HasSeed {
		rng = mrand.New(mrand.NewSource(config.Seed))
	}

	session, err := game.NewSession(config.PlayerName, config.StartingMoney, inv, cat, rng)
	if err != nil {
		log.Fatal("failed to start session: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// unblock the prompt so deferred cleanup runs
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	sh := shell.New(os.Stdin, os.Stdout, session, journal, config.Color)
	if err := sh.Run(ctx); err != nil && ctx.Err() == nil {
		log.Println("shell stopped:", err)
	}
}

// packStarterKit gives a new player the first fish, rod and bait of the
// catalog, the same kit the game has always started with.
func packStarterKit(inv *inventory.Inventory, cat *fish.Catalog) error {
	var kit []fish.Item
	if fishes := cat.AllFish(); len(fishes) > 0 {
		kit = append(kit, fishes[0])
	}
	if rods := cat.AllRods(); len(rods) > 0 {
		kit = append(kit, rods[0])
	}
	if baits := cat.AllBaits(); len(baits) > 0 {
		kit = append(kit, baits[0])
	}

	for _, it := range kit {
		if err := inv.Add(it); err != nil {
			return err
		}
	}
	return nil
}
