package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/faideww/koga-fishing/internal/fish"
	"github.com/faideww/koga-fishing/internal/game"
	"github.com/faideww/koga-fishing/internal/inventory"
	"github.com/faideww/koga-fishing/internal/store"
)

const recordsLimit = 10

// Shell is the line-based front end. It reads one command per line, runs it
// against the session and prints the outcome. Failures from the game are
// turned into messages here; the game itself never prints.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	session *game.Session
	journal store.Journal
	cmds    *commandSet
	color   bool
}

// New builds a shell. journal may be nil, which disables the records
// command.
func New(in io.Reader, out io.Writer, session *game.Session, journal store.Journal, color bool) *Shell {
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		session: session,
		journal: journal,
		cmds:    newCommandSet(),
		color:   color,
	}
}

// Run reads commands until quit, end of input or ctx is done.
func (sh *Shell) Run(ctx context.Context) error {
	sh.printf("Welcome, %s! Type 'help' for commands.\n", sh.session.PlayerName())
	sh.status()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := sh.ask("> ")
		if !ok {
			return sh.in.Err()
		}
		if quit := sh.Exec(ctx, line); quit {
			sh.printf("Tight lines, %s.\n", sh.session.PlayerName())
			return nil
		}
	}
}

// Exec runs a single command line and reports whether the player asked to
// quit.
func (sh *Shell) Exec(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	word, rest, _ := strings.Cut(line, " ")
	name, near := sh.cmds.resolve(word)
	if name == "" {
		if len(near) > 0 {
			sh.printf("Unknown command '%s'. Did you mean %s?\n", word, strings.Join(near, ", "))
		} else {
			sh.printf("Unknown command '%s'. Type 'help' for commands.\n", word)
		}
		return false
	}

	args := splitArgs(rest)
	switch name {
	case "fish":
		sh.handleFish(ctx, args)
	case "inventory":
		sh.handleInventory()
	case "shop":
		sh.handleShop(args)
	case "buy":
		sh.handleBuy(rest)
	case "sell":
		sh.handleSell(args)
	case "odds":
		sh.handleOdds(args)
	case "levelup":
		sh.handleLevelUp()
	case "records":
		sh.handleRecords(ctx, args)
	case "status":
		sh.status()
	case "help":
		sh.handleHelp()
	case "quit":
		return true
	}
	return false
}

func (sh *Shell) handleFish(ctx context.Context, args []string) {
	env, bait, rod, ok := sh.castArgs(args, true)
	if !ok {
		return
	}

	caught, ok, err := sh.session.CatchFish(fish.BaitId(bait.Id), fish.RodId(rod.Id), fish.EnvironmentId(env.Id))
	if err != nil {
		sh.printf("%s\n", describe(err))
		return
	}
	if !ok {
		sh.printf("You didn't catch any fish.\n")
		return
	}

	sh.printf("You caught %s %s! %s · worth %d\n", article(caught.Name), caught.Name, sh.tier(caught.Tier()), caught.Price)

	if sh.journal != nil {
		c := fish.NewCatch(sh.session.Id(), sh.session.PlayerName(), caught, fish.EnvironmentId(env.Id))
		if err := sh.journal.Add(ctx, c); err != nil {
			log.Printf("failed to record catch: %v", err)
		}
	}
}

func (sh *Shell) handleOdds(args []string) {
	env, bait, rod, ok := sh.castArgs(args, false)
	if !ok {
		return
	}

	odds, err := sh.session.Odds(fish.BaitId(bait.Id), fish.RodId(rod.Id), fish.EnvironmentId(env.Id))
	if err != nil {
		sh.printf("%s\n", describe(err))
		return
	}
	if len(odds) == 0 {
		sh.printf("Nothing in %s bites on %s with that rod.\n", sh.name(env), sh.name(bait))
		return
	}
	for _, c := range odds {
		sh.printf("- %-18s %5.1f%%  %s\n", c.Fish.Name, c.Probability*100, sh.tier(c.Fish.Tier()))
	}
}

// castArgs resolves environment, bait and rod, prompting for any that were
// not given on the command line when interactive is set.
func (sh *Shell) castArgs(args []string, interactive bool) (env, bait, rod fish.Ref, ok bool) {
	if !interactive && len(args) < 3 {
		sh.printf("Usage: odds <environment>, <bait>, <rod>\n")
		return
	}

	steps := []struct {
		kind   fish.Kind
		dst    *fish.Ref
		prompt func()
	}{
		{fish.KindEnvironment, &env, sh.listEnvironments},
		{fish.KindBait, &bait, sh.listOwnedBaits},
		{fish.KindRod, &rod, sh.listOwnedRods},
	}

	for i, st := range steps {
		var query string
		if i < len(args) {
			query = args[i]
		} else {
			st.prompt()
			var got bool
			if query, got = sh.ask(fmt.Sprintf("Choose %s: ", st.kind)); !got {
				return
			}
		}
		ref, found := sh.lookup(st.kind, query)
		if !found {
			return
		}
		*st.dst = ref
	}
	return env, bait, rod, true
}

func (sh *Shell) handleInventory() {
	inv := sh.session.Inventory()
	sh.printf("--- Inventory (level %d, %d/%d) ---\n", inv.Level(), inv.Total(), inv.MaxCapacity())

	sh.printf("Fish:\n")
	if fishes := inv.Fish(); len(fishes) > 0 {
		for _, s := range stack(fishes, func(f fish.Fish) fish.FishId { return f.Id }) {
			f := s.item
			sh.printf("- %s x%d (%s, %d each)\n", f.Name, s.count, sh.tier(f.Tier()), f.Price)
		}
	} else {
		sh.printf("No fish in inventory.\n")
	}

	sh.printf("Fishing Rods:\n")
	if rods := inv.Rods(); len(rods) > 0 {
		for _, r := range rods {
			sh.printf("- %s (Max Rarity: %d, Durability: %d/%d)\n", r.Rod.Name, r.Rod.MaxRarity, r.Durability, r.Rod.MaxDurability)
		}
	} else {
		sh.printf("No fishing rods in inventory.\n")
	}

	sh.printf("Baits:\n")
	if baits := inv.Baits(); len(baits) > 0 {
		for _, s := range stack(baits, func(b fish.Bait) fish.BaitId { return b.Id }) {
			sh.printf("- %s x%d\n", s.item.Name, s.count)
		}
	} else {
		sh.printf("No baits in inventory.\n")
	}
}

func (sh *Shell) handleShop(args []string) {
	cat := sh.session.Catalog()
	section := ""
	if len(args) > 0 {
		section = strings.ToLower(args[0])
	}

	if section == "" || strings.HasPrefix(section, "rod") {
		sh.printf("--- Rods ---\n")
		for _, r := range cat.AllRods() {
			sh.printf("%2d. %-26s price %4d · max rarity %d · durability %d\n", r.Id, r.Name, r.Price, r.MaxRarity, r.MaxDurability)
		}
	}
	if section == "" || strings.HasPrefix(section, "bait") {
		sh.printf("--- Baits ---\n")
		for _, b := range cat.AllBaits() {
			sh.printf("%2d. %-12s price %3d\n", b.Id, b.Name, b.Price)
		}
	}
	if strings.HasPrefix(section, "fish") {
		sh.printf("--- Fish ---\n")
		for _, f := range cat.AllFish() {
			sh.printf("%2d. %-16s %s · bait %s · sells for %d\n", f.Id, f.Name, sh.tier(f.Tier()), f.Bait, f.Price)
		}
	}
	if strings.HasPrefix(section, "place") || strings.HasPrefix(section, "env") {
		sh.listEnvironments()
	}
}

func (sh *Shell) handleBuy(rest string) {
	kindWord, rest, _ := strings.Cut(strings.TrimSpace(rest), " ")
	args := splitArgs(rest)

	var kind fish.Kind
	switch strings.ToLower(kindWord) {
	case "rod", "rods":
		kind = fish.KindRod
	case "bait", "baits":
		kind = fish.KindBait
	default:
		sh.printf("Usage: buy rod|bait <name or id>[, quantity]\n")
		return
	}
	if len(args) == 0 {
		sh.printf("Buy which %s?\n", kind)
		return
	}

	ref, ok := sh.lookup(kind, args[0])
	if !ok {
		return
	}
	qty, ok := sh.quantity(args, 1)
	if !ok {
		return
	}

	bought := 0
	for ; bought < qty; bought++ {
		var err error
		if kind == fish.KindRod {
			err = sh.session.BuyFishingRod(fish.RodId(ref.Id))
		} else {
			err = sh.session.BuyBait(fish.BaitId(ref.Id))
		}
		if err != nil {
			sh.printf("%s\n", describe(err))
			break
		}
	}
	if bought > 0 {
		sh.printf("Bought %d %s. Money: %d\n", bought, sh.name(ref), sh.session.Money())
	}
}

func (sh *Shell) handleSell(args []string) {
	if len(args) == 0 {
		sh.printf("Usage: sell <fish>[, quantity] | sell all\n")
		return
	}

	inv := sh.session.Inventory()
	if strings.EqualFold(args[0], "all") {
		total := 0
		for _, s := range stack(inv.Fish(), func(f fish.Fish) fish.FishId { return f.Id }) {
			credit, err := sh.session.SellFish(s.item.Id, s.count)
			if err != nil {
				sh.printf("%s\n", describe(err))
				return
			}
			total += credit
		}
		if total == 0 {
			sh.printf("You have no fish to sell.\n")
			return
		}
		sh.printf("Sold everything for %d. Money: %d\n", total, sh.session.Money())
		return
	}

	ref, ok := sh.lookup(fish.KindFish, args[0])
	if !ok {
		return
	}
	qty, ok := sh.quantity(args, 1)
	if !ok {
		return
	}

	credit, err := sh.session.SellFish(fish.FishId(ref.Id), qty)
	if err != nil {
		sh.printf("%s\n", describe(err))
		return
	}
	sh.printf("Sold %d %s for %d. Money: %d\n", qty, sh.name(ref), credit, sh.session.Money())
}

func (sh *Shell) handleLevelUp() {
	if err := sh.session.LevelUpInventory(); err != nil {
		sh.printf("%s\n", describe(err))
		return
	}
	inv := sh.session.Inventory()
	sh.printf("Inventory leveled up! Level %d, capacity %d.\n", inv.Level(), inv.MaxCapacity())
}

func (sh *Shell) handleRecords(ctx context.Context, args []string) {
	if sh.journal == nil {
		sh.printf("The catch journal is disabled.\n")
		return
	}

	var (
		rows []fish.Catch
		err  error
	)
	title := "Most valuable catches"
	if len(args) > 0 {
		ref, ok := sh.lookup(fish.KindFish, args[0])
		if !ok {
			return
		}
		title = "Most valuable " + sh.name(ref)
		rows, err = sh.journal.TopByPriceFish(ctx, fish.FishId(ref.Id), recordsLimit)
	} else {
		rows, err = sh.journal.TopByPrice(ctx, recordsLimit)
	}
	if err != nil {
		log.Printf("failed to load records: %v", err)
		sh.printf("Error loading records.\n")
		return
	}

	if len(rows) == 0 {
		sh.printf("No catches yet - type 'fish' to make the first!\n")
		return
	}

	sh.printf("--- %s ---\n", title)
	for i, c := range rows {
		sh.printf("#%d %-16s %4d  %s (%s)\n", i+1, c.Fish, c.Price, c.Player, c.CaughtAt.Local().Format("2006-01-02 15:04"))
	}

	if n, err := sh.journal.CountBySession(ctx, sh.session.Id()); err == nil {
		sh.printf("This session: %d catches.\n", n)
	}
}

func (sh *Shell) handleHelp() {
	for _, c := range sh.cmds.defs {
		sh.printf("  %-40s %s\n", c.Usage, c.Description)
	}
}

func (sh *Shell) status() {
	inv := sh.session.Inventory()
	sh.printf("Money: %d · Inventory level %d (%d/%d)\n", sh.session.Money(), inv.Level(), inv.Total(), inv.MaxCapacity())
}

func (sh *Shell) listEnvironments() {
	sh.printf("--- Places ---\n")
	for _, e := range sh.session.Catalog().AllEnvironments() {
		sh.printf("%2d. %s\n", e.Id, e.Name)
	}
}

func (sh *Shell) listOwnedBaits() {
	baits := sh.session.Inventory().Baits()
	if len(baits) == 0 {
		sh.printf("You have no bait in your inventory. Buy some bait first.\n")
		return
	}
	for _, s := range stack(baits, func(b fish.Bait) fish.BaitId { return b.Id }) {
		sh.printf("%2d. %s x%d\n", s.item.Id, s.item.Name, s.count)
	}
}

func (sh *Shell) listOwnedRods() {
	rods := sh.session.Inventory().Rods()
	if len(rods) == 0 {
		sh.printf("You have no fishing rods in your inventory. Buy one first.\n")
		return
	}
	for _, r := range rods {
		sh.printf("%2d. %s (Max Rarity: %d, Durability: %d)\n", r.Rod.Id, r.Rod.Name, r.Rod.MaxRarity, r.Durability)
	}
}

func (sh *Shell) lookup(kind fish.Kind, query string) (fish.Ref, bool) {
	ref, near, ok := sh.session.Catalog().Search(kind, query)
	if ok {
		return ref, true
	}
	if len(near) > 0 {
		sh.printf("Unknown %s '%s'. Did you mean %s?\n", kind, query, strings.Join(near, ", "))
	} else {
		sh.printf("Unknown %s '%s'.\n", kind, query)
	}
	return fish.Ref{}, false
}

func (sh *Shell) quantity(args []string, def int) (int, bool) {
	if len(args) < 2 {
		return def, true
	}
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(args[1]), "x"))
	if err != nil || n < 1 {
		sh.printf("Invalid quantity '%s'.\n", args[1])
		return 0, false
	}
	return n, true
}

func (sh *Shell) ask(prompt string) (string, bool) {
	sh.printf("%s", prompt)
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

func (sh *Shell) name(ref fish.Ref) string {
	return sh.session.Catalog().NameOf(ref)
}

func (sh *Shell) tier(t fish.RarityTier) string {
	if !sh.color {
		return t.String()
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", fish.ColorForTier(t), t.String())
}

func (sh *Shell) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(sh.out, format, a...)
}

// describe turns a game failure into the message shown to the player.
func describe(err error) string {
	var (
		notFound *fish.NotFoundError
		broken   *game.RodBrokenError
		funds    *game.InsufficientFundsError
		short    *game.InsufficientInventoryError
	)
	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("There is no %s with id %d.", notFound.Ref.Kind, notFound.Ref.Id)
	case errors.As(err, &broken):
		return fmt.Sprintf("Snap! Your %s broke.", broken.Rod)
	case errors.As(err, &funds):
		return fmt.Sprintf("You can't afford the %s: it costs %d and you have %d.", funds.Item, funds.Price, funds.Money)
	case errors.As(err, &short):
		return fmt.Sprintf("You only have %d of those.", short.Have)
	case errors.Is(err, game.ErrBaitInsufficient):
		return "You don't have that bait. Buy some first."
	case errors.Is(err, game.ErrRodNotFound):
		return "You don't have a working rod of that kind."
	case errors.Is(err, game.ErrInvalidQuantity):
		return "Quantity must be at least 1."
	case errors.Is(err, inventory.ErrCapacityExceeded):
		return "Your inventory is full. Sell some fish or level up."
	case errors.Is(err, inventory.ErrMaxLevelReached):
		return "Your inventory is already at the maximum level."
	default:
		return "Something went wrong: " + err.Error()
	}
}

// splitArgs splits comma separated arguments, trimming each one.
func splitArgs(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type stacked[T any] struct {
	item  T
	count int
}

// stack groups items by id, keeping first-seen order.
func stack[T any, K comparable](items []T, key func(T) K) []stacked[T] {
	idx := map[K]int{}
	var out []stacked[T]
	for _, it := range items {
		k := key(it)
		if i, ok := idx[k]; ok {
			out[i].count++
			continue
		}
		idx[k] = len(out)
		out = append(out, stacked[T]{item: it, count: 1})
	}
	return out
}

func article(name string) string {
	// TODO: some words beginning with consonants use 'an' (hour, heir, honest).
	if name != "" && strings.ContainsRune("aeiouAEIOU", rune(name[0])) {
		return "an"
	}
	return "a"
}
