package shell

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
}

func commandDefs() []command {
	return []command{
		{Name: "fish", Aliases: []string{"cast", "catch"}, Usage: "fish [environment, bait, rod]", Description: "Cast a line"},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Usage: "inventory", Description: "Show what you are carrying"},
		{Name: "shop", Aliases: []string{"list"}, Usage: "shop [rods|baits|fish|places]", Description: "Browse the catalog"},
		{Name: "buy", Usage: "buy rod|bait <name or id>[, quantity]", Description: "Buy a rod or bait"},
		{Name: "sell", Usage: "sell <fish>[, quantity] | sell all", Description: "Sell fish from your inventory"},
		{Name: "odds", Usage: "odds <environment>, <bait>, <rod>", Description: "Preview what might bite"},
		{Name: "levelup", Aliases: []string{"upgrade"}, Usage: "levelup", Description: "Grow your inventory by 10 slots"},
		{Name: "records", Aliases: []string{"leaderboard", "top"}, Usage: "records [fish]", Description: "Show the most valuable catches"},
		{Name: "status", Aliases: []string{"money"}, Usage: "status", Description: "Show money and inventory space"},
		{Name: "help", Aliases: []string{"?"}, Usage: "help", Description: "List commands"},
		{Name: "quit", Aliases: []string{"exit", "q"}, Usage: "quit", Description: "Leave the game"},
	}
}

type commandSet struct {
	defs    []command
	byAlias map[string]string
}

func newCommandSet() *commandSet {
	cs := &commandSet{defs: commandDefs(), byAlias: make(map[string]string)}
	for _, c := range cs.defs {
		cs.byAlias[c.Name] = c.Name
		for _, a := range c.Aliases {
			cs.byAlias[a] = c.Name
		}
	}
	return cs
}

// resolve maps a typed word to its canonical command name, or returns the
// nearest names when it does not match.
func (cs *commandSet) resolve(word string) (string, []string) {
	word = strings.ToLower(word)
	if name, ok := cs.byAlias[word]; ok {
		return name, nil
	}

	best := map[string]int{}
	for alias, name := range cs.byAlias {
		d := levenshtein.ComputeDistance(word, alias)
		if d > 2 {
			continue
		}
		if prev, ok := best[name]; !ok || d < prev {
			best[name] = d
		}
	}

	type scored struct {
		name string
		dist int
	}
	near := make([]scored, 0, len(best))
	for name, d := range best {
		near = append(near, scored{name, d})
	}
	sort.Slice(near, func(i, j int) bool {
		if near[i].dist != near[j].dist {
			return near[i].dist < near[j].dist
		}
		return near[i].name < near[j].name
	})

	out := make([]string, 0, len(near))
	for _, s := range near {
		out = append(out, s.name)
	}
	return "", out
}
