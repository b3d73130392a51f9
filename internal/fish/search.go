package fish

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 3

type named struct {
	ref  Ref
	name string
}

func (c *Catalog) names(k Kind) []named {
	var out []named
	switch k {
	case KindFish:
		for _, f := range c.fish {
			out = append(out, named{f.Ref(), f.Name})
		}
	case KindBait:
		for _, b := range c.baits {
			out = append(out, named{b.Ref(), b.Name})
		}
	case KindRod:
		for _, r := range c.rods {
			out = append(out, named{r.Ref(), r.Name})
		}
	case KindEnvironment:
		for _, e := range c.envs {
			out = append(out, named{e.Ref(), e.Name})
		}
	}
	return out
}

// Search resolves a player-typed name or numeric id within one kind.
// Names match case-insensitively. When nothing matches, the closest names
// by edit distance are returned as suggestions.
func (c *Catalog) Search(k Kind, query string) (Ref, []string, bool) {
	q := normalise(query)
	if q == "" {
		return Ref{}, nil, false
	}

	if id, err := strconv.Atoi(q); err == nil {
		ref := Ref{Kind: k, Id: id}
		if _, err := c.Lookup(ref); err == nil {
			return ref, nil, true
		}
		return Ref{}, nil, false
	}

	entries := c.names(k)
	for _, e := range entries {
		if normalise(e.name) == q {
			return e.ref, nil, true
		}
	}

	type scored struct {
		named
		dist int
	}
	var (
		near []scored
		hits []named
	)
	for _, e := range entries {
		n := normalise(e.name)
		if strings.Contains(n, q) {
			hits = append(hits, e)
			near = append(near, scored{e, 0})
			continue
		}
		dist := levenshtein.ComputeDistance(q, n)
		if dist > distanceLimit(len(n)) {
			continue
		}
		near = append(near, scored{e, dist})
	}

	// a single substring hit counts as a match
	if len(hits) == 1 {
		return hits[0].ref, nil, true
	}

	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })
	var suggestions []string
	for i := 0; i < len(near) && i < maxSuggestions; i++ {
		suggestions = append(suggestions, near[i].name)
	}
	return Ref{}, suggestions, false
}

func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

func normalise(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
