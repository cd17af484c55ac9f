package catalog

import (
	"sort"
	"time"
)

// BossSet groups bosses by category. All is the deduplicated union.
type BossSet struct {
	All          []Item `json:"all"`
	Weekly       []Item `json:"weekly"`
	Ascension    []Item `json:"ascension"`
	LocalLegends []Item `json:"localLegends"`
}

// Meta describes where and when a catalog snapshot was fetched
type Meta struct {
	FetchedAt time.Time         `json:"fetchedAt"`
	Source    map[string]string `json:"source,omitempty"`
}

// Catalog is one immutable snapshot of the external data source
type Catalog struct {
	Characters []Item  `json:"characters"`
	Bosses     BossSet `json:"bosses"`
	Meta       Meta    `json:"meta"`
}

// Normalize coerces missing slices to empty ones so a partially populated
// payload never panics downstream. It returns the receiver for chaining.
func (c *Catalog) Normalize() *Catalog {
	if c.Characters == nil {
		c.Characters = []Item{}
	}
	if c.Bosses.All == nil {
		c.Bosses.All = []Item{}
	}
	if c.Bosses.Weekly == nil {
		c.Bosses.Weekly = []Item{}
	}
	if c.Bosses.Ascension == nil {
		c.Bosses.Ascension = []Item{}
	}
	if c.Bosses.LocalLegends == nil {
		c.Bosses.LocalLegends = []Item{}
	}
	if c.Meta.Source == nil {
		c.Meta.Source = map[string]string{}
	}
	return c
}

// CharacterIDs returns the set of character ids in the snapshot
func (c *Catalog) CharacterIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(c.Characters))
	for i := range c.Characters {
		ids[c.Characters[i].ID] = struct{}{}
	}
	return ids
}

// BossIDs returns the set of boss ids in the snapshot
func (c *Catalog) BossIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(c.Bosses.All))
	for i := range c.Bosses.All {
		ids[c.Bosses.All[i].ID] = struct{}{}
	}
	return ids
}

// SortCharacters orders five-stars first, then by English name
func SortCharacters(items []Item) {
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].Rarity != items[b].Rarity {
			return items[a].Rarity > items[b].Rarity
		}
		return items[a].Name < items[b].Name
	})
}

// SortByName orders items by English name
func SortByName(items []Item) {
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Name < items[b].Name
	})
}
