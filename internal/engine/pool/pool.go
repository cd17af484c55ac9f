// Package pool derives the effective roll pool for a stage and manages
// the selection sets that gate roll eligibility. Filtering controls
// visibility; selection controls eligibility; the effective pool is
// their intersection.
package pool

import (
	"github.com/genroll/roulette-api/internal/engine/filters"
	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
)

// Selection is a mutable set of item ids eligible to be drawn
type Selection struct {
	ids map[string]struct{}
}

// NewSelection builds a selection from an id list, dropping duplicates
func NewSelection(ids []string) *Selection {
	s := &Selection{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether an id is selected
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in unspecified order
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

// Toggle flips membership for one id
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Add unions the given ids into the selection
func (s *Selection) Add(ids []string) {
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Remove subtracts the given ids from the selection
func (s *Selection) Remove(ids []string) {
	for _, id := range ids {
		delete(s.ids, id)
	}
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Retain drops every id not present in the catalog's id set. Called on
// catalog reload; stale ids are harmless before that because the
// effective pool treats them as non-matching.
func (s *Selection) Retain(available map[string]struct{}) {
	for id := range s.ids {
		if _, ok := available[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// VisibleCharacters returns the characters passing the filter state
func VisibleCharacters(items []catalog.Item, f *session.CharacterFilters, lang catalog.Language) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for i := range items {
		if filters.MatchesCharacter(&items[i], f, lang) {
			out = append(out, items[i])
		}
	}
	return out
}

// VisibleBosses returns the bosses passing the filter state
func VisibleBosses(items []catalog.Item, f *session.BossFilters, lang catalog.Language) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for i := range items {
		if filters.MatchesBoss(&items[i], f, lang) {
			out = append(out, items[i])
		}
	}
	return out
}

// Effective intersects an already-filtered view with the selection.
// Selected ids missing from the view are silently non-matching.
func Effective(visible []catalog.Item, selected *Selection) []catalog.Item {
	out := make([]catalog.Item, 0, len(visible))
	for i := range visible {
		if selected.Has(visible[i].ID) {
			out = append(out, visible[i])
		}
	}
	return out
}

// CollectIDs extracts the ids from an item list
func CollectIDs(items []catalog.Item) []string {
	ids := make([]string, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	return ids
}
