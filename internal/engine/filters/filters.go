// Package filters implements the pure membership predicates that decide
// which catalog items are visible in a filtered pool view. Facet checks
// run first; the free-text search runs last against the language-resolved
// display name.
package filters

import (
	"strings"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
)

// Boss name shape classifications, derived from the display name
const (
	NameShapeSingle = "single"
	NameShapeMulti  = "multi"
)

// NameShapes lists the valid shape facet values
var NameShapes = []string{NameShapeSingle, NameShapeMulti}

// Boss name length classifications
const (
	NameLengthShort  = "short"
	NameLengthMedium = "medium"
	NameLengthLong   = "long"
)

// NameLengths lists the valid length facet values
var NameLengths = []string{NameLengthShort, NameLengthMedium, NameLengthLong}

// NameShape classifies a display name as single- or multi-word
func NameShape(name string) string {
	if len(strings.Fields(name)) > 1 {
		return NameShapeMulti
	}
	return NameShapeSingle
}

// NameLength buckets a display name by trimmed rune length:
// short <= 10, medium <= 18, long otherwise.
func NameLength(name string) string {
	length := len([]rune(strings.TrimSpace(name)))
	if length <= 10 {
		return NameLengthShort
	}
	if length <= 18 {
		return NameLengthMedium
	}
	return NameLengthLong
}

// MatchesCharacter reports whether a character passes the filter state.
// Empty facet lists pass everything; empty search matches everything.
func MatchesCharacter(item *catalog.Item, f *session.CharacterFilters, lang catalog.Language) bool {
	if len(f.Rarities) > 0 && !containsInt(f.Rarities, item.Rarity) {
		return false
	}
	if len(f.Weapons) > 0 && !contains(f.Weapons, item.Weapon) {
		return false
	}
	if len(f.Elements) > 0 && !contains(f.Elements, item.Element) {
		return false
	}

	return matchesSearch(item.DisplayName(lang), f.Search)
}

// MatchesBoss reports whether a boss passes the filter state. The shape
// and length facets filter on classifications derived from the display
// name in the active language, not on stored fields.
func MatchesBoss(item *catalog.Item, f *session.BossFilters, lang catalog.Language) bool {
	if len(f.Groups) > 0 && !contains(f.Groups, item.Group) {
		return false
	}

	name := item.DisplayName(lang)
	if len(f.NameShapes) > 0 && !contains(f.NameShapes, NameShape(name)) {
		return false
	}
	if len(f.NameLengths) > 0 && !contains(f.NameLengths, NameLength(name)) {
		return false
	}

	return matchesSearch(name, f.Search)
}

func matchesSearch(name, search string) bool {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), query)
}

func contains(list []string, value string) bool {
	for _, entry := range list {
		if entry == value {
			return true
		}
	}
	return false
}

func containsInt(list []int, value int) bool {
	for _, entry := range list {
		if entry == value {
			return true
		}
	}
	return false
}
