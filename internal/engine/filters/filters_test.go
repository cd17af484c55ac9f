package filters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genroll/roulette-api/internal/engine/filters"
	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
)

func testCharacter() *catalog.Item {
	return &catalog.Item{
		ID:      "hutao",
		Name:    "Hu Tao",
		NameRU:  "Ху Тао",
		Rarity:  5,
		Element: catalog.ElementPyro,
		Weapon:  catalog.WeaponPolearm,
		Image:   "https://example.test/hutao.webp",
	}
}

func testBoss(name, group string) *catalog.Item {
	return &catalog.Item{
		ID:    "boss-" + name,
		Name:  name,
		Group: group,
		Image: "https://example.test/boss.webp",
	}
}

func TestEmptyFiltersMatchEverything(t *testing.T) {
	cf := session.DefaultCharacterFilters()
	bf := session.DefaultBossFilters()

	assert.True(t, filters.MatchesCharacter(testCharacter(), &cf, catalog.LangEN))
	assert.True(t, filters.MatchesBoss(testBoss("Azhdaha", catalog.GroupWeekly), &bf, catalog.LangEN))
}

func TestCharacterFacets(t *testing.T) {
	item := testCharacter()

	tests := []struct {
		name    string
		filters session.CharacterFilters
		want    bool
	}{
		{"matching rarity", session.CharacterFilters{Rarities: []int{5}}, true},
		{"wrong rarity", session.CharacterFilters{Rarities: []int{4}}, false},
		{"matching weapon", session.CharacterFilters{Weapons: []string{catalog.WeaponPolearm}}, true},
		{"wrong weapon", session.CharacterFilters{Weapons: []string{catalog.WeaponBow}}, false},
		{"matching element", session.CharacterFilters{Elements: []string{catalog.ElementPyro}}, true},
		{"wrong element", session.CharacterFilters{Elements: []string{catalog.ElementCryo}}, false},
		{"facets are ANDed", session.CharacterFilters{
			Rarities: []int{5},
			Weapons:  []string{catalog.WeaponBow},
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, filters.MatchesCharacter(item, &tc.filters, catalog.LangEN))
		})
	}
}

func TestSearchIsCaseInsensitiveAndTrimmed(t *testing.T) {
	item := testCharacter()

	f := session.CharacterFilters{Search: "  hu t  "}
	assert.False(t, filters.MatchesCharacter(item, &f, catalog.LangEN), "inner spaces are not collapsed")

	f.Search = " HU TAO "
	assert.True(t, filters.MatchesCharacter(item, &f, catalog.LangEN))

	f.Search = "tao"
	assert.True(t, filters.MatchesCharacter(item, &f, catalog.LangEN))
}

func TestSearchUsesActiveLanguage(t *testing.T) {
	item := testCharacter()

	f := session.CharacterFilters{Search: "ху"}
	assert.True(t, filters.MatchesCharacter(item, &f, catalog.LangRU))
	assert.False(t, filters.MatchesCharacter(item, &f, catalog.LangEN))
}

func TestSearchFallsBackToEnglishName(t *testing.T) {
	item := testCharacter()
	item.NameJA = ""

	f := session.CharacterFilters{Search: "hu tao"}
	assert.True(t, filters.MatchesCharacter(item, &f, catalog.LangJA))
}

func TestNameShape(t *testing.T) {
	assert.Equal(t, filters.NameShapeSingle, filters.NameShape("Azhdaha"))
	assert.Equal(t, filters.NameShapeMulti, filters.NameShape("Crab Tsar"))
	assert.Equal(t, filters.NameShapeSingle, filters.NameShape("  Sigurd  "))
}

func TestNameLength(t *testing.T) {
	assert.Equal(t, filters.NameLengthShort, filters.NameLength("Azhdaha"))           // 7 runes
	assert.Equal(t, filters.NameLengthShort, filters.NameLength("Crab Tsarr"))        // exactly 10
	assert.Equal(t, filters.NameLengthMedium, filters.NameLength("Maguu Kenki"))      // 11
	assert.Equal(t, filters.NameLengthMedium, filters.NameLength("Eighteen-rune nam")) // 17
	assert.Equal(t, filters.NameLengthLong, filters.NameLength("The Last Survivor of Tenochtzitoc"))
}

func TestBossDerivedFacets(t *testing.T) {
	multi := testBoss("Crab Tsar", catalog.GroupLocalLegend)
	single := testBoss("Azhdaha", catalog.GroupWeekly)

	f := session.BossFilters{NameShapes: []string{filters.NameShapeMulti}}
	assert.True(t, filters.MatchesBoss(multi, &f, catalog.LangEN))
	assert.False(t, filters.MatchesBoss(single, &f, catalog.LangEN))

	f = session.BossFilters{NameLengths: []string{filters.NameLengthShort}}
	assert.True(t, filters.MatchesBoss(single, &f, catalog.LangEN))
	assert.True(t, filters.MatchesBoss(multi, &f, catalog.LangEN)) // "Crab Tsar" is 9 runes

	f = session.BossFilters{Groups: []string{catalog.GroupWeekly}}
	assert.True(t, filters.MatchesBoss(single, &f, catalog.LangEN))
	assert.False(t, filters.MatchesBoss(multi, &f, catalog.LangEN))
}

func TestBossShapeFollowsLanguage(t *testing.T) {
	boss := testBoss("Crab Tsar", catalog.GroupLocalLegend)
	boss.NameRU = "Краб-царь"

	f := session.BossFilters{NameShapes: []string{filters.NameShapeSingle}}
	assert.True(t, filters.MatchesBoss(boss, &f, catalog.LangRU), "hyphenated RU name is one token")
	assert.False(t, filters.MatchesBoss(boss, &f, catalog.LangEN))
}
