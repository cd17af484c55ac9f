// Package catalog defines the character and boss records the roulette
// draws from, along with merge and normalization rules for catalog
// payloads coming from the data source.
package catalog

// Language is one of the five supported display locales
type Language string

// Supported languages. English is canonical; every other locale falls
// back to the English name when a translation is absent.
const (
	LangRU Language = "ru"
	LangEN Language = "en"
	LangZH Language = "zh"
	LangJA Language = "ja"
	LangKO Language = "ko"
)

// Languages lists every supported locale
var Languages = []Language{LangRU, LangEN, LangZH, LangJA, LangKO}

// IsValidLanguage reports whether the value is a supported locale
func IsValidLanguage(value string) bool {
	for _, lang := range Languages {
		if string(lang) == value {
			return true
		}
	}
	return false
}

// Stage identifies one of the two independent roll tracks
type Stage string

// Roll stages
const (
	StageCharacters Stage = "characters"
	StageBosses     Stage = "bosses"
)

// IsValidStage reports whether the value names a roll stage
func IsValidStage(value string) bool {
	return value == string(StageCharacters) || value == string(StageBosses)
}

// Character element categories as delivered by the data source
const (
	ElementPyro    = "PYRO"
	ElementHydro   = "HYDRO"
	ElementAnemo   = "ANEMO"
	ElementElectro = "ELECTRO"
	ElementCryo    = "CRYO"
	ElementGeo     = "GEO"
	ElementDendro  = "DENDRO"
	ElementNone    = "NONE"
)

// Elements lists every element category, including the unknown marker
var Elements = []string{
	ElementPyro, ElementHydro, ElementAnemo, ElementElectro,
	ElementCryo, ElementGeo, ElementDendro, ElementNone,
}

// Character weapon categories as delivered by the data source
const (
	WeaponSword    = "WEAPON_SWORD_ONE_HAND"
	WeaponClaymore = "WEAPON_CLAYMORE"
	WeaponPolearm  = "WEAPON_POLE"
	WeaponCatalyst = "WEAPON_CATALYST"
	WeaponBow      = "WEAPON_BOW"
)

// Weapons lists every weapon category
var Weapons = []string{WeaponSword, WeaponClaymore, WeaponPolearm, WeaponCatalyst, WeaponBow}

// Boss group categories
const (
	GroupWeekly      = "weekly"
	GroupAscension   = "ascension"
	GroupLocalLegend = "localLegend"
)

// Groups lists every boss group
var Groups = []string{GroupWeekly, GroupAscension, GroupLocalLegend}

// Item is a single catalog record. Characters carry rarity, element, and
// weapon; bosses carry a group. Identity is ID, stable across reloads.
type Item struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`

	// Name is the canonical English display name; the localized names
	// fall back to it when empty.
	Name   string `json:"name"`
	NameRU string `json:"nameRu,omitempty"`
	NameZH string `json:"nameZh,omitempty"`
	NameJA string `json:"nameJa,omitempty"`
	NameKO string `json:"nameKo,omitempty"`

	// Character-only fields. Rarity is 4 or 5; zero means "not a character".
	Rarity  int    `json:"rarity,omitempty"`
	Element string `json:"element,omitempty"`
	Weapon  string `json:"weapon,omitempty"`

	// Boss-only field
	Group string `json:"group,omitempty"`

	Image           string   `json:"image"`
	ImageFallbacks  []string `json:"imageFallbacks,omitempty"`
	Splash          string   `json:"splash,omitempty"`
	SplashFallbacks []string `json:"splashFallbacks,omitempty"`
}

// DisplayName resolves the item's name in the given language, falling
// back to the canonical English name.
func (i *Item) DisplayName(lang Language) string {
	switch lang {
	case LangRU:
		if i.NameRU != "" {
			return i.NameRU
		}
	case LangZH:
		if i.NameZH != "" {
			return i.NameZH
		}
	case LangJA:
		if i.NameJA != "" {
			return i.NameJA
		}
	case LangKO:
		if i.NameKO != "" {
			return i.NameKO
		}
	}
	return i.Name
}
