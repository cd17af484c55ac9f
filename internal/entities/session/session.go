// Package session defines the per-profile state the roulette persists:
// settings, filters, selections, UI position, and roll history.
package session

import (
	"time"

	"github.com/genroll/roulette-api/internal/entities/catalog"
)

// View modes for the pool-management panels
const (
	ViewModeCards = "cards"
	ViewModeList  = "list"
)

// Roll speed presets
const (
	RollSpeedNormal = "normal"
	RollSpeedLong   = "long"
	RollSpeedEpic   = "epic"
)

// RollSpeeds lists the valid presets
var RollSpeeds = []string{RollSpeedNormal, RollSpeedLong, RollSpeedEpic}

// rollDurations maps each preset to its spin duration
var rollDurations = map[string]time.Duration{
	RollSpeedNormal: 7400 * time.Millisecond,
	RollSpeedLong:   9200 * time.Millisecond,
	RollSpeedEpic:   11200 * time.Millisecond,
}

// RollDuration returns the spin duration for a speed preset, defaulting
// to the long preset for unknown values.
func RollDuration(speed string) time.Duration {
	if d, ok := rollDurations[speed]; ok {
		return d
	}
	return rollDurations[RollSpeedLong]
}

// HistoryLimits lists the allowed history cap values
var HistoryLimits = []int{30, 60, 90}

// Themes supported by the view layer
var Themes = []string{"light", "dark"}

// Sections the view can navigate to
var Sections = []string{
	"dashboard",
	"characters",
	"characterPool",
	"bosses",
	"bossPool",
	"history",
	"settings",
}

// Settings holds user preferences. Volumes are in [0,1].
type Settings struct {
	Lang          string  `json:"lang"`
	Theme         string  `json:"theme"`
	MusicVolume   float64 `json:"musicVolume"`
	UIVolume      float64 `json:"uiVolume"`
	TickVolume    float64 `json:"tickVolume"`
	SplashEnabled bool    `json:"splashEnabled"`
	SplashEffects bool    `json:"splashEffects"`
	RollSpeed     string  `json:"rollSpeed"`
	HistoryLimit  int     `json:"historyLimit"`
}

// DefaultSettings returns the factory settings
func DefaultSettings() Settings {
	return Settings{
		Lang:          "ru",
		Theme:         "dark",
		MusicVolume:   0.42,
		UIVolume:      0.45,
		TickVolume:    0.5,
		SplashEnabled: true,
		SplashEffects: true,
		RollSpeed:     RollSpeedLong,
		HistoryLimit:  60,
	}
}

// CharacterFilters controls visibility in the character pool view.
// Empty facet lists mean "no restriction".
type CharacterFilters struct {
	Search   string   `json:"search"`
	ViewMode string   `json:"viewMode"`
	Rarities []int    `json:"rarities"`
	Weapons  []string `json:"weapons"`
	Elements []string `json:"elements"`
}

// DefaultCharacterFilters returns the unrestricted filter state
func DefaultCharacterFilters() CharacterFilters {
	return CharacterFilters{
		ViewMode: ViewModeCards,
		Rarities: []int{},
		Weapons:  []string{},
		Elements: []string{},
	}
}

// BossFilters controls visibility in the boss pool view. NameShapes and
// NameLengths filter on classifications derived from the display name.
type BossFilters struct {
	Search      string   `json:"search"`
	ViewMode    string   `json:"viewMode"`
	Groups      []string `json:"groups"`
	NameShapes  []string `json:"nameShapes"`
	NameLengths []string `json:"nameLengths"`
}

// DefaultBossFilters returns the unrestricted filter state
func DefaultBossFilters() BossFilters {
	return BossFilters{
		ViewMode:    ViewModeCards,
		Groups:      []string{},
		NameShapes:  []string{},
		NameLengths: []string{},
	}
}

// SelectedIDs records roll eligibility per stage. The Has* flags
// distinguish "never persisted" (selection defaults to the whole catalog
// on load) from "persisted empty" (nothing eligible), and are not
// themselves serialized as data fields.
type SelectedIDs struct {
	Characters []string `json:"characters"`
	Bosses     []string `json:"bosses"`

	HasCharacters bool `json:"-"`
	HasBosses     bool `json:"-"`
}

// UIState records where the user is and which stage they committed to
// roll first. RollOrder is empty until a first stage is chosen.
type UIState struct {
	ActiveSection string `json:"activeSection"`
	RollOrder     string `json:"rollOrder,omitempty"`
}

// DefaultUIState returns the boot UI state
func DefaultUIState() UIState {
	return UIState{ActiveSection: "dashboard"}
}

// HistoryEntry is one recorded roll outcome. Names, rarity, and group are
// denormalized at roll time so history survives catalog changes.
type HistoryEntry struct {
	ID         string `json:"id"`
	Stage      string `json:"stage"`
	ItemID     string `json:"itemId"`
	ItemName   string `json:"itemName"`
	ItemNameRU string `json:"itemNameRu,omitempty"`
	Rarity     int    `json:"rarity,omitempty"`
	Group      string `json:"group,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// Time parses the entry timestamp. ok is false when it does not parse.
func (e *HistoryEntry) Time() (time.Time, bool) {
	ts, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// HistoryFilters narrows the history view. From and To are day-granular
// dates (YYYY-MM-DD, inclusive); Stage is a stage name or "all".
type HistoryFilters struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Stage string `json:"stage"`
}

// DefaultHistoryFilters returns the pass-through filter
func DefaultHistoryFilters() HistoryFilters {
	return HistoryFilters{Stage: "all"}
}

// State aggregates every persisted slice for one profile
type State struct {
	Settings         Settings         `json:"settings"`
	UI               UIState          `json:"ui"`
	CharacterFilters CharacterFilters `json:"characterFilters"`
	BossFilters      BossFilters      `json:"bossFilters"`
	SelectedIDs      SelectedIDs      `json:"selectedIds"`
	History          []HistoryEntry   `json:"history"`
	HistoryFilters   HistoryFilters   `json:"historyFilters"`
}

// Language resolves the settings language to a catalog locale
func (s *Settings) Language() catalog.Language {
	if catalog.IsValidLanguage(s.Lang) {
		return catalog.Language(s.Lang)
	}
	return catalog.LangRU
}
