package state

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/pkg/idgen"
)

func TestNormalizeSettingsDefaults(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing", ""},
		{"not json", "{{{"},
		{"not an object", `[1,2,3]`},
		{"empty object", `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeSettings([]byte(tc.data))
			assert.Equal(t, session.DefaultSettings(), got)
		})
	}
}

func TestNormalizeSettingsCoercion(t *testing.T) {
	got := NormalizeSettings([]byte(`{
		"lang": "en",
		"theme": "neon",
		"musicVolume": 1.8,
		"uiVolume": -0.2,
		"tickVolume": "loud",
		"rollSpeed": "warp",
		"historyLimit": 45
	}`))

	assert.Equal(t, "en", got.Lang)
	assert.Equal(t, "dark", got.Theme, "unknown theme resets")
	assert.Equal(t, 1.0, got.MusicVolume, "clamped high")
	assert.Equal(t, 0.0, got.UIVolume, "clamped low")
	assert.Equal(t, 0.5, got.TickVolume, "mistyped field resets")
	assert.Equal(t, session.RollSpeedLong, got.RollSpeed)
	assert.Equal(t, 60, got.HistoryLimit, "off-menu limit resets")
}

func TestNormalizeSettingsLegacySoundFlags(t *testing.T) {
	got := NormalizeSettings([]byte(`{"soundEnabled": false, "backgroundMusicEnabled": false}`))
	assert.Zero(t, got.UIVolume)
	assert.Zero(t, got.TickVolume)
	assert.Zero(t, got.MusicVolume)

	// Explicit volumes win over the legacy flags.
	got = NormalizeSettings([]byte(`{"soundEnabled": false, "uiVolume": 0.7}`))
	assert.Equal(t, 0.7, got.UIVolume)
	assert.Zero(t, got.TickVolume)

	// soundEnabled=true is a no-op; the defaults already carry volume.
	got = NormalizeSettings([]byte(`{"soundEnabled": true}`))
	assert.Equal(t, session.DefaultSettings().UIVolume, got.UIVolume)
}

func TestNormalizeSettingsIsIdempotent(t *testing.T) {
	once := NormalizeSettings([]byte(`{"lang":"ja","musicVolume":0.3,"historyLimit":90}`))
	data, err := json.Marshal(once)
	require.NoError(t, err)
	assert.Equal(t, once, NormalizeSettings(data))
}

func TestNormalizeUI(t *testing.T) {
	got := NormalizeUI([]byte(`{"activeSection":"history","rollOrder":"bosses"}`))
	assert.Equal(t, "history", got.ActiveSection)
	assert.Equal(t, "bosses", got.RollOrder)

	got = NormalizeUI([]byte(`{"activeSection":"admin","rollOrder":"everything"}`))
	assert.Equal(t, "dashboard", got.ActiveSection)
	assert.Empty(t, got.RollOrder)
}

func TestNormalizeCharacterFilters(t *testing.T) {
	got := NormalizeCharacterFilters([]byte(`{
		"search": "hu",
		"viewMode": "list",
		"rarities": [3, 4, 5, 6],
		"weapons": ["WEAPON_BOW", "WEAPON_BANJO"],
		"elements": ["PYRO", "PLASMA"]
	}`))

	assert.Equal(t, "hu", got.Search)
	assert.Equal(t, session.ViewModeList, got.ViewMode)
	assert.Equal(t, []int{4, 5}, got.Rarities)
	assert.Equal(t, []string{"WEAPON_BOW"}, got.Weapons)
	assert.Equal(t, []string{"PYRO"}, got.Elements)
}

func TestNormalizeBossFilters(t *testing.T) {
	got := NormalizeBossFilters([]byte(`{
		"groups": ["weekly", "raid"],
		"nameShapes": ["multi", "triple"],
		"nameLengths": ["short", "endless"]
	}`))

	assert.Equal(t, []string{"weekly"}, got.Groups)
	assert.Equal(t, []string{"multi"}, got.NameShapes)
	assert.Equal(t, []string{"short"}, got.NameLengths)
}

func TestNormalizeSelectedIDsPresenceFlags(t *testing.T) {
	got := NormalizeSelectedIDs(nil)
	assert.False(t, got.HasCharacters)
	assert.False(t, got.HasBosses)

	got = NormalizeSelectedIDs([]byte(`{"characters": []}`))
	assert.True(t, got.HasCharacters, "persisted empty differs from never persisted")
	assert.False(t, got.HasBosses)
	assert.Empty(t, got.Characters)

	got = NormalizeSelectedIDs([]byte(`{"characters": null, "bosses": ["azhdaha", "azhdaha", ""]}`))
	assert.False(t, got.HasCharacters, "null is not a persisted array")
	assert.True(t, got.HasBosses)
	assert.Equal(t, []string{"azhdaha"}, got.Bosses, "duplicates and empties drop")
}

func TestNormalizeHistory(t *testing.T) {
	gen := idgen.NewSequential("hist")
	got := NormalizeHistory([]byte(`[
		{"id": "keep", "stage": "bosses", "itemName": "Azhdaha", "rarity": 5},
		{"stage": "characters", "itemName": "Hu Tao"},
		{"stage": "minions", "itemName": "Slime"},
		{"stage": "bosses"},
		"not an object"
	]`), 60, gen)

	require.Len(t, got, 2)
	assert.Equal(t, "keep", got[0].ID)
	assert.Equal(t, 5, got[0].Rarity)
	assert.Equal(t, "hist_1", got[1].ID, "missing id is synthesized")
	assert.Equal(t, "Hu Tao", got[1].ItemName)
}

func TestNormalizeHistoryAppliesLimit(t *testing.T) {
	entries := make([]session.HistoryEntry, 40)
	for i := range entries {
		entries[i] = session.HistoryEntry{
			ID:       fmt.Sprintf("e%d", i),
			Stage:    "bosses",
			ItemName: fmt.Sprintf("Boss %d", i),
		}
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)

	got := NormalizeHistory(data, 30, idgen.NewSequential(""))
	require.Len(t, got, 30)
	assert.Equal(t, "e0", got[0].ID, "newest entries survive the cut")
}

func TestNormalizeHistoryFilters(t *testing.T) {
	got := NormalizeHistoryFilters([]byte(`{"from":"2026-08-01","to":"soon","stage":"bosses"}`))
	assert.Equal(t, "2026-08-01", got.From)
	assert.Empty(t, got.To, "unparsable date resets")
	assert.Equal(t, "bosses", got.Stage)

	got = NormalizeHistoryFilters([]byte(`{"stage":"minions"}`))
	assert.Equal(t, "all", got.Stage)
}

func TestCapHistoryDropsOldestUntilBudgetFits(t *testing.T) {
	entries := make([]session.HistoryEntry, 60)
	for i := range entries {
		entries[i] = session.HistoryEntry{
			ID:        fmt.Sprintf("hist_%02d", i),
			Stage:     "characters",
			ItemID:    fmt.Sprintf("character-%02d", i),
			ItemName:  fmt.Sprintf("Character Number %02d", i),
			Rarity:    5,
			Timestamp: "2026-08-30T12:00:00Z",
		}
	}

	capped := CapHistory(entries)

	require.NotEmpty(t, capped)
	require.Less(t, len(capped), 60, "sixty full entries cannot fit the budget")
	assert.Equal(t, "hist_00", capped[0].ID, "newest entries kept")

	data, err := json.Marshal(capped)
	require.NoError(t, err)
	assert.LessOrEqual(t, escapedLength(data), 3300)

	// One more entry would overflow.
	data, err = json.Marshal(entries[:len(capped)+1])
	require.NoError(t, err)
	assert.Greater(t, escapedLength(data), 3300)
}

func TestCapHistoryKeepsSmallPayloads(t *testing.T) {
	entries := []session.HistoryEntry{{ID: "a", Stage: "bosses", ItemName: "Azhdaha"}}
	assert.Equal(t, entries, CapHistory(entries))
}

func TestEscapedLength(t *testing.T) {
	assert.Equal(t, 4, escapedLength([]byte("abcd")))
	// '{' and '"' escape to three bytes each
	assert.Equal(t, 3+3+1+3, escapedLength([]byte(`{"a"`)))
	// Cyrillic runes are two UTF-8 bytes, six escaped
	assert.Equal(t, 12, escapedLength([]byte("Ху")))
}
