package state

import (
	"encoding/json"
	"time"

	"github.com/genroll/roulette-api/internal/engine/filters"
	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/pkg/idgen"
)

// historyByteBudget caps the URL-escaped serialized history. Entries are
// dropped oldest-first until the payload fits.
const historyByteBudget = 3300

// fields splits a stored JSON object into per-field raw messages so one
// mistyped field never poisons its neighbors. Non-object payloads yield
// an empty map, which normalizes to all defaults.
func fields(data []byte) map[string]json.RawMessage {
	out := map[string]json.RawMessage{}
	if len(data) == 0 {
		return out
	}
	_ = json.Unmarshal(data, &out)
	return out
}

func decodeString(raw json.RawMessage) (string, bool) {
	var s string
	if raw == nil || json.Unmarshal(raw, &s) != nil {
		return "", false
	}
	return s, true
}

func decodeBool(raw json.RawMessage) (bool, bool) {
	var b bool
	if raw == nil || json.Unmarshal(raw, &b) != nil {
		return false, false
	}
	return b, true
}

func decodeFloat(raw json.RawMessage) (float64, bool) {
	var f float64
	if raw == nil || json.Unmarshal(raw, &f) != nil {
		return 0, false
	}
	return f, true
}

func decodeInt(raw json.RawMessage) (int, bool) {
	f, ok := decodeFloat(raw)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// decodeStrings accepts only a real JSON array; null reads as absent
func decodeStrings(raw json.RawMessage) ([]string, bool) {
	list := []string{}
	if raw == nil || json.Unmarshal(raw, &list) != nil || string(raw) == "null" {
		return nil, false
	}
	return list, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func keepValid(values []string, allowed []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, a := range allowed {
			if v == a {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// NormalizeSettings coerces a stored settings payload onto defaults.
// Unknown enum values fall back; volumes clamp to [0,1]. The legacy
// soundEnabled and backgroundMusicEnabled booleans map to zero volumes
// only when no explicit volume was stored.
func NormalizeSettings(data []byte) session.Settings {
	out := session.DefaultSettings()
	f := fields(data)

	if v, ok := decodeString(f["lang"]); ok && catalog.IsValidLanguage(v) {
		out.Lang = v
	}
	if v, ok := decodeString(f["theme"]); ok && containsString(session.Themes, v) {
		out.Theme = v
	}

	if v, ok := decodeFloat(f["musicVolume"]); ok {
		out.MusicVolume = clamp01(v)
	} else if v, ok := decodeBool(f["backgroundMusicEnabled"]); ok && !v {
		out.MusicVolume = 0
	}
	if v, ok := decodeFloat(f["uiVolume"]); ok {
		out.UIVolume = clamp01(v)
	} else if v, ok := decodeBool(f["soundEnabled"]); ok && !v {
		out.UIVolume = 0
	}
	if v, ok := decodeFloat(f["tickVolume"]); ok {
		out.TickVolume = clamp01(v)
	} else if v, ok := decodeBool(f["soundEnabled"]); ok && !v {
		out.TickVolume = 0
	}

	if v, ok := decodeBool(f["splashEnabled"]); ok {
		out.SplashEnabled = v
	}
	if v, ok := decodeBool(f["splashEffects"]); ok {
		out.SplashEffects = v
	}
	if v, ok := decodeString(f["rollSpeed"]); ok && containsString(session.RollSpeeds, v) {
		out.RollSpeed = v
	}
	if v, ok := decodeInt(f["historyLimit"]); ok && containsInt(session.HistoryLimits, v) {
		out.HistoryLimit = v
	}

	return out
}

// NormalizeUI coerces a stored UI payload onto defaults
func NormalizeUI(data []byte) session.UIState {
	out := session.DefaultUIState()
	f := fields(data)

	if v, ok := decodeString(f["activeSection"]); ok && containsString(session.Sections, v) {
		out.ActiveSection = v
	}
	if v, ok := decodeString(f["rollOrder"]); ok && catalog.IsValidStage(v) {
		out.RollOrder = v
	}

	return out
}

// NormalizeCharacterFilters coerces stored character filters, dropping
// facet values that are not part of the known vocabulary.
func NormalizeCharacterFilters(data []byte) session.CharacterFilters {
	out := session.DefaultCharacterFilters()
	f := fields(data)

	if v, ok := decodeString(f["search"]); ok {
		out.Search = v
	}
	if v, ok := decodeString(f["viewMode"]); ok && (v == session.ViewModeCards || v == session.ViewModeList) {
		out.ViewMode = v
	}

	var rarities []int
	if raw := f["rarities"]; raw != nil && json.Unmarshal(raw, &rarities) == nil {
		kept := make([]int, 0, len(rarities))
		for _, r := range rarities {
			if r == 4 || r == 5 {
				kept = append(kept, r)
			}
		}
		out.Rarities = kept
	}
	if v, ok := decodeStrings(f["weapons"]); ok {
		out.Weapons = keepValid(v, catalog.Weapons)
	}
	if v, ok := decodeStrings(f["elements"]); ok {
		out.Elements = keepValid(v, catalog.Elements)
	}

	return out
}

// NormalizeBossFilters coerces stored boss filters
func NormalizeBossFilters(data []byte) session.BossFilters {
	out := session.DefaultBossFilters()
	f := fields(data)

	if v, ok := decodeString(f["search"]); ok {
		out.Search = v
	}
	if v, ok := decodeString(f["viewMode"]); ok && (v == session.ViewModeCards || v == session.ViewModeList) {
		out.ViewMode = v
	}
	if v, ok := decodeStrings(f["groups"]); ok {
		out.Groups = keepValid(v, catalog.Groups)
	}
	if v, ok := decodeStrings(f["nameShapes"]); ok {
		out.NameShapes = keepValid(v, filters.NameShapes)
	}
	if v, ok := decodeStrings(f["nameLengths"]); ok {
		out.NameLengths = keepValid(v, filters.NameLengths)
	}

	return out
}

// NormalizeSelectedIDs coerces stored selections. The Has* flags record
// whether each stage's array was actually present, which downstream
// decides seeding on catalog load.
func NormalizeSelectedIDs(data []byte) session.SelectedIDs {
	out := session.SelectedIDs{Characters: []string{}, Bosses: []string{}}
	f := fields(data)

	if v, ok := decodeStrings(f["characters"]); ok {
		out.Characters = dedupeStrings(v)
		out.HasCharacters = true
	}
	if v, ok := decodeStrings(f["bosses"]); ok {
		out.Bosses = dedupeStrings(v)
		out.HasBosses = true
	}

	return out
}

// NormalizeHistory coerces stored history entries, dropping anything
// without a valid stage or an item name and synthesizing ids where
// missing, capped at limit.
func NormalizeHistory(data []byte, limit int, idGenerator idgen.Generator) []session.HistoryEntry {
	var raw []json.RawMessage
	if len(data) == 0 || json.Unmarshal(data, &raw) != nil {
		return []session.HistoryEntry{}
	}

	out := make([]session.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		if limit > 0 && len(out) >= limit {
			break
		}

		f := map[string]json.RawMessage{}
		if json.Unmarshal(item, &f) != nil {
			continue
		}

		stage, ok := decodeString(f["stage"])
		if !ok || !catalog.IsValidStage(stage) {
			continue
		}
		name, ok := decodeString(f["itemName"])
		if !ok || name == "" {
			continue
		}

		entry := session.HistoryEntry{Stage: stage, ItemName: name}
		if v, ok := decodeString(f["id"]); ok && v != "" {
			entry.ID = v
		} else {
			entry.ID = idGenerator.Generate()
		}
		if v, ok := decodeString(f["itemId"]); ok {
			entry.ItemID = v
		}
		if v, ok := decodeString(f["itemNameRu"]); ok {
			entry.ItemNameRU = v
		}
		if v, ok := decodeInt(f["rarity"]); ok {
			entry.Rarity = v
		}
		if v, ok := decodeString(f["group"]); ok {
			entry.Group = v
		}
		if v, ok := decodeString(f["timestamp"]); ok {
			entry.Timestamp = v
		}

		out = append(out, entry)
	}
	return out
}

// NormalizeHistoryFilters coerces stored history filters. Date bounds
// must be YYYY-MM-DD or they reset.
func NormalizeHistoryFilters(data []byte) session.HistoryFilters {
	out := session.DefaultHistoryFilters()
	f := fields(data)

	if v, ok := decodeString(f["from"]); ok && isDay(v) {
		out.From = v
	}
	if v, ok := decodeString(f["to"]); ok && isDay(v) {
		out.To = v
	}
	if v, ok := decodeString(f["stage"]); ok && (v == "all" || catalog.IsValidStage(v)) {
		out.Stage = v
	}

	return out
}

// CapHistory drops the oldest entries (from the tail, history is newest
// first) until the URL-escaped JSON encoding fits the storage budget.
func CapHistory(entries []session.HistoryEntry) []session.HistoryEntry {
	capped := append([]session.HistoryEntry(nil), entries...)
	for len(capped) > 0 {
		encoded, err := json.Marshal(capped)
		if err != nil {
			return capped[:0]
		}
		if escapedLength(encoded) <= historyByteBudget {
			break
		}
		capped = capped[:len(capped)-1]
	}
	return capped
}

// escapedLength measures data as encodeURIComponent would encode it:
// unreserved bytes count 1, everything else expands to a %XX triplet
// per UTF-8 byte.
func escapedLength(data []byte) int {
	n := 0
	for _, b := range data {
		if isUnreserved(b) {
			n++
		} else {
			n += 3
		}
	}
	return n
}

func isUnreserved(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func isDay(value string) bool {
	if value == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func containsInt(list []int, value int) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
