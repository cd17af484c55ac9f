package gacha

import (
	"time"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
)

// CatalogStatus reports where the shared catalog load stands
type CatalogStatus string

// Catalog load states
const (
	CatalogIdle    CatalogStatus = "idle"
	CatalogLoading CatalogStatus = "loading"
	CatalogReady   CatalogStatus = "ready"
	CatalogFailed  CatalogStatus = "failed"
)

// Bulk selection actions
const (
	BulkSelectVisible   = "selectVisible"
	BulkDeselectVisible = "deselectVisible"
	BulkSelectAll       = "selectAll"
	BulkClearAll        = "clearAll"
)

// Event types streamed to the view layer
const (
	EventFrame  = "frame"
	EventTick   = "tick"
	EventLanded = "landed"
)

// Event is one animation notification for a profile's stage
type Event struct {
	ProfileID string        `json:"profileId"`
	Stage     catalog.Stage `json:"stage"`
	Type      string        `json:"type"`
	State     string        `json:"state"`
	Offset    float64       `json:"offset"`
	Winner    *catalog.Item `json:"winner,omitempty"`
}

// EventSink receives animation events. Implementations must not block;
// the frame loop publishes from under the orchestrator lock.
type EventSink interface {
	Publish(event Event)
}

// GetStateInput requests a profile's persisted state
type GetStateInput struct {
	ProfileID string
}

// GetStateOutput carries every state slice plus the catalog status
type GetStateOutput struct {
	State         *session.State
	CatalogStatus CatalogStatus
}

// UpdateSettingsInput replaces a profile's settings
type UpdateSettingsInput struct {
	ProfileID string
	Settings  session.Settings
}

// UpdateSettingsOutput returns the validated settings as stored
type UpdateSettingsOutput struct {
	Settings session.Settings
}

// UpdateUIInput replaces the UI position
type UpdateUIInput struct {
	ProfileID string
	UI        session.UIState
}

// UpdateUIOutput returns the stored UI state
type UpdateUIOutput struct {
	UI session.UIState
}

// UpdateCharacterFiltersInput replaces the character pool filters
type UpdateCharacterFiltersInput struct {
	ProfileID string
	Filters   session.CharacterFilters
}

// UpdateCharacterFiltersOutput returns the stored filters
type UpdateCharacterFiltersOutput struct {
	Filters session.CharacterFilters
}

// UpdateBossFiltersInput replaces the boss pool filters
type UpdateBossFiltersInput struct {
	ProfileID string
	Filters   session.BossFilters
}

// UpdateBossFiltersOutput returns the stored filters
type UpdateBossFiltersOutput struct {
	Filters session.BossFilters
}

// ResetCharacterFiltersInput restores the default character filters
type ResetCharacterFiltersInput struct {
	ProfileID string
}

// ResetCharacterFiltersOutput returns the restored defaults
type ResetCharacterFiltersOutput struct {
	Filters session.CharacterFilters
}

// ResetBossFiltersInput restores the default boss filters
type ResetBossFiltersInput struct {
	ProfileID string
}

// ResetBossFiltersOutput returns the restored defaults
type ResetBossFiltersOutput struct {
	Filters session.BossFilters
}

// UpdateHistoryFiltersInput replaces the history view filters
type UpdateHistoryFiltersInput struct {
	ProfileID string
	Filters   session.HistoryFilters
}

// UpdateHistoryFiltersOutput returns the stored filters
type UpdateHistoryFiltersOutput struct {
	Filters session.HistoryFilters
}

// GetPoolInput requests one stage's pool view
type GetPoolInput struct {
	ProfileID string
	Stage     catalog.Stage
}

// GetPoolOutput carries the filtered view and the pool arithmetic
type GetPoolOutput struct {
	Visible []catalog.Item

	// SelectedIDs marks which visible items are selected
	SelectedIDs map[string]bool

	EffectiveCount int
	SelectedCount  int
	TotalCount     int
}

// ToggleSelectionInput flips one item's eligibility
type ToggleSelectionInput struct {
	ProfileID string
	Stage     catalog.Stage
	ItemID    string
}

// ToggleSelectionOutput reports the resulting membership
type ToggleSelectionOutput struct {
	Selected       bool
	EffectiveCount int
}

// BulkSelectInput applies a bulk action against the current view
type BulkSelectInput struct {
	ProfileID string
	Stage     catalog.Stage
	Action    string
}

// BulkSelectOutput reports the resulting counts
type BulkSelectOutput struct {
	SelectedCount  int
	EffectiveCount int
}

// SpinInput starts a roll on one stage
type SpinInput struct {
	ProfileID string
	Stage     catalog.Stage
}

// SpinOutput describes the started spin. Started is false when the
// stage was already spinning or its pool is empty; the call is then a
// no-op rather than an error.
type SpinOutput struct {
	Started  bool
	Duration time.Duration
	Display  []catalog.Item
}

// ClearRollInput drops a landed result
type ClearRollInput struct {
	ProfileID string
	Stage     catalog.Stage
}

// ClearRollOutput is empty; the call either clears or no-ops
type ClearRollOutput struct{}

// GetRollStateInput requests one stage's animation state
type GetRollStateInput struct {
	ProfileID string
	Stage     catalog.Stage
}

// GetRollStateOutput is a snapshot of the roulette machine. Splash is
// populated at most once per landing and then consumed.
type GetRollStateOutput struct {
	State    string
	Offset   float64
	Display  []catalog.Item
	Selected *catalog.Item
	Splash   *catalog.Item
}

// ListHistoryInput requests the filtered history view
type ListHistoryInput struct {
	ProfileID string
}

// ListHistoryOutput carries the filtered entries plus totals
type ListHistoryOutput struct {
	Entries       []session.HistoryEntry
	FilteredTotal int
	Total         int
}

// DeleteHistoryEntryInput removes one entry by id
type DeleteHistoryEntryInput struct {
	ProfileID string
	EntryID   string
}

// DeleteHistoryEntryOutput reports the remaining total
type DeleteHistoryEntryOutput struct {
	Total int
}

// DeleteFilteredHistoryInput removes everything the current history
// filters match.
type DeleteFilteredHistoryInput struct {
	ProfileID string
}

// DeleteFilteredHistoryOutput reports how many entries were removed
type DeleteFilteredHistoryOutput struct {
	Removed int
	Total   int
}

// ClearHistoryInput removes every entry
type ClearHistoryInput struct {
	ProfileID string
}

// ClearHistoryOutput is empty
type ClearHistoryOutput struct{}

// GetCatalogInput requests the shared catalog snapshot
type GetCatalogInput struct{}

// GetCatalogOutput carries the snapshot and load status
type GetCatalogOutput struct {
	Status  CatalogStatus
	Error   string
	Catalog *catalog.Catalog
}

// RefreshCatalogInput triggers a catalog reload
type RefreshCatalogInput struct{}

// RefreshCatalogOutput reports the resulting status
type RefreshCatalogOutput struct {
	Status CatalogStatus
	Error  string
}
