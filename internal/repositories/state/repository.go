// Package state persists per-profile roulette state as independent
// slices (settings, filters, selections, history) so one corrupt slice
// never takes down the rest. Loads run every slice through the
// normalization codec; whatever is stored, a load always yields a
// usable profile.
package state

import (
	"context"

	"github.com/genroll/roulette-api/internal/entities/session"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=statemock github.com/genroll/roulette-api/internal/repositories/state Repository

// LoadProfileInput contains parameters for loading a profile
type LoadProfileInput struct {
	ProfileID string
}

// LoadProfileOutput contains the normalized profile state
type LoadProfileOutput struct {
	State *session.State
}

// SaveSettingsInput contains parameters for persisting settings
type SaveSettingsInput struct {
	ProfileID string
	Settings  session.Settings
}

// SaveUIInput contains parameters for persisting the UI position
type SaveUIInput struct {
	ProfileID string
	UI        session.UIState
}

// SaveCharacterFiltersInput contains parameters for persisting character filters
type SaveCharacterFiltersInput struct {
	ProfileID string
	Filters   session.CharacterFilters
}

// SaveBossFiltersInput contains parameters for persisting boss filters
type SaveBossFiltersInput struct {
	ProfileID string
	Filters   session.BossFilters
}

// SaveSelectedIDsInput contains parameters for persisting the selections
type SaveSelectedIDsInput struct {
	ProfileID string
	Selected  session.SelectedIDs
}

// SaveHistoryInput contains parameters for persisting the roll history
type SaveHistoryInput struct {
	ProfileID string
	History   []session.HistoryEntry
}

// SaveHistoryFiltersInput contains parameters for persisting history filters
type SaveHistoryFiltersInput struct {
	ProfileID string
	Filters   session.HistoryFilters
}

// Repository defines the storage operations for profile state. Each
// slice saves independently; LoadProfile assembles all of them.
type Repository interface {
	// LoadProfile retrieves and normalizes every state slice. Missing or
	// corrupt slices come back as defaults, never as an error.
	LoadProfile(ctx context.Context, input LoadProfileInput) (*LoadProfileOutput, error)

	// SaveSettings persists user preferences
	SaveSettings(ctx context.Context, input SaveSettingsInput) error

	// SaveUI persists the active section and roll order
	SaveUI(ctx context.Context, input SaveUIInput) error

	// SaveCharacterFilters persists the character pool filters
	SaveCharacterFilters(ctx context.Context, input SaveCharacterFiltersInput) error

	// SaveBossFilters persists the boss pool filters
	SaveBossFilters(ctx context.Context, input SaveBossFiltersInput) error

	// SaveSelectedIDs persists both stages' selections
	SaveSelectedIDs(ctx context.Context, input SaveSelectedIDsInput) error

	// SaveHistory persists the roll history, capped to the storage budget
	SaveHistory(ctx context.Context, input SaveHistoryInput) error

	// SaveHistoryFilters persists the history view filters
	SaveHistoryFilters(ctx context.Context, input SaveHistoryFiltersInput) error
}
