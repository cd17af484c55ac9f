package gacha

import (
	"context"
	"log/slog"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/errors"
	"github.com/genroll/roulette-api/internal/repositories/state"
)

// GetState returns every persisted slice for a profile
func (o *orchestrator) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	return &GetStateOutput{
		State:         p.snapshotState(),
		CatalogStatus: o.catalogStatus,
	}, nil
}

// UpdateSettings validates and persists new settings. A changed history
// limit re-truncates the ledger immediately; a changed language reshapes
// the filtered pools.
func (o *orchestrator) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSettings(&input.Settings); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	next := input.Settings
	next.MusicVolume = clampVolume(next.MusicVolume)
	next.UIVolume = clampVolume(next.UIVolume)
	next.TickVolume = clampVolume(next.TickVolume)

	limitChanged := next.HistoryLimit != p.settings.HistoryLimit
	langChanged := next.Lang != p.settings.Lang
	p.settings = next

	if limitChanged {
		p.ledger.SetLimit(next.HistoryLimit)
		if err := o.saveHistory(ctx, p); err != nil {
			return nil, errors.Wrap(err, "failed to persist truncated history")
		}
	}
	if langChanged && o.catalog != nil {
		p.rebuildPools(o.catalog)
	}

	if err := o.stateRepo.SaveSettings(ctx, state.SaveSettingsInput{
		ProfileID: p.id,
		Settings:  p.settings,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to persist settings")
	}

	slog.Info("settings updated", "profile_id", p.id, "history_limit", next.HistoryLimit)
	return &UpdateSettingsOutput{Settings: p.settings}, nil
}

// UpdateUI persists the active section and, once set, the roll order
func (o *orchestrator) UpdateUI(ctx context.Context, input *UpdateUIInput) (*UpdateUIOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if !containsString(session.Sections, input.UI.ActiveSection) {
		vb.Fieldf("ActiveSection", "unknown section %q", input.UI.ActiveSection)
	}
	if input.UI.RollOrder != "" && !catalog.IsValidStage(input.UI.RollOrder) {
		vb.Fieldf("RollOrder", "unknown stage %q", input.UI.RollOrder)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	p.ui = input.UI
	if err := o.stateRepo.SaveUI(ctx, state.SaveUIInput{ProfileID: p.id, UI: p.ui}); err != nil {
		return nil, errors.Wrap(err, "failed to persist ui state")
	}
	return &UpdateUIOutput{UI: p.ui}, nil
}

// UpdateCharacterFilters persists new character filters and reshapes the
// character pool.
func (o *orchestrator) UpdateCharacterFilters(ctx context.Context, input *UpdateCharacterFiltersInput) (*UpdateCharacterFiltersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	p.characterFilters = input.Filters
	if o.catalog != nil {
		p.rebuildPools(o.catalog)
	}

	if err := o.stateRepo.SaveCharacterFilters(ctx, state.SaveCharacterFiltersInput{
		ProfileID: p.id,
		Filters:   p.characterFilters,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to persist character filters")
	}
	return &UpdateCharacterFiltersOutput{Filters: p.characterFilters}, nil
}

// UpdateBossFilters persists new boss filters and reshapes the boss pool
func (o *orchestrator) UpdateBossFilters(ctx context.Context, input *UpdateBossFiltersInput) (*UpdateBossFiltersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	p.bossFilters = input.Filters
	if o.catalog != nil {
		p.rebuildPools(o.catalog)
	}

	if err := o.stateRepo.SaveBossFilters(ctx, state.SaveBossFiltersInput{
		ProfileID: p.id,
		Filters:   p.bossFilters,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to persist boss filters")
	}
	return &UpdateBossFiltersOutput{Filters: p.bossFilters}, nil
}

// ResetCharacterFilters restores the default character filters and
// reshapes the character pool.
func (o *orchestrator) ResetCharacterFilters(ctx context.Context, input *ResetCharacterFiltersInput) (*ResetCharacterFiltersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	p.characterFilters = session.DefaultCharacterFilters()
	if o.catalog != nil {
		p.rebuildPools(o.catalog)
	}

	if err := o.stateRepo.SaveCharacterFilters(ctx, state.SaveCharacterFiltersInput{
		ProfileID: p.id,
		Filters:   p.characterFilters,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to persist character filters")
	}
	return &ResetCharacterFiltersOutput{Filters: p.characterFilters}, nil
}

// ResetBossFilters restores the default boss filters and reshapes the
// boss pool.
func (o *orchestrator) ResetBossFilters(ctx context.Context, input *ResetBossFiltersInput) (*ResetBossFiltersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	p.bossFilters = session.DefaultBossFilters()
	if o.catalog != nil {
		p.rebuildPools(o.catalog)
	}

	if err := o.stateRepo.SaveBossFilters(ctx, state.SaveBossFiltersInput{
		ProfileID: p.id,
		Filters:   p.bossFilters,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to persist boss filters")
	}
	return &ResetBossFiltersOutput{Filters: p.bossFilters}, nil
}

// UpdateHistoryFilters persists the history view filters
func (o *orchestrator) UpdateHistoryFilters(ctx context.Context, input *UpdateHistoryFiltersInput) (*UpdateHistoryFiltersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Filters.Stage != "" && input.Filters.Stage != "all" && !catalog.IsValidStage(input.Filters.Stage) {
		return nil, errors.InvalidArgumentf("unknown stage %q", input.Filters.Stage)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	p.historyFilters = input.Filters
	if p.historyFilters.Stage == "" {
		p.historyFilters.Stage = "all"
	}

	if err := o.stateRepo.SaveHistoryFilters(ctx, state.SaveHistoryFiltersInput{
		ProfileID: p.id,
		Filters:   p.historyFilters,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to persist history filters")
	}
	return &UpdateHistoryFiltersOutput{Filters: p.historyFilters}, nil
}

func validateSettings(s *session.Settings) error {
	vb := errors.NewValidationBuilder()

	if !catalog.IsValidLanguage(s.Lang) {
		vb.Fieldf("Lang", "unknown language %q", s.Lang)
	}
	if !containsString(session.Themes, s.Theme) {
		vb.Fieldf("Theme", "unknown theme %q", s.Theme)
	}
	if !containsString(session.RollSpeeds, s.RollSpeed) {
		vb.Fieldf("RollSpeed", "unknown roll speed %q", s.RollSpeed)
	}
	if !containsInt(session.HistoryLimits, s.HistoryLimit) {
		vb.Fieldf("HistoryLimit", "unsupported history limit %d", s.HistoryLimit)
	}

	return vb.Build()
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func containsString(list []string, value string) bool {
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
