// Package gacha implements the session orchestrator: it owns the shared
// catalog snapshot, every profile's state, and the two roulette machines
// per profile, and funnels each mutation through the persistence layer.
package gacha

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/genroll/roulette-api/internal/clients/catalogsource"
	"github.com/genroll/roulette-api/internal/engine/pool"
	"github.com/genroll/roulette-api/internal/engine/roulette"
	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/errors"
	"github.com/genroll/roulette-api/internal/ledger"
	"github.com/genroll/roulette-api/internal/pkg/clock"
	"github.com/genroll/roulette-api/internal/pkg/frames"
	"github.com/genroll/roulette-api/internal/pkg/idgen"
	"github.com/genroll/roulette-api/internal/pkg/rng"
	"github.com/genroll/roulette-api/internal/repositories/state"
)

//go:generate mockgen -destination=mock/mock_service.go -package=gachamock github.com/genroll/roulette-api/internal/orchestrators/gacha Service

// Service defines the interface for roulette session operations
type Service interface {
	// Profile state
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)
	UpdateUI(ctx context.Context, input *UpdateUIInput) (*UpdateUIOutput, error)
	UpdateCharacterFilters(ctx context.Context, input *UpdateCharacterFiltersInput) (*UpdateCharacterFiltersOutput, error)
	UpdateBossFilters(ctx context.Context, input *UpdateBossFiltersInput) (*UpdateBossFiltersOutput, error)
	ResetCharacterFilters(ctx context.Context, input *ResetCharacterFiltersInput) (*ResetCharacterFiltersOutput, error)
	ResetBossFilters(ctx context.Context, input *ResetBossFiltersInput) (*ResetBossFiltersOutput, error)
	UpdateHistoryFilters(ctx context.Context, input *UpdateHistoryFiltersInput) (*UpdateHistoryFiltersOutput, error)

	// Pool management
	GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error)
	ToggleSelection(ctx context.Context, input *ToggleSelectionInput) (*ToggleSelectionOutput, error)
	BulkSelect(ctx context.Context, input *BulkSelectInput) (*BulkSelectOutput, error)

	// Rolling
	Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error)
	ClearRoll(ctx context.Context, input *ClearRollInput) (*ClearRollOutput, error)
	GetRollState(ctx context.Context, input *GetRollStateInput) (*GetRollStateOutput, error)

	// History
	ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error)
	DeleteHistoryEntry(ctx context.Context, input *DeleteHistoryEntryInput) (*DeleteHistoryEntryOutput, error)
	DeleteFilteredHistory(ctx context.Context, input *DeleteFilteredHistoryInput) (*DeleteFilteredHistoryOutput, error)
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// Catalog
	GetCatalog(ctx context.Context, input *GetCatalogInput) (*GetCatalogOutput, error)
	RefreshCatalog(ctx context.Context, input *RefreshCatalogInput) (*RefreshCatalogOutput, error)

	// RunFrames drives every profile's roulette machines until ctx is
	// canceled. Run it from one goroutine.
	RunFrames(ctx context.Context)
}

// Config holds the dependencies for the gacha orchestrator
type Config struct {
	StateRepo     state.Repository
	CatalogClient catalogsource.Client
	Clock         clock.Clock
	IDGenerator   idgen.Generator
	RNG           rng.Source
	Frames        frames.Driver

	// Events is optional; nil drops animation events
	Events EventSink

	// Geometry is optional; the zero value takes the default track
	Geometry roulette.Geometry
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.StateRepo == nil {
		vb.RequiredField("StateRepo")
	}
	if c.CatalogClient == nil {
		vb.RequiredField("CatalogClient")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.RNG == nil {
		vb.RequiredField("RNG")
	}
	if c.Frames == nil {
		vb.RequiredField("Frames")
	}

	return vb.Build()
}

type orchestrator struct {
	stateRepo     state.Repository
	catalogClient catalogsource.Client
	clock         clock.Clock
	idGen         idgen.Generator
	rng           rng.Source
	frames        frames.Driver
	events        EventSink
	geometry      roulette.Geometry

	mu            sync.Mutex
	profiles      map[string]*profile
	catalog       *catalog.Catalog
	catalogStatus CatalogStatus
	catalogErr    string
}

// NewOrchestrator creates a new gacha orchestrator with the provided
// dependencies.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		stateRepo:     cfg.StateRepo,
		catalogClient: cfg.CatalogClient,
		clock:         cfg.Clock,
		idGen:         cfg.IDGenerator,
		rng:           cfg.RNG,
		frames:        cfg.Frames,
		events:        cfg.Events,
		geometry:      cfg.Geometry,
		profiles:      make(map[string]*profile),
		catalogStatus: CatalogIdle,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// GetCatalog returns the shared snapshot and its load status
func (o *orchestrator) GetCatalog(_ context.Context, _ *GetCatalogInput) (*GetCatalogOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetCatalogOutput{
		Status:  o.catalogStatus,
		Error:   o.catalogErr,
		Catalog: o.catalog,
	}, nil
}

// RefreshCatalog fetches a fresh snapshot and reconciles every loaded
// profile's selections against it. Concurrent refreshes collapse into
// the running one.
func (o *orchestrator) RefreshCatalog(ctx context.Context, _ *RefreshCatalogInput) (*RefreshCatalogOutput, error) {
	o.mu.Lock()
	if o.catalogStatus == CatalogLoading {
		o.mu.Unlock()
		return &RefreshCatalogOutput{Status: CatalogLoading}, nil
	}
	o.catalogStatus = CatalogLoading
	o.catalogErr = ""
	o.mu.Unlock()

	snapshot, err := o.catalogClient.Fetch(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.catalogStatus = CatalogFailed
		o.catalogErr = errors.GetMessage(err)
		slog.Error("catalog refresh failed", "error", err)
		return &RefreshCatalogOutput{Status: CatalogFailed, Error: o.catalogErr}, nil
	}

	o.catalog = snapshot
	o.catalogStatus = CatalogReady
	o.catalogErr = ""

	for _, p := range o.profiles {
		o.reconcileProfileLocked(ctx, p)
	}

	slog.Info("catalog ready",
		"characters", len(snapshot.Characters),
		"bosses", len(snapshot.Bosses.All),
	)
	return &RefreshCatalogOutput{Status: CatalogReady}, nil
}

// RunFrames drives the animation clock. Each frame advances every
// machine and streams offsets for the stages that are moving.
func (o *orchestrator) RunFrames(ctx context.Context) {
	o.frames.Run(ctx, func(now time.Time) bool {
		o.advanceAll(now)
		return true
	})
}

func (o *orchestrator) advanceAll(now time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, p := range o.profiles {
		for stage, machine := range p.machines {
			if machine.State() == roulette.StateLanded {
				continue
			}
			machine.Advance(now)
			o.publish(Event{
				ProfileID: p.id,
				Stage:     stage,
				Type:      EventFrame,
				State:     string(machine.State()),
				Offset:    machine.Offset(),
			})
		}
	}
}

func (o *orchestrator) publish(event Event) {
	if o.events != nil {
		o.events.Publish(event)
	}
}

// getProfileLocked returns the cached profile, loading and wiring it on
// first touch. Callers hold o.mu.
func (o *orchestrator) getProfileLocked(ctx context.Context, profileID string) (*profile, error) {
	if profileID == "" {
		return nil, errors.InvalidArgument("profile ID cannot be empty")
	}
	if p, ok := o.profiles[profileID]; ok {
		return p, nil
	}

	loaded, err := o.stateRepo.LoadProfile(ctx, state.LoadProfileInput{ProfileID: profileID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	p, err := o.buildProfile(profileID, loaded.State)
	if err != nil {
		return nil, err
	}

	if o.catalogStatus == CatalogReady {
		o.reconcileProfileLocked(ctx, p)
	}

	o.profiles[profileID] = p
	slog.Info("profile loaded", "profile_id", profileID, "history", p.ledger.Len())
	return p, nil
}

func (o *orchestrator) buildProfile(profileID string, loaded *session.State) (*profile, error) {
	p := &profile{
		id:               profileID,
		settings:         loaded.Settings,
		ui:               loaded.UI,
		characterFilters: loaded.CharacterFilters,
		bossFilters:      loaded.BossFilters,
		historyFilters:   loaded.HistoryFilters,
		characterSel:     pool.NewSelection(loaded.SelectedIDs.Characters),
		bossSel:          pool.NewSelection(loaded.SelectedIDs.Bosses),
		hasCharacterSel:  loaded.SelectedIDs.HasCharacters,
		hasBossSel:       loaded.SelectedIDs.HasBosses,
		machines:         make(map[catalog.Stage]*roulette.Machine, 2),
		splash:           make(map[catalog.Stage]*catalog.Item, 2),
	}

	led, err := ledger.New(&ledger.Config{
		Clock:       o.clock,
		IDGenerator: o.idGen,
		Limit:       loaded.Settings.HistoryLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build ledger")
	}
	led.Load(loaded.History)
	p.ledger = led

	for _, stage := range []catalog.Stage{catalog.StageCharacters, catalog.StageBosses} {
		machine, err := roulette.New(&roulette.Config{
			RNG:      o.rng,
			Geometry: o.geometry,
			OnTick:   o.tickHandler(p, stage),
			OnLanded: o.landedHandler(p, stage),
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to build roulette machine")
		}
		p.machines[stage] = machine
	}

	return p, nil
}

// tickHandler fires on card-boundary crossings. Runs under o.mu.
func (o *orchestrator) tickHandler(p *profile, stage catalog.Stage) func() {
	return func() {
		o.publish(Event{
			ProfileID: p.id,
			Stage:     stage,
			Type:      EventTick,
			State:     string(roulette.StateSpinning),
			Offset:    p.machines[stage].Offset(),
		})
	}
}

// landedHandler records the outcome, arms the one-shot splash, and
// persists history. Runs under o.mu from the frame loop, so persistence
// uses a background context.
func (o *orchestrator) landedHandler(p *profile, stage catalog.Stage) func(catalog.Item) {
	return func(winner catalog.Item) {
		entry := p.ledger.Append(stage, &winner)
		if p.settings.SplashEnabled {
			splashed := winner
			p.splash[stage] = &splashed
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := o.saveHistory(ctx, p); err != nil {
			slog.Error("failed to persist roll outcome",
				"profile_id", p.id, "stage", stage, "error", err)
		}

		o.publish(Event{
			ProfileID: p.id,
			Stage:     stage,
			Type:      EventLanded,
			State:     string(roulette.StateLanded),
			Offset:    p.machines[stage].Offset(),
			Winner:    &winner,
		})

		slog.Info("roll landed",
			"profile_id", p.id,
			"stage", stage,
			"item_id", winner.ID,
			"entry_id", entry.ID,
		)
	}
}

// reconcileProfileLocked aligns a profile with the current catalog:
// never-persisted selections seed to the full stage, persisted ones
// intersect with the surviving ids. Pools rebuild afterwards.
func (o *orchestrator) reconcileProfileLocked(ctx context.Context, p *profile) {
	if o.catalog == nil {
		return
	}

	if !p.hasCharacterSel {
		p.characterSel.Add(pool.CollectIDs(o.catalog.Characters))
		p.hasCharacterSel = true
	} else {
		p.characterSel.Retain(o.catalog.CharacterIDs())
	}

	if !p.hasBossSel {
		p.bossSel.Add(pool.CollectIDs(o.catalog.Bosses.All))
		p.hasBossSel = true
	} else {
		p.bossSel.Retain(o.catalog.BossIDs())
	}

	p.rebuildPools(o.catalog)

	if err := o.saveSelections(ctx, p); err != nil {
		slog.Error("failed to persist reconciled selections", "profile_id", p.id, "error", err)
	}
}

func (o *orchestrator) saveSelections(ctx context.Context, p *profile) error {
	return o.stateRepo.SaveSelectedIDs(ctx, state.SaveSelectedIDsInput{
		ProfileID: p.id,
		Selected:  p.selectedIDs(),
	})
}

func (o *orchestrator) saveHistory(ctx context.Context, p *profile) error {
	return o.stateRepo.SaveHistory(ctx, state.SaveHistoryInput{
		ProfileID: p.id,
		History:   p.ledger.Entries(),
	})
}

// requireCatalogLocked gates the operations that need item data
func (o *orchestrator) requireCatalogLocked() error {
	if o.catalogStatus != CatalogReady || o.catalog == nil {
		return errors.FailedPrecondition("catalog is not loaded")
	}
	return nil
}

func sortedIDs(sel *pool.Selection) []string {
	ids := sel.IDs()
	sort.Strings(ids)
	return ids
}
