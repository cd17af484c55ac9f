package gacha

import (
	"context"
	"log/slog"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/errors"
	"github.com/genroll/roulette-api/internal/repositories/state"
)

// Spin starts a roll on one stage. The first spin of a session pins the
// roll order so a reload resumes on the same stage.
func (o *orchestrator) Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !catalog.IsValidStage(string(input.Stage)) {
		return nil, errors.InvalidArgumentf("unknown stage %q", input.Stage)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireCatalogLocked(); err != nil {
		return nil, err
	}
	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	machine := p.machines[input.Stage]
	duration := session.RollDuration(p.settings.RollSpeed)
	if !machine.Spin(o.clock.Now(), duration) {
		// busy stage or empty pool; the request is dropped, not failed
		return &SpinOutput{Started: false}, nil
	}

	if p.ui.RollOrder == "" {
		p.ui.RollOrder = string(input.Stage)
		if err := o.stateRepo.SaveUI(ctx, state.SaveUIInput{ProfileID: p.id, UI: p.ui}); err != nil {
			slog.Error("failed to persist roll order", "profile_id", p.id, "error", err)
		}
	}

	slog.Info("spin started",
		"profile_id", p.id,
		"stage", input.Stage,
		"duration_ms", duration.Milliseconds(),
		"pool_size", len(p.effective(o.catalog, input.Stage)),
	)

	return &SpinOutput{
		Started:  true,
		Duration: duration,
		Display:  machine.Display(),
	}, nil
}

// ClearRoll drops a landed result and resumes the idle drift
func (o *orchestrator) ClearRoll(ctx context.Context, input *ClearRollInput) (*ClearRollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !catalog.IsValidStage(string(input.Stage)) {
		return nil, errors.InvalidArgumentf("unknown stage %q", input.Stage)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	p.machines[input.Stage].Clear()
	delete(p.splash, input.Stage)
	return &ClearRollOutput{}, nil
}

// GetRollState snapshots one stage's animation. A pending splash is
// returned once and then consumed.
func (o *orchestrator) GetRollState(ctx context.Context, input *GetRollStateInput) (*GetRollStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !catalog.IsValidStage(string(input.Stage)) {
		return nil, errors.InvalidArgumentf("unknown stage %q", input.Stage)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	machine := p.machines[input.Stage]
	splash := p.splash[input.Stage]
	delete(p.splash, input.Stage)

	return &GetRollStateOutput{
		State:    string(machine.State()),
		Offset:   machine.Offset(),
		Display:  machine.Display(),
		Selected: machine.Selected(),
		Splash:   splash,
	}, nil
}
