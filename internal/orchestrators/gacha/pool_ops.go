package gacha

import (
	"context"

	"github.com/genroll/roulette-api/internal/engine/pool"
	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/errors"
)

// GetPool returns one stage's filtered view plus the selection counts
func (o *orchestrator) GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error) {
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

	sel := p.selection(input.Stage)
	visible := p.visible(o.catalog, input.Stage)

	selected := make(map[string]bool, len(visible))
	for _, item := range visible {
		selected[item.ID] = sel.Has(item.ID)
	}

	return &GetPoolOutput{
		Visible:        visible,
		SelectedIDs:    selected,
		EffectiveCount: len(pool.Effective(visible, sel)),
		SelectedCount:  sel.Len(),
		TotalCount:     len(stageItems(o.catalog, input.Stage)),
	}, nil
}

// ToggleSelection flips one catalog item in and out of the stage's
// eligibility set.
func (o *orchestrator) ToggleSelection(ctx context.Context, input *ToggleSelectionInput) (*ToggleSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !catalog.IsValidStage(string(input.Stage)) {
		return nil, errors.InvalidArgumentf("unknown stage %q", input.Stage)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
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

	if !stageContains(o.catalog, input.Stage, input.ItemID) {
		return nil, errors.NotFoundf("item %q is not in the %s catalog", input.ItemID, input.Stage)
	}

	sel := p.selection(input.Stage)
	sel.Toggle(input.ItemID)
	p.rebuildPools(o.catalog)

	if err := o.saveSelections(ctx, p); err != nil {
		return nil, errors.Wrap(err, "failed to persist selection")
	}

	return &ToggleSelectionOutput{
		Selected:       sel.Has(input.ItemID),
		EffectiveCount: len(p.effective(o.catalog, input.Stage)),
	}, nil
}

// BulkSelect applies one of the bulk actions. The visible variants act
// on the currently filtered view only; the all variants ignore filters.
func (o *orchestrator) BulkSelect(ctx context.Context, input *BulkSelectInput) (*BulkSelectOutput, error) {
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

	sel := p.selection(input.Stage)
	switch input.Action {
	case BulkSelectVisible:
		sel.Add(pool.CollectIDs(p.visible(o.catalog, input.Stage)))
	case BulkDeselectVisible:
		sel.Remove(pool.CollectIDs(p.visible(o.catalog, input.Stage)))
	case BulkSelectAll:
		sel.Add(pool.CollectIDs(stageItems(o.catalog, input.Stage)))
	case BulkClearAll:
		sel.Clear()
	default:
		return nil, errors.InvalidArgumentf("unknown bulk action %q", input.Action)
	}

	p.rebuildPools(o.catalog)
	if err := o.saveSelections(ctx, p); err != nil {
		return nil, errors.Wrap(err, "failed to persist selection")
	}

	return &BulkSelectOutput{
		SelectedCount:  sel.Len(),
		EffectiveCount: len(p.effective(o.catalog, input.Stage)),
	}, nil
}

func stageContains(c *catalog.Catalog, stage catalog.Stage, itemID string) bool {
	for _, item := range stageItems(c, stage) {
		if item.ID == itemID {
			return true
		}
	}
	return false
}
