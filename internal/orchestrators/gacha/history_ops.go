package gacha

import (
	"context"

	"github.com/genroll/roulette-api/internal/errors"
)

// ListHistory returns the entries matching the profile's history filters
func (o *orchestrator) ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	entries := p.ledger.Filter(&p.historyFilters)
	return &ListHistoryOutput{
		Entries:       entries,
		FilteredTotal: len(entries),
		Total:         p.ledger.Len(),
	}, nil
}

// DeleteHistoryEntry removes a single entry by id
func (o *orchestrator) DeleteHistoryEntry(ctx context.Context, input *DeleteHistoryEntryInput) (*DeleteHistoryEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntryID == "" {
		return nil, errors.InvalidArgument("entry ID cannot be empty")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	if !p.ledger.DeleteOne(input.EntryID) {
		return nil, errors.NotFoundf("history entry %q not found", input.EntryID)
	}
	if err := o.saveHistory(ctx, p); err != nil {
		return nil, errors.Wrap(err, "failed to persist history")
	}

	return &DeleteHistoryEntryOutput{Total: p.ledger.Len()}, nil
}

// DeleteFilteredHistory removes every entry the current history filters
// match. With no active filters this empties the ledger.
func (o *orchestrator) DeleteFilteredHistory(ctx context.Context, input *DeleteFilteredHistoryInput) (*DeleteFilteredHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	removed := p.ledger.DeleteMatching(&p.historyFilters)
	if removed > 0 {
		if err := o.saveHistory(ctx, p); err != nil {
			return nil, errors.Wrap(err, "failed to persist history")
		}
	}

	return &DeleteFilteredHistoryOutput{
		Removed: removed,
		Total:   p.ledger.Len(),
	}, nil
}

// ClearHistory empties the ledger regardless of filters
func (o *orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.getProfileLocked(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	p.ledger.Clear()
	if err := o.saveHistory(ctx, p); err != nil {
		return nil, errors.Wrap(err, "failed to persist history")
	}

	return &ClearHistoryOutput{}, nil
}
