package gacha

import (
	"github.com/genroll/roulette-api/internal/engine/pool"
	"github.com/genroll/roulette-api/internal/engine/roulette"
	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/ledger"
)

// profile is one user's live session: persisted state plus the derived
// selections and roulette machines. Access is serialized by the
// orchestrator lock.
type profile struct {
	id string

	settings         session.Settings
	ui               session.UIState
	characterFilters session.CharacterFilters
	bossFilters      session.BossFilters
	historyFilters   session.HistoryFilters

	characterSel    *pool.Selection
	bossSel         *pool.Selection
	hasCharacterSel bool
	hasBossSel      bool

	ledger   *ledger.Ledger
	machines map[catalog.Stage]*roulette.Machine

	// splash holds at most one pending splash item per stage, armed on
	// landing and consumed by the next roll-state read.
	splash map[catalog.Stage]*catalog.Item
}

// selection returns the stage's eligibility set
func (p *profile) selection(stage catalog.Stage) *pool.Selection {
	if stage == catalog.StageCharacters {
		return p.characterSel
	}
	return p.bossSel
}

// stageItems returns the stage's full catalog slice
func stageItems(c *catalog.Catalog, stage catalog.Stage) []catalog.Item {
	if stage == catalog.StageCharacters {
		return c.Characters
	}
	return c.Bosses.All
}

// visible applies the stage's filters in the active language
func (p *profile) visible(c *catalog.Catalog, stage catalog.Stage) []catalog.Item {
	lang := p.settings.Language()
	if stage == catalog.StageCharacters {
		return pool.VisibleCharacters(c.Characters, &p.characterFilters, lang)
	}
	return pool.VisibleBosses(c.Bosses.All, &p.bossFilters, lang)
}

// effective intersects the visible view with the selection
func (p *profile) effective(c *catalog.Catalog, stage catalog.Stage) []catalog.Item {
	return pool.Effective(p.visible(c, stage), p.selection(stage))
}

// rebuildPools pushes both stages' effective pools into their machines
func (p *profile) rebuildPools(c *catalog.Catalog) {
	for _, stage := range []catalog.Stage{catalog.StageCharacters, catalog.StageBosses} {
		p.machines[stage].SetPool(p.effective(c, stage))
	}
}

// selectedIDs snapshots the selections for persistence, sorted so saves
// are deterministic.
func (p *profile) selectedIDs() session.SelectedIDs {
	return session.SelectedIDs{
		Characters:    sortedIDs(p.characterSel),
		Bosses:        sortedIDs(p.bossSel),
		HasCharacters: p.hasCharacterSel,
		HasBosses:     p.hasBossSel,
	}
}

// snapshotState assembles the persisted view of the profile
func (p *profile) snapshotState() *session.State {
	return &session.State{
		Settings:         p.settings,
		UI:               p.ui,
		CharacterFilters: p.characterFilters,
		BossFilters:      p.bossFilters,
		SelectedIDs:      p.selectedIDs(),
		History:          p.ledger.Entries(),
		HistoryFilters:   p.historyFilters,
	}
}
